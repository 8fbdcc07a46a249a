// Package term writes images to terminals.
//
// Four output protocols are supported:
//
//   - [Kitty]: the kitty graphics protocol, raw pixels in base64 chunks
//   - [Iterm2]: the iTerm2 inline image protocol, a base64 PNG
//   - [Sixel]: DEC sixel graphics with a median-cut palette
//   - [Bloc]: 24-bit color half blocks, two pixels per character cell
//
// [Detect] picks a protocol from the environment and [Write] encodes a view
// with the chosen one. [WriteTerminal] additionally fits the image to the
// size of the terminal.
package term
