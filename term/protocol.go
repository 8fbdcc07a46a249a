package term

import (
	"fmt"
	"os"
	"strings"
)

// Protocol is a terminal image protocol.
type Protocol uint8

const (
	// Auto detects the protocol from the environment.
	Auto Protocol = iota
	// Kitty is the kitty graphics protocol.
	Kitty
	// Iterm2 is the iTerm2 inline image protocol.
	Iterm2
	// Sixel is DEC sixel graphics.
	Sixel
	// Bloc draws upper half blocks with 24-bit foreground and background.
	Bloc
)

var protocolNames = [...]string{
	Auto:   "auto",
	Kitty:  "kitty",
	Iterm2: "iterm2",
	Sixel:  "sixel",
	Bloc:   "bloc",
}

func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return fmt.Sprintf("Protocol(%d)", uint8(p))
}

// ParseProtocol looks a protocol up by name, ignoring case.
func ParseProtocol(name string) (Protocol, error) {
	for i, n := range protocolNames {
		if strings.EqualFold(n, name) {
			return Protocol(i), nil // #nosec G115 -- bounded by len(protocolNames)
		}
	}
	return Auto, fmt.Errorf("term: unknown protocol %q", name)
}

// Detect picks a protocol for the terminal described by the process
// environment.
func Detect() Protocol {
	return DetectEnv(os.Getenv)
}

// DetectEnv picks a protocol using lookup to read environment variables.
// Terminals that are not recognized get [Bloc], which works anywhere with
// 24-bit color.
func DetectEnv(lookup func(string) string) Protocol {
	switch t := lookup("TERM"); {
	case t == "mlterm" || t == "yaft-256color":
		return Sixel
	case strings.Contains(t, "kitty"):
		return Kitty
	}
	switch lookup("TERM_PROGRAM") {
	case "MacTerm":
		return Sixel
	case "iTerm.app", "iTerm", "WezTerm":
		return Iterm2
	}
	if strings.HasPrefix(lookup("LC_TERMINAL"), "iTerm") {
		return Iterm2
	}
	return Bloc
}
