// Package gpu moves pixbuf images to and from GPU textures.
//
// It does not talk to a GPU itself. Textures are created and updated
// through the gpucontext interfaces that a renderer implements, and
// layouts are described with gputypes so the caller's device can build
// the matching texture:
//
//	desc := gpu.Descriptor(img.View(), "sprite", gputypes.TextureUsageTextureBinding|gputypes.TextureUsageCopyDst)
//	tex, err := gpu.Upload(renderer, img.View())
//
// GPUs have no three channel 8-bit format, so RGB images travel as
// RGBA8 with opaque alpha. Buffers copied back from a texture have rows
// padded to [BytesPerRowAlignment]; [Unpad] strips the padding.
package gpu
