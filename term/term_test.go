package term

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/imageio"
	"github.com/gogpu/pixbuf/pixel"
)

func TestDetectEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Protocol
	}{
		{"empty", nil, Bloc},
		{"mlterm", map[string]string{"TERM": "mlterm"}, Sixel},
		{"yaft", map[string]string{"TERM": "yaft-256color"}, Sixel},
		{"kitty", map[string]string{"TERM": "xterm-kitty"}, Kitty},
		{"macterm", map[string]string{"TERM_PROGRAM": "MacTerm"}, Sixel},
		{"iterm", map[string]string{"TERM": "xterm-256color", "TERM_PROGRAM": "iTerm.app"}, Iterm2},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, Iterm2},
		{"lc_terminal", map[string]string{"LC_TERMINAL": "iTerm2"}, Iterm2},
		{"term wins", map[string]string{"TERM": "xterm-kitty", "TERM_PROGRAM": "WezTerm"}, Kitty},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, Bloc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEnv(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("DetectEnv = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProtocol(t *testing.T) {
	for _, p := range []Protocol{Auto, Kitty, Iterm2, Sixel, Bloc} {
		got, err := ParseProtocol(strings.ToUpper(p.String()))
		if err != nil || got != p {
			t.Errorf("ParseProtocol(%q) = %v, %v", p, got, err)
		}
	}
	if _, err := ParseProtocol("vt100"); err == nil {
		t.Error("expected error for unknown protocol")
	}
}

func TestWriteKitty_Single(t *testing.T) {
	tests := []struct {
		name string
		w    func(*bytes.Buffer) error
		want string
	}{
		{
			"rgb",
			func(b *bytes.Buffer) error {
				return WriteKitty(b, pixbuf.ViewOf[pixel.RGB](1, 1, []byte{1, 2, 3}))
			},
			"\x1b_Gf=24,a=T,t=d,s=1,v=1,m=0;AQID\x1b\\",
		},
		{
			"rgba",
			func(b *bytes.Buffer) error {
				return WriteKitty(b, pixbuf.ViewOf[pixel.RGBA](1, 1, []byte{1, 2, 3, 4}))
			},
			"\x1b_Gf=32,a=T,t=d,s=1,v=1,m=0;AQIDBA==\x1b\\",
		},
		{
			"luma as rgb",
			func(b *bytes.Buffer) error {
				return WriteKitty(b, pixbuf.ViewOf[pixel.Y](1, 1, []byte{7}))
			},
			"\x1b_Gf=24,a=T,t=d,s=1,v=1,m=0;BwcH\x1b\\",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.w(&buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteKitty_Chunked(t *testing.T) {
	// 32x32 RGBA is 4096 bytes, 5464 base64 characters: two chunks.
	img := pixbuf.Build[pixel.RGBA](32, 32).Fill(pixel.RGBA{9, 8, 7, 255})
	var buf bytes.Buffer
	if err := WriteKitty(&buf, img.View()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "\x1b_G"); n != 2 {
		t.Fatalf("%d escape sequences, want 2", n)
	}
	if !strings.HasPrefix(out, "\x1b_Gf=32,a=T,t=d,s=32,v=32,m=1;") {
		t.Errorf("bad first chunk header: %q", out[:40])
	}
	second := out[strings.LastIndex(out, "\x1b_G"):]
	if !strings.HasPrefix(second, "\x1b_Gm=0;") {
		t.Errorf("bad last chunk header: %q", second[:10])
	}

	var payload strings.Builder
	for _, seq := range strings.Split(out, "\x1b\\") {
		if seq == "" {
			continue
		}
		payload.WriteString(seq[strings.IndexByte(seq, ';')+1:])
	}
	data, err := base64.StdEncoding.DecodeString(payload.String())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, img.Bytes()) {
		t.Error("reassembled payload differs from the pixels")
	}
}

func TestWriteIterm2(t *testing.T) {
	src := pixbuf.ViewOf[pixel.RGB](2, 1, []byte{255, 0, 0, 0, 0, 255})
	var buf bytes.Buffer
	if err := WriteIterm2(&buf, src); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	const prefix = "\x1b]1337;File=inline=1;preserveAspectRatio=1;size="
	if !strings.HasPrefix(out, prefix) || !strings.HasSuffix(out, "\a\n") {
		t.Fatalf("bad framing: %q", out)
	}
	b64 := out[strings.IndexByte(out, ':')+1 : len(out)-2]
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatal(err)
	}
	back, err := imageio.DecodeBytes[pixel.RGB](data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Bytes(), src.Bytes()) {
		t.Errorf("decoded %v, want %v", back.Bytes(), src.Bytes())
	}
}

func TestWriteBloc(t *testing.T) {
	tests := []struct {
		name string
		src  pixbuf.View[pixel.Y]
		want string
	}{
		{
			"pair",
			pixbuf.ViewOf[pixel.Y](1, 2, []byte{10, 20}),
			"\x1b[38;2;10;10;10;48;2;20;20;20m▀\n\x1b[0m",
		},
		{
			"odd row is black below",
			pixbuf.ViewOf[pixel.Y](2, 1, []byte{1, 2}),
			"\x1b[38;2;1;1;1;48;2;0;0;0m▀\x1b[38;2;2;2;2;48;2;0;0;0m▀\n\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteBloc(&buf, tt.src); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteBloc_Lines(t *testing.T) {
	img := pixbuf.Alloc[pixel.RGB](3, 5)
	var buf bytes.Buffer
	if err := WriteBloc(&buf, img.View()); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("%d lines, want 3", n)
	}
	if n := strings.Count(buf.String(), "▀"); n != 9 {
		t.Errorf("%d cells, want 9", n)
	}
}

func TestWriteSixel(t *testing.T) {
	src := pixbuf.ViewOf[pixel.RGB](2, 1, []byte{255, 0, 0, 0, 0, 255})
	var buf bytes.Buffer
	if err := WriteSixel(&buf, src, 0); err != nil {
		t.Fatal(err)
	}
	want := "\x1bPq\"1;1;2;1" +
		"#0;2;0;0;100#1;2;100;0;0" +
		"#0?@$#1@$-" +
		"\x1b\\"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteSixel_Bands(t *testing.T) {
	// 5x8 of one color: a full band and a band of two rows.
	img := pixbuf.Build[pixel.Y](5, 8).Fill(pixel.Y{255})
	var buf bytes.Buffer
	if err := WriteSixel(&buf, img.View(), 16); err != nil {
		t.Fatal(err)
	}
	want := "\x1bPq\"1;1;5;8" +
		"#0;2;100;100;100" +
		"#0!5~$-" +
		"#0!5B$-" +
		"\x1b\\"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrite_Dispatch(t *testing.T) {
	src := pixbuf.ViewOf[pixel.Y](1, 2, []byte{10, 20})
	tests := []struct {
		proto  Protocol
		prefix string
	}{
		{Kitty, "\x1b_G"},
		{Iterm2, "\x1b]1337;"},
		{Sixel, "\x1bPq"},
		{Bloc, "\x1b[38;2;"},
	}
	for _, tt := range tests {
		t.Run(tt.proto.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, src, Options{Protocol: tt.proto}); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("output %q, want prefix %q", buf.String(), tt.prefix)
			}
		})
	}

	if err := Write(&bytes.Buffer{}, src, Options{Protocol: Protocol(42)}); err == nil {
		t.Error("expected error for unknown protocol")
	}
}

func TestWrite_MaxSize(t *testing.T) {
	img := pixbuf.Build[pixel.RGB](8, 4).Fill(pixel.RGB{50, 60, 70})
	var buf bytes.Buffer
	err := Write(&buf, img.View(), Options{Protocol: Kitty, MaxWidth: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ",s=4,v=2,") {
		t.Errorf("header %q, want 4x2", buf.String()[:40])
	}
}

func TestSize_NotTerminal(t *testing.T) {
	if _, _, err := Size(-1); err == nil {
		t.Error("expected error for an invalid descriptor")
	}
}
