// fonts.go — Typeface resolution with system font probing and an embedded fallback.
// Uses golang.org/x/image/font for OpenType rendering. Falls back to the
// embedded Go Bold font when no usable font file is found on disk.
package overlay

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// systemFontPaths lists common locations of display fonts, tried in order.
// Comic Sans first (it matches the content style), then widely installed
// bold faces.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/msttcorefonts/Comic_Sans_MS.ttf",
	"/usr/share/fonts/truetype/comic/comic.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/ubuntu/Ubuntu-Bold.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
}

var embeddedFallback = mustParse(gobold.TTF)

func mustParse(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic("overlay: embedded font failed to parse: " + err.Error())
	}
	return f
}

// Font is a resolved, parsed typeface ready for face creation.
type Font struct {
	parsed *opentype.Font
}

// ResolveFont returns a usable typeface. The preferred path (if given) is
// tried first, then the system font list, then the embedded fallback.
// Absence of the preferred font is an expected condition, not an error —
// this function never fails.
func ResolveFont(preferred string) *Font {
	candidates := systemFontPaths
	if preferred != "" {
		candidates = append([]string{preferred}, systemFontPaths...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			// Unparseable file on disk — treat the same as absent.
			continue
		}
		return &Font{parsed: parsed}
	}

	return &Font{parsed: embeddedFallback}
}

// Face returns a font.Face at the specified pixel size.
func (f *Font) Face(size float64) (font.Face, error) {
	return opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
