// renderer.go — Caption compositing: vignette, outlined header and wrapped
// quote onto a copy of the background, then encode to disk.
// Uses a layered approach: background copy -> vignette -> header -> quote lines.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// ErrEmptyText indicates a quote that is empty after trimming. The renderer
// rejects it rather than emitting a header-only post.
var ErrEmptyText = errors.New("empty quote text")

// ErrWrite indicates the output file could not be written.
var ErrWrite = errors.New("write output")

// Renderer composites captions onto background images.
type Renderer struct {
	font  *Font
	style Style
}

// NewRenderer creates a renderer with a resolved font and style. The font
// is resolved once and shared read-only across all renders.
func NewRenderer(f *Font, style Style) *Renderer {
	applyStyleDefaults(&style)
	return &Renderer{font: f, style: style}
}

// Render composites the header and quote onto a copy of bg and returns the
// result. The input image is never mutated, and the output has the same
// pixel dimensions as the input.
func (r *Renderer) Render(bg image.Image, quote string) (image.Image, error) {
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return nil, ErrEmptyText
	}

	b := bg.Bounds()
	w, h := b.Dx(), b.Dy()

	// gg copies the source image into a fresh RGBA context.
	dc := gg.NewContextForImage(bg)

	if *r.style.Vignette {
		drawVignette(dc, w, h)
	}

	headerFace, err := r.font.Face(float64(h) * r.style.HeaderScale)
	if err != nil {
		return nil, fmt.Errorf("header face: %w", err)
	}
	quoteFace, err := r.font.Face(float64(h) * r.style.QuoteScale)
	if err != nil {
		return nil, fmt.Errorf("quote face: %w", err)
	}

	maxWidth := int(float64(w) * r.style.MarginFraction)
	lines := Wrap(quoteFace, quote, maxWidth)

	centerX := float64(w) / 2

	// Header anchored at a fixed fraction of the canvas height.
	headerY := float64(h) * r.style.HeaderAnchor
	r.drawOutlined(dc, headerFace, r.style.Header, centerX, headerY)

	// Quote block starts below the header with fixed spacing.
	lineHeight := float64(h) * r.style.QuoteScale * r.style.LineHeight
	y := headerY + float64(h)*r.style.HeaderScale/2 + float64(h)*r.style.Spacing
	for _, line := range lines {
		y += lineHeight
		r.drawOutlined(dc, quoteFace, line, centerX, y)
	}

	return dc.Image(), nil
}

// WriteImage encodes img to path in the format implied by its extension
// (JPEG for the sequential post files). Overwrites an existing file.
func (r *Renderer) WriteImage(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(r.style.JPEGQuality)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// drawOutlined draws text centered at (x, y): one outline pass per offset
// inside the stroke radius, then the fill pass on top. Covering the full
// offset square keeps the outline solid at glyph corners.
func (r *Renderer) drawOutlined(dc *gg.Context, face font.Face, text string, x, y float64) {
	dc.SetFontFace(face)

	ow := r.style.OutlineWidth
	dc.SetColor(HexRGBA(r.style.OutlineColor))
	for dx := -ow; dx <= ow; dx++ {
		for dy := -ow; dy <= ow; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawStringAnchored(text, x+float64(dx), y+float64(dy), 0.5, 0.5)
		}
	}

	dc.SetColor(HexRGBA(r.style.TextColor))
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// drawVignette darkens the canvas center with a translucent radial gradient
// so white text stays legible on bright backgrounds.
func drawVignette(dc *gg.Context, w, h int) {
	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Hypot(cx, cy)

	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
	grad.AddColorStop(0, color.NRGBA{A: 100})
	grad.AddColorStop(1, color.NRGBA{})

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}
