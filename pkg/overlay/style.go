// style.go — Tunable rendering constants, optionally loaded from a JSON file.
package overlay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Style holds every knob the renderer reads. Fractions are relative to the
// canvas: scales and anchors to its height, the margin to its width.
// Zero-value fields are filled in by defaults, so a style file only needs
// the fields it wants to change.
type Style struct {
	Header         string  `json:"header"`         // header literal (default "POV")
	HeaderScale    float64 `json:"headerScale"`    // header font size / canvas height
	QuoteScale     float64 `json:"quoteScale"`     // quote font size / canvas height
	MarginFraction float64 `json:"marginFraction"` // max wrapped line width / canvas width
	HeaderAnchor   float64 `json:"headerAnchor"`   // header center Y / canvas height
	Spacing        float64 `json:"spacing"`        // header-to-quote gap / canvas height
	LineHeight     float64 `json:"lineHeight"`     // multiplier on quote font size
	OutlineWidth   int     `json:"outlineWidth"`   // stroke radius in pixels
	TextColor      string  `json:"textColor"`      // "#rrggbb"
	OutlineColor   string  `json:"outlineColor"`   // "#rrggbb"
	Vignette       *bool   `json:"vignette"`       // nil = enabled
	JPEGQuality    int     `json:"jpegQuality"`
}

// DefaultStyle returns the built-in style tuned for portrait backgrounds
// near 1080×1920.
func DefaultStyle() Style {
	var s Style
	applyStyleDefaults(&s)
	return s
}

// LoadStyle reads a style JSON file and fills unset fields with defaults.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style: %w", err)
	}

	var s Style
	if err := json.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parse style JSON: %w", err)
	}

	applyStyleDefaults(&s)
	return s, nil
}

// applyStyleDefaults sets sane fallbacks for unset style fields.
func applyStyleDefaults(s *Style) {
	if s.Header == "" {
		s.Header = "POV"
	}
	if s.HeaderScale <= 0 {
		s.HeaderScale = 0.06
	}
	if s.QuoteScale <= 0 {
		s.QuoteScale = 0.033
	}
	if s.MarginFraction <= 0 {
		s.MarginFraction = 0.9
	}
	if s.HeaderAnchor <= 0 {
		s.HeaderAnchor = 0.35
	}
	if s.Spacing <= 0 {
		s.Spacing = 0.05
	}
	if s.LineHeight <= 0 {
		s.LineHeight = 1.4
	}
	if s.OutlineWidth <= 0 {
		s.OutlineWidth = 2
	}
	if s.TextColor == "" {
		s.TextColor = "#ffffff"
	}
	if s.OutlineColor == "" {
		s.OutlineColor = "#000000"
	}
	if s.Vignette == nil {
		t := true
		s.Vignette = &t
	}
	if s.JPEGQuality <= 0 {
		s.JPEGQuality = 95
	}
}
