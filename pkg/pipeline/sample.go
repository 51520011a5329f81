// sample.go — Starter assets written by povgen init.
package pipeline

import (
	"fmt"
	"image/color"
	"os"

	"github.com/disintegration/imaging"

	"github.com/arvhal/povgen/pkg/overlay"
)

// Sample background dimensions, portrait per the target platform.
const (
	sampleWidth  = 1080
	sampleHeight = 1920
)

// SampleColor is the default sample background fill, a near-black navy.
const SampleColor = "#14141e"

const sampleQuotes = `Keep going. Your future self is watching.
Discipline is choosing what you want most over what you want now.
Nobody is coming to save you. Get up.
The pain you feel today is the strength you feel tomorrow.
Small steps every day.
`

// WriteSampleQuotes creates a starter quotes file. Existing files are left
// untouched.
func WriteSampleQuotes(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(sampleQuotes), 0644); err != nil {
		return fmt.Errorf("write sample quotes: %w", err)
	}
	return nil
}

// WriteSampleBackground creates a solid portrait background for testing the
// pipeline before real images are collected. colorSpec is "#rrggbb" or
// "random". Existing files are left untouched.
func WriteSampleBackground(path, colorSpec string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	r, g, b, err := overlay.ParseColor(colorSpec)
	if err != nil {
		return err
	}

	img := imaging.New(sampleWidth, sampleHeight, color.NRGBA{R: r, G: g, B: b, A: 255})
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("write sample background: %w", err)
	}
	return nil
}
