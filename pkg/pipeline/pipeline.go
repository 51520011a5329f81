// Package pipeline drives batch generation of captioned posts: background
// discovery, sequential output naming with scan-and-resume, and a
// fault-tolerant render loop.
package pipeline

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arvhal/povgen/pkg/overlay"
	"github.com/arvhal/povgen/pkg/quotes"
)

// ErrNoImages indicates the background directory is missing or holds no
// supported image files. Fatal: a batch cannot start without backgrounds.
var ErrNoImages = errors.New("no background images found")

const (
	outputPrefix = "post_pov_"
	outputExt    = ".jpg"
)

// FindImages lists supported background images in dir. The directory
// listing is the source of truth — there is no manifest.
func FindImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImages, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if overlay.SupportedImage(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return out, nil
}

// NextIndex scans outDir for existing post_pov_NNN.jpg files and returns
// the index after the highest one found, so repeated runs extend the
// sequence instead of overwriting earlier output. Returns 1 for a fresh
// directory.
func NextIndex(outDir string) (int, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return 0, fmt.Errorf("read output dir %s: %w", outDir, err)
	}

	highest := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, outputPrefix) || !strings.HasSuffix(name, outputExt) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, outputPrefix), outputExt))
		if err != nil || n <= 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return highest + 1, nil
}

// OutputPath returns the sequential filename for index n, zero-padded to
// three digits.
func OutputPath(outDir string, n int) string {
	return filepath.Join(outDir, fmt.Sprintf("%s%03d%s", outputPrefix, n, outputExt))
}

// Options configures one batch run.
type Options struct {
	ImagesDir  string
	QuotesFile string
	OutputDir  string
	Count      int
	FontPath   string // preferred font, optional
	Style      overlay.Style
}

// Item records the outcome of one requested post.
type Item struct {
	Source string // chosen background file
	Output string // written file, empty on failure
	Err    error  // nil on success
}

// Report summarizes a batch run.
type Report struct {
	OutputDir string
	Items     []Item
}

// Produced returns the number of successfully written posts.
func (r *Report) Produced() int {
	n := 0
	for _, it := range r.Items {
		if it.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the items that did not produce an output file.
func (r *Report) Failed() []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}

// Run generates opts.Count posts. Missing quotes or backgrounds are fatal
// and surfaced before any rendering attempt; per-item failures (corrupt
// background, unwritable destination) are recorded in the report and never
// abort the remaining items. An output index is consumed only by a
// successful write, so the sequence has no gaps.
func Run(opts Options) (*Report, error) {
	qs, err := quotes.Load(opts.QuotesFile)
	if err != nil {
		return nil, err
	}

	images, err := FindImages(opts.ImagesDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	next, err := NextIndex(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	renderer := overlay.NewRenderer(overlay.ResolveFont(opts.FontPath), opts.Style)

	report := &Report{OutputDir: opts.OutputDir}
	for i := 0; i < opts.Count; i++ {
		src := images[rand.IntN(len(images))]
		fmt.Printf("Generating post %d/%d: %s\n", i+1, opts.Count, filepath.Base(src))

		item := Item{Source: src}
		if out, err := generateOne(renderer, src, quotes.Pick(qs), opts.OutputDir, next); err != nil {
			item.Err = err
		} else {
			item.Output = out
			next++
		}
		report.Items = append(report.Items, item)
	}

	return report, nil
}

// generateOne renders a single post and writes it at index n.
func generateOne(r *overlay.Renderer, src, quote, outDir string, n int) (string, error) {
	bg, err := overlay.LoadBackground(src)
	if err != nil {
		return "", err
	}

	img, err := r.Render(bg, quote)
	if err != nil {
		return "", err
	}

	out := OutputPath(outDir, n)
	if err := r.WriteImage(img, out); err != nil {
		return "", err
	}
	return out, nil
}
