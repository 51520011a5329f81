package pipeline

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/arvhal/povgen/pkg/overlay"
	"github.com/arvhal/povgen/pkg/quotes"
)

// writeBackground saves a solid test background at path.
func writeBackground(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 20, G: 20, B: 30, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save background %s: %v", path, err)
	}
}

// setupAssets creates a quotes file and one background, returning options
// ready for Run.
func setupAssets(t *testing.T, bgW, bgH int) Options {
	t.Helper()
	base := t.TempDir()

	imagesDir := filepath.Join(base, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatalf("mkdir images: %v", err)
	}
	writeBackground(t, filepath.Join(imagesDir, "bg.png"), bgW, bgH)

	quotesFile := filepath.Join(base, "quotes.txt")
	if err := os.WriteFile(quotesFile, []byte("Keep going.\nNever quit.\n"), 0644); err != nil {
		t.Fatalf("write quotes: %v", err)
	}

	return Options{
		ImagesDir:  imagesDir,
		QuotesFile: quotesFile,
		OutputDir:  filepath.Join(base, "output"),
		Count:      1,
		Style:      overlay.DefaultStyle(),
	}
}

func TestNextIndexFreshDir(t *testing.T) {
	n, err := NextIndex(t.TempDir())
	if err != nil {
		t.Fatalf("next index: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected index 1 for fresh dir, got %d", n)
	}
}

func TestNextIndexResumesAfterHighest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"post_pov_001.jpg", "post_pov_002.jpg", "post_pov_007.jpg", "unrelated.jpg", "post_pov_bad.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	n, err := NextIndex(dir)
	if err != nil {
		t.Fatalf("next index: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected resume at 8, got %d", n)
	}
}

func TestOutputPathZeroPadded(t *testing.T) {
	got := OutputPath("out", 4)
	want := filepath.Join("out", "post_pov_004.jpg")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFindImagesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeBackground(t, filepath.Join(dir, "a.png"), 10, 10)
	writeBackground(t, filepath.Join(dir, "b.jpg"), 10, 10)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	images, err := FindImages(dir)
	if err != nil {
		t.Fatalf("find images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %v", images)
	}
}

func TestFindImagesEmptyDir(t *testing.T) {
	if _, err := FindImages(t.TempDir()); !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
}

func TestFindImagesMissingDir(t *testing.T) {
	if _, err := FindImages(filepath.Join(t.TempDir(), "absent")); !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
}

func TestRunMissingQuotesIsFatal(t *testing.T) {
	opts := setupAssets(t, 50, 90)
	opts.QuotesFile = filepath.Join(t.TempDir(), "absent.txt")

	if _, err := Run(opts); !errors.Is(err, quotes.ErrNoQuotes) {
		t.Fatalf("expected ErrNoQuotes, got %v", err)
	}
}

func TestRunSequentialIndexesAcrossRuns(t *testing.T) {
	opts := setupAssets(t, 90, 160)

	opts.Count = 3
	if _, err := Run(opts); err != nil {
		t.Fatalf("first run: %v", err)
	}

	opts.Count = 2
	if _, err := Run(opts); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for i := 1; i <= 5; i++ {
		if _, err := os.Stat(OutputPath(opts.OutputDir, i)); err != nil {
			t.Errorf("expected post %03d to exist: %v", i, err)
		}
	}
	if _, err := os.Stat(OutputPath(opts.OutputDir, 6)); err == nil {
		t.Error("unexpected sixth post")
	}
}

func TestRunPartialFailureContinuesBatch(t *testing.T) {
	opts := setupAssets(t, 90, 160)

	// One corrupt background alongside the good one.
	corrupt := filepath.Join(opts.ImagesDir, "broken.jpg")
	if err := os.WriteFile(corrupt, []byte("not a jpeg"), 0644); err != nil {
		t.Fatalf("write corrupt bg: %v", err)
	}

	opts.Count = 8
	report, err := Run(opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	produced := report.Produced()
	failed := len(report.Failed())
	if produced+failed != 8 {
		t.Fatalf("expected 8 items total, got %d produced + %d failed", produced, failed)
	}
	for _, item := range report.Failed() {
		if !errors.Is(item.Err, overlay.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat on %s, got %v", item.Source, item.Err)
		}
	}

	// Successful writes stay contiguous from 1 regardless of failures.
	for i := 1; i <= produced; i++ {
		if _, err := os.Stat(OutputPath(opts.OutputDir, i)); err != nil {
			t.Errorf("expected post %03d to exist: %v", i, err)
		}
	}
	if _, err := os.Stat(OutputPath(opts.OutputDir, produced+1)); err == nil {
		t.Errorf("unexpected post beyond index %d", produced)
	}
}

func TestRunAllBackgroundsCorrupt(t *testing.T) {
	base := t.TempDir()
	imagesDir := filepath.Join(base, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imagesDir, "broken.jpg"), []byte("junk"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	quotesFile := filepath.Join(base, "quotes.txt")
	if err := os.WriteFile(quotesFile, []byte("Keep going.\n"), 0644); err != nil {
		t.Fatalf("write quotes: %v", err)
	}

	report, err := Run(Options{
		ImagesDir:  imagesDir,
		QuotesFile: quotesFile,
		OutputDir:  filepath.Join(base, "output"),
		Count:      3,
		Style:      overlay.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("expected the batch itself to complete, got %v", err)
	}
	if report.Produced() != 0 || len(report.Failed()) != 3 {
		t.Fatalf("expected 0 produced and 3 failed, got %d/%d", report.Produced(), len(report.Failed()))
	}
}

func TestRunScenarioTwoPortraitPosts(t *testing.T) {
	if testing.Short() {
		t.Skip("renders full-size portrait images")
	}

	opts := setupAssets(t, 1080, 1920)
	opts.Count = 2

	report, err := Run(opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Produced() != 2 {
		t.Fatalf("expected 2 posts, got %d", report.Produced())
	}

	for i := 1; i <= 2; i++ {
		img, err := imaging.Open(OutputPath(opts.OutputDir, i))
		if err != nil {
			t.Fatalf("open post %d: %v", i, err)
		}
		b := img.Bounds()
		if b.Dx() != 1080 || b.Dy() != 1920 {
			t.Errorf("post %d: expected 1080x1920, got %dx%d", i, b.Dx(), b.Dy())
		}
	}
}

func TestWriteSampleBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.jpg")
	if err := WriteSampleBackground(path, SampleColor); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open sample: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1920 {
		t.Fatalf("expected 1080x1920 sample, got %v", b)
	}
}

func TestWriteSampleQuotesDoesNotClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.txt")
	if err := os.WriteFile(path, []byte("mine\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := WriteSampleQuotes(path); err != nil {
		t.Fatalf("sample quotes: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "mine\n" {
		t.Fatal("existing quotes file was overwritten")
	}
}
