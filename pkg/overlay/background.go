// background.go — Background image loading with an extension allow-list.
package overlay

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat indicates a background file that is not a decodable
// raster of a supported type. Per-item: the batch skips the file and continues.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SupportedImage reports whether path has a recognized background extension.
func SupportedImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// LoadBackground decodes a background raster from path. The file is only
// read, never modified.
func LoadBackground(path string) (image.Image, error) {
	if !SupportedImage(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, filepath.Base(path), err)
	}

	return img, nil
}
