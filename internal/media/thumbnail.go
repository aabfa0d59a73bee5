// SPDX-License-Identifier: MIT
package media

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ThumbnailSize is the edge length of catalog card thumbnails
const ThumbnailSize = 400

// thumbsDir is the subdirectory of the image directory holding thumbnails
const thumbsDir = "thumbs"

// ThumbnailRef returns the thumbnail reference for a catalog image,
// e.g. /images/hs-60.png -> /images/thumbs/hs-60.png
func ThumbnailRef(ref string) string {
	if !strings.HasPrefix(ref, ImagePrefix) {
		return ""
	}
	name := path.Base(ref)
	name = strings.TrimSuffix(name, path.Ext(name)) + ".png"
	return ImagePrefix + thumbsDir + "/" + name
}

// GenerateThumbnail scales an image to fit a size x size square, keeping its
// aspect ratio and transparency, and writes it as PNG
func GenerateThumbnail(srcPath, dstPath string, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid thumbnail size: %d", size)
	}

	srcFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer srcFile.Close()

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, fitRect(img.Bounds(), size), img, img.Bounds(), draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dstFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer dstFile.Close()

	if err := png.Encode(dstFile, dst); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return nil
}

// fitRect centers src's aspect ratio inside a size x size square
func fitRect(src image.Rectangle, size int) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if w == 0 || h == 0 {
		return image.Rect(0, 0, size, size)
	}

	if w >= h {
		nh := h * size / w
		y := (size - nh) / 2
		return image.Rect(0, y, size, y+nh)
	}

	nw := w * size / h
	x := (size - nw) / 2
	return image.Rect(x, 0, x+nw, size)
}

// GenerateThumbnails builds thumbnails for every reference that exists on
// disk. Missing sources are skipped and reported in the returned slice.
func (r *Resolver) GenerateThumbnails(refs []string) (generated int, missing []string, err error) {
	for _, ref := range refs {
		src, ok := r.Path(ref)
		if !ok || !r.Exists(ref) {
			missing = append(missing, ref)
			continue
		}

		dst, _ := r.Path(ThumbnailRef(ref))
		if err := GenerateThumbnail(src, dst, ThumbnailSize); err != nil {
			return generated, missing, fmt.Errorf("%s: %w", ref, err)
		}
		generated++
	}

	return generated, missing, nil
}
