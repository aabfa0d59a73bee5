// SPDX-License-Identifier: MIT
// Package media resolves catalog image references to files on disk and to
// placeholder images when a file is missing.
package media

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PlaceholderBase is the remote placeholder-image service
const PlaceholderBase = "https://via.placeholder.com"

// ImagePrefix is the URL prefix under which catalog images are served
const ImagePrefix = "/images/"

// Placeholder returns a placeholder-image URL of the given size and caption
func Placeholder(width, height int, text string) string {
	u := fmt.Sprintf("%s/%dx%d", PlaceholderBase, width, height)
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}

// Placeholders used by the page components
var (
	CardPlaceholder   = Placeholder(400, 400, "Solar Light")
	DetailPlaceholder = Placeholder(800, 800, "Solar Light")
)

// HeroPlaceholder returns the placeholder for a hero image captioned with a model code
func HeroPlaceholder(model string) string {
	return Placeholder(600, 600, model)
}

// Resolver maps /images/ references to files under a static directory
type Resolver struct {
	Dir string
}

// NewResolver creates a resolver for images stored in dir
func NewResolver(dir string) *Resolver {
	return &Resolver{Dir: dir}
}

// Path returns the filesystem path for ref. References outside ImagePrefix
// are rejected.
func (r *Resolver) Path(ref string) (string, bool) {
	if r == nil || r.Dir == "" || !strings.HasPrefix(ref, ImagePrefix) {
		return "", false
	}

	// Clean against a rooted path so ".." cannot climb out of Dir
	rel := path.Clean("/" + strings.TrimPrefix(ref, ImagePrefix))
	if rel == "/" {
		return "", false
	}

	return filepath.Join(r.Dir, filepath.FromSlash(rel)), true
}

// Exists reports whether ref points at a regular file
func (r *Resolver) Exists(ref string) bool {
	p, ok := r.Path(ref)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Resolve returns ref if it exists on disk, otherwise fallback
func (r *Resolver) Resolve(ref, fallback string) string {
	if r.Exists(ref) {
		return ref
	}
	return fallback
}

// Card returns the reference to use on a catalog card: the generated
// thumbnail when present, else ref itself
func (r *Resolver) Card(ref string) string {
	if thumb := ThumbnailRef(ref); thumb != "" && r.Exists(thumb) {
		return thumb
	}
	return ref
}
