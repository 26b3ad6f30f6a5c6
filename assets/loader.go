package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFrames is wrapped by LoadError when a directory holds no images.
var ErrNoFrames = errors.New("no frames")

// LoadError reports an animation directory that could not be turned into a
// frame sequence. It is fatal at startup.
type LoadError struct {
	Dir string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load %s: %v", e.Dir, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadImage decodes a single image from fsys.
func LoadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	b, err := fs.ReadFile(fsys, cleanAssetPath(name))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFrames loads every image in dir as one animation, ordered by filename.
func LoadFrames(fsys fs.FS, dir string) ([]*ebiten.Image, error) {
	clean := cleanAssetPath(dir)
	entries, err := fs.ReadDir(fsys, clean)
	if err != nil {
		return nil, &LoadError{Dir: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, &LoadError{Dir: dir, Err: ErrNoFrames}
	}

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := LoadImage(fsys, path.Join(clean, name))
		if err != nil {
			return nil, &LoadError{Dir: dir, Err: err}
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func isImageFile(name string) bool {
	return strings.ToLower(path.Ext(name)) == ".png"
}

func cleanAssetPath(p string) string {
	if p == "" {
		return "."
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	s = strings.TrimPrefix(path.Clean(s), "/")
	if s == "" {
		return "."
	}
	return s
}
