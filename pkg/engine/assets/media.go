package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DecodeImage decodes a PNG into a GPU image.
func DecodeImage(data []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeFont parses a TrueType or OpenType font.
func DecodeFont(data []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode font: %w", err)
	}
	return src, nil
}

// Image loads a PNG resource.
func (s *Store) Image(path string) (*Handle[*ebiten.Image], error) {
	return Load(s, path, DecodeImage)
}

// Font loads a font resource. If the file is missing the built-in Go
// Regular face is returned in a handle that never reloads.
func (s *Store) Font(path string) (*Handle[*text.GoTextFaceSource], error) {
	h, err := Load(s, path, DecodeFont)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	s.log.Debugf("font %s missing, using Go Regular", path)
	src, err := DecodeFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Handle[*text.GoTextFaceSource]{path: path, value: src, load: DecodeFont}, nil
}
