package matte

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Register the stdlib raster formats plus the extra containers from
	// golang.org/x/image so any of them can back an ImageSource.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource is a decodable raster source: encoded bytes, a reader, a
// file path, or an already-decoded image. Decoding is one-shot and
// non-cancelable; a failed decode requires the caller to re-supply input.
type ImageSource interface {
	decode() (image.Image, error)
}

// SourceBytes wraps an encoded image buffer.
func SourceBytes(data []byte) ImageSource {
	return bytesSource(data)
}

// SourceReader wraps a reader producing an encoded image.
// The reader is consumed on first decode.
func SourceReader(r io.Reader) ImageSource {
	return readerSource{r: r}
}

// SourceFile wraps an image file path.
func SourceFile(path string) ImageSource {
	return fileSource(path)
}

// SourceImage wraps an already-decoded image; decode never fails.
func SourceImage(img image.Image) ImageSource {
	return imageSource{img: img}
}

type bytesSource []byte

func (s bytesSource) decode() (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("decode buffer: %w", err)
	}
	Logger().Debug("matte: decoded source", "format", format, "bytes", len(s))
	return img, nil
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) decode() (image.Image, error) {
	img, format, err := image.Decode(s.r)
	if err != nil {
		return nil, fmt.Errorf("decode stream: %w", err)
	}
	Logger().Debug("matte: decoded source", "format", format)
	return img, nil
}

type fileSource string

func (s fileSource) decode() (image.Image, error) {
	f, err := os.Open(string(s)) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", string(s), err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", string(s), err)
	}
	Logger().Debug("matte: decoded source", "format", format, "path", string(s))
	return img, nil
}

type imageSource struct {
	img image.Image
}

func (s imageSource) decode() (image.Image, error) {
	if s.img == nil {
		return nil, errors.New("nil image")
	}
	return s.img, nil
}
