// Package raster converts encoded image files to and from domain.CoverImage grids.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the size of images accepted by Decode.
const DefaultMaxPixels = 40_000_000

type decodeFuncs struct {
	config func(io.Reader) (image.Config, error)
	decode func(io.Reader) (image.Image, error)
}

var decoders = map[domain.ImageFormat]decodeFuncs{
	domain.ImageFormat_PNG:  {png.DecodeConfig, png.Decode},
	domain.ImageFormat_GIF:  {gif.DecodeConfig, gif.Decode},
	domain.ImageFormat_JPEG: {jpeg.DecodeConfig, jpeg.Decode},
	domain.ImageFormat_BMP:  {bmp.DecodeConfig, bmp.Decode},
	domain.ImageFormat_TIFF: {tiff.DecodeConfig, tiff.Decode},
	domain.ImageFormat_WEBP: {webp.DecodeConfig, webp.Decode},
}

// Codec is the domain.RasterCodec for PNG, GIF, JPEG, BMP, TIFF and WebP input
// and PNG, BMP and TIFF output.
type Codec struct {
	maxPixels int
}

// NewCodec creates a new Codec. A non-positive maxPixels uses DefaultMaxPixels.
func NewCodec(maxPixels int) Codec {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return Codec{maxPixels: maxPixels}
}

// Sniff detects the image format from the leading magic bytes of data.
func Sniff(data []byte) (domain.ImageFormat, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return domain.ImageFormat_PNG, true
	case bytes.HasPrefix(data, []byte("GIF")):
		return domain.ImageFormat_GIF, true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return domain.ImageFormat_JPEG, true
	case bytes.HasPrefix(data, []byte("BM")):
		return domain.ImageFormat_BMP, true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return domain.ImageFormat_TIFF, true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return domain.ImageFormat_WEBP, true
	}
	return "", false
}

// Decode sniffs the format of data, decodes it and flattens it to RGB. Alpha is dropped
// without compositing.
func (c Codec) Decode(data []byte) (domain.CoverImage, domain.ImageFormat, error) {
	format, ok := Sniff(data)
	if !ok {
		return domain.CoverImage{}, "", domain.NewValidationErr("unsupported or unrecognized image format")
	}
	dec := decoders[format]

	cfg, err := dec.config(bytes.NewReader(data))
	if err != nil {
		return domain.CoverImage{}, "", domain.NewValidationErr(fmt.Sprintf("invalid %s image: %v", format, err))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.CoverImage{}, "", domain.NewValidationErr(fmt.Sprintf("invalid %s image: empty dimensions", format))
	}
	if cfg.Width*cfg.Height > c.limit() {
		return domain.CoverImage{}, "", domain.NewValidationErr(
			fmt.Sprintf("image of %dx%d pixels exceeds the limit of %d pixels", cfg.Width, cfg.Height, c.limit()))
	}

	img, err := dec.decode(bytes.NewReader(data))
	if err != nil {
		return domain.CoverImage{}, "", domain.NewValidationErr(fmt.Sprintf("invalid %s image: %v", format, err))
	}

	return toCoverImage(img), format, nil
}

// Encode writes img as a PNG, BMP or TIFF file.
func (c Codec) Encode(img domain.CoverImage, format domain.ImageFormat) ([]byte, error) {
	if !format.IsLossless() {
		return nil, domain.NewValidationErr(
			fmt.Sprintf("unsupported output format %q: lossy formats cannot carry LSB payloads", format))
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	m := fromCoverImage(img)
	var buf bytes.Buffer
	var err error
	switch format {
	case domain.ImageFormat_PNG:
		err = png.Encode(&buf, m)
	case domain.ImageFormat_BMP:
		err = bmp.Encode(&buf, m)
	case domain.ImageFormat_TIFF:
		err = tiff.Encode(&buf, m, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func (c Codec) limit() int {
	if c.maxPixels <= 0 {
		return DefaultMaxPixels
	}
	return c.maxPixels
}

func toCoverImage(m image.Image) domain.CoverImage {
	b := m.Bounds()
	out := domain.NewCoverImage(b.Dx(), b.Dy())

	if rgba, ok := m.(*image.NRGBA); ok {
		copyRGB(out, rgba.Pix, rgba.Stride, b)
		return out
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			i += domain.CoverImageChannels
		}
	}
	return out
}

func copyRGB(out domain.CoverImage, pix []uint8, stride int, b image.Rectangle) {
	i := 0
	for y := 0; y < b.Dy(); y++ {
		row := pix[y*stride:]
		for x := 0; x < b.Dx(); x++ {
			copy(out.Pix[i:i+3], row[x*4:x*4+3])
			i += domain.CoverImageChannels
		}
	}
}

func fromCoverImage(img domain.CoverImage) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for p := 0; p < img.Width*img.Height; p++ {
		copy(m.Pix[p*4:p*4+3], img.Pix[p*3:p*3+3])
		m.Pix[p*4+3] = 0xFF
	}
	return m
}

var _ domain.RasterCodec = Codec{}

// InitRasterCodec registers the domain.RasterCodec.
type InitRasterCodec struct {
	MaxPixels int `config:"MAX_IMAGE_PIXELS" default:"40000000"`
}

// Initialize registers the raster codec in the dependency container.
func (i InitRasterCodec) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RasterCodec](NewCodec(i.MaxPixels))
	return ctx, nil
}
