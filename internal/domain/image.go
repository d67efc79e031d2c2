package domain

import "fmt"

// CoverImageChannels is the number of samples stored per pixel.
const CoverImageChannels = 3

// CoverImage is a grid of 8-bit RGB samples stored row-major, channel-minor:
// the sample for pixel (x, y) and channel c lives at Pix[(y*Width+x)*3+c].
type CoverImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewCoverImage allocates a zeroed image with the given dimensions.
func NewCoverImage(width, height int) CoverImage {
	return CoverImage{
		Width:    width,
		Height:   height,
		Channels: CoverImageChannels,
		Pix:      make([]uint8, width*height*CoverImageChannels),
	}
}

// SampleCount returns the number of samples in the image.
func (ci CoverImage) SampleCount() int {
	return ci.Width * ci.Height * ci.Channels
}

// Clone returns a deep copy of the image.
func (ci CoverImage) Clone() CoverImage {
	pix := make([]uint8, len(ci.Pix))
	copy(pix, ci.Pix)
	return CoverImage{
		Width:    ci.Width,
		Height:   ci.Height,
		Channels: ci.Channels,
		Pix:      pix,
	}
}

// SameShape reports whether both images have identical dimensions and channel count.
func (ci CoverImage) SameShape(other CoverImage) bool {
	return ci.Width == other.Width &&
		ci.Height == other.Height &&
		ci.Channels == other.Channels
}

// Validate checks that the dimensions are consistent with the sample buffer.
func (ci CoverImage) Validate() error {
	if ci.Width <= 0 || ci.Height <= 0 {
		return NewValidationErr(fmt.Sprintf("image dimensions must be positive, got %dx%d", ci.Width, ci.Height))
	}
	if ci.Channels != CoverImageChannels {
		return NewValidationErr(fmt.Sprintf("image must have %d channels, got %d", CoverImageChannels, ci.Channels))
	}
	if len(ci.Pix) != ci.SampleCount() {
		return NewValidationErr(fmt.Sprintf("image buffer holds %d samples, expected %d", len(ci.Pix), ci.SampleCount()))
	}
	return nil
}

// ImageFormat identifies a raster encoding.
type ImageFormat string

const (
	ImageFormat_PNG  ImageFormat = "png"
	ImageFormat_BMP  ImageFormat = "bmp"
	ImageFormat_TIFF ImageFormat = "tiff"
	ImageFormat_GIF  ImageFormat = "gif"
	ImageFormat_JPEG ImageFormat = "jpeg"
	ImageFormat_WEBP ImageFormat = "webp"
)

// IsLossless reports whether the format preserves every sample bit on write.
// Only lossless formats can carry an LSB payload.
func (f ImageFormat) IsLossless() bool {
	switch f {
	case ImageFormat_PNG, ImageFormat_BMP, ImageFormat_TIFF:
		return true
	}
	return false
}

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	switch f {
	case ImageFormat_PNG:
		return "image/png"
	case ImageFormat_BMP:
		return "image/bmp"
	case ImageFormat_TIFF:
		return "image/tiff"
	case ImageFormat_GIF:
		return "image/gif"
	case ImageFormat_JPEG:
		return "image/jpeg"
	case ImageFormat_WEBP:
		return "image/webp"
	}
	return "application/octet-stream"
}

// RasterCodec converts between encoded image files and CoverImage grids.
type RasterCodec interface {
	// Decode sniffs the format of data and decodes it into an RGB grid.
	Decode(data []byte) (CoverImage, ImageFormat, error)
	// Encode writes img in the given format. Lossy formats are rejected.
	Encode(img CoverImage, format ImageFormat) ([]byte, error)
}
