package usecases

import (
	"bytes"
	"context"
	"log"
	"math"
	"testing"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/domain/mocks"
	"github.com/cleitonmarx/stegophrase/internal/stego"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCover(width, height int) domain.CoverImage {
	img := domain.NewCoverImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 13)
	}
	return img
}

func mustEncodeBits(t *testing.T, img domain.CoverImage, phrase string) domain.CoverImage {
	t.Helper()
	out, err := codec.EncodeBits(img, []byte(codec.CanonicalPhrase(phrase)))
	require.NoError(t, err)
	return out
}

func TestEncodePhrase_Execute(t *testing.T) {
	ctx := context.Background()
	cover := testCover(16, 16)
	coverFile := []byte("cover-file")
	stegoFile := []byte("stego-file")

	perceptualStego := cover.Clone()
	for i := range perceptualStego.Pix {
		perceptualStego.Pix[i] ^= 0x01
	}

	tests := map[string]struct {
		params       EncodeParams
		setupMocks   func(*mocks.MockRasterCodec, *mocks.MockPerceptualTransform)
		expectedErr  error
		expectedErrT any
		validateFn   func(*testing.T, EncodeResult)
	}{
		"success-lsb-default-format": {
			params: EncodeParams{Image: coverFile, Phrase: "alpha beta"},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
				raster.EXPECT().Decode(coverFile).Return(cover, domain.ImageFormat_JPEG, nil)
				raster.EXPECT().Encode(mustEncodeBits(t, cover, "alpha beta"), domain.ImageFormat_PNG).
					Return(stegoFile, nil)
			},
			validateFn: func(t *testing.T, res EncodeResult) {
				assert.Equal(t, stegoFile, res.Image)
				assert.Equal(t, domain.ImageFormat_PNG, res.Format)
				assert.Equal(t, "alpha beta", res.Phrase)
				assert.Equal(t, domain.Strategy_LSB, res.Strategy)
				assert.Equal(t, 16, res.Width)
				assert.Equal(t, 16, res.Height)
				assert.False(t, math.IsInf(res.PSNR, 0))
				assert.Greater(t, res.PSNR, 40.0)
			},
		},
		"success-default-phrase": {
			params: EncodeParams{Image: coverFile, Phrase: "   ", Format: domain.ImageFormat_BMP},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
				raster.EXPECT().Decode(coverFile).Return(cover, domain.ImageFormat_PNG, nil)
				raster.EXPECT().Encode(mustEncodeBits(t, cover, DefaultPhrase), domain.ImageFormat_BMP).
					Return(stegoFile, nil)
			},
			validateFn: func(t *testing.T, res EncodeResult) {
				assert.Equal(t, DefaultPhrase, res.Phrase)
				assert.Equal(t, domain.ImageFormat_BMP, res.Format)
			},
		},
		"success-perceptual": {
			params: EncodeParams{Image: coverFile, Phrase: "alpha beta", Format: domain.ImageFormat_TIFF},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				raster.EXPECT().Decode(coverFile).Return(cover, domain.ImageFormat_PNG, nil)
				pt.EXPECT().Encode(mock.Anything, cover, codec.EncodePhrase("alpha beta")).
					Return(perceptualStego, nil)
				raster.EXPECT().Encode(perceptualStego, domain.ImageFormat_TIFF).Return(stegoFile, nil)
			},
			validateFn: func(t *testing.T, res EncodeResult) {
				assert.Equal(t, domain.Strategy_PERCEPTUAL, res.Strategy)
				assert.InDelta(t, 20*math.Log10(255), res.PSNR, 1e-9)
			},
		},
		"error-lossy-format": {
			params:       EncodeParams{Image: coverFile, Phrase: "alpha beta", Format: domain.ImageFormat_JPEG},
			setupMocks:   func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {},
			expectedErrT: &domain.ValidationErr{},
		},
		"error-missing-image": {
			params:       EncodeParams{Phrase: "alpha beta"},
			setupMocks:   func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {},
			expectedErrT: &domain.ValidationErr{},
		},
		"error-undecodable-image": {
			params: EncodeParams{Image: coverFile},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				raster.EXPECT().Decode(coverFile).Return(domain.CoverImage{}, "", domain.NewValidationErr("unsupported image format"))
			},
			expectedErrT: &domain.ValidationErr{},
		},
		"error-capacity-exceeded": {
			params: EncodeParams{Image: coverFile, Phrase: "alpha beta"},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
				raster.EXPECT().Decode(coverFile).Return(testCover(2, 2), domain.ImageFormat_PNG, nil)
			},
			expectedErrT: &domain.CapacityExceededErr{},
		},
		"error-raster-encode": {
			params: EncodeParams{Image: coverFile, Phrase: "alpha beta"},
			setupMocks: func(raster *mocks.MockRasterCodec, pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
				raster.EXPECT().Decode(coverFile).Return(cover, domain.ImageFormat_PNG, nil)
				raster.EXPECT().Encode(mock.Anything, domain.ImageFormat_PNG).Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raster := mocks.NewMockRasterCodec(t)
			transform := mocks.NewMockPerceptualTransform(t)
			tt.setupMocks(raster, transform)

			orchestrator := stego.NewHybridOrchestrator(transform, log.New(&bytes.Buffer{}, "", 0))
			useCase := NewEncodePhraseImpl(raster, orchestrator)

			res, err := useCase.Execute(ctx, tt.params)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectedErrT != nil:
				assert.IsType(t, tt.expectedErrT, err)
			default:
				require.NoError(t, err)
				tt.validateFn(t, res)
			}
		})
	}
}

func TestInitEncodePhrase_Initialize(t *testing.T) {
	i := InitEncodePhrase{
		Raster:       mocks.NewMockRasterCodec(t),
		Orchestrator: stego.NewHybridOrchestrator(domain.NoPerceptualTransform{}, nil),
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[EncodePhrase]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
