package stego

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func coverImage(width, height int) domain.CoverImage {
	img := domain.NewCoverImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	return img
}

func TestHybridOrchestrator_Encode(t *testing.T) {
	phrase := "alpha beta"
	cover := coverImage(16, 16)
	lsbStego, err := codec.EncodeBits(cover, []byte(codec.CanonicalPhrase(phrase)))
	require.NoError(t, err)

	perceptualStego := cover.Clone()
	perceptualStego.Pix[0] ^= 0x80

	tests := map[string]struct {
		img              domain.CoverImage
		setupMocks       func(*mocks.MockPerceptualTransform)
		expectedImage    domain.CoverImage
		expectedStrategy domain.Strategy
		expectedErr      error
		logContains      string
	}{
		"perceptual-success": {
			img: cover,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Encode(mock.Anything, cover, codec.EncodePhrase(phrase)).
					Return(perceptualStego, nil)
			},
			expectedImage:    perceptualStego,
			expectedStrategy: domain.Strategy_PERCEPTUAL,
		},
		"perceptual-unavailable-uses-lsb": {
			img: cover,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
			},
			expectedImage:    lsbStego,
			expectedStrategy: domain.Strategy_LSB,
		},
		"perceptual-failure-falls-back-to-lsb": {
			img: cover,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Encode(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.CoverImage{}, domain.NewCapabilityUnavailableErr("inference failed", assert.AnError))
			},
			expectedImage:    lsbStego,
			expectedStrategy: domain.Strategy_LSB,
			logContains:      "perceptual encode failed",
		},
		"perceptual-shape-change-falls-back-to-lsb": {
			img: cover,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Encode(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.NewCoverImage(8, 8), nil)
			},
			expectedImage:    lsbStego,
			expectedStrategy: domain.Strategy_LSB,
			logContains:      "changed image dimensions",
		},
		"capacity-exceeded-after-fallback": {
			img: coverImage(4, 4),
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Encode(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.CoverImage{}, assert.AnError)
			},
			expectedErr: domain.NewCapacityExceededErr(framedBits(phrase), 96),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			transform := mocks.NewMockPerceptualTransform(t)
			tt.setupMocks(transform)

			var logs bytes.Buffer
			orchestrator := NewHybridOrchestrator(transform, log.New(&logs, "", 0))

			original := tt.img.Clone()
			got, strategy, err := orchestrator.Encode(context.Background(), tt.img, phrase)

			assert.Equal(t, original, tt.img, "cover image must not be modified")
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedImage, got)
			assert.Equal(t, tt.expectedStrategy, strategy)
			if tt.logContains != "" {
				assert.Contains(t, logs.String(), tt.logContains)
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestHybridOrchestrator_Encode_AlwaysFailingTransformMatchesLSB(t *testing.T) {
	cover := coverImage(32, 32)
	phrase := "abandon ability able about above absent absorb abstract absurd abuse access accident"

	withFailing := NewHybridOrchestrator(failingTransform{}, nil)
	got, strategy, err := withFailing.Encode(context.Background(), cover, phrase)
	require.NoError(t, err)

	expected, err := codec.EncodeBits(cover, []byte(codec.CanonicalPhrase(phrase)))
	require.NoError(t, err)

	assert.Equal(t, domain.Strategy_LSB, strategy)
	assert.Equal(t, expected, got)

	recovered, strategy := withFailing.Decode(context.Background(), got)
	assert.Equal(t, phrase, recovered)
	assert.Equal(t, domain.Strategy_LSB, strategy)
}

func TestHybridOrchestrator_Decode(t *testing.T) {
	cover := coverImage(16, 16)
	lsbStego, err := codec.EncodeBits(cover, []byte(codec.CanonicalPhrase("alpha beta")))
	require.NoError(t, err)

	tests := map[string]struct {
		img              domain.CoverImage
		setupMocks       func(*mocks.MockPerceptualTransform)
		expectedPhrase   string
		expectedStrategy domain.Strategy
	}{
		"perceptual-success": {
			img: cover,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Decode(mock.Anything, cover).Return(codec.EncodePhrase("gamma delta"), nil)
			},
			expectedPhrase:   "gamma delta",
			expectedStrategy: domain.Strategy_PERCEPTUAL,
		},
		"perceptual-empty-result-falls-back": {
			img: lsbStego,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Decode(mock.Anything, lsbStego).Return(codec.EncodePhrase(""), nil)
			},
			expectedPhrase:   "alpha beta",
			expectedStrategy: domain.Strategy_LSB,
		},
		"perceptual-error-falls-back": {
			img: lsbStego,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(true)
				pt.EXPECT().Decode(mock.Anything, lsbStego).Return(nil, assert.AnError)
			},
			expectedPhrase:   "alpha beta",
			expectedStrategy: domain.Strategy_LSB,
		},
		"perceptual-unavailable": {
			img: lsbStego,
			setupMocks: func(pt *mocks.MockPerceptualTransform) {
				pt.EXPECT().Available().Return(false)
			},
			expectedPhrase:   "alpha beta",
			expectedStrategy: domain.Strategy_LSB,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			transform := mocks.NewMockPerceptualTransform(t)
			tt.setupMocks(transform)

			orchestrator := NewHybridOrchestrator(transform, log.New(&bytes.Buffer{}, "", 0))
			phrase, strategy := orchestrator.Decode(context.Background(), tt.img)

			assert.Equal(t, tt.expectedPhrase, phrase)
			assert.Equal(t, tt.expectedStrategy, strategy)
		})
	}
}

func TestHybridOrchestrator_Decode_BlankImageWithoutTransform(t *testing.T) {
	orchestrator := NewHybridOrchestrator(domain.NoPerceptualTransform{}, nil)
	img := domain.NewCoverImage(8, 8)

	phrase, strategy := orchestrator.Decode(context.Background(), img)
	assert.Equal(t, "", phrase)
	assert.Equal(t, domain.Strategy_LSB, strategy)

	again, _ := orchestrator.Decode(context.Background(), img)
	assert.Equal(t, phrase, again)
}

func TestHybridOrchestrator_NilTransform(t *testing.T) {
	orchestrator := NewHybridOrchestrator(nil, nil)
	assert.False(t, orchestrator.PerceptualAvailable())

	_, strategy, err := orchestrator.Encode(context.Background(), coverImage(16, 16), "hi")
	require.NoError(t, err)
	assert.Equal(t, domain.Strategy_LSB, strategy)
}

func TestInitHybridOrchestrator(t *testing.T) {
	i := InitHybridOrchestrator{
		Transform: domain.NoPerceptualTransform{},
		Logger:    log.New(&bytes.Buffer{}, "", 0),
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	registered, err := depend.Resolve[HybridOrchestrator]()
	require.NoError(t, err)
	assert.False(t, registered.PerceptualAvailable())
}

// framedBits returns the framed LSB size of the canonical form of phrase.
func framedBits(phrase string) int {
	return codec.BitLength([]byte(codec.CanonicalPhrase(phrase)))
}

type failingTransform struct{}

func (failingTransform) Available() bool { return true }

func (failingTransform) Encode(context.Context, domain.CoverImage, domain.EmbeddingVector) (domain.CoverImage, error) {
	return domain.CoverImage{}, domain.NewCapabilityUnavailableErr("model crashed", assert.AnError)
}

func (failingTransform) Decode(context.Context, domain.CoverImage) (domain.EmbeddingVector, error) {
	return nil, domain.NewCapabilityUnavailableErr("model crashed", assert.AnError)
}
