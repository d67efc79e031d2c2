package codec

import (
	"strings"
	"testing"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledImage(width, height int, value uint8) domain.CoverImage {
	img := domain.NewCoverImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

func TestEncodeBits_Layout(t *testing.T) {
	img := domain.NewCoverImage(8, 8)

	stego, err := EncodeBits(img, []byte("hi"))
	require.NoError(t, err)

	// 'h' 01 10 10 00, 'i' 01 10 10 01, marker 11 x7 10
	expected := []uint8{1, 2, 2, 0, 1, 2, 2, 1, 3, 3, 3, 3, 3, 3, 3, 2}
	assert.Equal(t, expected, stego.Pix[:len(expected)])
	for _, v := range stego.Pix[len(expected):] {
		assert.Zero(t, v)
	}
	assert.Equal(t, "hi", DecodeBits(stego))
}

func TestEncodeBits_OnlyLowBitsChange(t *testing.T) {
	img := filledImage(4, 4, 0xA5)

	stego, err := EncodeBits(img, []byte("ok"))
	require.NoError(t, err)

	require.Len(t, stego.Pix, len(img.Pix))
	for i := range img.Pix {
		assert.Equal(t, img.Pix[i]&^0x03, stego.Pix[i]&^0x03, "sample %d", i)
	}
	// samples past the framed payload stay untouched
	for i := BitLength([]byte("ok")) / BitsPerSample; i < len(img.Pix); i++ {
		assert.Equal(t, img.Pix[i], stego.Pix[i])
	}
	for _, v := range img.Pix {
		assert.Equal(t, uint8(0xA5), v, "input image must not be modified")
	}
}

func TestEncodeBits_CapacityExceeded(t *testing.T) {
	img := domain.NewCoverImage(8, 8)
	original := img.Clone()

	_, err := EncodeBits(img, []byte(strings.Repeat("a", 50)))

	var capErr *domain.CapacityExceededErr
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 416, capErr.Required)
	assert.Equal(t, 384, capErr.Capacity)
	assert.Equal(t, original, img)
}

func TestEncodeBits_ExactCapacity(t *testing.T) {
	// one byte plus marker is 24 bits, 12 samples, 4 pixels
	img := domain.NewCoverImage(2, 2)
	require.Equal(t, BitLength([]byte("z")), Capacity(img))

	stego, err := EncodeBits(img, []byte("z"))
	require.NoError(t, err)
	assert.Equal(t, "z", DecodeBits(stego))

	_, err = EncodeBits(img, []byte("zz"))
	assert.Error(t, err)
}

func TestBitsRoundTrip(t *testing.T) {
	tests := map[string]struct {
		cover    domain.CoverImage
		payload  []byte
		expected string
	}{
		"canonical-phrase": {
			cover:    filledImage(32, 32, 0x80),
			payload:  []byte(CanonicalPhrase("alpha beta")),
			expected: "alpha beta",
		},
		"saturated-cover": {
			cover:    filledImage(16, 16, 0xFF),
			payload:  []byte("my secret text"),
			expected: "my secret text",
		},
		"control-bytes-filtered": {
			cover:    domain.NewCoverImage(16, 16),
			payload:  []byte("a\x00b\x07c\x7fd\te"),
			expected: "abcde",
		},
		"latin1-interpretation": {
			cover:    domain.NewCoverImage(16, 16),
			payload:  []byte{'c', 'a', 'f', 0xE9},
			expected: "café",
		},
		"utf8-read-as-latin1": {
			cover:    domain.NewCoverImage(16, 16),
			payload:  []byte("é"),
			expected: "Ã©",
		},
		"surrounding-whitespace-trimmed": {
			cover:    domain.NewCoverImage(16, 16),
			payload:  []byte("   padded   "),
			expected: "padded",
		},
		"empty-payload": {
			cover:    domain.NewCoverImage(4, 4),
			payload:  []byte{},
			expected: "",
		},
		"payload-containing-marker-is-cut-short": {
			cover:    domain.NewCoverImage(8, 8),
			payload:  []byte{'a', 0xFF, 0xFE, 'b'},
			expected: "a",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stego, err := EncodeBits(tt.cover, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, DecodeBits(stego))
		})
	}
}

func TestDecodeBits_NoPayload(t *testing.T) {
	tests := map[string]struct {
		img      domain.CoverImage
		expected string
	}{
		"blank-image": {
			img:      domain.NewCoverImage(8, 8),
			expected: "",
		},
		"empty-image": {
			img:      domain.CoverImage{},
			expected: "",
		},
		"single-sample": {
			img:      domain.CoverImage{Width: 1, Height: 1, Channels: 1, Pix: []uint8{3}},
			expected: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeBits(tt.img))
		})
	}
}

func TestDecodeBits_UnterminatedReadsWholeImage(t *testing.T) {
	// 0x41 is 01 00 00 01 per 4 samples and never forms the marker
	img := domain.NewCoverImage(2, 2)
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []uint8{1, 0, 0, 1})
	}

	assert.Equal(t, "AAA", DecodeBits(img))
}
