package codec

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/cleitonmarx/stegophrase/internal/domain"
)

const (
	// BitsPerSample is the number of low-order bits replaced in every sample.
	BitsPerSample = 2
	sampleMask    = 1<<BitsPerSample - 1

	endMarker     uint16 = 0xFFFE // 1111111111111110
	endMarkerBits        = 16
)

// endMarkerPattern is endMarker as one bit per byte, MSB first.
var endMarkerPattern = toBits([]byte{0xFF, 0xFE})

// Capacity returns the number of payload bits img can hold.
func Capacity(img domain.CoverImage) int {
	return len(img.Pix) * BitsPerSample
}

// BitLength returns the framed bit length of payload, end marker included.
func BitLength(payload []byte) int {
	return len(payload)*8 + endMarkerBits
}

// EncodeBits hides payload in the two least-significant bits of the samples of img,
// in row-major, channel-minor order, followed by the end marker. The input image is
// never modified; a CapacityExceededErr is returned before any work when the framed
// payload does not fit.
func EncodeBits(img domain.CoverImage, payload []byte) (domain.CoverImage, error) {
	required := BitLength(payload)
	if capacity := Capacity(img); required > capacity {
		return domain.CoverImage{}, domain.NewCapacityExceededErr(required, capacity)
	}

	stream := append(toBits(payload), endMarkerPattern...)
	if len(stream)%BitsPerSample != 0 {
		stream = append(stream, 0)
	}

	out := img.Clone()
	for i := 0; i < len(stream); i += BitsPerSample {
		group := stream[i]<<1 | stream[i+1]
		sample := i / BitsPerSample
		out.Pix[sample] = (out.Pix[sample] &^ sampleMask) | group
	}
	return out, nil
}

// DecodeBits extracts text hidden by EncodeBits. Scanning stops at the first sample
// boundary where the collected bits end with the end marker; without a marker the
// whole image is read. Only printable, non-NUL bytes survive (interpreted as Latin-1)
// and the result is trimmed. DecodeBits never fails: images without a payload yield
// empty or meaningless text.
func DecodeBits(img domain.CoverImage) string {
	bits := make([]byte, 0, 256)
	var window uint16
	for _, sample := range img.Pix {
		group := sample & sampleMask
		bits = append(bits, group>>1&1, group&1)
		window = window<<BitsPerSample | uint16(group)
		if len(bits) >= endMarkerBits && window == endMarker {
			break
		}
	}

	// The first occurrence wins, wherever it starts.
	if end := bytes.Index(bits, endMarkerPattern); end >= 0 {
		bits = bits[:end]
	}
	return bitsToText(bits)
}

// toBits expands data into one bit per byte, MSB first.
func toBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, b>>shift&1)
		}
	}
	return bits
}

// bitsToText groups bits into bytes, dropping a trailing partial byte, and keeps
// the printable ones.
func bitsToText(bits []byte) string {
	var sb strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b = b<<1 | bit
		}
		r := rune(b)
		if r != 0 && unicode.IsPrint(r) {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
