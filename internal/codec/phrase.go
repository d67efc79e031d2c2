// Package codec holds the deterministic transforms behind phrase hiding: the
// phrase <-> vector mapping consumed by the perceptual transform and the 2-bit
// LSB payload codec.
package codec

import (
	"math"
	"strings"

	"github.com/cleitonmarx/stegophrase/internal/domain"
)

const (
	// PhraseWords is the number of words in a canonical phrase.
	PhraseWords = 12
	// EmbeddingSize is the length of an EmbeddingVector.
	EmbeddingSize = 768
)

// CanonicalPhrase splits phrase on whitespace, keeps at most PhraseWords words,
// pads with empty words up to PhraseWords and joins them with single spaces.
// A two-word phrase therefore ends with ten spaces.
func CanonicalPhrase(phrase string) string {
	words := strings.Fields(phrase)
	if len(words) > PhraseWords {
		words = words[:PhraseWords]
	}
	padded := make([]string, PhraseWords)
	copy(padded, words)
	return strings.Join(padded, " ")
}

// EncodePhrase maps the canonical UTF-8 bytes of phrase onto an EmbeddingVector,
// one element per byte (b/255*2-1), zero-byte padded or truncated to EmbeddingSize.
func EncodePhrase(phrase string) domain.EmbeddingVector {
	raw := []byte(CanonicalPhrase(phrase))
	vector := make(domain.EmbeddingVector, EmbeddingSize)
	for i := range vector {
		var b byte
		if i < len(raw) {
			b = raw[i]
		}
		vector[i] = byteToUnit(b)
	}
	return vector
}

// DecodePhrase is the best-effort inverse of EncodePhrase. Invalid UTF-8 is dropped,
// trailing NULs are stripped and the result is re-joined from at most PhraseWords words.
func DecodePhrase(vector domain.EmbeddingVector) string {
	raw := make([]byte, len(vector))
	for i, v := range vector {
		raw[i] = unitToByte(v)
	}
	text := strings.ToValidUTF8(string(raw), "")
	text = strings.TrimRight(text, "\x00")

	words := strings.Fields(text)
	if len(words) > PhraseWords {
		words = words[:PhraseWords]
	}
	return strings.Join(words, " ")
}

func byteToUnit(b byte) float64 {
	return float64(b)/255*2 - 1
}

func unitToByte(v float64) byte {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round((v + 1) / 2 * 255)
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	}
	return byte(scaled)
}
