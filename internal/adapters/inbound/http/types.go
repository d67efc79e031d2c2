package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode is the machine-readable code of an ErrorResp.
type ErrorCode string

const (
	BADREQUEST       ErrorCode = "BAD_REQUEST"
	NOTFOUND         ErrorCode = "NOT_FOUND"
	CAPACITYEXCEEDED ErrorCode = "CAPACITY_EXCEEDED"
	INTERNALERROR    ErrorCode = "INTERNAL_ERROR"
)

// Error describes a failed request.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the body of every non-2xx JSON response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// EncodeResp is returned by POST /api/v1/encode.
type EncodeResp struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EncodedImage []byte `json:"encoded_image"`
	SeedPhrase   string `json:"seed_phrase"`
	Strategy     string `json:"strategy"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	// Psnr is omitted when the stego image is identical to the cover.
	Psnr *float64 `json:"psnr,omitempty"`
}

// DecodeResp is returned by POST /api/v1/decode.
type DecodeResp struct {
	Success         bool   `json:"success"`
	RecoveredPhrase string `json:"recovered_phrase"`
	Strategy        string `json:"strategy"`
}

// Artifact is the metadata of a stored stego image.
type Artifact struct {
	Id        openapi_types.UUID `json:"id"`
	Format    string             `json:"format"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Strategy  string             `json:"strategy"`
	Psnr      *float64           `json:"psnr,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// ApiInfoResp is returned by GET /api.
type ApiInfoResp struct {
	Message             string   `json:"message"`
	PerceptualAvailable bool     `json:"perceptual_available"`
	BitsPerSample       int      `json:"bits_per_sample"`
	PhraseWords         int      `json:"phrase_words"`
	EmbeddingSize       int      `json:"embedding_size"`
	OutputFormats       []string `json:"output_formats"`
}

// HealthResp is returned by GET /health.
type HealthResp struct {
	Status              string `json:"status"`
	PerceptualAvailable bool   `json:"perceptual_available"`
}
