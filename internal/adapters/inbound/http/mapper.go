package http

import (
	"errors"
	"math"

	"github.com/cleitonmarx/stegophrase/internal/common"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	var capacityErr *domain.CapacityExceededErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &capacityErr):
		errResp.Error.Code = CAPACITYEXCEEDED
		errResp.Error.Message = capacityErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

// toPsnr drops values JSON cannot represent.
func toPsnr(psnr float64) *float64 {
	if math.IsInf(psnr, 0) || math.IsNaN(psnr) {
		return nil
	}
	return common.Ptr(psnr)
}

func toEncodeResp(res usecases.EncodeResult) EncodeResp {
	return EncodeResp{
		Success:      true,
		Message:      "Message encoded successfully",
		EncodedImage: res.Image,
		SeedPhrase:   res.Phrase,
		Strategy:     string(res.Strategy),
		Format:       string(res.Format),
		Width:        res.Width,
		Height:       res.Height,
		Psnr:         toPsnr(res.PSNR),
	}
}

func toDecodeResp(res usecases.DecodeResult) DecodeResp {
	return DecodeResp{
		Success:         true,
		RecoveredPhrase: res.Phrase,
		Strategy:        string(res.Strategy),
	}
}

func toArtifact(a domain.StegoArtifact) Artifact {
	return Artifact{
		Id:        openapi_types.UUID(a.ID),
		Format:    string(a.Format),
		Width:     a.Width,
		Height:    a.Height,
		Strategy:  string(a.Strategy),
		Psnr:      toPsnr(a.PSNR),
		CreatedAt: a.CreatedAt,
	}
}

func toApiInfo(c usecases.Capabilities) ApiInfoResp {
	resp := ApiInfoResp{
		Message:             "Stegophrase API - hybrid perceptual and LSB steganography",
		PerceptualAvailable: c.PerceptualAvailable,
		BitsPerSample:       c.BitsPerSample,
		PhraseWords:         c.PhraseWords,
		EmbeddingSize:       c.EmbeddingSize,
		OutputFormats:       []string{},
	}
	for _, f := range c.OutputFormats {
		resp.OutputFormats = append(resp.OutputFormats, string(f))
	}
	return resp
}
