package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/usecases"
)

const multipartMemory = 8 << 20

func (api StegoServer) EncodePhrase(w http.ResponseWriter, r *http.Request) {
	params, ok := api.readEncodeParams(w, r)
	if !ok {
		return
	}

	res, err := api.EncodePhraseUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("Error encoding phrase: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toEncodeResp(res))
}

func (api StegoServer) DecodePhrase(w http.ResponseWriter, r *http.Request) {
	image, ok := api.readImage(w, r)
	if !ok {
		return
	}

	res, err := api.DecodePhraseUseCase.Execute(r.Context(), image)
	if err != nil {
		api.Logger.Printf("Error decoding phrase: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toDecodeResp(res))
}

// readEncodeParams reads the image file and the seed_phrase and format fields. A
// missing seed_phrase is left blank for the use case to default.
func (api StegoServer) readEncodeParams(w http.ResponseWriter, r *http.Request) (usecases.EncodeParams, bool) {
	image, ok := api.readImage(w, r)
	if !ok {
		return usecases.EncodeParams{}, false
	}
	return usecases.EncodeParams{
		Image:  image,
		Phrase: r.FormValue("seed_phrase"),
		Format: domain.ImageFormat(r.FormValue("format")),
	}, true
}

// readImage parses the multipart form and returns the content of its image file.
func (api StegoServer) readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if api.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, int64(api.MaxUploadBytes))
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondBadRequest(w, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
			return nil, false
		}
		respondBadRequest(w, fmt.Sprintf("invalid multipart form: %v", err))
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondBadRequest(w, "image file is required")
		return nil, false
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		respondBadRequest(w, fmt.Sprintf("failed to read image file: %v", err))
		return nil, false
	}
	return data, true
}
