package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/stegophrase/internal/common"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/usecases"
	"github.com/cleitonmarx/stegophrase/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	coverBytes = []byte("\x89PNG\r\n\x1a\ncover")
	stegoBytes = []byte("\x89PNG\r\n\x1a\nstego")
)

func TestStegoServer_EncodePhrase(t *testing.T) {
	tests := map[string]struct {
		image          []byte
		fields         map[string]string
		setupMocks     func(*mocks.MockEncodePhrase)
		expectedStatus int
		expectedBody   *EncodeResp
		expectedError  *ErrorResp
	}{
		"success": {
			image:  coverBytes,
			fields: map[string]string{"seed_phrase": "alpha beta", "format": "bmp"},
			setupMocks: func(m *mocks.MockEncodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, usecases.EncodeParams{
						Image:  coverBytes,
						Phrase: "alpha beta",
						Format: domain.ImageFormat_BMP,
					}).
					Return(usecases.EncodeResult{
						Image:    stegoBytes,
						Format:   domain.ImageFormat_BMP,
						Phrase:   "alpha beta",
						Strategy: domain.Strategy_LSB,
						Width:    4,
						Height:   2,
						PSNR:     51.5,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &EncodeResp{
				Success:      true,
				Message:      "Message encoded successfully",
				EncodedImage: stegoBytes,
				SeedPhrase:   "alpha beta",
				Strategy:     "lsb",
				Format:       "bmp",
				Width:        4,
				Height:       2,
				Psnr:         common.Ptr(51.5),
			},
		},
		"defaults-left-to-use-case-and-identical-image": {
			image: coverBytes,
			setupMocks: func(m *mocks.MockEncodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, usecases.EncodeParams{Image: coverBytes}).
					Return(usecases.EncodeResult{
						Image:    coverBytes,
						Format:   domain.ImageFormat_PNG,
						Phrase:   usecases.DefaultPhrase,
						Strategy: domain.Strategy_PERCEPTUAL,
						Width:    1,
						Height:   1,
						PSNR:     math.Inf(1),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &EncodeResp{
				Success:      true,
				Message:      "Message encoded successfully",
				EncodedImage: coverBytes,
				SeedPhrase:   usecases.DefaultPhrase,
				Strategy:     "perceptual",
				Format:       "png",
				Width:        1,
				Height:       1,
			},
		},
		"capacity-exceeded": {
			image:  coverBytes,
			fields: map[string]string{"seed_phrase": "too long"},
			setupMocks: func(m *mocks.MockEncodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.EncodeResult{}, domain.NewCapacityExceededErr(416, 384))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError: &ErrorResp{Error: Error{
				Code:    CAPACITYEXCEEDED,
				Message: "payload too long for image capacity: 416 bits > 384 bits",
			}},
		},
		"lossy-format": {
			image:  coverBytes,
			fields: map[string]string{"format": "jpeg"},
			setupMocks: func(m *mocks.MockEncodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.EncodeResult{}, domain.NewValidationErr("unsupported output format \"jpeg\""))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "unsupported output format \"jpeg\"",
			}},
		},
		"missing-image": {
			fields:         map[string]string{"seed_phrase": "alpha"},
			setupMocks:     func(m *mocks.MockEncodePhrase) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "image file is required",
			}},
		},
		"internal-error": {
			image: coverBytes,
			setupMocks: func(m *mocks.MockEncodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.EncodeResult{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{Error: Error{
				Code:    INTERNALERROR,
				Message: "internal server error",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			encode := mocks.NewMockEncodePhrase(t)
			tt.setupMocks(encode)

			server := StegoServer{
				EncodePhraseUseCase: encode,
				Logger:              log.New(io.Discard, "", 0),
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, multipartRequest(t, "/api/v1/encode", tt.image, tt.fields))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response EncodeResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
				if tt.expectedBody.Psnr == nil {
					assert.NotContains(t, w.Body.String(), "psnr")
				}
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestStegoServer_DecodePhrase(t *testing.T) {
	tests := map[string]struct {
		image          []byte
		setupMocks     func(*mocks.MockDecodePhrase)
		expectedStatus int
		expectedBody   *DecodeResp
		expectedError  *ErrorResp
	}{
		"success": {
			image: stegoBytes,
			setupMocks: func(m *mocks.MockDecodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, stegoBytes).
					Return(usecases.DecodeResult{Phrase: "alpha beta", Strategy: domain.Strategy_LSB}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &DecodeResp{
				Success:         true,
				RecoveredPhrase: "alpha beta",
				Strategy:        "lsb",
			},
		},
		"no-payload": {
			image: coverBytes,
			setupMocks: func(m *mocks.MockDecodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, coverBytes).
					Return(usecases.DecodeResult{Phrase: "", Strategy: domain.Strategy_LSB}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &DecodeResp{
				Success:  true,
				Strategy: "lsb",
			},
		},
		"undecodable-image": {
			image: []byte("not an image"),
			setupMocks: func(m *mocks.MockDecodePhrase) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.DecodeResult{}, domain.NewValidationErr("unsupported or unrecognized image format"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "unsupported or unrecognized image format",
			}},
		},
		"missing-image": {
			setupMocks:     func(m *mocks.MockDecodePhrase) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: "image file is required",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			decode := mocks.NewMockDecodePhrase(t)
			tt.setupMocks(decode)

			server := StegoServer{
				DecodePhraseUseCase: decode,
				Logger:              log.New(io.Discard, "", 0),
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, multipartRequest(t, "/api/v1/decode", tt.image, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response DecodeResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestStegoServer_InvalidUploads(t *testing.T) {
	tests := map[string]struct {
		request         func(t *testing.T) *http.Request
		maxUploadBytes  int
		expectedMessage string
	}{
		"not-multipart": {
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", strings.NewReader(`{"image":"x"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			expectedMessage: "invalid multipart form",
		},
		"body-too-large": {
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/v1/decode", bytes.Repeat([]byte{0xAB}, 4096), nil)
			},
			maxUploadBytes: 512,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := StegoServer{
				DecodePhraseUseCase: mocks.NewMockDecodePhrase(t),
				MaxUploadBytes:      tt.maxUploadBytes,
				Logger:              log.New(io.Discard, "", 0),
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, tt.request(t))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var response ErrorResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, BADREQUEST, response.Error.Code)
			assert.Contains(t, response.Error.Message, tt.expectedMessage)
		})
	}
}

func multipartRequest(t *testing.T, path string, image []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if image != nil {
		fw, err := mw.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func assertErrorResp(t *testing.T, w *httptest.ResponseRecorder, expected ErrorResp) {
	t.Helper()

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var response ErrorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, expected, response)
}
