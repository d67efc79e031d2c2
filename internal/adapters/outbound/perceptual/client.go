// Package perceptual provides a client for an external inference server that hides
// embedding vectors in images.
package perceptual

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const (
	encodePath = "/v1/stego/encode"
	decodePath = "/v1/stego/decode"
)

// imagePayload is the wire form of a CoverImage. Pixels are base64 encoded by encoding/json.
type imagePayload struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
	Pixels   []byte `json:"pixels"`
}

type encodeRequest struct {
	imagePayload
	Vector []float64 `json:"vector"`
}

type decodeResponse struct {
	Vector []float64 `json:"vector"`
}

// Client is a domain.PerceptualTransform backed by a JSON inference API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new Client
func NewClient(baseURL string, httpClient *http.Client) Client {
	return Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Available reports whether a host is configured.
func (c Client) Available() bool {
	return c.baseURL != "" && c.http != nil
}

// Encode asks the inference server to hide vector in img.
func (c Client) Encode(ctx context.Context, img domain.CoverImage, vector domain.EmbeddingVector) (domain.CoverImage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(vector) != codec.EmbeddingSize {
		err := domain.NewCapabilityUnavailableErr(
			fmt.Sprintf("vector has %d elements, expected %d", len(vector), codec.EmbeddingSize), nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CoverImage{}, err
	}

	var out imagePayload
	err := c.post(spanCtx, encodePath, encodeRequest{
		imagePayload: toPayload(img),
		Vector:       vector,
	}, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CoverImage{}, err
	}

	stego := domain.CoverImage{
		Width:    out.Width,
		Height:   out.Height,
		Channels: out.Channels,
		Pix:      out.Pixels,
	}
	if !stego.SameShape(img) || len(stego.Pix) != len(img.Pix) {
		err := domain.NewCapabilityUnavailableErr(
			fmt.Sprintf("inference server returned %dx%dx%d image with %d samples, expected %dx%dx%d",
				out.Width, out.Height, out.Channels, len(out.Pixels), img.Width, img.Height, img.Channels),
			nil,
		)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CoverImage{}, err
	}

	span.SetAttributes(attribute.Int("image.width", img.Width), attribute.Int("image.height", img.Height))
	return stego, nil
}

// Decode asks the inference server for the vector carried by img.
func (c Client) Decode(ctx context.Context, img domain.CoverImage) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var out decodeResponse
	err := c.post(spanCtx, decodePath, toPayload(img), &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(out.Vector) != codec.EmbeddingSize {
		err := domain.NewCapabilityUnavailableErr(
			fmt.Sprintf("inference server returned %d elements, expected %d", len(out.Vector), codec.EmbeddingSize), nil)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	return domain.EmbeddingVector(out.Vector), nil
}

// post sends body to path and unmarshals the response into out. Every failure is a
// *domain.CapabilityUnavailableErr.
func (c Client) post(ctx context.Context, path string, body, out any) error {
	if !c.Available() {
		return domain.NewCapabilityUnavailableErr("perceptual transform not configured", nil)
	}

	req, err := c.newPostRequest(ctx, path, body)
	if err != nil {
		return domain.NewCapabilityUnavailableErr("build request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewCapabilityUnavailableErr("http do", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewCapabilityUnavailableErr("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewCapabilityUnavailableErr(
			fmt.Sprintf("non-2xx response: %s: %s", resp.Status, string(respBody)), nil)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewCapabilityUnavailableErr("unmarshal response", err)
	}
	return nil
}

func (c Client) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func toPayload(img domain.CoverImage) imagePayload {
	return imagePayload{
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
		Pixels:   img.Pix,
	}
}

var _ domain.PerceptualTransform = Client{}

// InitPerceptualTransform registers the domain.PerceptualTransform. Without a
// configured host the absent variant is registered.
type InitPerceptualTransform struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	ModelHost  string       `config:"PERCEPTUAL_MODEL_HOST" default:"-"`
}

// Initialize registers the perceptual transform in the dependency container.
func (i InitPerceptualTransform) Initialize(ctx context.Context) (context.Context, error) {
	if i.ModelHost == "-" || i.ModelHost == "" {
		i.Logger.Print("InitPerceptualTransform: PERCEPTUAL_MODEL_HOST not set, using LSB only")
		depend.Register[domain.PerceptualTransform](domain.NoPerceptualTransform{})
		return ctx, nil
	}

	i.Logger.Printf("InitPerceptualTransform: using inference server at %s", i.ModelHost)
	depend.Register[domain.PerceptualTransform](NewClient(i.ModelHost, i.HttpClient))
	return ctx, nil
}
