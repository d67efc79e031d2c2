package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/stegophrase/internal/usecases"
	"github.com/rs/cors"
)

// StegoServer is the REST API HTTP server for the Stegophrase application.
type StegoServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	MaxUploadBytes         int                      `config:"MAX_UPLOAD_BYTES" default:"33554432"`
	Logger                 *log.Logger              `resolve:""`
	EncodePhraseUseCase    usecases.EncodePhrase    `resolve:""`
	DecodePhraseUseCase    usecases.DecodePhrase    `resolve:""`
	CreateArtifactUseCase  usecases.CreateArtifact  `resolve:""`
	GetArtifactUseCase     usecases.GetArtifact     `resolve:""`
	GetCapabilitiesUseCase usecases.GetCapabilities `resolve:""`
}

// Handler builds the routed, instrumented handler of the StegoServer.
func (api StegoServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/encode", api.EncodePhrase)
	mux.HandleFunc("POST /api/v1/decode", api.DecodePhrase)
	mux.HandleFunc("POST /api/v1/artifacts", api.CreateArtifact)
	mux.HandleFunc("GET /api/v1/artifacts/{id}", api.GetArtifact)
	mux.HandleFunc("GET /api", api.ApiInfo)
	mux.HandleFunc("GET /health", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := telemetry.Middleware("stegophrase-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the StegoServer.
func (api StegoServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("StegoServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("StegoServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("StegoServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the StegoServer is ready by performing a health check.
func (api StegoServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
