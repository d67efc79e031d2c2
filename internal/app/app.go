package app

import (
	"github.com/cleitonmarx/stegophrase/internal/adapters/inbound/http"
	"github.com/cleitonmarx/stegophrase/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/config"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/log"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/perceptual"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/raster"
	"github.com/cleitonmarx/stegophrase/internal/adapters/outbound/time"
	"github.com/cleitonmarx/stegophrase/internal/stego"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/stegophrase/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewStegoApp creates and returns a new instance of the Stegophrase application.
func NewStegoApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitArtifactRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&perceptual.InitPerceptualTransform{},
			&raster.InitRasterCodec{},
			&stego.InitHybridOrchestrator{},

			&usecases.InitEncodePhrase{},
			&usecases.InitDecodePhrase{},
			&usecases.InitCreateArtifact{},
			&usecases.InitGetArtifact{},
			&usecases.InitGetCapabilities{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.StegoServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
