package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var logs bytes.Buffer
	depend.Register(log.New(&logs, "", 0))

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "PERCEPTUAL_MODEL_HOST", UsedDefault: false},
		},
	}

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)
	require.Contains(t, logs.String(), "ReportLoggerIntrospector: config HTTP_PORT (default)")
	require.Contains(t, logs.String(), "ReportLoggerIntrospector: config PERCEPTUAL_MODEL_HOST (provided)")
}
