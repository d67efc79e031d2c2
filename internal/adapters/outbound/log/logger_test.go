package log

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	var out bytes.Buffer
	init := InitLogger{Prefix: "stegophrase: ", out: &out}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	require.NoError(t, err)

	logger.Printf("StegoServer: Listening on port %d", 8080)
	assert.Contains(t, out.String(), "stegophrase: StegoServer: Listening on port 8080")
}
