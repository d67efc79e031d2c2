package config

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kvResponse = `{
  "data": {
    "data": {"DB_PASS": "s3cret", "HTTP_PORT": 8080},
    "metadata": {"created_time": "2026-01-24T15:00:00Z", "deletion_time": "", "destroyed": false, "version": 1}
  }
}`

func newVaultServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vault-Token") != "root" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		switch r.URL.Path {
		case "/v1/secret/data/stegophrase":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(kvResponse))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestVaultProvider_Get(t *testing.T) {
	server := newVaultServer(t)

	tests := map[string]struct {
		secretPath string
		key        string
		expected   string
		expectErr  bool
	}{
		"string-value": {
			secretPath: "stegophrase",
			key:        "DB_PASS",
			expected:   "s3cret",
		},
		"missing-key": {
			secretPath: "stegophrase",
			key:        "DB_USER",
			expectErr:  true,
		},
		"non-string-value": {
			secretPath: "stegophrase",
			key:        "HTTP_PORT",
			expectErr:  true,
		},
		"missing-secret": {
			secretPath: "other",
			key:        "DB_PASS",
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, err := NewVaultProvider(server.URL, "root", "secret", tt.secretPath)
			require.NoError(t, err)

			value, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mountPath, secretPath string
	}{
		"missing-server":      {"", "root", "secret", "stegophrase"},
		"missing-token":       {"http://localhost:8200", "", "secret", "stegophrase"},
		"missing-mount-path":  {"http://localhost:8200", "root", "", "stegophrase"},
		"missing-secret-path": {"http://localhost:8200", "root", "secret", ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mountPath, tt.secretPath)
			assert.Error(t, err)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var logs bytes.Buffer
		i := InitVaultProvider{Logger: log.New(&logs, "", 0), Server: "-"}

		ctx, err := i.Initialize(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, ctx)
		assert.Contains(t, logs.String(), "environment variables only")
	})

	t.Run("invalid-settings", func(t *testing.T) {
		i := InitVaultProvider{Logger: log.New(&bytes.Buffer{}, "", 0), Server: "http://localhost:8200"}

		_, err := i.Initialize(context.Background())
		assert.Error(t, err)
	})
}
