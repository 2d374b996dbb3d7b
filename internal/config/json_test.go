package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	// Arrange
	path := writeRawJSON(t, `{
		"app": {
			"token_sign_key": "key",
			"token_issuer": "iss",
			"token_duration": "90m",
			"log_level": "error",
			"version": "v9"
		},
		"storage": {
			"db": {"dsn": "postgres://u:p@h/db", "max_open_conns": 8, "max_idle_conns": 2}
		},
		"server": {
			"http_address": "0.0.0.0:80",
			"request_timeout": "20s",
			"shutdown_timeout": 1000000000,
			"allowed_origins": ["http://x.test"]
		}
	}`)

	// Act
	cfg, err := parseJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "v9", cfg.App.Version)
	assert.Equal(t, "postgres://u:p@h/db", cfg.Storage.DB.DSN)
	assert.Equal(t, 8, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 2, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, "0.0.0.0:80", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.AllowedOrigins)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDuration(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app": {"token_duration": "forever"}}`))

	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `5000`, want: 5000},
		{name: "bool", input: `true`, wantErr: true},
		{name: "garbage string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(b))
}
