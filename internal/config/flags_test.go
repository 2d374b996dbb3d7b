package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-a", "127.0.0.1:9090",
		"-d", "sqlite://blog.db",
		"-c", "/etc/blog.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "45m",
		"-request-timeout", "10s",
		"-shutdown-timeout", "3s",
		"-cors-origins", "http://a.test, http://b.test",
		"-log-level", "warn",
	}

	// Act
	cfg, err := ParseFlags(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://blog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/blog.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/tmp/cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsYieldsZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "no-port"})

	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})

	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "10.0.0.1:443", wantHost: "10.0.0.1", wantPort: 443},
		{name: "empty host", input: ":3000", wantHost: "", wantPort: 3000},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "hostname not allowed", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{name: "unset", addr: NetAddress{}, want: ""},
		{name: "host and port", addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "port only", addr: NetAddress{Port: 9000}, want: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}
