package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidClientConfigs indicates a client configuration that cannot
// reach a server.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the command line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the blog server; the scheme may be
	// omitted. Env: BLOG_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Token is a bearer token from an earlier login. Env: BLOG_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every request. Env: BLOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is the zerolog level of diagnostics written to stderr.
	// Env: BLOG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
		LogLevel:       "warn",
	}
}

// GetClientConfig merges defaults, BLOG_* environment variables and the
// leading flags of args, in that order. The arguments left after the flags
// are returned as the command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "BLOG_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, layer := range []*ClientConfig{defaultClientConfig(), envCfg, flagsCfg} {
		if err = mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerAddress == "" {
		return nil, nil, fmt.Errorf("%w: server address is required", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidClientConfigs)
	}

	return cfg, rest, nil
}

// parseClientFlags parses the global client flags.
//
// Flags:
//
//	-s server address, e.g. http://localhost:8080
//	-token bearer token from an earlier login
//	-timeout request timeout (e.g., "10s")
//	-log-level zerolog level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("blog-client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "s", "", "Server address")
	fs.StringVar(&cfg.Token, "token", "", "Bearer token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
