package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type ClientApp struct {
	Version  string
	LogLevel string
}

type ClientAdapter struct {
	Transport      string
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	HashKey        string
}

type ClientWorkers struct {
	ReloadInterval time.Duration
}

type ClientObservability struct {
	Address string
}

// ClientConfig is the validated view of [StructuredConfig] consumed by the
// client binaries.
type ClientConfig struct {
	App           ClientApp
	Adapter       ClientAdapter
	Workers       ClientWorkers
	Observability ClientObservability
}

// GetClientConfig builds the client configuration using args as command-line
// flags.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetClientConfigFromEnv builds the client configuration from defaults,
// environment and an optional JSON file, skipping flag parsing.
func GetClientConfigFromEnv(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			Transport:      cfg.Adapter.Transport,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			TokenSignKey:   cfg.Adapter.TokenSignKey,
			TokenIssuer:    cfg.Adapter.TokenIssuer,
			TokenDuration:  cfg.Adapter.TokenDuration,
			HashKey:        cfg.Adapter.HashKey,
		},
		Workers:       ClientWorkers{ReloadInterval: cfg.Workers.ReloadInterval},
		Observability: ClientObservability{Address: cfg.Observability.Address},
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Transport {
	case TransportHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: empty http address", ErrInvalidAdapterConfigs)
		}
	case TransportGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return fmt.Errorf("%w: empty grpc address", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.TokenSignKey != "" && cfg.Adapter.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAdapterConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	if cfg.Workers.ReloadInterval < 0 {
		return fmt.Errorf("%w: negative reload interval", ErrInvalidWorkerConfigs)
	}

	if cfg.Observability.Address != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Observability.Address); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidObservabilityConfigs, err)
		}
	}

	return nil
}
