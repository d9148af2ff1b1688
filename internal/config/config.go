// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Transports understood by the command gateway.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// StructuredConfig is the merged configuration of every source.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	// Adapter configures the connection to the remote executor.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	Observability Observability `envPrefix:"OBSERVABILITY_"`

	// JSONFilePath is the optional JSON file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Version overrides the linker-stamped build version in the UI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the executor connection settings.
type Adapter struct {
	// Transport selects the command transport: "http" or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// HTTPAddress is the executor HTTP endpoint, "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the executor gRPC endpoint, "host:port".
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every single command call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs the bearer token presented to the executor. Calls
	// are sent without Authorization when it is empty.
	// Env: ADAPTER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: ADAPTER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: ADAPTER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key for the HashSHA256 body signature header.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Workers holds background job settings.
type Workers struct {
	// ReloadInterval is the period of the background library reload.
	// Zero disables the job.
	// Env: WORKERS_RELOAD_INTERVAL
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL"`
}

// Observability holds the local metrics server settings.
type Observability struct {
	// Address is where /metrics, /healthz and /api/library are served.
	// Empty disables the server.
	// Env: OBSERVABILITY_ADDRESS
	Address string `env:"ADDRESS"`
}

// Defaults returns the configuration applied before any other source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Adapter: Adapter{
			Transport:      TransportHTTP,
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
			TokenIssuer:    "library-client",
			TokenDuration:  time.Hour,
		},
	}
}

// GetStructuredConfig merges defaults, environment, flags parsed from args and
// the optional JSON file, then validates the result.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
