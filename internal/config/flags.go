package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value accepting "host:port".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args with a dedicated flag set so callers and tests never
// touch the global flag.CommandLine.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("library-client", flag.ContinueOnError)

	var adapterAddress, grpcAddress, metricsAddress NetAddress
	var transport string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var reloadInterval time.Duration
	var logLevel string

	fs.Var(&adapterAddress, "a", "Executor HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Executor gRPC address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Observability server address host:port")
	fs.StringVar(&transport, "transport", "", "Command transport: http or grpc")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Per-command timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signature hash key")
	fs.DurationVar(&reloadInterval, "reload-interval", 0, "Background library reload interval, 0 disables")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			Transport:      transport,
			HTTPAddress:    adapterAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			HashKey:        hashKey,
		},
		Workers: Workers{
			ReloadInterval: reloadInterval,
		},
		Observability: Observability{
			Address: metricsAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
