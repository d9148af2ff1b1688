package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-library-keeper/internal/config"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
)

// NewInvoker builds the transport selected by adapterCfg.Transport.
func NewInvoker(adapterCfg config.ClientAdapter, log *logger.Logger) (Invoker, error) {
	switch adapterCfg.Transport {
	case config.TransportHTTP, "":
		return NewHTTPInvoker(adapterCfg, log)
	case config.TransportGRPC:
		return NewGRPCInvoker(adapterCfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, adapterCfg.Transport)
	}
}
