package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-library-keeper/internal/config"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// GRPCServiceName is the service every command method lives under.
const GRPCServiceName = "library.Commands"

// gRPC metadata keys, lower-case as required by HTTP/2.
const (
	mdRequestID     = "x-request-id"
	mdAuthorization = "authorization"
	mdHash          = "hashsha256"
)

type grpcInvoker struct {
	conn   *grpc.ClientConn
	hasher *utils.Hasher
	tokens *tokenSource

	logger *logger.Logger
}

// NewGRPCInvoker dials adapterCfg.GRPCAddress lazily. Extra dial options are
// appended after the defaults, which tests use to install an in-memory dialer.
func NewGRPCInvoker(adapterCfg config.ClientAdapter, log *logger.Logger, opts ...grpc.DialOption) (Invoker, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodecName)),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	return &grpcInvoker{
		conn:   conn,
		hasher: utils.NewHasher(adapterCfg.HashKey),
		tokens: newTokenSource(adapterCfg.TokenIssuer, adapterCfg.TokenSignKey, adapterCfg.TokenDuration),
		logger: log,
	}, nil
}

// Invoke calls /library.Commands/{op} with args as the JSON request message.
func (g *grpcInvoker) Invoke(ctx context.Context, op string, args any, result any) error {
	if args == nil {
		args = noArgs{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode %s args: %w", op, err)
	}

	ctx, requestID := utils.EnsureRequestID(ctx)
	md := metadata.Pairs(mdRequestID, requestID)
	if g.hasher.Enabled() {
		md.Set(mdHash, g.hasher.SumHex(body))
	}

	token, err := g.tokens.Token()
	if err != nil {
		return fmt.Errorf("%s bearer token: %w", op, err)
	}
	if token != "" {
		md.Set(mdAuthorization, "Bearer "+token)
	}
	ctx = metadata.NewOutgoingContext(ctx, md)

	var reply json.RawMessage
	method := "/" + GRPCServiceName + "/" + op
	if err = g.conn.Invoke(ctx, method, json.RawMessage(body), &reply); err != nil {
		g.logger.Debug().Err(err).Str("op", op).Str("request_id", requestID).Msg("command rpc failed")
		return fmt.Errorf("%s request: %w", op, mapGRPCError(err))
	}

	if result == nil || len(reply) == 0 {
		return nil
	}
	if err = json.Unmarshal(reply, result); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (g *grpcInvoker) Close() error {
	return g.conn.Close()
}
