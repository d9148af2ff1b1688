package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/config"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

// RequestIDHeader correlates a command with the executor's logs.
const RequestIDHeader = "X-Request-ID"

// CommandPathPrefix is the route every HTTP command is posted under.
const CommandPathPrefix = "/api/commands/"

type httpInvoker struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	tokens *tokenSource

	logger *logger.Logger
}

// NewHTTPInvoker builds the resty transport. adapterCfg.HTTPAddress may be
// "host:port" or a full URL.
func NewHTTPInvoker(adapterCfg config.ClientAdapter, log *logger.Logger) (Invoker, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpInvoker{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(adapterCfg.HashKey),
		tokens: newTokenSource(adapterCfg.TokenIssuer, adapterCfg.TokenSignKey, adapterCfg.TokenDuration),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Invoke POSTs args as JSON to /api/commands/{op}.
func (h *httpInvoker) Invoke(ctx context.Context, op string, args any, result any) error {
	if args == nil {
		args = noArgs{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode %s args: %w", op, err)
	}

	ctx, requestID := utils.EnsureRequestID(ctx)
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(RequestIDHeader, requestID).
		SetBody(body)

	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(body))
	}

	token, err := h.tokens.Token()
	if err != nil {
		return fmt.Errorf("%s bearer token: %w", op, err)
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(CommandPathPrefix + op)
	if err != nil {
		return fmt.Errorf("%s request: %w: %w", op, ErrUnavailable, err)
	}
	h.logger.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Msg("command response")
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (h *httpInvoker) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
