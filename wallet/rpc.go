package wallet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	methodRequestAccounts = "eth_requestAccounts"
	methodAccounts        = "eth_accounts"

	maxResponseBytes = 1 << 20
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// RPCError is a JSON-RPC error returned by the wallet other than a rejection
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}

// RPCProvider talks JSON-RPC 2.0 over HTTP to a wallet endpoint
type RPCProvider struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
	nextID   atomic.Uint64
}

// NewRPCProvider creates a provider for endpoint
// A nil client uses http.DefaultClient; timeouts come from the caller's context
func NewRPCProvider(endpoint string, client *http.Client, log zerolog.Logger) *RPCProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &RPCProvider{endpoint: endpoint, client: client, log: log}
}

// Endpoint returns the configured endpoint
func (p *RPCProvider) Endpoint() string {
	return p.endpoint
}

// RequestAccounts calls eth_requestAccounts
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	return p.accounts(ctx, methodRequestAccounts)
}

// ConnectedAccounts calls eth_accounts
func (p *RPCProvider) ConnectedAccounts(ctx context.Context) ([]string, error) {
	return p.accounts(ctx, methodAccounts)
}

func (p *RPCProvider) accounts(ctx context.Context, method string) ([]string, error) {
	raw, err := p.call(ctx, method)
	if err != nil {
		return nil, err
	}

	var accounts []string
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return nil, errors.Wrapf(err, "decode %s result", method)
		}
	}
	p.log.Debug().Str("method", method).Int("accounts", len(accounts)).Msg("wallet accounts received")
	return accounts, nil
}

func (p *RPCProvider) call(ctx context.Context, method string) (json.RawMessage, error) {
	if p.endpoint == "" {
		return nil, errors.Wrap(ErrProviderUnavailable, "no endpoint configured")
	}

	id := p.nextID.Add(1)
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: []any{}})
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "build request"), ErrProviderUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "%s", method)
		}
		p.log.Warn().Err(err).Str("endpoint", p.endpoint).Msg("wallet unreachable")
		return nil, errors.Mark(errors.Wrapf(err, "%s", method), ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrProviderUnavailable, "%s: http status %d", method, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s: read response", method), ErrProviderUnavailable)
	}

	var out rpcResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "%s: decode response", method)
	}
	if out.Error != nil {
		if out.Error.Code == CodeUserRejected {
			return nil, errors.Wrapf(ErrUserDenied, "%s: %s", method, out.Error.Message)
		}
		return nil, &RPCError{Code: out.Error.Code, Message: out.Error.Message}
	}
	return out.Result, nil
}
