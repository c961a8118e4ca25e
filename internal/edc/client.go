// Package edc is the HTTP client for the EDC Management API. It resolves the
// management base URL per connector mode, authenticates with the connector's
// api key and converts between the internal models and the JSON-LD wire
// format the management API speaks.
package edc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"edcstudio/internal/model"
)

var (
	ErrInvalidMode = errors.New("invalid connector mode")
	ErrNoAPIKey    = errors.New("connector api key not configured")
	ErrNoPorts     = errors.New("connector ports not configured")
)

// StatusError is a non-2xx response from the management API. The handler
// layer maps it straight to the upstream status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("edc returned status %d: %s", e.Code, e.Body)
}

// API is the management-plane surface the services depend on.
type API interface {
	CreateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) (map[string]any, error)
	GetAsset(ctx context.Context, conn *model.Connector, assetID string) (*model.Asset, error)
	ListAssets(ctx context.Context, conn *model.Connector) ([]model.Asset, error)
	UpdateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) error
	DeleteAsset(ctx context.Context, conn *model.Connector, assetID string) error

	CreatePolicy(ctx context.Context, conn *model.Connector, p *model.Policy) (map[string]any, error)
	ListPolicies(ctx context.Context, conn *model.Connector) ([]model.Policy, error)
	GetPolicy(ctx context.Context, conn *model.Connector, policyID string) (*model.Policy, error)
	DeletePolicy(ctx context.Context, conn *model.Connector, policyID string) error

	CreateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) (map[string]any, error)
	ListContracts(ctx context.Context, conn *model.Connector) ([]model.Contract, error)
	GetContract(ctx context.Context, conn *model.Connector, contractID string) (*model.Contract, error)
	UpdateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) error
	DeleteContract(ctx context.Context, conn *model.Connector, contractID string) error

	RequestCatalog(ctx context.Context, consumer, provider *model.Connector) (map[string]any, error)
	NegotiateContract(ctx context.Context, consumer, provider *model.Connector, contractOfferID, asset string) (map[string]any, error)
	GetNegotiation(ctx context.Context, consumer *model.Connector, negotiationID string) (map[string]any, error)
	StartTransfer(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error)
	StartTransferPull(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error)
	GetTransferProcess(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error)
	GetDataAddress(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error)

	Fetch(ctx context.Context, uri, authorization string) (body []byte, contentType string, err error)
}

// Client talks to the management API of managed and remote connectors.
type Client struct {
	http       *http.Client
	deployType string
}

var _ API = (*Client)(nil)

// NewClient creates a management API client. deployType controls how managed
// connectors are addressed: "localhost" targets published ports on the host,
// anything else targets the docker service name.
func NewClient(deployType string) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		deployType: deployType,
	}
}

// baseURL resolves the management API URL for a connector and appends path.
func (c *Client) baseURL(conn *model.Connector, path string) (string, error) {
	switch conn.Mode {
	case model.ConnectorModeManaged:
		if conn.Ports == nil {
			return "", ErrNoPorts
		}
		if c.deployType == "localhost" {
			return fmt.Sprintf("http://localhost:%d/management%s", conn.Ports.Management, path), nil
		}
		return fmt.Sprintf("http://edc-%s-%s:%d/management%s", conn.Type, conn.ID, conn.Ports.Management, path), nil
	case model.ConnectorModeRemote:
		if conn.EndpointsURL == nil {
			return "", ErrInvalidMode
		}
		return strings.TrimRight(conn.EndpointsURL.Management, "/") + path, nil
	default:
		return "", ErrInvalidMode
	}
}

// protocolURL resolves the DSP protocol endpoint of a provider connector.
func (c *Client) protocolURL(provider *model.Connector) (string, error) {
	switch provider.Mode {
	case model.ConnectorModeManaged:
		if provider.Ports == nil {
			return "", ErrNoPorts
		}
		return fmt.Sprintf("http://edc-%s-%s:%d/protocol", provider.Type, provider.ID, provider.Ports.Protocol), nil
	case model.ConnectorModeRemote:
		if provider.EndpointsURL == nil {
			return "", ErrInvalidMode
		}
		return provider.EndpointsURL.Protocol, nil
	default:
		return "", ErrInvalidMode
	}
}

func apiKey(conn *model.Connector) (string, error) {
	if conn.APIKey == "" {
		return "", ErrNoAPIKey
	}
	return conn.APIKey, nil
}

// do performs one management API request and returns the response body.
// Non-2xx responses become *StatusError; transport failures are returned
// wrapped, for the callers to map to 502.
func (c *Client) do(ctx context.Context, method, url, key string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", key)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("edc request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("edc response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(b)}
	}
	return b, nil
}

// call resolves url and key for conn, performs the request and optionally
// decodes the JSON response into out.
func (c *Client) call(ctx context.Context, method string, conn *model.Connector, path string, payload, out any) error {
	url, err := c.baseURL(conn, path)
	if err != nil {
		return err
	}
	key, err := apiKey(conn)
	if err != nil {
		return err
	}
	b, err := c.do(ctx, method, url, key, payload)
	if err != nil {
		return err
	}
	if out == nil || len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode edc response: %w", err)
	}
	return nil
}

// Fetch retrieves an arbitrary URL, relaying the Authorization header when
// set. Used by the pull proxy and the http-logger proxy.
func (c *Client) Fetch(ctx context.Context, uri, authorization string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, "", err
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", uri, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &StatusError{Code: resp.StatusCode, Body: string(b)}
	}
	return b, resp.Header.Get("Content-Type"), nil
}

// newContext is the minimal JSON-LD context sent on most requests.
func newContext() map[string]any {
	return map[string]any{"@vocab": model.EDCContextVocab}
}

// querySpec is the list-request body used by the /request endpoints.
func querySpec() map[string]any {
	return map[string]any{
		"@context": newContext(),
		"@type":    "QuerySpec",
	}
}
