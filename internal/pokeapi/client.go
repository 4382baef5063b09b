// Package pokeapi provides the PokéAPI client and the Pokémon lookup
// operations exposed as MCP tools.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/akarlsson/pokedex-mcp-server/internal/errors"
	"github.com/akarlsson/pokedex-mcp-server/metrics"
	"github.com/akarlsson/pokedex-mcp-server/tracing"
)

// Client provides access to PokéAPI. Every call is an independent,
// stateless GET: no caching, no retries, no rate limiting.
type Client struct {
	Config     *Config
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a mock server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.Config.BaseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = l
	}
}

// NewClient creates a PokéAPI client from the given config.
func NewClient(config *Config, opts ...ClientOption) *Client {
	if config == nil {
		config = LoadConfig()
	}
	c := &Client{
		Config:     config,
		HTTPClient: newHTTPClient(config.Timeout),
		Logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newHTTPClient creates an HTTP client with tuned transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// getJSON performs a GET against the given URL and decodes the body into
// out. Errors are translated uniformly: 404 becomes a NotFoundError
// carrying the contextLabel, any other non-2xx status becomes an
// UpstreamError with the status code, a network failure becomes an
// UpstreamError preserving the cause, and a body that fails to decode
// becomes a ValidationError. The endpoint label names the upstream
// resource for metrics and span attributes.
func (c *Client) getJSON(ctx context.Context, endpoint, url, contextLabel string, out any) (err error) {
	ctx, span := tracing.StartSpan(ctx, "pokeapi."+endpoint)
	defer span.End()
	tracing.AddUpstreamAttributes(span, endpoint, contextLabel)
	defer func() { tracing.RecordError(span, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewNetworkError(contextLabel, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.Config.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, false, "network")
		c.Logger.Warn("Upstream request failed", "url", url, "error", err)
		return errors.NewNetworkError(contextLabel, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		metrics.RecordUpstreamCall(endpoint, duration, false, "404")
		return errors.NewNotFoundError(contextLabel)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamCall(endpoint, duration, false, fmt.Sprintf("%d", resp.StatusCode))
		return errors.NewUpstreamError(contextLabel, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, false, "decode")
		return errors.NewValidationError("response", "", fmt.Sprintf("unexpected response shape: %v", err))
	}

	metrics.RecordUpstreamCall(endpoint, duration, true, "")
	return nil
}

// GetPokemon fetches a single Pokémon by name. The name is normalized to
// the upstream slug form before the call and the response shape is
// checked against the record invariants (positive id, non-empty types).
func (c *Client) GetPokemon(ctx context.Context, name string) (*Pokemon, error) {
	if err := ValidateName("name", name); err != nil {
		return nil, err
	}
	slug := Slugify(name)
	contextLabel := fmt.Sprintf("Pokémon %q", name)

	var p Pokemon
	if err := c.getJSON(ctx, "pokemon", c.Config.BaseURL+"/pokemon/"+slug, contextLabel, &p); err != nil {
		return nil, err
	}
	if p.ID <= 0 {
		return nil, errors.NewValidationError("response", slug, "missing pokemon id")
	}
	if len(p.Types) == 0 {
		return nil, errors.NewValidationError("response", slug, "pokemon has no types")
	}
	return &p, nil
}

// GetType fetches the member listing for a Pokémon type.
func (c *Client) GetType(ctx context.Context, typeName string) (*TypeResponse, error) {
	if err := ValidateName("type", typeName); err != nil {
		return nil, err
	}
	slug := Slugify(typeName)
	contextLabel := fmt.Sprintf("Type %q", typeName)

	var t TypeResponse
	if err := c.getJSON(ctx, "type", c.Config.BaseURL+"/type/"+slug, contextLabel, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetGeneration fetches the species listing for a generation. The upper
// bound is not validated locally; an out-of-range generation surfaces as
// an upstream 404.
func (c *Client) GetGeneration(ctx context.Context, generation int) (*GenerationResponse, error) {
	if err := ValidateGeneration(generation); err != nil {
		return nil, err
	}
	contextLabel := fmt.Sprintf("Generation %d", generation)

	var g GenerationResponse
	if err := c.getJSON(ctx, "generation", fmt.Sprintf("%s/generation/%d", c.Config.BaseURL, generation), contextLabel, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetSpecies fetches a pokemon-species document by the URL returned from
// a Pokémon lookup. The name is only used in the error context label.
func (c *Client) GetSpecies(ctx context.Context, url, name string) (*Species, error) {
	contextLabel := fmt.Sprintf("Species for %q", name)

	var s Species
	if err := c.getJSON(ctx, "pokemon-species", url, contextLabel, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEvolutionChain fetches an evolution-chain document by the URL
// returned from a species lookup.
func (c *Client) GetEvolutionChain(ctx context.Context, url, name string) (*EvolutionChain, error) {
	contextLabel := fmt.Sprintf("Evolution chain for %q", name)

	var ec EvolutionChain
	if err := c.getJSON(ctx, "evolution-chain", url, contextLabel, &ec); err != nil {
		return nil, err
	}
	if ec.Chain.Species.Name == "" {
		return nil, errors.NewValidationError("response", name, "evolution chain has no root species")
	}
	return &ec, nil
}
