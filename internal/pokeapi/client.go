package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// listAllLimit is the page size used for the short unpaginated listings
// (types, generations) where the full set fits one page.
const listAllLimit = 100

// Client is the gateway to the upstream PokéAPI. Every call is a live round
// trip: no retries and no caching happen here. Retry policy, if any, belongs
// to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int, timeout time.Duration) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), rps),
	}
}

// GetPokemon fetches a creature record by name or numeric id.
func (c *Client) GetPokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	var p Pokemon
	if err := c.get(ctx, c.baseURL+"/pokemon/"+pathSegment(nameOrID), &p); err != nil {
		return nil, fmt.Errorf("get pokemon %q: %w", nameOrID, err)
	}
	return &p, nil
}

func (c *Client) GetSpecies(ctx context.Context, name string) (*PokemonSpecies, error) {
	var s PokemonSpecies
	if err := c.get(ctx, c.baseURL+"/pokemon-species/"+pathSegment(name), &s); err != nil {
		return nil, fmt.Errorf("get species %q: %w", name, err)
	}
	return &s, nil
}

func (c *Client) GetType(ctx context.Context, name string) (*Type, error) {
	var t Type
	if err := c.get(ctx, c.baseURL+"/type/"+pathSegment(name), &t); err != nil {
		return nil, fmt.Errorf("get type %q: %w", name, err)
	}
	return &t, nil
}

func (c *Client) GetGeneration(ctx context.Context, name string) (*Generation, error) {
	var g Generation
	if err := c.get(ctx, c.baseURL+"/generation/"+pathSegment(name), &g); err != nil {
		return nil, fmt.Errorf("get generation %q: %w", name, err)
	}
	return &g, nil
}

func (c *Client) GetStat(ctx context.Context, name string) (*Stat, error) {
	var s Stat
	if err := c.get(ctx, c.baseURL+"/stat/"+pathSegment(name), &s); err != nil {
		return nil, fmt.Errorf("get stat %q: %w", name, err)
	}
	return &s, nil
}

// GetEvolutionChain fetches a chain by the absolute URL the species record
// points at.
func (c *Client) GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChain, error) {
	var ch EvolutionChain
	if err := c.get(ctx, chainURL, &ch); err != nil {
		return nil, fmt.Errorf("get evolution chain %s: %w", chainURL, err)
	}
	return &ch, nil
}

// ListPokemon returns one window of the unfiltered creature name listing.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*NamedPage, error) {
	var page NamedPage
	u := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)
	if err := c.get(ctx, u, &page); err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return &page, nil
}

func (c *Client) ListTypes(ctx context.Context) (*NamedPage, error) {
	var page NamedPage
	u := fmt.Sprintf("%s/type?limit=%d", c.baseURL, listAllLimit)
	if err := c.get(ctx, u, &page); err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	return &page, nil
}

func (c *Client) ListGenerations(ctx context.Context) (*NamedPage, error) {
	var page NamedPage
	u := fmt.Sprintf("%s/generation?limit=%d", c.baseURL, listAllLimit)
	if err := c.get(ctx, u, &page); err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return &page, nil
}

// CountSpecies returns the total species count without fetching the listing.
func (c *Client) CountSpecies(ctx context.Context) (int, error) {
	var page NamedPage
	if err := c.get(ctx, c.baseURL+"/pokemon-species?limit=1", &page); err != nil {
		return 0, fmt.Errorf("count species: %w", err)
	}
	return page.Count, nil
}

func (c *Client) get(ctx context.Context, rawURL string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// pathSegment lower-cases and escapes a user-supplied identifier before it
// is spliced into a request path.
func pathSegment(s string) string {
	return url.PathEscape(strings.ToLower(strings.TrimSpace(s)))
}
