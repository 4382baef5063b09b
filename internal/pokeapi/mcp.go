package pokeapi

import (
	"context"
	"fmt"
)

// MCP tool wrapper methods.
// Each method validates its arguments, issues the upstream call(s), and
// renders the result as a single text block. Errors propagate to the
// tools layer, which converts them into error-flagged results.

// GetPokemonInfoArgs contains parameters for the Pokédex info lookup.
type GetPokemonInfoArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Pokemon name, any case or spacing (e.g. 'Pikachu', 'mr. mime')"`
}

// SearchByTypeArgs contains parameters for the type search.
type SearchByTypeArgs struct {
	Type  string `json:"type" jsonschema:"required" jsonschema_description:"Pokemon type name (e.g. 'fire', 'water', 'dragon')"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 20)"`
}

// SearchByGenerationArgs contains parameters for the generation search.
type SearchByGenerationArgs struct {
	Generation int `json:"generation" jsonschema:"required" jsonschema_description:"Generation number (1-9)"`
	Limit      int `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 20)"`
}

// GetEvolutionChainArgs contains parameters for the evolution chain lookup.
type GetEvolutionChainArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Pokemon name whose evolution chain to show"`
}

// ComparePokemonArgs contains parameters for the stat comparison.
type ComparePokemonArgs struct {
	Pokemon []string `json:"pokemon" jsonschema:"required" jsonschema_description:"Two to six Pokemon names to compare"`
}

// GetPokemonInfoMCP returns the one-line Pokédex summary for a Pokémon.
func (c *Client) GetPokemonInfoMCP(ctx context.Context, args GetPokemonInfoArgs) (string, error) {
	p, err := c.GetPokemon(ctx, args.Name)
	if err != nil {
		return "", err
	}
	return FormatPokemonInfo(p), nil
}

// SearchByTypeMCP lists Pokémon of a given type, truncated to the limit,
// in upstream listing order.
func (c *Client) SearchByTypeMCP(ctx context.Context, args SearchByTypeArgs) (string, error) {
	limit, err := NormalizeLimit(args.Limit)
	if err != nil {
		return "", err
	}

	t, err := c.GetType(ctx, args.Type)
	if err != nil {
		return "", err
	}

	entries := make([]SearchEntry, 0, min(limit, len(t.Pokemon)))
	for _, member := range t.Pokemon {
		if len(entries) >= limit {
			break
		}
		entries = append(entries, SearchEntry{
			Name: member.Pokemon.Name,
			ID:   IDFromURL(member.Pokemon.URL),
		})
	}

	header := fmt.Sprintf("Found %d %s type Pokemon:", len(entries), Capitalize(Slugify(args.Type)))
	return FormatSearchResults(header, entries), nil
}

// SearchByGenerationMCP lists species introduced in a generation,
// truncated to the limit, in upstream listing order.
func (c *Client) SearchByGenerationMCP(ctx context.Context, args SearchByGenerationArgs) (string, error) {
	limit, err := NormalizeLimit(args.Limit)
	if err != nil {
		return "", err
	}

	g, err := c.GetGeneration(ctx, args.Generation)
	if err != nil {
		return "", err
	}

	entries := make([]SearchEntry, 0, min(limit, len(g.PokemonSpecies)))
	for _, species := range g.PokemonSpecies {
		if len(entries) >= limit {
			break
		}
		entries = append(entries, SearchEntry{
			Name: species.Name,
			ID:   IDFromURL(species.URL),
		})
	}

	header := fmt.Sprintf("Found %d Pokemon from generation %d:", len(entries), args.Generation)
	return FormatSearchResults(header, entries), nil
}

// GetEvolutionChainMCP renders the evolution tree for a Pokémon. Three
// sequential dependent calls: pokemon -> species -> evolution chain, each
// with its own error context so a failure identifies the stage.
func (c *Client) GetEvolutionChainMCP(ctx context.Context, args GetEvolutionChainArgs) (string, error) {
	p, err := c.GetPokemon(ctx, args.Name)
	if err != nil {
		return "", err
	}

	species, err := c.GetSpecies(ctx, p.Species.URL, args.Name)
	if err != nil {
		return "", err
	}

	chain, err := c.GetEvolutionChain(ctx, species.EvolutionChain.URL, args.Name)
	if err != nil {
		return "", err
	}

	return FormatEvolutionChain(Slugify(args.Name), chain), nil
}

// ComparePokemonMCP renders a fixed-width stat comparison table for 2-6
// Pokémon. Fetches run sequentially in caller order; the first failure
// aborts the whole comparison, never returning a partial table.
func (c *Client) ComparePokemonMCP(ctx context.Context, args ComparePokemonArgs) (string, error) {
	if err := ValidateCompareList(args.Pokemon); err != nil {
		return "", err
	}

	rows := make([]ComparisonRow, 0, len(args.Pokemon))
	for _, name := range args.Pokemon {
		p, err := c.GetPokemon(ctx, name)
		if err != nil {
			return "", err
		}
		row, err := NewComparisonRow(p)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	return FormatComparisonTable(rows), nil
}
