package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apierrors "github.com/akarlsson/pokedex-mcp-server/internal/errors"
)

func makeStats(hp, atk, def, spa, spd, spe int) []StatSlot {
	return []StatSlot{
		{BaseStat: hp, Stat: NamedResource{Name: "hp"}},
		{BaseStat: atk, Stat: NamedResource{Name: "attack"}},
		{BaseStat: def, Stat: NamedResource{Name: "defense"}},
		{BaseStat: spa, Stat: NamedResource{Name: "special-attack"}},
		{BaseStat: spd, Stat: NamedResource{Name: "special-defense"}},
		{BaseStat: spe, Stat: NamedResource{Name: "speed"}},
	}
}

// newMockPokeAPI serves a small fixed Pokédex. The returned counter tracks
// how many upstream requests were issued.
func newMockPokeAPI(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64

	mux := http.NewServeMux()
	serve := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encoding mock response: %v", err)
		}
	}
	base := func(r *http.Request) string { return "http://" + r.Host }

	mux.HandleFunc("/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/pokemon/"), "/")
		switch name {
		case "pikachu":
			serve(w, Pokemon{
				ID: 25, Name: "pikachu", Height: 4, Weight: 60,
				Types:   []TypeSlot{{Slot: 1, Type: NamedResource{Name: "electric"}}},
				Stats:   makeStats(35, 55, 40, 50, 50, 90),
				Species: NamedResource{Name: "pikachu", URL: base(r) + "/pokemon-species/25/"},
			})
		case "raichu":
			serve(w, Pokemon{
				ID: 26, Name: "raichu", Height: 8, Weight: 300,
				Types:   []TypeSlot{{Slot: 1, Type: NamedResource{Name: "electric"}}},
				Stats:   makeStats(60, 90, 55, 90, 80, 110),
				Species: NamedResource{Name: "raichu", URL: base(r) + "/pokemon-species/26/"},
			})
		case "bulbasaur":
			serve(w, Pokemon{
				ID: 1, Name: "bulbasaur", Height: 7, Weight: 69,
				Types: []TypeSlot{
					{Slot: 1, Type: NamedResource{Name: "grass"}},
					{Slot: 2, Type: NamedResource{Name: "poison"}},
				},
				Stats:   makeStats(45, 49, 49, 65, 65, 45),
				Species: NamedResource{Name: "bulbasaur", URL: base(r) + "/pokemon-species/1/"},
			})
		case "eevee":
			serve(w, Pokemon{
				ID: 133, Name: "eevee", Height: 3, Weight: 65,
				Types:   []TypeSlot{{Slot: 1, Type: NamedResource{Name: "normal"}}},
				Stats:   makeStats(55, 55, 50, 45, 65, 55),
				Species: NamedResource{Name: "eevee", URL: base(r) + "/pokemon-species/133/"},
			})
		case "mr-mime":
			serve(w, Pokemon{
				ID: 122, Name: "mr-mime", Height: 13, Weight: 545,
				Types: []TypeSlot{
					{Slot: 1, Type: NamedResource{Name: "psychic"}},
					{Slot: 2, Type: NamedResource{Name: "fairy"}},
				},
				Stats:   makeStats(40, 45, 65, 100, 120, 90),
				Species: NamedResource{Name: "mr-mime", URL: base(r) + "/pokemon-species/122/"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	mux.HandleFunc("/pokemon-species/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/pokemon-species/"), "/")
		switch id {
		case "1":
			s := Species{Name: "bulbasaur"}
			s.EvolutionChain.URL = base(r) + "/evolution-chain/1/"
			serve(w, s)
		case "133":
			s := Species{Name: "eevee"}
			s.EvolutionChain.URL = base(r) + "/evolution-chain/67/"
			serve(w, s)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	mux.HandleFunc("/evolution-chain/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/evolution-chain/"), "/")
		switch id {
		case "1":
			serve(w, EvolutionChain{ID: 1, Chain: ChainLink{
				Species: NamedResource{Name: "bulbasaur"},
				EvolvesTo: []ChainLink{{
					Species: NamedResource{Name: "ivysaur"},
					EvolvesTo: []ChainLink{{
						Species: NamedResource{Name: "venusaur"},
					}},
				}},
			}})
		case "67":
			serve(w, EvolutionChain{ID: 67, Chain: ChainLink{
				Species: NamedResource{Name: "eevee"},
				EvolvesTo: []ChainLink{
					{Species: NamedResource{Name: "vaporeon"}},
					{Species: NamedResource{Name: "jolteon"}},
					{Species: NamedResource{Name: "flareon"}},
				},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	mux.HandleFunc("/type/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/type/"), "/")
		if name != "fire" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		members := []TypePokemonSlot{}
		for i, n := range []string{"charmander", "charmeleon", "charizard", "vulpix", "ninetales", "growlithe", "arcanine"} {
			members = append(members, TypePokemonSlot{
				Pokemon: NamedResource{Name: n, URL: fmt.Sprintf("%s/pokemon/%d/", base(r), i+4)},
			})
		}
		serve(w, TypeResponse{ID: 10, Name: "fire", Pokemon: members})
	})

	mux.HandleFunc("/generation/", func(w http.ResponseWriter, r *http.Request) {
		n := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/generation/"), "/")
		if n != "1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		serve(w, GenerationResponse{ID: 1, Name: "generation-i", PokemonSpecies: []NamedResource{
			{Name: "bulbasaur", URL: base(r) + "/pokemon-species/1/"},
			{Name: "charmander", URL: base(r) + "/pokemon-species/4/"},
			{Name: "squirtle", URL: base(r) + "/pokemon-species/7/"},
		}})
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

// =============================================================================
// GetPokemonInfoMCP
// =============================================================================

func TestGetPokemonInfoMCP(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.GetPokemonInfoMCP(context.Background(), GetPokemonInfoArgs{Name: "Pikachu"})
	if err != nil {
		t.Fatalf("GetPokemonInfoMCP failed: %v", err)
	}
	want := "Pikachu (#25) - Electric type, 0.4m tall, 6.0kg"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestGetPokemonInfoMCP_SpacedName(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.GetPokemonInfoMCP(context.Background(), GetPokemonInfoArgs{Name: "Mr. Mime"})
	if err != nil {
		t.Fatalf("GetPokemonInfoMCP failed: %v", err)
	}
	want := "Mr-mime (#122) - Psychic, Fairy type, 1.3m tall, 54.5kg"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestGetPokemonInfoMCP_NotFound(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.GetPokemonInfoMCP(context.Background(), GetPokemonInfoArgs{Name: "mewthree"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

func TestGetPokemonInfoMCP_Idempotent(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	first, err := client.GetPokemonInfoMCP(context.Background(), GetPokemonInfoArgs{Name: "pikachu"})
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := client.GetPokemonInfoMCP(context.Background(), GetPokemonInfoArgs{Name: "pikachu"})
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated call not byte-identical: %q vs %q", first, second)
	}
}

// =============================================================================
// SearchByTypeMCP
// =============================================================================

func TestSearchByTypeMCP_LimitTruncates(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.SearchByTypeMCP(context.Background(), SearchByTypeArgs{Type: "fire", Limit: 5})
	if err != nil {
		t.Fatalf("SearchByTypeMCP failed: %v", err)
	}

	lines := strings.Split(text, "\n")
	if lines[0] != "Found 5 Fire type Pokemon:" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 bullets, got %d lines", len(lines))
	}
	if lines[1] != "• Charmander (#4)" {
		t.Errorf("first entry = %q, want upstream order", lines[1])
	}
}

func TestSearchByTypeMCP_DefaultLimit(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	// Upstream has 7 members, under the default of 20: all returned
	text, err := client.SearchByTypeMCP(context.Background(), SearchByTypeArgs{Type: "fire"})
	if err != nil {
		t.Fatalf("SearchByTypeMCP failed: %v", err)
	}
	if !strings.HasPrefix(text, "Found 7 Fire type Pokemon:") {
		t.Errorf("header = %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestSearchByTypeMCP_HugeLimit(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	// A limit far beyond the listing size must not panic on allocation;
	// it simply returns the whole listing.
	text, err := client.SearchByTypeMCP(context.Background(), SearchByTypeArgs{Type: "fire", Limit: 1 << 50})
	if err != nil {
		t.Fatalf("SearchByTypeMCP failed: %v", err)
	}
	if !strings.HasPrefix(text, "Found 7 Fire type Pokemon:") {
		t.Errorf("header = %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestSearchByTypeMCP_NegativeLimit(t *testing.T) {
	server, calls := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.SearchByTypeMCP(context.Background(), SearchByTypeArgs{Type: "fire", Limit: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if calls.Load() != 0 {
		t.Errorf("validation should fail before any upstream call, got %d", calls.Load())
	}
}

// =============================================================================
// SearchByGenerationMCP
// =============================================================================

func TestSearchByGenerationMCP(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.SearchByGenerationMCP(context.Background(), SearchByGenerationArgs{Generation: 1})
	if err != nil {
		t.Fatalf("SearchByGenerationMCP failed: %v", err)
	}
	want := strings.Join([]string{
		"Found 3 Pokemon from generation 1:",
		"• Bulbasaur (#1)",
		"• Charmander (#4)",
		"• Squirtle (#7)",
	}, "\n")
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestSearchByGenerationMCP_HugeLimit(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.SearchByGenerationMCP(context.Background(), SearchByGenerationArgs{Generation: 1, Limit: 1 << 50})
	if err != nil {
		t.Fatalf("SearchByGenerationMCP failed: %v", err)
	}
	if !strings.HasPrefix(text, "Found 3 Pokemon from generation 1:") {
		t.Errorf("header = %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestSearchByGenerationMCP_UpstreamNotFound(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.SearchByGenerationMCP(context.Background(), SearchByGenerationArgs{Generation: 42})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

// =============================================================================
// GetEvolutionChainMCP
// =============================================================================

func TestGetEvolutionChainMCP_Linear(t *testing.T) {
	server, calls := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.GetEvolutionChainMCP(context.Background(), GetEvolutionChainArgs{Name: "bulbasaur"})
	if err != nil {
		t.Fatalf("GetEvolutionChainMCP failed: %v", err)
	}
	want := strings.Join([]string{
		"Evolution chain for Bulbasaur:",
		"• Bulbasaur",
		"  • Ivysaur",
		"    • Venusaur",
	}, "\n")
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 sequential upstream calls, got %d", calls.Load())
	}
}

func TestGetEvolutionChainMCP_Branching(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.GetEvolutionChainMCP(context.Background(), GetEvolutionChainArgs{Name: "eevee"})
	if err != nil {
		t.Fatalf("GetEvolutionChainMCP failed: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), text)
	}
	if lines[1] != "• Eevee" {
		t.Errorf("root = %q", lines[1])
	}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line, "  • ") || strings.HasPrefix(line, "    ") {
			t.Errorf("branch %q should sit at depth 1", line)
		}
	}
}

func TestGetEvolutionChainMCP_StageContext(t *testing.T) {
	// raichu resolves as a Pokémon but has no species document in the
	// mock, so the second stage fails and must say so.
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.GetEvolutionChainMCP(context.Background(), GetEvolutionChainArgs{Name: "raichu"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Species for") {
		t.Errorf("error should identify the failing stage: %q", err.Error())
	}
}

// =============================================================================
// ComparePokemonMCP
// =============================================================================

func TestComparePokemonMCP(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	text, err := client.ComparePokemonMCP(context.Background(), ComparePokemonArgs{
		Pokemon: []string{"pikachu", "raichu"},
	})
	if err != nil {
		t.Fatalf("ComparePokemonMCP failed: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), text)
	}
	if lines[1] != strings.Repeat("-", 80) {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Pikachu") || !strings.HasPrefix(lines[3], "Raichu") {
		t.Errorf("rows must preserve caller order: %q / %q", lines[2], lines[3])
	}
	// Totals equal the sum of the six stat columns
	if !strings.HasSuffix(lines[2], "320") {
		t.Errorf("pikachu total = %q, want suffix 320", lines[2])
	}
	if !strings.HasSuffix(lines[3], "485") {
		t.Errorf("raichu total = %q, want suffix 485", lines[3])
	}
}

func TestComparePokemonMCP_TooFewNames(t *testing.T) {
	server, calls := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.ComparePokemonMCP(context.Background(), ComparePokemonArgs{
		Pokemon: []string{"pikachu"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if calls.Load() != 0 {
		t.Errorf("validation must fail before any network call, got %d calls", calls.Load())
	}
}

func TestComparePokemonMCP_AbortsOnFailure(t *testing.T) {
	server, _ := newMockPokeAPI(t)
	client := newTestClient(server.URL)

	_, err := client.ComparePokemonMCP(context.Background(), ComparePokemonArgs{
		Pokemon: []string{"pikachu", "mewthree", "raichu"},
	})
	if err == nil {
		t.Fatal("expected error, not a partial table")
	}
	if !apierrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if !strings.Contains(err.Error(), "mewthree") {
		t.Errorf("error should name the failing Pokémon: %q", err.Error())
	}
}
