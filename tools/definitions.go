package tools

// AllTools contains all tool specifications for the Pokédex MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:         "get_pokemon_pokedex_info",
		Method:       "GetPokemonInfo",
		Title:        "Get Pokédex Info",
		Category:     "lookup",
		ErrorContext: "Error getting pokemon info",
		Description: `Get basic Pokédex data for ONE Pokémon: number, types, height, weight.

USE WHEN: User asks "tell me about Pikachu", "what type is Gengar", "how tall is Snorlax".

NOT FOR: Comparing several Pokémon (use compare_pokemon). Not for evolution info (use get_pokemon_evolution_chain).

PARAMETERS:
- name: Pokemon name, any case or spacing (required)

RETURNS: One line with name, Pokédex number, types, height in metres, weight in kilograms.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:         "search_pokemon_by_type",
		Method:       "SearchByType",
		Title:        "Search by Type",
		Category:     "search",
		ErrorContext: "Error searching pokemon by type",
		Description: `List Pokémon of a given elemental TYPE.

USE WHEN: User asks "show me fire Pokémon", "list some dragon types", "which Pokémon are ghost type".

NOT FOR: Listing by generation (use search_pokemon_by_generation). Not for one specific Pokémon (use get_pokemon_pokedex_info).

PARAMETERS:
- type: Type name like fire, water, dragon (required)
- limit: Max results (default 20)

RETURNS: Header with the count, then one bulleted line per Pokémon with its Pokédex number.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:         "search_pokemon_by_generation",
		Method:       "SearchByGeneration",
		Title:        "Search by Generation",
		Category:     "search",
		ErrorContext: "Error searching pokemon by generation",
		Description: `List Pokémon species introduced in a GENERATION (game era).

USE WHEN: User asks "show gen 1 Pokémon", "which Pokémon are from generation 3", "list Johto-era Pokémon".

NOT FOR: Listing by elemental type (use search_pokemon_by_type).

PARAMETERS:
- generation: Generation number, 1-9 (required)
- limit: Max results (default 20)

RETURNS: Header with the count, then one bulleted line per species with its Pokédex number.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:         "get_pokemon_evolution_chain",
		Method:       "GetEvolutionChain",
		Title:        "Get Evolution Chain",
		Category:     "lookup",
		ErrorContext: "Error getting evolution chain",
		Description: `Show the full EVOLUTION tree for a Pokémon, including branches.

USE WHEN: User asks "what does Eevee evolve into", "show Bulbasaur's evolutions", "evolution line of Dratini".

NOT FOR: Basic stats or types (use get_pokemon_pokedex_info).

PARAMETERS:
- name: Pokemon name (required)

RETURNS: Indented tree of species names, one bullet per species, deeper indent per evolution stage.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:         "compare_pokemon",
		Method:       "ComparePokemon",
		Title:        "Compare Pokémon",
		Category:     "compare",
		ErrorContext: "Error comparing pokemon",
		Description: `Compare base stats of SEVERAL Pokémon side by side.

USE WHEN: User asks "compare Pikachu and Raichu", "who is faster, Jolteon or Crobat", "stat comparison of the Kanto starters".

NOT FOR: A single Pokémon's data (use get_pokemon_pokedex_info).

PARAMETERS:
- pokemon: List of 2 to 6 Pokemon names (required)

RETURNS: Fixed-width table with types, the six base stats, and the stat total per Pokémon.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
