package pokeapi

// NamedResource is a name plus a detail URL, the building block of most
// PokéAPI listings.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the subset of the /pokemon/{name} response this server uses.
// Height is in decimetres and Weight in hectograms, as upstream delivers
// them; Stats preserve the fixed upstream ordering (hp, attack, defense,
// special-attack, special-defense, speed).
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Height  int           `json:"height"`
	Weight  int           `json:"weight"`
	Types   []TypeSlot    `json:"types"`
	Stats   []StatSlot    `json:"stats"`
	Species NamedResource `json:"species"`
}

// TypeSlot is one entry of a Pokémon's ordered type listing.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatSlot is one entry of a Pokémon's base stat listing.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// TypeResponse is the subset of the /type/{name} response this server uses.
type TypeResponse struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Pokemon []TypePokemonSlot `json:"pokemon"`
}

// TypePokemonSlot wraps one member of a type's Pokémon listing.
type TypePokemonSlot struct {
	Pokemon NamedResource `json:"pokemon"`
}

// GenerationResponse is the subset of the /generation/{n} response this
// server uses.
type GenerationResponse struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}

// Species is the subset of a pokemon-species document this server uses:
// only the reference to the evolution chain.
type Species struct {
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// EvolutionChain is an evolution-chain document. Chain is the root of the
// species tree.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the evolution tree. EvolvesTo holds the
// children in upstream order; branching evolutions have more than one.
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}
