// Package tools provides a metadata-driven registry for MCP tool
// definitions. It defines tools declaratively and uses type-safe handlers
// to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a client method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "get_pokemon_pokedex_info")
	Name string

	// Method is the client method name (e.g., "GetPokemonInfo")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (lookup, search, compare)
	Category string

	// ErrorContext prefixes error messages returned to the host,
	// e.g. "Error getting pokemon info"
	ErrorContext string

	// ReadOnly indicates the tool doesn't modify any state
	ReadOnly bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
