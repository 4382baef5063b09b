package pokeapi

import (
	"regexp"
	"strings"

	"github.com/akarlsson/pokedex-mcp-server/internal/errors"
)

const (
	// DefaultSearchLimit is used when a search tool is called without a limit.
	DefaultSearchLimit = 20

	// MinCompareCount and MaxCompareCount bound the compare_pokemon list.
	MinCompareCount = 2
	MaxCompareCount = 6
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify normalizes a Pokémon name to the lowercase hyphen-joined form
// PokéAPI uses in URLs: "Mr. Mime" -> "mr-mime", "Farfetch'd" -> "farfetchd".
// Already-normalized input passes through unchanged.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "'", "")
	return whitespaceRun.ReplaceAllString(s, "-")
}

// ValidateName checks that a name is non-empty after normalization.
func ValidateName(field, name string) error {
	if Slugify(name) == "" {
		return errors.NewValidationError(field, name, "name must not be empty")
	}
	return nil
}

// NormalizeLimit applies the default for omitted limits and rejects
// negative ones. Zero means "not supplied" on the wire.
func NormalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultSearchLimit, nil
	}
	if limit < 0 {
		return 0, errors.NewValidationError("limit", "", "limit must be positive")
	}
	return limit, nil
}

// ValidateGeneration checks that a generation number is positive. The
// upper bound is not enforced locally; out-of-range values surface as an
// upstream 404.
func ValidateGeneration(generation int) error {
	if generation < 1 {
		return errors.NewValidationError("generation", "", "generation must be a positive integer")
	}
	return nil
}

// ValidateCompareList checks the compare_pokemon name list: 2 to 6 names,
// each non-empty after normalization. This runs before any upstream call.
func ValidateCompareList(names []string) error {
	if len(names) < MinCompareCount || len(names) > MaxCompareCount {
		return errors.NewValidationError("pokemon", "",
			"between 2 and 6 pokemon names are required")
	}
	for _, name := range names {
		if err := ValidateName("pokemon", name); err != nil {
			return err
		}
	}
	return nil
}
