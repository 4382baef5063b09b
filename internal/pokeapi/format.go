package pokeapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Capitalize uppercases the first rune of a name. Upstream slugs are
// already lowercase, so this is all the display form needs.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// TypeNames extracts the capitalized type names of a Pokémon in slot order.
func TypeNames(p *Pokemon) []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, Capitalize(t.Type.Name))
	}
	return names
}

// FormatPokemonInfo renders the single-line Pokédex summary. Height and
// weight arrive as decimetres and hectograms and are divided by 10 to
// yield metres and kilograms with one decimal place.
func FormatPokemonInfo(p *Pokemon) string {
	return fmt.Sprintf("%s (#%d) - %s type, %.1fm tall, %.1fkg",
		Capitalize(p.Name),
		p.ID,
		strings.Join(TypeNames(p), ", "),
		float64(p.Height)/10,
		float64(p.Weight)/10,
	)
}

// SearchEntry is one (name, id) pair of a search listing, in upstream order.
type SearchEntry struct {
	Name string
	ID   int
}

// IDFromURL extracts the numeric id from a detail URL. Upstream URLs look
// like ".../pokemon/25/": split on "/", drop the trailing empty segment,
// take the last non-empty one.
func IDFromURL(url string) int {
	segments := strings.Split(url, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		id, err := strconv.Atoi(segments[i])
		if err != nil {
			return 0
		}
		return id
	}
	return 0
}

// FormatSearchResults renders a search listing: a header line followed by
// one bullet per entry.
func FormatSearchResults(header string, entries []SearchEntry) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n• %s (#%d)", Capitalize(e.Name), e.ID))
	}
	return sb.String()
}

// FormatEvolutionChain renders the evolution tree for a Pokémon as a
// header plus one indented bullet per species, depth-first pre-order.
func FormatEvolutionChain(name string, chain *EvolutionChain) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Evolution chain for %s:", Capitalize(name)))
	writeChainLink(&sb, &chain.Chain, 0)
	return sb.String()
}

// writeChainLink walks the tree recursively, two spaces of indent per
// depth level, children in upstream order before the next sibling.
func writeChainLink(sb *strings.Builder, link *ChainLink, depth int) {
	sb.WriteString(fmt.Sprintf("\n%s• %s",
		strings.Repeat("  ", depth),
		Capitalize(link.Species.Name)))
	for i := range link.EvolvesTo {
		writeChainLink(sb, &link.EvolvesTo[i], depth+1)
	}
}

// ComparisonRow is one Pokémon's stats for the comparison table.
type ComparisonRow struct {
	Name           string
	ID             int
	Types          string // comma-joined capitalized type names
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Total          int
}

// NewComparisonRow builds a row from a fetched Pokémon. Base stats are
// extracted by fixed positional index; upstream guarantees the ordering
// hp, attack, defense, special-attack, special-defense, speed.
func NewComparisonRow(p *Pokemon) (ComparisonRow, error) {
	if len(p.Stats) < 6 {
		return ComparisonRow{}, fmt.Errorf("expected 6 base stats for %q, got %d", p.Name, len(p.Stats))
	}
	row := ComparisonRow{
		Name:           Capitalize(p.Name),
		ID:             p.ID,
		Types:          strings.Join(TypeNames(p), ", "),
		HP:             p.Stats[0].BaseStat,
		Attack:         p.Stats[1].BaseStat,
		Defense:        p.Stats[2].BaseStat,
		SpecialAttack:  p.Stats[3].BaseStat,
		SpecialDefense: p.Stats[4].BaseStat,
		Speed:          p.Stats[5].BaseStat,
	}
	row.Total = row.HP + row.Attack + row.Defense + row.SpecialAttack + row.SpecialDefense + row.Speed
	return row, nil
}

// FormatComparisonTable renders a fixed-width stat table, one row per
// Pokémon in input order.
func FormatComparisonTable(rows []ComparisonRow) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-15s%-20s%-5s%-5s%-5s%-5s%-5s%-5s%s",
		"Name", "Type", "HP", "ATK", "DEF", "SPA", "SPD", "SPE", "Total"))
	sb.WriteString("\n" + strings.Repeat("-", 80))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("\n%-15s%-20s%-5d%-5d%-5d%-5d%-5d%-5d%d",
			r.Name, r.Types, r.HP, r.Attack, r.Defense,
			r.SpecialAttack, r.SpecialDefense, r.Speed, r.Total))
	}
	return sb.String()
}
