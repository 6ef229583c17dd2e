package models

// PokemonSummary is the translated, display-ready shape of one list row.
// Only this shape leaves the list endpoint; raw upstream fields never do.
type PokemonSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`       // display name in the requested language
	Generation string   `json:"generation"` // translated generation name
	Types      []string `json:"types"`      // translated type names, upstream slot order
	Image      string   `json:"image"`      // default front sprite URL
}

// PokemonPage is one page of list results plus pagination state.
type PokemonPage struct {
	PokemonList []PokemonSummary `json:"pokemonList"`
	Count       int              `json:"count"`
	NextCursor  *int             `json:"nextCursor,omitempty"`
}

// StatName keeps the upstream stat slug next to its translation so clients
// can key on the slug and render the translation.
type StatName struct {
	OriginalName   string `json:"originalName"`
	TranslatedName string `json:"translatedName"`
}

type StatValue struct {
	Stat  StatName `json:"stat"`
	Value int      `json:"value"`
}

// EvolutionNode is one member of a flattened evolution chain.
type EvolutionNode struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TranslatedName string `json:"translatedName"`
	Image          string `json:"image"`
}

type Cries struct {
	Latest string `json:"latest,omitempty"`
	Legacy string `json:"legacy,omitempty"`
}

// PokemonDetail is the full detail-view shape.
type PokemonDetail struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Generation     string          `json:"generation"`
	Types          []string        `json:"types"`
	Image          string          `json:"image"`
	ShinyImage     string          `json:"shinyImage"`
	Cries          Cries           `json:"cries"`
	Description    string          `json:"description"`
	Stats          []StatValue     `json:"stats"`
	EvolutionChain []EvolutionNode `json:"evolutionChain"`
	Weight         int             `json:"weight"`
	Height         int             `json:"height"`
}

// TypeOption backs the type filter dropdown.
type TypeOption struct {
	OriginalName   string `json:"originalName"`
	TranslatedName string `json:"translatedName"`
}

// GenerationOption backs the generation filter dropdown. GenerationNumber is
// the ordinal parsed from the upstream slug ("generation-iv" -> 4).
type GenerationOption struct {
	OriginalName     string `json:"originalName"`
	TranslatedName   string `json:"translatedName"`
	GenerationNumber int    `json:"generationNumber"`
}

// PokemonOfTheDay pairs the deterministic daily pick with the date that
// produced it.
type PokemonOfTheDay struct {
	Pokemon PokemonSummary `json:"pokemon"`
	Date    string         `json:"date"`
}
