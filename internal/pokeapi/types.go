package pokeapi

// NamedRef is a name + URL reference, the building block of most upstream
// payloads.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NamedPage is one page of a paginated resource listing. Count is the total
// size of the listing, not the page.
type NamedPage struct {
	Count   int        `json:"count"`
	Results []NamedRef `json:"results"`
}

// LocalizedName pairs a display name with its language.
type LocalizedName struct {
	Name     string   `json:"name"`
	Language NamedRef `json:"language"`
}

// APIRef is a bare URL reference (no name), used for evolution chains.
type APIRef struct {
	URL string `json:"url"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

type Cries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

type PokemonType struct {
	Slot int      `json:"slot"`
	Type NamedRef `json:"type"`
}

type PokemonStat struct {
	BaseStat int      `json:"base_stat"`
	Stat     NamedRef `json:"stat"`
}

// Pokemon is the raw upstream creature record. Name is the locale-invariant
// slug; form variants ("venusaur-mega") carry their shared species in
// Species.
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Species NamedRef      `json:"species"`
	Types   []PokemonType `json:"types"`
	Stats   []PokemonStat `json:"stats"`
	Sprites Sprites       `json:"sprites"`
	Cries   Cries         `json:"cries"`
	Weight  int           `json:"weight"`
	Height  int           `json:"height"`
}

type FlavorText struct {
	FlavorText string   `json:"flavor_text"`
	Language   NamedRef `json:"language"`
	Version    NamedRef `json:"version"`
}

// PokemonSpecies groups form variants and carries the localized names,
// generation and evolution chain references.
type PokemonSpecies struct {
	Name              string          `json:"name"`
	Names             []LocalizedName `json:"names"`
	Generation        NamedRef        `json:"generation"`
	EvolutionChain    APIRef          `json:"evolution_chain"`
	FlavorTextEntries []FlavorText    `json:"flavor_text_entries"`
}

type TypeMember struct {
	Pokemon NamedRef `json:"pokemon"`
}

type Type struct {
	Name    string          `json:"name"`
	Names   []LocalizedName `json:"names"`
	Pokemon []TypeMember    `json:"pokemon"`
}

type Generation struct {
	Name           string          `json:"name"`
	Names          []LocalizedName `json:"names"`
	PokemonSpecies []NamedRef      `json:"pokemon_species"`
}

type Stat struct {
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

// ChainLink is one node of the tree-shaped evolution graph.
type ChainLink struct {
	Species   NamedRef    `json:"species"`
	EvolvesTo []ChainLink `json:"evolves_to"`
}

type EvolutionChain struct {
	Chain ChainLink `json:"chain"`
}
