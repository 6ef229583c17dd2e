package pokedex

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"pokehub/internal/pokeapi"
)

type listCall struct {
	Limit  int
	Offset int
}

// fakeGateway is an in-memory Gateway double. Lookup misses return
// pokeapi.ErrNotFound; the *_Down flags flip whole operations to
// pokeapi.ErrUnavailable.
type fakeGateway struct {
	mu sync.Mutex

	pokemon     map[string]*pokeapi.Pokemon
	species     map[string]*pokeapi.PokemonSpecies
	types       map[string]*pokeapi.Type
	generations map[string]*pokeapi.Generation
	stats       map[string]*pokeapi.Stat
	chains      map[string]*pokeapi.EvolutionChain

	pokemonList  []pokeapi.NamedRef
	listCount    int
	typePage     []pokeapi.NamedRef
	genPage      []pokeapi.NamedRef
	speciesCount int

	listCalls  []listCall
	listDown   bool
	chainsDown bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		pokemon:     make(map[string]*pokeapi.Pokemon),
		species:     make(map[string]*pokeapi.PokemonSpecies),
		types:       make(map[string]*pokeapi.Type),
		generations: make(map[string]*pokeapi.Generation),
		stats:       make(map[string]*pokeapi.Stat),
		chains:      make(map[string]*pokeapi.EvolutionChain),
	}
}

func newTestService(gw *fakeGateway) *Service {
	return NewService(gw, zap.NewNop(), "es")
}

// addPokemon registers a creature, creates its species record if absent, and
// appends the name to the unfiltered listing.
func (f *fakeGateway) addPokemon(id int, name, speciesName string, typeSlugs ...string) {
	types := make([]pokeapi.PokemonType, 0, len(typeSlugs))
	for i, slug := range typeSlugs {
		types = append(types, pokeapi.PokemonType{
			Slot: i + 1,
			Type: pokeapi.NamedRef{Name: slug},
		})
	}
	f.pokemon[name] = &pokeapi.Pokemon{
		ID:      id,
		Name:    name,
		Species: pokeapi.NamedRef{Name: speciesName},
		Types:   types,
		Sprites: pokeapi.Sprites{FrontDefault: "https://img.test/" + name + ".png"},
	}
	if _, ok := f.species[speciesName]; !ok {
		f.species[speciesName] = &pokeapi.PokemonSpecies{
			Name:       speciesName,
			Generation: pokeapi.NamedRef{Name: "generation-i"},
		}
	}
	f.pokemonList = append(f.pokemonList, pokeapi.NamedRef{Name: name})
	f.listCount = len(f.pokemonList)
}

func (f *fakeGateway) GetPokemon(_ context.Context, nameOrID string) (*pokeapi.Pokemon, error) {
	if p, ok := f.pokemon[nameOrID]; ok {
		return p, nil
	}
	for _, p := range f.pokemon {
		if strconv.Itoa(p.ID) == nameOrID {
			return p, nil
		}
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) GetSpecies(_ context.Context, name string) (*pokeapi.PokemonSpecies, error) {
	if s, ok := f.species[name]; ok {
		return s, nil
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) GetType(_ context.Context, name string) (*pokeapi.Type, error) {
	if t, ok := f.types[name]; ok {
		return t, nil
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) GetGeneration(_ context.Context, name string) (*pokeapi.Generation, error) {
	if g, ok := f.generations[name]; ok {
		return g, nil
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) GetStat(_ context.Context, name string) (*pokeapi.Stat, error) {
	if s, ok := f.stats[name]; ok {
		return s, nil
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) GetEvolutionChain(_ context.Context, url string) (*pokeapi.EvolutionChain, error) {
	if f.chainsDown {
		return nil, pokeapi.ErrUnavailable
	}
	if c, ok := f.chains[url]; ok {
		return c, nil
	}
	return nil, pokeapi.ErrNotFound
}

func (f *fakeGateway) ListPokemon(_ context.Context, limit, offset int) (*pokeapi.NamedPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, listCall{Limit: limit, Offset: offset})
	f.mu.Unlock()

	if f.listDown {
		return nil, pokeapi.ErrUnavailable
	}

	start := offset
	if start > len(f.pokemonList) {
		start = len(f.pokemonList)
	}
	end := start + limit
	if end > len(f.pokemonList) {
		end = len(f.pokemonList)
	}
	return &pokeapi.NamedPage{
		Count:   f.listCount,
		Results: append([]pokeapi.NamedRef(nil), f.pokemonList[start:end]...),
	}, nil
}

func (f *fakeGateway) ListTypes(_ context.Context) (*pokeapi.NamedPage, error) {
	return &pokeapi.NamedPage{Count: len(f.typePage), Results: f.typePage}, nil
}

func (f *fakeGateway) ListGenerations(_ context.Context) (*pokeapi.NamedPage, error) {
	return &pokeapi.NamedPage{Count: len(f.genPage), Results: f.genPage}, nil
}

func (f *fakeGateway) CountSpecies(_ context.Context) (int, error) {
	if f.listDown {
		return 0, pokeapi.ErrUnavailable
	}
	return f.speciesCount, nil
}

// localized builds a one-entry localized name list.
func localized(lang, name string) []pokeapi.LocalizedName {
	return []pokeapi.LocalizedName{{Name: name, Language: pokeapi.NamedRef{Name: lang}}}
}

// chainLink builds a chain node with the given children.
func chainLink(species string, children ...pokeapi.ChainLink) pokeapi.ChainLink {
	return pokeapi.ChainLink{
		Species:   pokeapi.NamedRef{Name: species},
		EvolvesTo: children,
	}
}
