package pokedex

import (
	"context"

	"go.uber.org/zap"

	"pokehub/internal/pokeapi"
)

// Gateway is the read surface of the upstream data provider the service
// depends on. It is injected so handlers and tests can swap in doubles.
type Gateway interface {
	GetPokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error)
	GetSpecies(ctx context.Context, name string) (*pokeapi.PokemonSpecies, error)
	GetType(ctx context.Context, name string) (*pokeapi.Type, error)
	GetGeneration(ctx context.Context, name string) (*pokeapi.Generation, error)
	GetStat(ctx context.Context, name string) (*pokeapi.Stat, error)
	GetEvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error)
	ListPokemon(ctx context.Context, limit, offset int) (*pokeapi.NamedPage, error)
	ListTypes(ctx context.Context) (*pokeapi.NamedPage, error)
	ListGenerations(ctx context.Context) (*pokeapi.NamedPage, error)
	CountSpecies(ctx context.Context) (int, error)
}

// Service implements the list/detail/of-the-day operations on top of the
// gateway. It holds no per-request state; everything is derived fresh per
// call and discarded.
type Service struct {
	gw          Gateway
	log         *zap.Logger
	defaultLang string
}

func NewService(gw Gateway, log *zap.Logger, defaultLang string) *Service {
	if defaultLang == "" {
		defaultLang = "es"
	}
	return &Service{gw: gw, log: log, defaultLang: defaultLang}
}
