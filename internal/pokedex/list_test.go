package pokedex

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokehub/internal/pokeapi"
)

func TestListPageNeverExceedsLimit(t *testing.T) {
	gw := newFakeGateway()
	for i := 1; i <= 50; i++ {
		name := fmt.Sprintf("pokemon-%02d", i)
		gw.addPokemon(i, name, name, "normal")
	}
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{Limit: 30})
	require.NoError(t, err)

	assert.Len(t, page.PokemonList, 30)
	assert.Equal(t, 50, page.Count)
	require.NotNil(t, page.NextCursor)
	// the overfetched round consumed 40 raw names, so the cursor resumes at 41
	assert.Equal(t, 41, *page.NextCursor)

	// ascending by id
	for i, p := range page.PokemonList {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestListPageTerminatesWhenUpstreamExhausted(t *testing.T) {
	gw := newFakeGateway()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("pokemon-%02d", i)
		gw.addPokemon(i, name, name)
	}
	// upstream claims far more than it can deliver; the second round yields
	// zero names and the loop must stop
	gw.listCount = 500
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{Limit: 30})
	require.NoError(t, err)

	assert.Len(t, page.PokemonList, 5)
	assert.Equal(t, 500, page.Count)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, 6, *page.NextCursor)
	require.Len(t, gw.listCalls, 2)
	assert.Equal(t, 5, gw.listCalls[1].Offset)
}

func TestListPageExcludesFormVariants(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(3, "venusaur", "venusaur", "grass")
	gw.addPokemon(10033, "venusaur-mega", "venusaur", "grass")
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{})
	require.NoError(t, err)

	require.Len(t, page.PokemonList, 1)
	assert.Equal(t, "venusaur", page.PokemonList[0].Name)
	assert.Nil(t, page.NextCursor)

	// the variant is still reachable through the detail path
	detail, err := svc.Detail(context.Background(), "venusaur-mega", "es")
	require.NoError(t, err)
	assert.Equal(t, 10033, detail.ID)
}

func TestListPageSearchPullsEvolutionFamily(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(1, "bulbasaur", "bulbasaur", "grass")
	gw.addPokemon(4, "charmander", "charmander", "fire")
	gw.addPokemon(5, "charmeleon", "charmeleon", "fire")
	gw.addPokemon(6, "charizard", "charizard", "fire")

	gw.species["charmander"].EvolutionChain = pokeapi.APIRef{URL: "https://api.test/chain/2"}
	gw.chains["https://api.test/chain/2"] = &pokeapi.EvolutionChain{
		Chain: chainLink("charmander", chainLink("charmeleon", chainLink("charizard"))),
	}
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{Search: "mander"})
	require.NoError(t, err)

	// "mander" matches only charmander, but its whole family comes along
	require.Len(t, page.PokemonList, 3)
	assert.Equal(t, 4, page.PokemonList[0].ID)
	assert.Equal(t, 5, page.PokemonList[1].ID)
	assert.Equal(t, 6, page.PokemonList[2].ID)
	assert.Nil(t, page.NextCursor)
}

func TestListPageTypeFilterCountQuirk(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(1, "bulbasaur", "bulbasaur", "grass")
	gw.listCount = 1302
	gw.types["dragon"] = typeWithMembers("dragon")
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{Types: []string{"dragon"}})
	require.NoError(t, err)

	// nothing survives the type filter, yet count and nextCursor still
	// report pre-filter availability (documented quirk)
	assert.Empty(t, page.PokemonList)
	assert.Equal(t, 1302, page.Count)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, 1, *page.NextCursor)
}

func TestListPageGenerationFilterSingleRound(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(1, "bulbasaur", "bulbasaur", "grass")
	gw.addPokemon(4, "charmander", "charmander", "fire")
	gw.addPokemon(7, "squirtle", "squirtle", "water")
	gw.generations["generation-i"] = generationWithSpecies("generation-i",
		"bulbasaur", "charmander", "squirtle")
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{
		Generations: []string{"generation-i"},
		Limit:       2,
	})
	require.NoError(t, err)

	// the generation path returns the whole filtered set in one round
	assert.Len(t, page.PokemonList, 2)
	assert.Equal(t, 3, page.Count)
	assert.Nil(t, page.NextCursor)
	assert.Empty(t, gw.listCalls)
}

func TestListPageTranslations(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(1, "bulbasaur", "bulbasaur", "grass", "poison")
	gw.species["bulbasaur"].Names = localized("es", "Bulbasaur ES")
	gw.types["grass"] = &pokeapi.Type{Name: "grass", Names: localized("es", "Planta")}
	gw.types["poison"] = &pokeapi.Type{Name: "poison", Names: localized("es", "Veneno")}
	gw.generations["generation-i"] = &pokeapi.Generation{
		Name:  "generation-i",
		Names: localized("es", "Generación I"),
	}
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{Language: "es"})
	require.NoError(t, err)
	require.Len(t, page.PokemonList, 1)

	row := page.PokemonList[0]
	assert.Equal(t, "Bulbasaur ES", row.Name)
	assert.Equal(t, "Generación I", row.Generation)
	assert.Equal(t, []string{"Planta", "Veneno"}, row.Types)
	assert.Equal(t, "https://img.test/bulbasaur.png", row.Image)
}

func TestListPageDropsUnresolvableRecords(t *testing.T) {
	gw := newFakeGateway()
	gw.addPokemon(1, "bulbasaur", "bulbasaur")
	// ghost is listed upstream but its record 404s; the row is dropped, not
	// the request
	gw.pokemonList = append(gw.pokemonList, pokeapi.NamedRef{Name: "ghost"})
	gw.listCount = len(gw.pokemonList)
	svc := newTestService(gw)

	page, err := svc.ListPage(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, page.PokemonList, 1)
	assert.Equal(t, "bulbasaur", page.PokemonList[0].Name)
}

func TestListPagePropagatesResolverFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.listDown = true
	svc := newTestService(gw)

	_, err := svc.ListPage(context.Background(), ListParams{})
	assert.ErrorIs(t, err, pokeapi.ErrUnavailable)
}
