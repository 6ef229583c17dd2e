package pokedex

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pokehub/internal/pokeapi"
	"pokehub/pkg/models"
)

// flattenChain walks the evolution tree pre-order: a node first, then each
// child subtree fully before the next sibling, children in upstream order.
// An explicit stack keeps the walk safe for chains of any depth. A node
// whose record cannot be resolved fails the whole chain; callers treat that
// as "no evolution data".
func (s *Service) flattenChain(ctx context.Context, root pokeapi.ChainLink, lang string) ([]models.EvolutionNode, error) {
	var nodes []models.EvolutionNode
	stack := []pokeapi.ChainLink{root}

	for len(stack) > 0 {
		link := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// push children in reverse so the first child is visited next
		for i := len(link.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, link.EvolvesTo[i])
		}

		node, err := s.evolutionNode(ctx, link.Species.Name, lang)
		if err != nil {
			return nil, fmt.Errorf("evolution node %q: %w", link.Species.Name, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (s *Service) evolutionNode(ctx context.Context, name, lang string) (models.EvolutionNode, error) {
	p, err := s.gw.GetPokemon(ctx, name)
	if err != nil {
		return models.EvolutionNode{}, err
	}
	species, err := s.gw.GetSpecies(ctx, name)
	if err != nil {
		return models.EvolutionNode{}, err
	}
	return models.EvolutionNode{
		ID:             p.ID,
		Name:           p.Name,
		TranslatedName: translatedPokemonName(species, p, lang),
		Image:          p.Sprites.FrontDefault,
	}, nil
}

// evolutions resolves and flattens the species' evolution chain. Evolution
// display is best-effort: a species without a chain reference, or any fetch
// failure along the way, yields an empty sequence, never an error.
func (s *Service) evolutions(ctx context.Context, species *pokeapi.PokemonSpecies, lang string) []models.EvolutionNode {
	if species.EvolutionChain.URL == "" {
		return []models.EvolutionNode{}
	}

	chain, err := s.gw.GetEvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		s.log.Warn("evolution chain fetch failed",
			zap.String("url", species.EvolutionChain.URL), zap.Error(err))
		return []models.EvolutionNode{}
	}

	nodes, err := s.flattenChain(ctx, chain.Chain, lang)
	if err != nil {
		s.log.Warn("evolution chain flatten failed",
			zap.String("url", species.EvolutionChain.URL), zap.Error(err))
		return []models.EvolutionNode{}
	}
	return nodes
}
