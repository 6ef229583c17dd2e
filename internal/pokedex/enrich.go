package pokedex

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pokehub/internal/pokeapi"
	"pokehub/pkg/models"
)

// fetchConcurrency bounds every per-round fan-out against the upstream API.
const fetchConcurrency = 8

// expandSearch narrows names to those containing the lower-cased search
// term, then unions in every member of any evolution family reachable from
// a match, so searching one stage of a family surfaces its relatives.
// Species lookups and chain fetches that fail are logged and dropped;
// partial results beat total failure.
func (s *Service) expandSearch(ctx context.Context, names []string, search, lang string) []string {
	term := strings.ToLower(search)
	var matches []string
	for _, n := range names {
		if strings.Contains(n, term) {
			matches = append(matches, n)
		}
	}

	chainURLs := make([]string, len(matches))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, name := range matches {
		i, name := i, name
		g.Go(func() error {
			species, err := s.gw.GetSpecies(ctx, name)
			if err != nil {
				s.log.Warn("species lookup failed during search expansion",
					zap.String("pokemon", name), zap.Error(err))
				return nil
			}
			chainURLs[i] = species.EvolutionChain.URL
			return nil
		})
	}
	_ = g.Wait()

	seenURL := make(map[string]bool)
	var urls []string
	for _, u := range chainURLs {
		if u != "" && !seenURL[u] {
			seenURL[u] = true
			urls = append(urls, u)
		}
	}

	inSet := make(map[string]bool, len(matches))
	for _, m := range matches {
		inSet[m] = true
	}
	out := append([]string(nil), matches...)

	var mu sync.Mutex
	var cg errgroup.Group
	cg.SetLimit(fetchConcurrency)
	for _, u := range urls {
		u := u
		cg.Go(func() error {
			chain, err := s.gw.GetEvolutionChain(ctx, u)
			if err != nil {
				s.log.Warn("evolution chain fetch failed during search expansion",
					zap.String("url", u), zap.Error(err))
				return nil
			}
			nodes, err := s.flattenChain(ctx, chain.Chain, lang)
			if err != nil {
				s.log.Warn("evolution chain flatten failed during search expansion",
					zap.String("url", u), zap.Error(err))
				return nil
			}
			mu.Lock()
			for _, node := range nodes {
				if !inSet[node.Name] {
					inSet[node.Name] = true
					out = append(out, node.Name)
				}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = cg.Wait()

	return out
}

// fetchAll fetches full records for every name concurrently. Names that fail
// to resolve are dropped; upstream inconsistency is expected and non-fatal.
// Result order follows the input order.
func (s *Service) fetchAll(ctx context.Context, names []string) []*pokeapi.Pokemon {
	slots := make([]*pokeapi.Pokemon, len(names))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			p, err := s.gw.GetPokemon(ctx, name)
			if err != nil {
				s.log.Warn("pokemon fetch failed", zap.String("pokemon", name), zap.Error(err))
				return nil
			}
			slots[i] = p
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*pokeapi.Pokemon, 0, len(names))
	for _, p := range slots {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// enrichOne resolves the species record and translates generation, types and
// display name in parallel, producing the public list-row shape.
func (s *Service) enrichOne(ctx context.Context, p *pokeapi.Pokemon, lang string) (*models.PokemonSummary, error) {
	species, err := s.gw.GetSpecies(ctx, p.Species.Name)
	if err != nil {
		return nil, fmt.Errorf("species %q: %w", p.Species.Name, err)
	}

	var generation string
	var types []string
	var g errgroup.Group
	g.Go(func() error {
		generation = s.translatedGeneration(ctx, species, lang)
		return nil
	})
	g.Go(func() error {
		types = s.translatedTypes(ctx, p, lang)
		return nil
	})
	_ = g.Wait()

	return &models.PokemonSummary{
		ID:         p.ID,
		Name:       translatedPokemonName(species, p, lang),
		Generation: generation,
		Types:      types,
		Image:      p.Sprites.FrontDefault,
	}, nil
}

// enrich runs one round of the pipeline over resolved candidate names:
// fetch records, apply the type filter, drop form variants (records whose
// name differs from their species name), then translate the survivors.
func (s *Service) enrich(ctx context.Context, names []string, p ListParams, lang string) []models.PokemonSummary {
	records := s.fetchAll(ctx, names)

	if len(p.Types) > 0 {
		want := make(map[string]bool, len(p.Types))
		for _, t := range p.Types {
			want[t] = true
		}
		kept := records[:0]
		for _, r := range records {
			for _, ti := range r.Types {
				if want[ti.Type.Name] {
					kept = append(kept, r)
					break
				}
			}
		}
		records = kept
	}

	slots := make([]*models.PokemonSummary, len(records))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, r := range records {
		i, r := i, r
		// forms and megas share a species record; only the species' own
		// record is a list row, variants still resolve via the detail path
		if r.Name != r.Species.Name {
			continue
		}
		g.Go(func() error {
			summary, err := s.enrichOne(ctx, r, lang)
			if err != nil {
				s.log.Warn("enrichment failed", zap.String("pokemon", r.Name), zap.Error(err))
				return nil
			}
			slots[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.PokemonSummary, 0, len(records))
	for _, sum := range slots {
		if sum != nil {
			out = append(out, *sum)
		}
	}
	return out
}
