package pokedex

import (
	"context"
	"fmt"
)

// searchAllWindow is the window requested from the gateway when a search or
// type filter is active. Filtering happens downstream over the full
// candidate space, so a caller-sized window would starve it.
const searchAllWindow = 3000

// candidateSet is the working set of upstream names for one resolver round.
// Count is the upstream-reported size of the candidate space before type
// filtering; the type intersection below deliberately leaves it untouched,
// so pagination reports pre-type-filter availability.
type candidateSet struct {
	Names []string
	Count int
}

// resolveCandidates determines the names to consider this round.
//
// Generation filters enumerate their species lists fully and ignore the
// caller's window. Otherwise the unfiltered listing is windowed by
// limit/offset, unless a search or type filter forces the wide window.
// A failure here cannot produce a candidate set at all, so it propagates.
func (s *Service) resolveCandidates(ctx context.Context, p ListParams, limit, offset int) (candidateSet, error) {
	var set candidateSet

	if len(p.Generations) > 0 {
		seen := make(map[string]bool)
		for _, genName := range p.Generations {
			gen, err := s.gw.GetGeneration(ctx, genName)
			if err != nil {
				return candidateSet{}, fmt.Errorf("resolve generation %q: %w", genName, err)
			}
			for _, sp := range gen.PokemonSpecies {
				if !seen[sp.Name] {
					seen[sp.Name] = true
					set.Names = append(set.Names, sp.Name)
				}
			}
		}
		set.Count = len(set.Names)
	} else {
		wLimit, wOffset := limit, offset
		if p.Search != "" || len(p.Types) > 0 {
			wLimit, wOffset = searchAllWindow, 0
		}
		page, err := s.gw.ListPokemon(ctx, wLimit, wOffset)
		if err != nil {
			return candidateSet{}, fmt.Errorf("list pokemon: %w", err)
		}
		set.Names = make([]string, 0, len(page.Results))
		for _, r := range page.Results {
			set.Names = append(set.Names, r.Name)
		}
		set.Count = page.Count
	}

	if len(p.Types) > 0 {
		members := make(map[string]bool)
		for _, typeName := range p.Types {
			t, err := s.gw.GetType(ctx, typeName)
			if err != nil {
				return candidateSet{}, fmt.Errorf("resolve type %q: %w", typeName, err)
			}
			for _, m := range t.Pokemon {
				members[m.Pokemon.Name] = true
			}
		}
		kept := make([]string, 0, len(set.Names))
		for _, n := range set.Names {
			if members[n] {
				kept = append(kept, n)
			}
		}
		set.Names = kept
	}
	return set, nil
}
