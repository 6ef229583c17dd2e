package pokedex

import (
	"context"
	"fmt"
	"sort"

	"pokehub/pkg/models"
)

const (
	defaultLimit = 30
	maxLimit     = 100

	// overfetchMargin pads each resolver round to absorb expected per-round
	// attrition from failed lookups and type mismatches.
	overfetchMargin = 10
)

// ListParams are the list endpoint inputs.
type ListParams struct {
	Search      string
	Language    string
	Types       []string
	Generations []string
	Limit       int
	Cursor      int
}

// ListPage drives repeated resolver + enrichment rounds until the page is
// full or the candidate space is exhausted. Because search/type filtering
// happens after candidate resolution, one round may yield fewer rows than
// requested even when more candidates remain upstream.
//
// Count keeps a documented quirk: it is the pre-type-filter size of the
// candidate space, so nextCursor can point at a page that filters down to
// empty.
func (s *Service) ListPage(ctx context.Context, p ListParams) (*models.PokemonPage, error) {
	lang := p.Language
	if lang == "" {
		lang = s.defaultLang
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	cursor := p.Cursor
	if cursor <= 0 {
		cursor = 1
	}

	var accumulated []models.PokemonSummary
	totalFetched := 0
	totalAvailable := 0

	for len(accumulated) < limit {
		offset := cursor - 1
		fetchLimit := limit - len(accumulated) + overfetchMargin

		set, err := s.resolveCandidates(ctx, p, fetchLimit, offset)
		if err != nil {
			return nil, fmt.Errorf("resolve candidates: %w", err)
		}
		totalAvailable = set.Count
		totalFetched += len(set.Names)
		cursor += len(set.Names)

		names := set.Names
		if p.Search != "" {
			names = s.expandSearch(ctx, names, p.Search, lang)
		}

		accumulated = append(accumulated, s.enrich(ctx, names, p, lang)...)

		if totalFetched >= totalAvailable || len(set.Names) == 0 {
			break
		}
	}

	sort.Slice(accumulated, func(i, j int) bool { return accumulated[i].ID < accumulated[j].ID })

	if accumulated == nil {
		accumulated = []models.PokemonSummary{}
	}
	if len(accumulated) > limit {
		accumulated = accumulated[:limit]
	}

	page := &models.PokemonPage{PokemonList: accumulated, Count: totalAvailable}
	if totalFetched < totalAvailable {
		next := cursor
		page.NextCursor = &next
	}
	return page, nil
}
