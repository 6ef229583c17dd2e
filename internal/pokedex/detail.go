package pokedex

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pokehub/pkg/models"
)

// Detail resolves a single creature by name or id and assembles the full
// detail shape. Unlike list rows, form variants resolve here: the species
// record is looked up through the record's species reference, so
// "venusaur-mega" finds the "venusaur" species. A record that cannot be
// resolved at all is a hard failure.
func (s *Service) Detail(ctx context.Context, idOrName, lang string) (*models.PokemonDetail, error) {
	if lang == "" {
		lang = s.defaultLang
	}

	p, err := s.gw.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, fmt.Errorf("pokemon %q: %w", idOrName, err)
	}
	species, err := s.gw.GetSpecies(ctx, p.Species.Name)
	if err != nil {
		return nil, fmt.Errorf("species %q: %w", p.Species.Name, err)
	}

	detail := &models.PokemonDetail{
		ID:          p.ID,
		Name:        translatedPokemonName(species, p, lang),
		Image:       p.Sprites.FrontDefault,
		ShinyImage:  p.Sprites.FrontShiny,
		Cries:       models.Cries{Latest: p.Cries.Latest, Legacy: p.Cries.Legacy},
		Description: pokemonDescription(species, lang),
		Weight:      p.Weight,
		Height:      p.Height,
	}

	var g errgroup.Group
	g.Go(func() error {
		detail.Generation = s.translatedGeneration(ctx, species, lang)
		return nil
	})
	g.Go(func() error {
		detail.Types = s.translatedTypes(ctx, p, lang)
		return nil
	})
	g.Go(func() error {
		detail.Stats = s.translatedStats(ctx, p, lang)
		return nil
	})
	g.Go(func() error {
		detail.EvolutionChain = s.evolutions(ctx, species, lang)
		return nil
	})
	_ = g.Wait()

	return detail, nil
}

// OfTheDay returns the deterministic daily pick, enriched like a list row.
func (s *Service) OfTheDay(ctx context.Context, date time.Time, lang string) (*models.PokemonOfTheDay, error) {
	if lang == "" {
		lang = s.defaultLang
	}

	total, err := s.gw.CountSpecies(ctx)
	if err != nil {
		return nil, fmt.Errorf("species count: %w", err)
	}

	id := PickOfTheDay(date, total)
	p, err := s.gw.GetPokemon(ctx, strconv.Itoa(id))
	if err != nil {
		return nil, fmt.Errorf("pokemon of the day %d: %w", id, err)
	}
	summary, err := s.enrichOne(ctx, p, lang)
	if err != nil {
		return nil, fmt.Errorf("enrich pokemon of the day %d: %w", id, err)
	}

	return &models.PokemonOfTheDay{
		Pokemon: *summary,
		Date:    date.Format("2006-01-02"),
	}, nil
}

// TypeOptions lists every type translated to the requested language.
// Individual type lookups that fail fall back to the slug.
func (s *Service) TypeOptions(ctx context.Context, lang string) ([]models.TypeOption, error) {
	if lang == "" {
		lang = s.defaultLang
	}

	page, err := s.gw.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}

	out := make([]models.TypeOption, len(page.Results))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, ref := range page.Results {
		i, ref := i, ref
		g.Go(func() error {
			translated := ref.Name
			t, err := s.gw.GetType(ctx, ref.Name)
			if err != nil {
				s.log.Warn("type lookup failed", zap.String("type", ref.Name), zap.Error(err))
			} else {
				translated = pickLocalizedName(t.Names, lang, ref.Name)
			}
			out[i] = models.TypeOption{OriginalName: ref.Name, TranslatedName: translated}
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

// GenerationOptions lists every generation translated to the requested
// language, sorted ascending by the ordinal in the slug.
func (s *Service) GenerationOptions(ctx context.Context, lang string) ([]models.GenerationOption, error) {
	if lang == "" {
		lang = s.defaultLang
	}

	page, err := s.gw.ListGenerations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}

	out := make([]models.GenerationOption, len(page.Results))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, ref := range page.Results {
		i, ref := i, ref
		g.Go(func() error {
			translated := ref.Name
			gen, err := s.gw.GetGeneration(ctx, ref.Name)
			if err != nil {
				s.log.Warn("generation lookup failed", zap.String("generation", ref.Name), zap.Error(err))
			} else {
				translated = pickLocalizedName(gen.Names, lang, ref.Name)
			}
			out[i] = models.GenerationOption{
				OriginalName:     ref.Name,
				TranslatedName:   translated,
				GenerationNumber: generationOrdinal(ref.Name),
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GenerationNumber < out[j].GenerationNumber
	})
	return out, nil
}

var romanValues = map[byte]int{'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100}

// generationOrdinal parses the roman numeral out of a generation slug
// ("generation-iv" -> 4). Unknown shapes yield 0.
func generationOrdinal(slug string) int {
	_, numeral, ok := strings.Cut(slug, "-")
	if !ok {
		return 0
	}
	total := 0
	for i := 0; i < len(numeral); i++ {
		v := romanValues[numeral[i]]
		if v == 0 {
			return 0
		}
		if i+1 < len(numeral) && romanValues[numeral[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	return total
}
