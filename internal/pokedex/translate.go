package pokedex

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pokehub/internal/pokeapi"
	"pokehub/pkg/models"
)

const noDescription = "No description available."

// pickLocalizedName returns the entry whose language matches lang exactly,
// else fallback. No partial-locale matching: "en-US" does not match "en".
func pickLocalizedName(names []pokeapi.LocalizedName, lang, fallback string) string {
	for _, n := range names {
		if n.Language.Name == lang {
			return n.Name
		}
	}
	return fallback
}

func translatedPokemonName(species *pokeapi.PokemonSpecies, p *pokeapi.Pokemon, lang string) string {
	return pickLocalizedName(species.Names, lang, p.Name)
}

// translatedGeneration resolves and translates the species' generation.
// Lookup failures fall back to the generation slug; translation is
// best-effort and never fails a request.
func (s *Service) translatedGeneration(ctx context.Context, species *pokeapi.PokemonSpecies, lang string) string {
	gen, err := s.gw.GetGeneration(ctx, species.Generation.Name)
	if err != nil {
		s.log.Warn("generation lookup failed",
			zap.String("generation", species.Generation.Name), zap.Error(err))
		return species.Generation.Name
	}
	return pickLocalizedName(gen.Names, lang, species.Generation.Name)
}

// translatedTypes translates each of the record's type slugs concurrently,
// falling back to the slug for any type that cannot be resolved.
func (s *Service) translatedTypes(ctx context.Context, p *pokeapi.Pokemon, lang string) []string {
	out := make([]string, len(p.Types))
	var g errgroup.Group
	for i, ti := range p.Types {
		i, ti := i, ti
		g.Go(func() error {
			t, err := s.gw.GetType(ctx, ti.Type.Name)
			if err != nil {
				s.log.Warn("type lookup failed",
					zap.String("type", ti.Type.Name), zap.Error(err))
				out[i] = ti.Type.Name
				return nil
			}
			out[i] = pickLocalizedName(t.Names, lang, ti.Type.Name)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// translatedStats resolves every stat record concurrently. A stat whose
// lookup fails keeps its slug as the display name.
func (s *Service) translatedStats(ctx context.Context, p *pokeapi.Pokemon, lang string) []models.StatValue {
	out := make([]models.StatValue, len(p.Stats))
	var g errgroup.Group
	for i, ps := range p.Stats {
		i, ps := i, ps
		g.Go(func() error {
			name := ps.Stat.Name
			translated := name
			st, err := s.gw.GetStat(ctx, name)
			if err != nil {
				s.log.Warn("stat lookup failed", zap.String("stat", name), zap.Error(err))
			} else {
				translated = pickLocalizedName(st.Names, lang, name)
			}
			out[i] = models.StatValue{
				Stat:  models.StatName{OriginalName: name, TranslatedName: translated},
				Value: ps.BaseStat,
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// pokemonDescription picks a flavor text for the requested language,
// preferring the scarlet/violet versions, then any entry in that language,
// then English.
func pokemonDescription(species *pokeapi.PokemonSpecies, lang string) string {
	entries := species.FlavorTextEntries

	pick := func(match func(ft pokeapi.FlavorText) bool) *pokeapi.FlavorText {
		for i := range entries {
			if match(entries[i]) {
				return &entries[i]
			}
		}
		return nil
	}

	entry := pick(func(ft pokeapi.FlavorText) bool {
		return ft.Language.Name == lang &&
			(ft.Version.Name == "scarlet" || ft.Version.Name == "violet")
	})
	if entry == nil {
		entry = pick(func(ft pokeapi.FlavorText) bool { return ft.Language.Name == lang })
	}
	if entry == nil {
		entry = pick(func(ft pokeapi.FlavorText) bool { return ft.Language.Name == "en" })
	}
	if entry == nil {
		return noDescription
	}
	return strings.ReplaceAll(entry.FlavorText, "\n", " ")
}
