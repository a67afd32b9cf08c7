package discovery

import (
	"context"
	"log/slog"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/core"
)

// ResolveFilters merges baseline filters with a parsed wish fragment into a
// single canonical filter set. The baseline is never mutated.
//
// Precedence: any field the fragment expresses overwrites the baseline value.
// Fields the fragment leaves unset keep the baseline value. A fragment that
// carries raw unparsed output (Raw set) expresses nothing and is disregarded
// entirely.
//
// Birth details travel as a unit: they come from the baseline only and are
// copied whole, never field-by-field.
func ResolveFilters(base *core.WishFilters, fragment *ai.ParsedWish) *core.WishFilters {
	resolved := cloneFilters(base)
	if fragment == nil || fragment.Raw != "" {
		return resolved
	}

	if fragment.Gender != nil {
		resolved.Gender = core.Gender(*fragment.Gender)
	}
	if fragment.Syllables != nil {
		v := *fragment.Syllables
		resolved.Syllables = &v
	}
	if fragment.Deity != nil {
		v := *fragment.Deity
		resolved.Deity = &v
	}
	if fragment.Sources != nil {
		resolved.Sources = append([]string(nil), fragment.Sources...)
	}
	if fragment.StartLetters != nil {
		resolved.StartLetters = append([]string(nil), fragment.StartLetters...)
	}
	if fragment.Vibe != nil {
		v := *fragment.Vibe
		resolved.Vibe = &v
	}

	return resolved
}

// EnrichFilters applies astrological enrichment to the filter set in place.
//
// Enrichment runs only when vedic mode is on and the birth details are
// complete; otherwise the filters pass through untouched. A calculator
// failure is logged and swallowed: the filters keep whatever StartSounds
// they already had, and discovery proceeds.
func EnrichFilters(ctx context.Context, filters *core.WishFilters, calc astro.Calculator, logger *slog.Logger) *astro.Reading {
	if logger == nil {
		logger = slog.Default()
	}
	if enrichmentSkipReason(calc, filters) != "" {
		return nil
	}

	reading, err := calc.Reading(ctx, *filters.Birth)
	if err != nil {
		logger.Warn("astrology lookup failed, keeping existing start sounds", "err", err)
		return nil
	}

	filters.StartSounds = append([]string(nil), reading.StartSounds...)
	return reading
}

// cloneFilters deep-copies a filter set so resolution never aliases the
// caller's baseline.
func cloneFilters(base *core.WishFilters) *core.WishFilters {
	if base == nil {
		return &core.WishFilters{}
	}

	out := &core.WishFilters{
		Gender:    base.Gender,
		VedicMode: base.VedicMode,
	}
	if base.Syllables != nil {
		v := *base.Syllables
		out.Syllables = &v
	}
	if base.Script != nil {
		v := *base.Script
		out.Script = &v
	}
	if base.Deity != nil {
		v := *base.Deity
		out.Deity = &v
	}
	if base.Sources != nil {
		out.Sources = append([]string(nil), base.Sources...)
	}
	if base.Themes != nil {
		out.Themes = append([]string(nil), base.Themes...)
	}
	if base.StartLetters != nil {
		out.StartLetters = append([]string(nil), base.StartLetters...)
	}
	if base.Vibe != nil {
		v := *base.Vibe
		out.Vibe = &v
	}
	if base.MaxLength != nil {
		v := *base.MaxLength
		out.MaxLength = &v
	}
	if base.EasyGlobal != nil {
		v := *base.EasyGlobal
		out.EasyGlobal = &v
	}
	if base.Birth != nil {
		birth := *base.Birth
		out.Birth = &birth
	}
	if base.StartSounds != nil {
		out.StartSounds = append([]string(nil), base.StartSounds...)
	}
	return out
}
