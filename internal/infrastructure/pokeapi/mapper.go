package pokeapi

import "github.com/dexview/backend/internal/domain"

// MapToReferences converts the list payload to domain references, keeping upstream order
func MapToReferences(items []namedPointer) []domain.Reference {
	refs := make([]domain.Reference, 0, len(items))
	for _, item := range items {
		refs = append(refs, domain.Reference{Name: item.Name, URL: item.URL})
	}
	return refs
}

// MapToRecord converts the detail payload to a domain record.
// Missing nested sprite objects become empty strings rather than errors.
func MapToRecord(p *pokemonResponse) *domain.Record {
	record := &domain.Record{
		ID:      p.ID,
		Name:    p.Name,
		Height:  p.Height,
		Weight:  p.Weight,
		Sprites: mapSprites(p.Sprites),
	}

	record.Types = make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		record.Types = append(record.Types, t.Type.Name)
	}

	record.Abilities = make([]domain.Ability, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		record.Abilities = append(record.Abilities, domain.Ability{
			Name:   a.Ability.Name,
			Hidden: a.IsHidden,
		})
	}

	record.Stats = make([]domain.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		record.Stats = append(record.Stats, domain.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	record.Moves = make([]string, 0, len(p.Moves))
	for _, m := range p.Moves {
		record.Moves = append(record.Moves, m.Move.Name)
	}

	return record
}

func mapSprites(s spritesPayload) domain.Sprites {
	sprites := domain.Sprites{
		FrontDefault: deref(s.FrontDefault),
		FrontShiny:   deref(s.FrontShiny),
		BackDefault:  deref(s.BackDefault),
		BackShiny:    deref(s.BackShiny),
	}
	if s.Other != nil && s.Other.OfficialArtwork != nil {
		sprites.OfficialArtwork = deref(s.Other.OfficialArtwork.FrontDefault)
	}
	return sprites
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
