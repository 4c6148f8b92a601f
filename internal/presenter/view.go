package presenter

import (
	"strconv"

	"github.com/dexview/backend/internal/domain"
)

// TypeChip is one colored category tag
type TypeChip struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Card is the list view rendering of one record
type Card struct {
	ID     int        `json:"id"`
	Label  string     `json:"label"`
	Name   string     `json:"name"`
	Image  string     `json:"image"`
	Types  []TypeChip `json:"types"`
	Theme  Color      `json:"theme"`
	Height string     `json:"height"`
	Weight string     `json:"weight"`
	Link   string     `json:"link"`
}

// ListPage is everything the list view needs to render
type ListPage struct {
	Query      string `json:"query"`
	Shown      int    `json:"shown"`
	Total      int    `json:"total"`
	Cards      []Card `json:"cards"`
	EmptyImage string `json:"emptyImage,omitempty"`
}

// AbilityView is one trait line in the detail view
type AbilityView struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// StatBar is one proportional statistic bar
type StatBar struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Width int    `json:"width"`
	Color Color  `json:"color"`
}

// MovePreview is the truncated move list
type MovePreview struct {
	Moves   []string `json:"moves"`
	Shown   int      `json:"shown"`
	Total   int      `json:"total"`
	Caption string   `json:"caption"`
}

// GalleryImage is an optional supplementary image
type GalleryImage struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Detail is the detail view rendering of one record
type Detail struct {
	ID        int            `json:"id"`
	Label     string         `json:"label"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	Theme     Color          `json:"theme"`
	Height    string         `json:"height"`
	Weight    string         `json:"weight"`
	Types     []TypeChip     `json:"types"`
	Abilities []AbilityView  `json:"abilities"`
	Stats     []StatBar      `json:"stats"`
	StatTotal int            `json:"statTotal"`
	Moves     MovePreview    `json:"moves"`
	Gallery   []GalleryImage `json:"gallery"`
}

// DetailLink is the route of a record's detail page
func DetailLink(id int) string {
	return "/pokemon/" + strconv.Itoa(id)
}

// NewCard builds the list card for a record
func NewCard(r domain.Record) Card {
	return Card{
		ID:     r.ID,
		Label:  FormatID(r.ID),
		Name:   r.Name,
		Image:  r.Sprites.Primary(),
		Types:  typeChips(r.Types),
		Theme:  TypeColor(r.PrimaryType()),
		Height: FormatHeight(r.Height),
		Weight: FormatWeight(r.Weight),
		Link:   DetailLink(r.ID),
	}
}

// NewListPage builds the list view. The empty-state image is set only when
// there is nothing to show.
func NewListPage(query string, total int, records []domain.Record) ListPage {
	page := ListPage{
		Query: query,
		Shown: len(records),
		Total: total,
		Cards: make([]Card, 0, len(records)),
	}
	for _, r := range records {
		page.Cards = append(page.Cards, NewCard(r))
	}
	if len(page.Cards) == 0 {
		page.EmptyImage = EmptyStateImage
	}
	return page
}

// NewDetail builds the detail view for a record
func NewDetail(r domain.Record) Detail {
	d := Detail{
		ID:        r.ID,
		Label:     FormatID(r.ID),
		Name:      r.Name,
		Image:     r.Sprites.Primary(),
		Theme:     TypeColor(r.PrimaryType()),
		Height:    FormatHeight(r.Height),
		Weight:    FormatWeight(r.Weight),
		Types:     typeChips(r.Types),
		Abilities: make([]AbilityView, 0, len(r.Abilities)),
		Stats:     make([]StatBar, 0, len(r.Stats)),
		Moves:     NewMovePreview(r.Moves),
		Gallery:   NewGallery(r.Sprites),
	}

	for _, a := range r.Abilities {
		d.Abilities = append(d.Abilities, AbilityView{Name: Humanize(a.Name), Hidden: a.Hidden})
	}

	for _, s := range r.Stats {
		d.Stats = append(d.Stats, NewStatBar(s))
		d.StatTotal += s.Base
	}

	return d
}

// NewStatBar builds the bar for one statistic
func NewStatBar(s domain.Stat) StatBar {
	return StatBar{
		Name:  Humanize(s.Name),
		Value: s.Base,
		Width: StatWidth(s.Base),
		Color: StatColor(s.Base),
	}
}

// NewMovePreview keeps the first MovePreviewSize moves
func NewMovePreview(moves []string) MovePreview {
	shown := len(moves)
	if shown > MovePreviewSize {
		shown = MovePreviewSize
	}

	preview := MovePreview{
		Moves: make([]string, 0, shown),
		Shown: shown,
		Total: len(moves),
	}
	for _, m := range moves[:shown] {
		preview.Moves = append(preview.Moves, Humanize(m))
	}
	preview.Caption = MoveCaption(shown, len(moves))

	return preview
}

// NewGallery lists the supplementary sprites present on the record, in a fixed order
func NewGallery(s domain.Sprites) []GalleryImage {
	candidates := []GalleryImage{
		{Label: "Default", URL: s.FrontDefault},
		{Label: "Shiny", URL: s.FrontShiny},
		{Label: "Back Default", URL: s.BackDefault},
		{Label: "Back Shiny", URL: s.BackShiny},
	}

	gallery := make([]GalleryImage, 0, len(candidates))
	for _, c := range candidates {
		if c.URL != "" {
			gallery = append(gallery, c)
		}
	}
	return gallery
}

func typeChips(types []string) []TypeChip {
	chips := make([]TypeChip, 0, len(types))
	for _, t := range types {
		chips = append(chips, TypeChip{Name: t, Color: TypeColor(t)})
	}
	return chips
}
