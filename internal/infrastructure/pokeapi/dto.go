package pokeapi

// listResponse is the body of GET /pokemon
type listResponse struct {
	Count   int            `json:"count"`
	Next    *string        `json:"next"`
	Results []namedPointer `json:"results"`
}

type namedPointer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonResponse is the body of GET /pokemon/{id}. Only the fields the
// views render are decoded.
type pokemonResponse struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Height    int            `json:"height"`
	Weight    int            `json:"weight"`
	Types     []typeSlot     `json:"types"`
	Sprites   spritesPayload `json:"sprites"`
	Abilities []abilitySlot  `json:"abilities"`
	Stats     []statSlot     `json:"stats"`
	Moves     []moveSlot     `json:"moves"`
}

type typeSlot struct {
	Slot int          `json:"slot"`
	Type namedPointer `json:"type"`
}

type abilitySlot struct {
	Ability  namedPointer `json:"ability"`
	IsHidden bool         `json:"is_hidden"`
	Slot     int          `json:"slot"`
}

type statSlot struct {
	BaseStat int          `json:"base_stat"`
	Effort   int          `json:"effort"`
	Stat     namedPointer `json:"stat"`
}

type moveSlot struct {
	Move namedPointer `json:"move"`
}

type spritesPayload struct {
	FrontDefault *string       `json:"front_default"`
	FrontShiny   *string       `json:"front_shiny"`
	BackDefault  *string       `json:"back_default"`
	BackShiny    *string       `json:"back_shiny"`
	Other        *otherSprites `json:"other"`
}

type otherSprites struct {
	OfficialArtwork *artwork `json:"official-artwork"`
}

type artwork struct {
	FrontDefault *string `json:"front_default"`
}
