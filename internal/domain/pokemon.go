package domain

// Reference is a lightweight catalog entry returned by the list endpoint.
// It is immutable once fetched.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Record is the full denormalized entity returned by the detail endpoint
type Record struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Height    int       `json:"height"` // decimetres
	Weight    int       `json:"weight"` // hectograms
	Types     []string  `json:"types"`
	Sprites   Sprites   `json:"sprites"`
	Abilities []Ability `json:"abilities"`
	Stats     []Stat    `json:"stats"`
	Moves     []string  `json:"moves"`
}

// PrimaryType returns the first type slot, or "" when the record has none
func (r *Record) PrimaryType() string {
	if len(r.Types) == 0 {
		return ""
	}
	return r.Types[0]
}

// Sprites holds the image locators of a record. Any field may be empty.
type Sprites struct {
	FrontDefault    string `json:"frontDefault,omitempty"`
	FrontShiny      string `json:"frontShiny,omitempty"`
	BackDefault     string `json:"backDefault,omitempty"`
	BackShiny       string `json:"backShiny,omitempty"`
	OfficialArtwork string `json:"officialArtwork,omitempty"`
}

// Primary returns the official artwork, falling back to the default front sprite
func (s Sprites) Primary() string {
	if s.OfficialArtwork != "" {
		return s.OfficialArtwork
	}
	return s.FrontDefault
}

// Ability is a named trait, optionally flagged hidden
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Stat is a named base statistic
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}
