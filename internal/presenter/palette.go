package presenter

import "strings"

// Color is a palette entry usable by both surfaces: a Tailwind class for
// HTML and a hex value for the terminal.
type Color struct {
	Class string `json:"class"`
	Hex   string `json:"hex"`
}

// NeutralColor is used for any type name missing from the palette
var NeutralColor = Color{Class: "bg-gray-400", Hex: "#9CA3AF"}

// typeColors is read-only after package initialization
var typeColors = map[string]Color{
	"normal":   {Class: "bg-gray-400", Hex: "#9CA3AF"},
	"fire":     {Class: "bg-red-500", Hex: "#EF4444"},
	"water":    {Class: "bg-blue-500", Hex: "#3B82F6"},
	"electric": {Class: "bg-yellow-400", Hex: "#FACC15"},
	"grass":    {Class: "bg-green-500", Hex: "#22C55E"},
	"ice":      {Class: "bg-blue-200", Hex: "#BFDBFE"},
	"fighting": {Class: "bg-red-700", Hex: "#B91C1C"},
	"poison":   {Class: "bg-purple-500", Hex: "#A855F7"},
	"ground":   {Class: "bg-yellow-600", Hex: "#CA8A04"},
	"flying":   {Class: "bg-indigo-300", Hex: "#A5B4FC"},
	"psychic":  {Class: "bg-pink-500", Hex: "#EC4899"},
	"bug":      {Class: "bg-green-400", Hex: "#4ADE80"},
	"rock":     {Class: "bg-yellow-700", Hex: "#A16207"},
	"ghost":    {Class: "bg-purple-700", Hex: "#7E22CE"},
	"dragon":   {Class: "bg-indigo-600", Hex: "#4F46E5"},
	"dark":     {Class: "bg-gray-800", Hex: "#1F2937"},
	"steel":    {Class: "bg-gray-500", Hex: "#6B7280"},
	"fairy":    {Class: "bg-pink-300", Hex: "#F9A8D4"},
}

// TypeColor looks up the palette color for a type name, case-insensitively
func TypeColor(name string) Color {
	if c, ok := typeColors[strings.ToLower(name)]; ok {
		return c
	}
	return NeutralColor
}

// Stat bar colors
var (
	StatHigh = Color{Class: "bg-green-500", Hex: "#22C55E"}
	StatMid  = Color{Class: "bg-yellow-500", Hex: "#EAB308"}
	StatLow  = Color{Class: "bg-red-500", Hex: "#EF4444"}
)

// Stat thresholds, exclusive
const (
	statHighThreshold = 70
	statMidThreshold  = 40
)

// StatColor picks the bar color for a base value
func StatColor(base int) Color {
	switch {
	case base > statHighThreshold:
		return StatHigh
	case base > statMidThreshold:
		return StatMid
	default:
		return StatLow
	}
}
