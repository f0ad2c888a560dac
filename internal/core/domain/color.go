package domain

// NamedColor is one palette entry.
type NamedColor struct {
	Hex  string
	Name string
}

// Palette lists the selectable curve colors. The first entry is the fallback.
var Palette = []NamedColor{
	{Hex: "#4a9eff", Name: "Electric Blue"},
	{Hex: "#00d4aa", Name: "Mint Green"},
	{Hex: "#ff6b35", Name: "Coral Orange"},
	{Hex: "#a55eea", Name: "Purple"},
	{Hex: "#ff4757", Name: "Red"},
	{Hex: "#ffa502", Name: "Orange"},
	{Hex: "#2ed573", Name: "Green"},
	{Hex: "#ff3838", Name: "Bright Red"},
	{Hex: "#18dcff", Name: "Cyan"},
	{Hex: "#7bed9f", Name: "Light Green"},
}

// DefaultColorName is the name of the first palette entry.
func DefaultColorName() string {
	return Palette[0].Name
}

// ResolveColor returns the hex code for name, or the first entry's code when
// the name is unknown.
func ResolveColor(name string) string {
	if c, ok := LookupColor(name); ok {
		return c.Hex
	}
	return Palette[0].Hex
}

// LookupColor finds a palette entry by exact name.
func LookupColor(name string) (NamedColor, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	return NamedColor{}, false
}

// NextColorName returns the name after name in the palette, wrapping around.
// Unknown names start over at the first entry.
func NextColorName(name string) string {
	for i, c := range Palette {
		if c.Name == name {
			return Palette[(i+1)%len(Palette)].Name
		}
	}
	return Palette[0].Name
}
