package chart

import (
	"image/color"
	"strings"
)

// DefaultTeamColor is used for teams missing from the palette
const DefaultTeamColor = 0xFF5733

type teamColor struct {
	name  string
	color int
}

// teamColors is ordered: partial matches take the first hit
var teamColors = []teamColor{
	{"Red Bull", 0x0600EF},
	{"Ferrari", 0xDC0000},
	{"Mercedes", 0x00D2BE},
	{"McLaren", 0xFF8700},
	{"Aston Martin", 0x006F62},
	{"Alpine", 0x0090FF},
	{"Williams", 0x005AFF},
	{"AlphaTauri", 0x2B4562},
	{"Alfa Romeo", 0x900000},
	{"Haas F1 Team", 0xFFFFFF},
	{"Racing Point", 0xF596C8},
	{"Renault", 0xFFF500},
	{"Toro Rosso", 0x469BFF},
	{"Sauber", 0x9B0000},
	{"Force India", 0xFF5F0F},
	{"Manor Marussia", 0x6E0000},
	{"Lotus F1", 0x000000},
	{"Marussia", 0x6E0000},
	{"Caterham", 0x006C00},
	{"HRT", 0x686868},
	{"Virgin", 0x323232},
	{"Brawn", 0xF0F0F0},
	{"Honda", 0x006633},
	{"Super Aguri", 0xE20B00},
	{"BMW Sauber", 0x6CD3BF},
	{"Spyker", 0xF24013},
	{"Midland", 0x9E0000},
	{"Jordan", 0xF9CB46},
	{"Jaguar", 0x358C75},
	{"BAR", 0xFDB000},
	{"Arrows", 0xFF8000},
	{"Minardi", 0x000000},
	{"Prost", 0x00005F},
	{"Benetton", 0x00841F},
	{"Stewart", 0xFFFFFF},
	{"Tyrrell", 0x3A36DB},
	{"Footwork", 0xFF8000},
	{"Ligier", 0x00007D},
	{"Simtek", 0xFFFFFF},
	{"Larrousse", 0xFFFFFF},
	{"Brabham", 0x487890},
	{"Fondmetal", 0xFFFFFF},
	{"March", 0x8D0060},
	{"Forti", 0xFF7F00},
	{"Pacific", 0x006633},
	{"RB F1 Team", 0x0600EF},
	{"Racing Bulls", 0x0600EF},
	{"Haas", 0xFFFFFF},
	{"AlphaTauri RB", 0x0600EF},
}

// TeamColor returns the branding colour of a team as 0xRRGGBB. An exact name match wins,
// then the first palette entry contained in the name (or containing it), ignoring case.
func TeamColor(team string) int {
	if team == "" {
		return DefaultTeamColor
	}

	for _, tc := range teamColors {
		if tc.name == team {
			return tc.color
		}
	}

	lower := strings.ToLower(team)
	for _, tc := range teamColors {
		name := strings.ToLower(tc.name)
		if strings.Contains(lower, name) || strings.Contains(name, lower) {
			return tc.color
		}
	}

	return DefaultTeamColor
}

// RGBA converts a 0xRRGGBB colour for drawing
func RGBA(c int) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16 & 0xFF),
		G: uint8(c >> 8 & 0xFF),
		B: uint8(c & 0xFF),
		A: 0xFF,
	}
}
