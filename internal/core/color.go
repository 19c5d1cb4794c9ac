package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield renderer.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorGrassEdge
	ColorRoad
	ColorRoadMarking
	ColorTreeTop
	ColorTrunk
	ColorPlayer
	ColorBeak
	ColorComb
	ColorCarRed
	ColorCarBlue
	ColorCarYellow
	ColorCarPurple
	ColorCoin
	ColorShield
	ColorHUD
	ColorAlert
	ColorDim
)

// CarColors lists the body colors a vehicle can be painted with.
var CarColors = []Color{ColorCarRed, ColorCarBlue, ColorCarYellow, ColorCarPurple}
