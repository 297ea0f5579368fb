package core

// Color is the role a screen cell plays; the platform maps roles to real colours.
type Color uint8

// Colour roles used by the board renderer.
const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorFood
	ColorBorder
	ColorText
	ColorDim
	ColorAlert
)
