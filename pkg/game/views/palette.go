package views

import "image/color"

// UI colours.
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}
	colorPanelBackground = color.RGBA{204, 204, 255, 255}
	colorBorder          = color.RGBA{0, 0, 0, 255}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorBoardText       = color.RGBA{0, 0, 0, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorSelected        = color.RGBA{230, 230, 255, 255}
	colorHover           = color.RGBA{230, 230, 255, 110}
	colorGiven           = color.RGBA{204, 204, 204, 255}
	colorHealth          = color.RGBA{0, 151, 86, 255}
	colorHealthLow       = color.RGBA{244, 54, 54, 255}
	colorHealthTrack     = color.RGBA{60, 60, 80, 255}
	colorOverlay         = color.RGBA{15, 15, 26, 200}
	colorAction          = color.RGBA{180, 150, 250, 255}
	colorDenied          = color.RGBA{255, 100, 100, 255}
	colorSuccess         = color.RGBA{100, 255, 150, 255}
	colorBoard           = color.RGBA{255, 255, 255, 255}
)

// numberColors gives each digit its own colour. Index 0 is unused.
var numberColors = [10]color.RGBA{
	{0, 0, 0, 255},
	{244, 54, 54, 255},   // red
	{255, 133, 0, 255},   // orange
	{254, 193, 7, 255},   // yellow
	{139, 194, 74, 255},  // light green
	{0, 151, 86, 255},    // green
	{0, 188, 213, 255},   // light blue
	{33, 150, 243, 255},  // blue
	{91, 50, 183, 255},   // indigo
	{165, 40, 170, 255},  // purple
}

// NumberColor returns the colour a digit is drawn in.
func NumberColor(d uint8) color.RGBA {
	if d > 9 {
		return numberColors[0]
	}
	return numberColors[d]
}

// Exported for scenes that draw their own panels.
var (
	ColorBackground = colorBackground
	ColorOverlay    = colorOverlay
	ColorText       = colorText
	ColorSubtle     = colorSubtle
	ColorAction     = colorAction
	ColorDenied     = colorDenied
	ColorSuccess    = colorSuccess
)
