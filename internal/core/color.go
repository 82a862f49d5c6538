package core

// Color is the foreground color of a screen cell. Values are abstract names
// mapped to concrete ANSI codes by the renderer, so the engine can tag cells
// without knowing the terminal's palette.
type Color uint8

// The named colors cover the seven piece colors plus the UI accents the
// renderer needs (borders, banners, clearing flash).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
