package core

// Color is a cell's foreground color. The platform layer turns it into a
// terminal style; ColorDefault leaves the terminal's own color alone.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// ansiCodes holds the ANSI 256-color code of each Color.
var ansiCodes = [...]string{
	ColorDefault: "",
	ColorRed:     "1",
	ColorGreen:   "2",
	ColorYellow:  "3",
	ColorBlue:    "4",
	ColorMagenta: "5",
	ColorCyan:    "6",
	ColorWhite:   "15",
	ColorOrange:  "208",
	ColorGray:    "245",
}

// ANSI returns the ANSI 256-color code, or "" for ColorDefault and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
