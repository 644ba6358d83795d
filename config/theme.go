package config

import "github.com/gdamore/tcell/v2"

type ColorScheme struct {
	Name        string
	Background  tcell.Color
	Foreground  tcell.Color
	LineNumber  tcell.Color
	EmptyLine   tcell.Color
	StatusBarBg tcell.Color
	StatusBarFg tcell.Color
	MessageFg   tcell.Color
	ErrorFg     tcell.Color
	PromptBg    tcell.Color
	PromptFg    tcell.Color
}

func (c *ColorScheme) Text() tcell.Style {
	return tcell.StyleDefault.Background(c.Background).Foreground(c.Foreground)
}

func (c *ColorScheme) Gutter() tcell.Style {
	return c.Text().Foreground(c.LineNumber)
}

func (c *ColorScheme) Tilde() tcell.Style {
	return c.Text().Foreground(c.EmptyLine)
}

func (c *ColorScheme) Status() tcell.Style {
	return tcell.StyleDefault.Background(c.StatusBarBg).Foreground(c.StatusBarFg)
}

func (c *ColorScheme) Message(isError bool) tcell.Style {
	if isError {
		return c.Text().Foreground(c.ErrorFg)
	}
	return c.Text().Foreground(c.MessageFg)
}

func (c *ColorScheme) Prompt() tcell.Style {
	return tcell.StyleDefault.Background(c.PromptBg).Foreground(c.PromptFg)
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:        "Dark",
		Background:  tcell.ColorBlack,
		Foreground:  tcell.ColorWhite,
		LineNumber:  tcell.ColorGray,
		EmptyLine:   tcell.ColorDimGray,
		StatusBarBg: tcell.ColorDarkBlue,
		StatusBarFg: tcell.ColorWhite,
		MessageFg:   tcell.ColorYellow,
		ErrorFg:     tcell.ColorRed,
		PromptBg:    tcell.ColorDarkBlue,
		PromptFg:    tcell.ColorWhite,
	},
	"light": {
		Name:        "Light",
		Background:  tcell.ColorWhite,
		Foreground:  tcell.ColorBlack,
		LineNumber:  tcell.ColorGray,
		EmptyLine:   tcell.ColorLightGray,
		StatusBarBg: tcell.ColorLightBlue,
		StatusBarFg: tcell.ColorBlack,
		MessageFg:   tcell.ColorNavy,
		ErrorFg:     tcell.ColorDarkRed,
		PromptBg:    tcell.ColorLightGray,
		PromptFg:    tcell.ColorBlack,
	},
	"monokai": {
		Name:        "Monokai",
		Background:  tcell.NewRGBColor(39, 40, 34),
		Foreground:  tcell.NewRGBColor(248, 248, 242),
		LineNumber:  tcell.NewRGBColor(144, 144, 128),
		EmptyLine:   tcell.NewRGBColor(70, 71, 60),
		StatusBarBg: tcell.NewRGBColor(73, 72, 62),
		StatusBarFg: tcell.NewRGBColor(248, 248, 242),
		MessageFg:   tcell.NewRGBColor(230, 219, 116),
		ErrorFg:     tcell.NewRGBColor(249, 38, 114),
		PromptBg:    tcell.NewRGBColor(73, 72, 62),
		PromptFg:    tcell.NewRGBColor(248, 248, 242),
	},
	"nord": {
		Name:        "Nord",
		Background:  tcell.NewRGBColor(46, 52, 64),
		Foreground:  tcell.NewRGBColor(236, 239, 244),
		LineNumber:  tcell.NewRGBColor(76, 86, 106),
		EmptyLine:   tcell.NewRGBColor(59, 66, 82),
		StatusBarBg: tcell.NewRGBColor(67, 76, 94),
		StatusBarFg: tcell.NewRGBColor(236, 239, 244),
		MessageFg:   tcell.NewRGBColor(235, 203, 139),
		ErrorFg:     tcell.NewRGBColor(191, 97, 106),
		PromptBg:    tcell.NewRGBColor(67, 76, 94),
		PromptFg:    tcell.NewRGBColor(236, 239, 244),
	},
	"gruvbox": {
		Name:        "Gruvbox Dark",
		Background:  tcell.NewRGBColor(40, 40, 40),
		Foreground:  tcell.NewRGBColor(235, 219, 178),
		LineNumber:  tcell.NewRGBColor(146, 131, 116),
		EmptyLine:   tcell.NewRGBColor(80, 73, 69),
		StatusBarBg: tcell.NewRGBColor(60, 56, 54),
		StatusBarFg: tcell.NewRGBColor(235, 219, 178),
		MessageFg:   tcell.NewRGBColor(250, 189, 47),
		ErrorFg:     tcell.NewRGBColor(251, 73, 52),
		PromptBg:    tcell.NewRGBColor(60, 56, 54),
		PromptFg:    tcell.NewRGBColor(235, 219, 178),
	},
	"high-contrast": {
		Name:        "High Contrast",
		Background:  tcell.NewRGBColor(0, 0, 0),
		Foreground:  tcell.NewRGBColor(255, 255, 255),
		LineNumber:  tcell.NewRGBColor(180, 180, 180),
		EmptyLine:   tcell.NewRGBColor(60, 60, 60),
		StatusBarBg: tcell.NewRGBColor(0, 0, 200),
		StatusBarFg: tcell.NewRGBColor(255, 255, 255),
		MessageFg:   tcell.NewRGBColor(255, 255, 0),
		ErrorFg:     tcell.NewRGBColor(255, 80, 80),
		PromptBg:    tcell.NewRGBColor(40, 40, 40),
		PromptFg:    tcell.NewRGBColor(255, 255, 255),
	},
}

// ColorScheme returns the configured theme, falling back to "dark" for
// unknown names.
func (c Config) ColorScheme() *ColorScheme {
	if theme, ok := Themes[c.Theme]; ok {
		return theme
	}
	return Themes["dark"]
}
