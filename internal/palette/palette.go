// Package palette holds the ANSI sequences behind the built-in themes.
package palette

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette is a set of foreground colours, one per semantic role.
type Palette struct {
	Text     string
	Content  string
	Mark     string
	Excluded string
}

func fg(r, g, b int) string {
	return "\x1b[38;2;" + itoa(r) + ";" + itoa(g) + ";" + itoa(b) + "m"
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for v > 0 && i > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

var (
	PaletteDefault = Palette{
		Content:  "",
		Mark:     "\x1b[90m",
		Excluded: "\x1b[36m",
	}
	PaletteGruvbox = Palette{
		Text:     fg(235, 219, 178),
		Content:  fg(250, 189, 47),
		Mark:     fg(146, 131, 116),
		Excluded: fg(142, 192, 124),
	}
	PaletteNord = Palette{
		Text:     fg(216, 222, 233),
		Content:  fg(136, 192, 208),
		Mark:     fg(76, 86, 106),
		Excluded: fg(163, 190, 140),
	}
	PaletteDracula = Palette{
		Text:     fg(248, 248, 242),
		Content:  fg(255, 121, 198),
		Mark:     fg(98, 114, 164),
		Excluded: fg(80, 250, 123),
	}
	PaletteSolarizedDark = Palette{
		Text:     fg(131, 148, 150),
		Content:  fg(181, 137, 0),
		Mark:     fg(88, 110, 117),
		Excluded: fg(42, 161, 152),
	}
	PaletteSolarizedLight = Palette{
		Text:     fg(101, 123, 131),
		Content:  fg(203, 75, 22),
		Mark:     fg(147, 161, 161),
		Excluded: fg(38, 139, 210),
	}
)
