package mrm

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	User     int // user message accent
	Narrator int // narrator name and emphasis
	Stage    int // bracketed stage directions
	Error    int // glitch turns, fatal messages
	Success  int // status dot when idle
	Waiting  int // status dot while a request is outstanding
	Muted    int // separators, hints, placeholders
	Accent   int // header title, input border
}

// DefaultTheme returns the default ANSI color mapping: a pink user, a
// violet narrator, and cyan chrome, after the original console's palette.
func DefaultTheme() Theme {
	return Theme{
		User:     13,
		Narrator: 5,
		Stage:    8,
		Error:    1,
		Success:  2,
		Waiting:  3,
		Muted:    8,
		Accent:   6,
	}
}
