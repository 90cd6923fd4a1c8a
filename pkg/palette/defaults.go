package palette

// Default cell codes of the flagship board.
const (
	BlankCode       Code = 0
	PlaceholderCode Code = 0
)

// DefaultTables returns a fresh copy of the flagship board's tables.
func DefaultTables() Tables {
	chars := map[rune]Code{' ': BlankCode}
	for i := 'A'; i <= 'Z'; i++ {
		chars[i] = Code(i - 'A' + 1)
	}
	for i := '1'; i <= '9'; i++ {
		chars[i] = Code(i - '1' + 27)
	}
	chars['0'] = 36
	for ch, c := range map[rune]Code{
		'!': 37, '@': 38, '#': 39, '$': 40, '(': 41, ')': 42, '*': 43,
		'-': 44, '_': 45, '+': 46, '&': 47, '=': 48, ';': 49, ':': 50,
		'\'': 52, '"': 53, '%': 54, ',': 55, '.': 56, '<': 57, '>': 58,
		'/': 59, '?': 60, '°': 62,
	} {
		chars[ch] = c
	}

	return Tables{
		Colors: map[string]Code{
			"red":    63,
			"orange": 64,
			"yellow": 65,
			"green":  66,
			"blue":   67,
			"violet": 68,
			"white":  69,
			"black":  70,
			"filled": 71,
		},
		Symbols: map[string]string{
			"sun":    "*",
			"star":   "*",
			"heart":  "<3",
			"degree": "°",
			"arrow":  "->",
			"smile":  ":)",
			"check":  "OK",
		},
		Characters:  chars,
		Blank:       BlankCode,
		Placeholder: PlaceholderCode,
	}
}

var defaultResolver = MustNew(DefaultTables())

// Default returns the resolver for the flagship board.
func Default() *Resolver {
	return defaultResolver
}
