package probe

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/width"
)

const replacementChar = "\uFFFD"

// LineStats describes how a line should occupy a terminal
type LineStats struct {
	Bytes     int
	Runes     int
	Columns   int // East Asian wide and fullwidth runes take two cells
	ValidUTF8 bool
	// Replacements is the number of U+FFFD a UTF-8 terminal substitutes
	// for ill-formed bytes in the line.
	Replacements int
}

// Measure computes LineStats for line
func Measure(line string) LineStats {
	stats := LineStats{
		Bytes: len(line),
		Runes: utf8.RuneCountInString(line),
	}

	for _, r := range line {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			stats.Columns += 2
		default:
			stats.Columns++
		}
	}

	// The UTF-8 encoder copies well-formed text verbatim and substitutes
	// U+FFFD for ill-formed bytes.
	encoded, err := unicode.UTF8.NewEncoder().String(line)
	if err != nil {
		return stats
	}
	stats.ValidUTF8 = encoded == line
	stats.Replacements = strings.Count(encoded, replacementChar) - strings.Count(line, replacementChar)
	return stats
}
