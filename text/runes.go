package text

import "slices"

// TabSize is the advance of a tab, in multiples of a space.
const TabSize = 4

// PasswordReplacementChar is drawn in place of every character of a
// password field. It is preloaded with the common characters.
const PasswordReplacementChar = '•'

// Characters tried, in order, when a character has no glyph in any face.
const (
	primaryReplacementChar  = '◻' // white medium square
	fallbackReplacementChar = '?'
)

// thinSpace is U+2009, often used as a thousands separator.
const thinSpace = '\u2009'

// BuiltinFontNames are the names of the fonts that ship with the
// toolkit. Faces with one of these names hide a few unwanted characters.
var BuiltinFontNames = []string{
	"Ubuntu-Light",
	"NotoEmoji-Regular",
	"emoji-icon-font",
	"Hack",
}

func isBuiltinFont(name string) bool {
	return slices.Contains(BuiltinFontNames, name)
}

// ignoredChar reports characters that built-in fonts must never render:
// a religious symbol with a hateful second reading and the Ubuntu-Light
// private use logos.
func ignoredChar(r rune) bool {
	switch r {
	case '\u534D', '\u5350', '\uE0FF', '\uEFFD', '\uF0FF', '\uF200':
		return true
	}
	return false
}

// invisibleChar reports characters that always have zero width: carriage
// return, zero width spaces and joiners, bidi controls, invisible
// operators and the byte order mark.
func invisibleChar(r rune) bool {
	switch {
	case r == '\r',
		r >= '\u200B' && r <= '\u200F',
		r >= '\u202A' && r <= '\u202E',
		r >= '\u2060' && r <= '\u2064',
		r >= '\u2066' && r <= '\u206F',
		r == '\uFEFF':
		return true
	}
	return false
}
