package lib

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrDegenerateName is returned when a file name has no ASCII letters or
// digits left once its extension is removed.
var ErrDegenerateName = errors.New("file name has no alphanumeric characters")

// ErrInvalidUTF8 is returned for file names that are not valid UTF-8 and so
// cannot be written to the manifest verbatim.
var ErrInvalidUTF8 = errors.New("file name is not valid UTF-8")

// TrimExt removes the extension (the part from the last dot) from name.
// Leading dots do not start an extension, so ".hidden" is returned unchanged.
func TrimExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return name
	}
	return name[:i]
}

// Ext returns the extension TrimExt would remove, including the dot.
func Ext(name string) string {
	return name[len(TrimExt(name)):]
}

// Tokens splits s on every run of characters that are not ASCII letters or digits.
func Tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isAlnum(r)
	})
}

// ToKey converts a file name into a camelCase key. The first token is
// lowercased and every following token is capitalized.
func ToKey(fileName string) (string, error) {
	tokens := Tokens(foldMarks(TrimExt(fileName)))
	if len(tokens) == 0 {
		return "", ErrDegenerateName
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(tokens[0]))
	for _, tok := range tokens[1:] {
		b.WriteString(strings.ToUpper(tok[:1]))
		b.WriteString(strings.ToLower(tok[1:]))
	}
	return b.String(), nil
}

// foldMarks strips combining marks after decomposition, so "Café" and
// "Cafe\u0301" both become "Cafe". Letters without a decomposition
// (ß, ø, CJK) are left alone and act as separators.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
