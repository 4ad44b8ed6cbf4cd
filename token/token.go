// Package token parses CoNLL-U token lines.
//
// A token line has ten tab-separated columns: ID, FORM, LEMMA, UPOS,
// XPOS, FEATS, HEAD, DEPREL, DEPS, MISC. Multiword token lines carry a
// hyphenated ID range (e.g. "3-4") and are not simple tokens. The MISC
// column is a "|"-separated bag of key=value entries.
package token

import (
	"strconv"
	"strings"
)

// minFields is the column count a line must reach to qualify as a
// token line. CoNLL-U defines exactly ten columns.
const minFields = 10

// correctFormKey marks a corrected surface form in the MISC column.
const correctFormKey = "CorrectForm="

// IsComment reports whether line is a metadata comment. The check is
// on the raw line: leading whitespace disqualifies it.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Fields strips surrounding whitespace and splits line on tabs.
func Fields(line string) []string {
	return strings.Split(strings.TrimSpace(line), "\t")
}

// ParseID parses a simple token ID: one or more ASCII digits. It
// rejects hyphenated multiword ranges and decimal empty-node IDs.
func ParseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Token is one parsed simple-token line.
type Token struct {
	ID     int
	fields []string
}

// Parse parses line as a simple-token line. It returns false for
// comments, blanks, multiword token lines, and lines with fewer than
// ten columns; such lines must pass through transformations unchanged.
func Parse(line string) (Token, bool) {
	if IsBlank(line) || IsComment(line) {
		return Token{}, false
	}
	fields := Fields(line)
	if len(fields) < minFields {
		return Token{}, false
	}
	id, ok := ParseID(fields[0])
	if !ok {
		return Token{}, false
	}
	return Token{ID: id, fields: fields}, true
}

// Form returns the surface form (column 2).
func (t Token) Form() string {
	return t.fields[1]
}

// SetForm replaces the surface form.
func (t *Token) SetForm(form string) {
	t.fields[1] = form
}

// Misc returns the annotation bag (column 10).
func (t Token) Misc() string {
	return t.fields[9]
}

// CorrectForm extracts the value of the CorrectForm entry from the
// MISC column. When the key appears more than once the last occurrence
// wins; the value runs to the next "|" or the end of the column.
func (t Token) CorrectForm() (string, bool) {
	misc := t.Misc()
	i := strings.LastIndex(misc, correctFormKey)
	if i < 0 {
		return "", false
	}
	value := misc[i+len(correctFormKey):]
	if j := strings.IndexByte(value, '|'); j >= 0 {
		value = value[:j]
	}
	return value, true
}

// Line renders the token back to a terminated CoNLL-U line.
func (t Token) Line() string {
	return strings.Join(t.fields, "\t") + "\n"
}
