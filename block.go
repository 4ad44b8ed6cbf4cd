package conllu

import (
	"sort"
	"strings"

	"github.com/jamesainslie/go-conllu/token"
)

// textPrefix marks the sentence metadata line carrying the plain text.
const textPrefix = "# text = "

// correction records one annotated replacement for a token ID.
type correction struct {
	original  string
	corrected string
}

// splitLines splits s into lines, each keeping its terminator. A final
// unterminated line is returned as-is.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// segment groups lines into sentence blocks and rewrites each block's
// "# text = " line from the corrections found in that block. A block
// runs through its terminating blank line; corrections never cross
// blocks. When several text lines appear in one block the last one
// wins. A trailing block without a terminating blank line is kept but
// its text line is not rewritten.
func segment(lines []string, rep *Report) [][]string {
	var blocks [][]string

	var cur []string
	corrections := make(map[int]correction)
	textIdx := -1
	tokens := 0

	for _, line := range lines {
		cur = append(cur, line)

		switch {
		case strings.HasPrefix(line, textPrefix):
			textIdx = len(cur) - 1

		case !token.IsBlank(line) && !token.IsComment(line):
			t, ok := token.Parse(line)
			if !ok {
				continue
			}
			tokens++
			if form, ok := t.CorrectForm(); ok && form != t.Form() {
				corrections[t.ID] = correction{original: t.Form(), corrected: form}
			}

		case token.IsBlank(line):
			if len(corrections) > 0 && textIdx >= 0 {
				cur[textIdx] = textPrefix + summaryText(cur, corrections) + "\n"
				rep.Summaries++
			}
			if tokens > 0 {
				rep.Sentences++
			}
			blocks = append(blocks, cur)
			cur = nil
			corrections = make(map[int]correction)
			textIdx = -1
			tokens = 0
		}
	}

	// Trailing block without a terminating blank line: kept as-is,
	// corrections discarded without a text rewrite.
	if len(cur) > 0 {
		if tokens > 0 {
			rep.Sentences++
		}
		blocks = append(blocks, cur)
	}

	return blocks
}

// summaryText rebuilds the sentence text for one block by joining the
// corrected (or original) form of every simple token, ordered by
// numeric token ID.
func summaryText(block []string, corrections map[int]correction) string {
	type entry struct {
		id   int
		form string
	}
	var entries []entry

	for _, line := range block {
		if token.IsBlank(line) || token.IsComment(line) {
			continue
		}
		fields := token.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id, ok := token.ParseID(fields[0])
		if !ok {
			continue
		}
		form := fields[1]
		if c, ok := corrections[id]; ok {
			form = c.corrected
		}
		entries = append(entries, entry{id: id, form: form})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].id < entries[j].id })

	forms := make([]string, len(entries))
	for i, e := range entries {
		forms[i] = e.form
	}
	return strings.Join(forms, " ")
}

// rewriteForm overwrites the form column of a token line carrying a
// CorrectForm entry. Unlike the discovery pass, the overwrite happens
// even when the value equals the current form. Every other line is
// returned unchanged.
func rewriteForm(line string, rep *Report) string {
	t, ok := token.Parse(line)
	if !ok {
		return line
	}
	form, ok := t.CorrectForm()
	if !ok {
		return line
	}
	t.SetForm(form)
	rep.Forms++
	return t.Line()
}
