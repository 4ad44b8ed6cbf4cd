package token

import (
	"strings"
	"testing"
)

func line(fields ...string) string {
	return strings.Join(fields, "\t") + "\n"
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "single digit", input: "1", want: 1, ok: true},
		{name: "multi digit", input: "42", want: 42, ok: true},
		{name: "multiword range", input: "3-4", ok: false},
		{name: "empty node", input: "5.1", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "word", input: "abc", ok: false},
		{name: "negative", input: "-1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseID(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int
		ok     bool
	}{
		{
			name:   "valid token line",
			input:  line("1", "Ths", "_", "_", "_", "_", "_", "_", "_", "CorrectForm=This"),
			wantID: 1,
			ok:     true,
		},
		{
			name:  "multiword token line",
			input: line("3-4", "isnt", "_", "_", "_", "_", "_", "_", "_", "_"),
			ok:    false,
		},
		{
			name:  "too few fields",
			input: line("1", "word", "_", "_", "_", "_", "_", "_", "_"),
			ok:    false,
		},
		{
			name:  "comment",
			input: "# text = Hello\n",
			ok:    false,
		},
		{
			name:  "blank",
			input: "\n",
			ok:    false,
		},
		{
			name:  "whitespace only",
			input: "   \n",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("Parse() ID = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

func TestToken_CorrectForm(t *testing.T) {
	tests := []struct {
		name string
		misc string
		want string
		ok   bool
	}{
		{name: "sole entry", misc: "CorrectForm=This", want: "This", ok: true},
		{name: "among other entries", misc: "SpaceAfter=No|CorrectForm=This|Lang=en", want: "This", ok: true},
		{name: "last occurrence wins", misc: "CorrectForm=first|CorrectForm=second", want: "second", ok: true},
		{name: "value to end of field", misc: "SpaceAfter=No|CorrectForm=tail", want: "tail", ok: true},
		{name: "empty value", misc: "CorrectForm=|SpaceAfter=No", want: "", ok: true},
		{name: "absent", misc: "SpaceAfter=No", ok: false},
		{name: "underscore misc", misc: "_", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Parse(line("1", "word", "_", "_", "_", "_", "_", "_", "_", tt.misc))
			if !ok {
				t.Fatal("Parse() failed on test line")
			}
			got, ok := tok.CorrectForm()
			if ok != tt.ok {
				t.Fatalf("CorrectForm() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("CorrectForm() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToken_SetFormLine(t *testing.T) {
	input := line("1", "Ths", "ths", "X", "_", "_", "0", "root", "_", "CorrectForm=This")
	tok, ok := Parse(input)
	if !ok {
		t.Fatal("Parse() failed on test line")
	}

	if got := tok.Form(); got != "Ths" {
		t.Errorf("Form() = %q, want %q", got, "Ths")
	}
	if got := tok.Misc(); got != "CorrectForm=This" {
		t.Errorf("Misc() = %q, want %q", got, "CorrectForm=This")
	}

	tok.SetForm("This")
	want := line("1", "This", "ths", "X", "_", "_", "0", "root", "_", "CorrectForm=This")
	if got := tok.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestIsCommentIsBlank(t *testing.T) {
	if !IsComment("# text = Hello\n") {
		t.Error("IsComment() = false for comment line")
	}
	// Comment detection is on the raw line: indented hashes do not count.
	if IsComment("  # indented\n") {
		t.Error("IsComment() = true for indented hash")
	}
	if !IsBlank("\n") || !IsBlank("  \t\n") || !IsBlank("") {
		t.Error("IsBlank() = false for blank input")
	}
	if IsBlank("1\tword\n") {
		t.Error("IsBlank() = true for token line")
	}
}
