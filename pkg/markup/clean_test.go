package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{
			name:   "table skeleton",
			markup: "{|class=\"wikitable\"\n|+Caption\n!A!!B\n|-\n|1||2\n|}",
			want:   []string{"Caption", "A", "B", "-", "1", "2"},
		},
		{
			name:   "reference block with name",
			markup: `Paris<ref name="x">source</ref> France`,
			want:   []string{"Paris", "France"},
		},
		{
			name:   "reference block without name",
			markup: `Paris<ref>source</ref>`,
			want:   []string{"Paris"},
		},
		{
			name:   "span tags keep content",
			markup: `<span>Berlin</span>`,
			want:   []string{"Berlin"},
		},
		{
			name:   "bgcolor attribute",
			markup: `bgcolor="red"|Rome`,
			want:   []string{"Rome"},
		},
		{
			name:   "style attribute",
			markup: `style="color:blue"|Oslo`,
			want:   []string{"Oslo"},
		},
		{
			name:   "escaped quotes",
			markup: `align=\"center\"|Lima`,
			want:   []string{"Lima"},
		},
		{
			name:   "literal newline escape",
			markup: `a\nb`,
			want:   []string{"a", "b"},
		},
		{
			name:   "colspan keeps its value",
			markup: `colspan=2|X`,
			want:   []string{"2", "X"},
		},
		{
			name:   "wiki link",
			markup: `[[Link|Text]]`,
			want:   []string{"Link", "Text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.markup))
		})
	}
}

func TestClean_TrimsAndIsDeterministic(t *testing.T) {
	in := "  {|\n!Name\n|}  "
	first := Clean(in)
	assert.Equal(t, first, Clean(in))
	assert.Equal(t, "Name", first)
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Empty(t, Words(""))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "|Hello", "|Hello"},
		{"line breaks", `a\nb\r\n`, "a\nb\r\n"},
		{"quotes", `|\"Hello\" \'x\'`, `|"Hello" 'x'`},
		{"backslash", `a\\b`, `a\b`},
		{"tab", `a\tb`, "a\tb"},
		{"hex byte", `\x41`, "A"},
		{"unicode", `Z\u00fcrich`, "Zürich"},
		{"unknown escape kept", `\d+`, `\d+`},
		{"trailing backslash kept", `end\`, `end\`},
		{"utf-8 passes through", "Zürich", "Zürich"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}
