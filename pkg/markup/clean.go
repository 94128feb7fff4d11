// Package markup turns raw wiki table markup into a plain-text surrogate
// suitable for token and word extraction.
package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	styleAttr   = regexp.MustCompile(`style="?(.*?)"`)
	layoutNoise = regexp.MustCompile(`\\n|class="?wikitable"?|colspan=(.*?)|rowspan=(.*?)|\|+`)
	refBlock    = regexp.MustCompile(`<ref(\s?name=(.*?))?>(.*?)</ref>`)
	spanTag     = regexp.MustCompile(`</?span\s*>`)
	colorAlign  = regexp.MustCompile(`bgcolor="(.*?)"|align="(.*?)"`)
	syntaxRuns  = regexp.MustCompile(`\]+|\[+|"+|'+|!+|\}+|\{+|\n+|\++`)
)

// Clean strips wiki syntax from markup. The substitutions run in a fixed
// order and each one assumes the previous ones already ran, so the result is
// only meant for tokenizing, never for re-parsing.
func Clean(markup string) string {
	s := strings.ReplaceAll(markup, `\"`, `"`)
	s = styleAttr.ReplaceAllString(s, " ")
	s = layoutNoise.ReplaceAllString(s, " ")
	s = refBlock.ReplaceAllString(s, " ")
	s = spanTag.ReplaceAllString(s, "")
	s = colorAlign.ReplaceAllString(s, " ")
	s = syntaxRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Words splits cleaned markup into whitespace-delimited tokens.
func Words(markup string) []string {
	return strings.Fields(Clean(markup))
}

// Unescape decodes the backslash escapes archived markup carries (\n, \t,
// \", \', \\, \xhh, octal and \u forms). Unknown escapes and a trailing
// backslash are kept as written.
func Unescape(markup string) string {
	if !strings.Contains(markup, `\`) {
		return markup
	}

	var b strings.Builder
	b.Grow(len(markup))
	s := markup
	for len(s) > 0 {
		if s[0] != '\\' {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		if len(s) > 1 && (s[1] == '"' || s[1] == '\'') {
			b.WriteByte(s[1])
			s = s[2:]
			continue
		}
		value, multibyte, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		if value < utf8.RuneSelf || multibyte {
			b.WriteRune(value)
		} else {
			b.WriteByte(byte(value))
		}
		s = tail
	}
	return b.String()
}
