// Package wordcount approximates the word count shown by iA Writer.
package wordcount

import (
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
	// repeat reapplies the rule until the text stops changing. Rules whose
	// matches share a character ("a.b.c") need it.
	repeat bool
}

// rules run in order, each on the output of the previous one.
var rules = []rule{
	// checkboxes: "- [x]"
	{re: regexp.MustCompile(`- \[.\]`), repl: ""},
	{re: regexp.MustCompile(`[_:><\/=]`), repl: " "},
	{re: regexp.MustCompile(`[A-Za-z]/[A-Za-z]`), repl: " "},
	{re: regexp.MustCompile(`(\S)—(\S)`), repl: "${1} ${2}", repeat: true},
	{re: regexp.MustCompile(`[&—-]`), repl: ""},
	// 20’s
	{re: regexp.MustCompile(`([0-9])’([a-zA-Z])`), repl: "${1} ${2}"},
	// "so ..." and "why ?" fold into the word before them.
	{re: regexp.MustCompile(` (?:\.{1,3}|\?{1,3}|…)`), repl: "…"},
	{re: regexp.MustCompile(`(\S)…(\S)`), repl: "${1} ${2}", repeat: true},
	// end.Start
	{re: regexp.MustCompile(`([a-zA-Z0-9])\.([a-zA-Z0-9])`), repl: "${1} ${2}", repeat: true},
}

func (r rule) apply(text string) string {
	for {
		next := r.re.ReplaceAllString(text, r.repl)
		if !r.repeat || next == text {
			return next
		}
		text = next
	}
}

// Normalize applies the punctuation rules without splitting.
func Normalize(text string) string {
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}

// Count returns the number of words in text.
func Count(text string) int {
	return len(strings.Fields(Normalize(text)))
}
