package wordcount

import "testing"

func TestCount(t *testing.T) {
	tests := map[string]struct {
		text string
		want int
	}{
		"empty":             {text: "", want: 0},
		"whitespace only":   {text: " \n\t\n", want: 0},
		"plain":             {text: "one two three", want: 3},
		"checkbox":          {text: "- [x] done task", want: 2},
		"open checkbox":     {text: "- [ ] todo", want: 1},
		"slash letters":     {text: "a/b test", want: 3},
		"period joined":     {text: "end.Start", want: 2},
		"abbreviation":      {text: "e.g.", want: 2},
		"em dash joined":    {text: "word—word", want: 2},
		"em dash spaced":    {text: "word — word", want: 2},
		"hyphenated":        {text: "well-known", want: 1},
		"ampersand":         {text: "Tom & Jerry", want: 2},
		"decade":            {text: "the 20’s", want: 3},
		"dots":              {text: "wait ... what", want: 2},
		"trailing dots":     {text: "so ...", want: 1},
		"trailing period":   {text: "hi .", want: 1},
		"double question":   {text: "what ??", want: 1},
		"spaced ellipsis":   {text: "really …so", want: 2},
		"spaced question":   {text: "why ?", want: 1},
		"dotted letters":    {text: "a.b.c", want: 3},
		"version":           {text: "1.2.3", want: 3},
		"em dash chain":     {text: "a—b—c", want: 3},
		"ellipsis chain":    {text: "a…b…c", want: 3},
		"goal line":         {text: "Goal WC: 750", want: 3},
		"assignment":        {text: "key=value", want: 2},
		"time":              {text: "12:30", want: 2},
		"markdown emphasis": {text: "_very_ important", want: 2},
		"multiline":         {text: "title\n#MorningPages, started at 0730\n\n\n", want: 5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Count(tc.text); got != tc.want {
				t.Fatalf("Count(%q) = %d, want %d (normalized %q)", tc.text, got, tc.want, Normalize(tc.text))
			}
		})
	}
}

func TestNormalizeStable(t *testing.T) {
	inputs := []string{
		"a/b test",
		"end.Start",
		"- [x] done task",
		"word—word",
		"well-known",
		"Tom & Jerry",
		"the 20’s",
		"wait ... what",
		"really …so",
		"why ?",
		"e.g.",
		"a.b.c",
		"1.2.3",
		"a—b—c",
		"a…b…c",
		"so ...",
		"hi .",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if got, want := Count(once), Count(in); got != want {
			t.Errorf("Count(Normalize(%q)) = %d, want %d", in, got, want)
		}
	}
}

func TestNormalizeOrder(t *testing.T) {
	// The em dash rule has to see the dash before the removal rule does.
	if got, want := Normalize("a—b"), "a b"; got != want {
		t.Fatalf("Normalize(a—b) = %q, want %q", got, want)
	}
	if got, want := Normalize("a - b"), "a  b"; got != want {
		t.Fatalf("Normalize(a - b) = %q, want %q", got, want)
	}
}
