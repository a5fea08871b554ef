package entry

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxCardValue is the longest column value still worth a mention; longer
// values are descriptions.
const maxCardValue = 30

var skipCardColumns = map[string]bool{
	"Group":  true,
	"Up":     true,
	"Across": true,
	"Down":   true,
}

// Field is one column of a tarot deck row.
type Field struct {
	Name  string
	Value string
}

// Card is one row of the tarot deck, columns in file order.
type Card []Field

// Name returns the value of the Card column.
func (c Card) Name() string {
	for _, f := range c {
		if f.Name == "Card" {
			return f.Value
		}
	}
	return ""
}

// Tarot renders the "Tarot:" line for card. Layout columns, empty or
// numeric values, placeholders ("-"), sentences and long descriptions are
// left out.
func Tarot(card Card) string {
	values := make([]string, 0, len(card))
	for _, f := range card {
		v := f.Value
		switch {
		case skipCardColumns[f.Name]:
		case v == "" || v == "-":
		case isNumber(v):
		case utf8.RuneCountInString(v) > maxCardValue:
		case strings.HasSuffix(v, "."):
		default:
			values = append(values, v)
		}
	}
	return "Tarot: " + strings.Join(values, ", ") + "\n"
}

func isNumber(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}
