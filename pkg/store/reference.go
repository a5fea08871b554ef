package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/pages/pkg/entry"
	"tableflip.dev/pages/pkg/progress"
	"tableflip.dev/pages/pkg/section"
)

const layoutPromptDate = "1/2"

// LoadPrompts reads the stoic prompt table. Rows need a Day index; an
// unparsable Date is kept as no date.
func LoadPrompts(path string) ([]progress.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open prompts: %w", err)
	}
	defer f.Close()
	records, err := ReadPrompts(f)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return records, nil
}

// ReadPrompts parses a Day,Date,Question table.
func ReadPrompts(r io.Reader) ([]progress.Record, error) {
	columns, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	header := columnIndex(columns)
	dayCol, ok := header["Day"]
	if !ok {
		return nil, fmt.Errorf("missing Day column")
	}
	textCol, ok := header["Question"]
	if !ok {
		return nil, fmt.Errorf("missing Question column")
	}
	dateCol, hasDate := header["Date"]

	records := make([]progress.Record, 0, len(rows))
	for _, row := range rows {
		day, err := strconv.Atoi(strings.TrimSpace(cell(row, dayCol)))
		if err != nil {
			continue
		}
		rec := progress.Record{Day: day, Text: cell(row, textCol)}
		if hasDate {
			if d, err := time.Parse(layoutPromptDate, strings.TrimSpace(cell(row, dateCol))); err == nil {
				rec.Date = d
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadDeck reads the tarot deck, one card per row.
func LoadDeck(path string) ([]entry.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open deck: %w", err)
	}
	defer f.Close()
	cards, err := ReadDeck(f)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return cards, nil
}

// ReadDeck parses a tarot table with a Card column.
func ReadDeck(r io.Reader) ([]entry.Card, error) {
	columns, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if _, ok := columnIndex(columns)["Card"]; !ok {
		return nil, fmt.Errorf("missing Card column")
	}
	cards := make([]entry.Card, 0, len(rows))
	for _, row := range rows {
		card := make(entry.Card, 0, len(columns))
		for i, name := range columns {
			card = append(card, entry.Field{Name: name, Value: cell(row, i)})
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// LoadQuestions reads the question templates, one "label:" per line. An
// unterminated last line is terminated.
func LoadQuestions(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read questions: %w", err)
	}
	lines := section.Lines(string(b))
	if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
		lines[n-1] += "\n"
	}
	return lines, nil
}

func readTable(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}
	columns := make([]string, len(all[0]))
	for i, name := range all[0] {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	return columns, all[1:], nil
}

// columnIndex maps each column name to its first position.
func columnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Files reads the reference tables from the configured reference dir.
type Files struct {
	Config *Config
}

func (f Files) Prompts() ([]progress.Record, error) {
	return LoadPrompts(f.Config.PromptsPath())
}

func (f Files) Deck() ([]entry.Card, error) {
	return LoadDeck(f.Config.DeckPath())
}

func (f Files) Questions() ([]string, error) {
	return LoadQuestions(f.Config.QuestionsPath())
}
