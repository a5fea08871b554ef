package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLegendMatchesExamples(t *testing.T) {
	for _, l := range DefaultLegend() {
		if !l.Marker.MatchLine(l.Example) {
			t.Errorf("%s does not match its example %q", l.Marker, l.Example)
		}
	}
}

func TestKeyDo(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	k := &Key{ShowPattern: true, Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"Section", "tarot", "--stoic-prompt", "^#EveningPages.*"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in:\n%s", want, out.String())
		}
	}
}
