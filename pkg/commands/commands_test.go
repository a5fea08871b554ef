package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegistersFlags(t *testing.T) {
	cmd := New()
	for _, name := range []string{"all", "questions", "tarot", "stoic-prompt", "test", "do-not-move-stoics", "print", "interactive"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	shorts := map[string]string{"a": "all", "q": "questions", "t": "tarot", "s": "stoic-prompt", "T": "test", "M": "do-not-move-stoics", "P": "print", "i": "interactive"}
	for short, name := range shorts {
		f := cmd.Flags().ShorthandLookup(short)
		if f == nil || f.Name != name {
			t.Errorf("-%s should be --%s", short, name)
		}
	}
	if cmd.PersistentFlags().Lookup("json") == nil {
		t.Errorf("missing flag --json")
	}
}

func TestNewRegistersCommands(t *testing.T) {
	var got []string
	for _, c := range New().Commands() {
		got = append(got, c.Name())
	}
	want := []string{"completion", "count", "info", "key", "prompts", "version"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected commands (-want +got):\n%s", diff)
	}
}

func TestAllFlagTurnsOnSections(t *testing.T) {
	cmd := New()
	if err := cmd.ParseFlags([]string{"-a"}); err != nil {
		t.Fatal(err)
	}
	if err := cmd.PreRunE(cmd, nil); err != nil {
		t.Fatalf("PreRunE: %v", err)
	}
	for _, name := range []string{"questions", "tarot", "stoic-prompt"} {
		if v, _ := cmd.Flags().GetBool(name); !v {
			t.Errorf("--%s not set by --all", name)
		}
	}
}
