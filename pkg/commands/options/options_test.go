package options

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestApplyAll(t *testing.T) {
	o := &JournalOptions{}
	cmd := &cobra.Command{Use: "pages"}
	AddJournalArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"-a", "-M"}); err != nil {
		t.Fatal(err)
	}
	if err := o.ApplyAll(cmd.Flags()); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if !o.Questions || !o.Tarot || !o.Stoic || !o.NoMove {
		t.Fatalf("unexpected options %+v", o)
	}
	if o.Test || o.Print {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestApplyAllUnset(t *testing.T) {
	o := &JournalOptions{}
	cmd := &cobra.Command{Use: "pages"}
	AddJournalArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"-t"}); err != nil {
		t.Fatal(err)
	}
	if err := o.ApplyAll(cmd.Flags()); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if o.Questions || !o.Tarot || o.Stoic {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestWindowDays(t *testing.T) {
	o := &WindowOptions{Window: "1w2d"}
	if d, err := o.Days(); err != nil || d != 9 {
		t.Fatalf("Days() = %d, %v", d, err)
	}
	o.Window = "later"
	if _, err := o.Days(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInteractiveFlag(t *testing.T) {
	o := &JournalOptions{}
	cmd := &cobra.Command{Use: "pages"}
	AddJournalArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"-i", "-t"}); err != nil {
		t.Fatal(err)
	}
	if !o.Interactive || !o.Tarot {
		t.Fatalf("unexpected options %+v", o)
	}
	if err := o.ApplyAll(cmd.Flags()); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if o.Questions || o.Stoic {
		t.Fatalf("interactive alone must not turn sections on: %+v", o)
	}
}
