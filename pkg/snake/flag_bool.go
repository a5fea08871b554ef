// Package snake asks for flag values interactively.
package snake

import (
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptFlagBool asks for a yes/no answer to a boolean flag, defaulting to
// its current value, and returns the answer.
func PromptFlagBool(f *pflag.Flag, in io.ReadCloser, out io.WriteCloser) (bool, error) {
	current, err := ParseBool(f.Value.String())
	if err != nil {
		return false, fmt.Errorf("snake: %s is not a bool flag", f.Name)
	}

	_, _ = fmt.Fprintf(out, "%s: %s\n", asFlags(f), f.Usage)

	validInput := "y/[n]"
	if current {
		validInput = "[y]/n"
	}

	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "Answer {{ . }} : ",
		Valid:   "Answer {{ . | green }} : ",
		Invalid: "Answer {{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     validInput,
		Templates: templates,
		Validate:  validate,
		Stdin:     in,
		Stdout:    out,
	}

	result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	if result == "" {
		return current, nil
	}
	return ParseBool(result)
}

// PromptFlags asks for each named boolean flag of fs and sets it to the
// answer. Flags already set on the command line are left alone.
func PromptFlags(fs *pflag.FlagSet, names []string, in io.ReadCloser, out io.WriteCloser) error {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, err := PromptFlagBool(f, in, out)
		if err != nil {
			return err
		}
		if err := fs.Set(name, strconv.FormatBool(v)); err != nil {
			return err
		}
	}
	return nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
