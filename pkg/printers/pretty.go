package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " word")
	default:
		_, _ = c.Fprintln(pp.out(), " words")
	}
}

// Notice reports something a run did, like creating an entry.
func (pp *PrettyPrint) Notice(format string, a ...interface{}) {
	y := color.New(color.FgHiYellow, color.Faint)
	_, _ = y.Fprintf(pp.out(), format+"\n", a...)
}

// Content prints entry text as it will be written.
func (pp *PrettyPrint) Content(content string) {
	if content == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " empty\n\n")
		return
	}
	_, _ = fmt.Fprint(pp.out(), content)
	if !strings.HasSuffix(content, "\n") {
		pp.NewLine()
	}
}

// Command echoes a command line, quoting the last argument.
func (pp *PrettyPrint) Command(args []string) {
	if len(args) == 0 {
		return
	}
	c := color.New(color.FgCyan)
	line := strings.Join(args[:len(args)-1], " ")
	if line != "" {
		line += " "
	}
	_, _ = c.Fprintf(pp.out(), "%s%q\n", line, args[len(args)-1])
}
