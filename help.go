package cmdparse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	defaultHelpWidth = 80
	minWrapWidth     = 20 // narrower description columns are not wrapped
)

// SetHelpWidth sets the width the help message is wrapped to. Zero means
// the terminal width, or 80 columns when the output is not a terminal.
func (c *Context) SetHelpWidth(width int) {
	c.helpWidth = width
}

// SetHelpColor forces colored help output on or off. By default, color is
// used when the output is a terminal and NO_COLOR is not set.
func (c *Context) SetHelpColor(enabled bool) {
	c.helpColor = &enabled
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// helpColumns is the width the help message is wrapped to.
func (c *Context) helpColumns(w io.Writer) int {
	if c.helpWidth > 0 {
		return c.helpWidth
	}
	if fd, ok := terminalFd(w); ok {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultHelpWidth
}

func (c *Context) colorize(w io.Writer) bool {
	if c.helpColor != nil {
		return *c.helpColor
	}
	_, tty := terminalFd(w)
	return tty && !color.NoColor
}

// PrintHelp writes the help message to standard output. If msg is not
// empty, it is printed first as an error message.
func (c *Context) PrintHelp(msg string) {
	c.WriteHelp(os.Stdout, msg)
}

// WriteHelp writes the help message to w: the error message (if msg is
// not empty), the usage summary, the visible global options, and every
// command with its visible options.
func (c *Context) WriteHelp(w io.Writer, msg string) error {
	var b strings.Builder

	width := c.helpColumns(w)
	heading := color.New(color.Bold)
	alert := color.New(color.FgRed, color.Bold)
	if c.colorize(w) {
		heading.EnableColor()
		alert.EnableColor()
	} else {
		heading.DisableColor()
		alert.DisableColor()
	}

	if msg != "" {
		alert.Fprint(&b, "Error:")
		fmt.Fprintf(&b, " %s\n\n", msg)
	}

	heading.Fprint(&b, "Usage:")
	fmt.Fprintf(&b, "\n  %s\n", c.description)

	writeOptions(&b, c.optionSet, "  ", width, true)

	if c.commands.Len() > 0 {
		nameWidth := 0
		c.commands.Scan(func(name string, _ *Command) bool {
			nameWidth = max(nameWidth, runewidth.StringWidth(name))
			return true
		})

		b.WriteString("\n")
		heading.Fprint(&b, "Commands:")
		b.WriteString("\n")

		c.commands.Scan(func(name string, cmd *Command) bool {
			writeEntry(&b, "  ", name, nameWidth, cmd.description, width)
			writeOptions(&b, cmd.optionSet, "    ", width, false)
			return true
		})
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeOptions writes the visible options of set, one per line, aligned on
// the set's widest label.
func writeOptions(b *strings.Builder, set *optionSet, indent string,
	width int, global bool) {

	visible := make([]OptionInfo, 0, len(set.options))
	for _, o := range set.options {
		if !o.IsHidden() {
			visible = append(visible, o)
		}
	}
	if len(visible) == 0 {
		return
	}

	if global {
		b.WriteString("\nOptions:\n")
	} else {
		fmt.Fprintf(b, "%sOptions for %s:\n", indent, set.command)
	}

	for _, o := range visible {
		writeEntry(b, indent, o.Label(), set.width, o.Description, width)
	}
	if !global {
		b.WriteString("\n")
	}
}

// writeEntry writes one "label  description" line, wrapping the
// description so that continuation lines stay in the description column.
func writeEntry(b *strings.Builder, indent, label string, labelWidth int,
	desc string, width int) {

	if desc == "" {
		fmt.Fprintf(b, "%s%s\n", indent, label)
		return
	}

	column := len(indent) + labelWidth + 2
	if avail := width - column; avail >= minWrapWidth {
		desc = wordwrap.WrapString(desc, uint(avail))
	}
	desc = strings.ReplaceAll(desc, "\n", "\n"+strings.Repeat(" ", column))

	fmt.Fprintf(b, "%s%s  %s\n", indent, runewidth.FillRight(label, labelWidth), desc)
}

// WriteValues writes the name, occurrence count and captured values of
// every registered option to w, followed by the selection state of every
// command. It is meant for debugging.
func (c *Context) WriteValues(w io.Writer) error {
	type row struct{ name, count, values string }

	rows := []row{}
	add := func(prefix string, set *optionSet) {
		for i, o := range set.options {
			res := set.results[i]
			rows = append(rows, row{
				name:   prefix + o.Name(),
				count:  fmt.Sprintf("%d", res.count),
				values: fmt.Sprintf("%q", res.values),
			})
		}
	}

	add("", c.optionSet)
	c.commands.Scan(func(name string, cmd *Command) bool {
		rows = append(rows, row{name: name, count: fmt.Sprintf("%t", cmd.selected)})
		add(name+" ", cmd.optionSet)
		return true
	})

	// Find max length of names and counts
	mxName, mxCount := 0, 0
	for _, r := range rows {
		mxName = max(mxName, runewidth.StringWidth(r.name))
		mxCount = max(mxCount, len(r.count))
	}

	for _, r := range rows {
		line := fmt.Sprintf("%s   %-*s   %s", runewidth.FillRight(r.name, mxName),
			mxCount, r.count, r.values)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s   %q\n", runewidth.FillRight("args", mxName), c.leftover)
	return err
}
