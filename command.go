package cmdparse

import (
	"strings"
	"unicode"
)

// Command is a sub-command with its own set of options. Options are added
// to it with the same methods as on a Context; their names are independent
// of the global ones.
type Command struct {
	*optionSet

	name     string
	selected bool
}

// Cmd is the handle returned when a command is registered. Use
// Context.Selected() to check whether the command was given.
type Cmd struct {
	cmd *Command
}

// CommandInfo describes a registered command for display.
type CommandInfo struct {
	Name        string
	Description string
	Options     []OptionInfo
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the command's description.
func (c *Command) Description() string {
	return c.description
}

func (c *Command) info() CommandInfo {
	return CommandInfo{Name: c.name, Description: c.description, Options: c.Options()}
}

func isValidCommandName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "-") &&
		strings.IndexFunc(name, unicode.IsSpace) < 0
}

// AddCommand registers a valid command. The returned *Command is used to
// add the command's own options; the Cmd handle is used after validation.
//
// Returns an error wrapping ErrDuplicateName if a command with the same
// name was already added, and ErrInvalidDefinition if the name is empty,
// contains whitespace or starts with '-'.
func (c *Context) AddCommand(name, description string) (Cmd, *Command, error) {
	if !isValidCommandName(name) {
		return Cmd{}, nil, &DefinitionError{Kind: ErrInvalidDefinition, Name: name,
			Reason: "malformed command name"}
	}
	if _, ok := c.commands.Get(name); ok {
		return Cmd{}, nil, &DefinitionError{Kind: ErrDuplicateName, Name: name,
			Reason: "this command was already added"}
	}

	cmd := &Command{
		optionSet: newOptionSet(c, name, description),
		name:      name,
	}
	c.commands.Set(name, cmd)

	return Cmd{cmd: cmd}, cmd, nil
}

// AddCommandFunc registers a command and calls fn to add its options.
// It panics if the command cannot be registered.
func (c *Context) AddCommandFunc(name, description string, fn func(cmd *Command)) Cmd {
	handle, cmd, err := c.AddCommand(name, description)
	if err != nil {
		panic(err)
	}
	if fn != nil {
		fn(cmd)
	}
	return handle
}

// Commands returns the registered commands, sorted by name.
func (c *Context) Commands() []CommandInfo {
	out := make([]CommandInfo, 0, c.commands.Len())
	c.commands.Scan(func(_ string, cmd *Command) bool {
		out = append(out, cmd.info())
		return true
	})
	return out
}

// Selected reports whether the command was given on the command line.
// It panics if the handle does not belong to c.
func (c *Context) Selected(h Cmd) bool {
	if h.cmd == nil || h.cmd.root != c {
		panic("cmdparse: command handle does not belong to this context")
	}
	return h.cmd.selected
}
