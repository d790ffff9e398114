// Package grammar declares the options and commands of a program in a
// configuration file (TOML, YAML or HCL) instead of in code, and registers
// them on a cmdparse.Context.
//
// A TOML grammar looks like this:
//
//	usage = "prog [options] command"
//
//	[[option]]
//	long = "verbose"
//	short = "v"
//	description = "Verbose output"
//
//	[[command]]
//	name = "run"
//	description = "Run the program"
//
//	[[command.option]]
//	long = "jobs"
//	short = "j"
//	value = "required"
//
// The same grammar in HCL:
//
//	usage = "prog [options] command"
//
//	option {
//	  long        = "verbose"
//	  short       = "v"
//	  description = "Verbose output"
//	}
//
//	command "run" {
//	  description = "Run the program"
//	  option {
//	    long  = "jobs"
//	    short = "j"
//	    value = "required"
//	  }
//	}
package grammar

import (
	"fmt"
	"unicode/utf8"

	"github.com/rcatolino/cmdparse"
)

// Value modes of an option.
const (
	ValueNone     = "none"
	ValueOptional = "optional"
	ValueRequired = "required"
)

// Definition is a complete grammar: the usage summary, the global options
// and the commands.
type Definition struct {
	Usage    string       `toml:"usage" yaml:"usage" hcl:"usage,optional"`
	Options  []OptionDef  `toml:"option" yaml:"options" hcl:"option,block"`
	Commands []CommandDef `toml:"command" yaml:"commands" hcl:"command,block"`
}

// OptionDef declares one option. Value is one of ValueNone (or empty),
// ValueOptional and ValueRequired.
type OptionDef struct {
	Long        string `toml:"long" yaml:"long" hcl:"long,optional"`
	Short       string `toml:"short" yaml:"short" hcl:"short,optional"`
	Description string `toml:"description" yaml:"description" hcl:"description,optional"`
	Value       string `toml:"value" yaml:"value" hcl:"value,optional"`
	Unique      bool   `toml:"unique" yaml:"unique" hcl:"unique,optional"`
	Hidden      bool   `toml:"hidden" yaml:"hidden" hcl:"hidden,optional"`
}

// CommandDef declares one command and its options.
type CommandDef struct {
	Name        string      `toml:"name" yaml:"name" hcl:"name,label"`
	Description string      `toml:"description" yaml:"description" hcl:"description,optional"`
	Options     []OptionDef `toml:"option" yaml:"options" hcl:"option,block"`
}

// Key returns the name an option is bound under: its long name, or its
// short name if it has no long one.
func (o OptionDef) Key() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// Command holds the handles of a registered command.
type Command struct {
	Cmd     cmdparse.Cmd
	Options map[string]cmdparse.Opt
}

// Bindings holds the handles created by Apply(), keyed by option key (see
// OptionDef.Key) and by command name.
type Bindings struct {
	Options  map[string]cmdparse.Opt
	Commands map[string]Command
}

// registry is what options are added to: a Context or a Command.
type registry interface {
	AddOption(long string, short rune, description string, flags cmdparse.Flags) (cmdparse.Opt, error)
}

func invalid(o OptionDef, command, reason string) error {
	return &cmdparse.DefinitionError{
		Kind:    cmdparse.ErrInvalidDefinition,
		Name:    o.Key(),
		Command: command,
		Reason:  reason,
	}
}

func (o OptionDef) flags(command string) (cmdparse.Flags, error) {
	var f cmdparse.Flags

	switch o.Value {
	case "", ValueNone:
	case ValueOptional:
		f |= cmdparse.TakesOptionalArg
	case ValueRequired:
		f |= cmdparse.TakesArg
	default:
		return 0, invalid(o, command, fmt.Sprintf("unknown value mode %q", o.Value))
	}

	if o.Unique {
		f |= cmdparse.Unique
	}
	if o.Hidden {
		f |= cmdparse.Hidden
	}
	return f, nil
}

func (o OptionDef) short(command string) (rune, error) {
	switch utf8.RuneCountInString(o.Short) {
	case 0:
		return cmdparse.NoShort, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(o.Short)
		return r, nil
	default:
		return 0, invalid(o, command, "a short name is a single character")
	}
}

func addOptions(r registry, command string, defs []OptionDef) (map[string]cmdparse.Opt, error) {
	opts := make(map[string]cmdparse.Opt, len(defs))

	for _, o := range defs {
		flags, err := o.flags(command)
		if err != nil {
			return nil, err
		}
		short, err := o.short(command)
		if err != nil {
			return nil, err
		}

		h, err := r.AddOption(o.Long, short, o.Description, flags)
		if err != nil {
			return nil, err
		}
		opts[o.Key()] = h
	}

	return opts, nil
}

// Apply registers the grammar's options and commands on ctx. It stops at
// the first definition error, which is returned as is; options registered
// before it are kept.
func (d *Definition) Apply(ctx *cmdparse.Context) (*Bindings, error) {
	opts, err := addOptions(ctx, "", d.Options)
	if err != nil {
		return nil, err
	}

	b := &Bindings{
		Options:  opts,
		Commands: make(map[string]Command, len(d.Commands)),
	}

	for _, c := range d.Commands {
		handle, cmd, err := ctx.AddCommand(c.Name, c.Description)
		if err != nil {
			return nil, err
		}

		opts, err := addOptions(cmd, c.Name, c.Options)
		if err != nil {
			return nil, err
		}
		b.Commands[c.Name] = Command{Cmd: handle, Options: opts}
	}

	return b, nil
}

// New creates a Context for args with the grammar's usage summary and
// applies the grammar to it.
func (d *Definition) New(args []string) (*cmdparse.Context, *Bindings, error) {
	ctx := cmdparse.New(d.Usage, args)

	b, err := d.Apply(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ctx, b, nil
}
