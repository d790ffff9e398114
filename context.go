package cmdparse

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/btree"
)

// Context holds everything needed to parse one command line: the global
// options, the commands, the tokenized arguments and, after validation,
// the results and leftover arguments.
//
// A Context is not safe for concurrent use.
type Context struct {
	*optionSet

	stream   tokenStream
	leftover []string
	commands *btree.Map[string, *Command]

	logger hclog.Logger

	validated bool
	err       error

	helpWidth int
	helpColor *bool
}

// New creates a Context. The usage string is printed at the top of the
// help message (eg. "prog [options] file"). The args must not contain the
// program name; usually they are os.Args[1:].
func New(usage string, args []string) *Context {
	c := &Context{
		stream:   tokenStream{tokens: Tokenize(args)},
		leftover: []string{},
		commands: btree.NewMap[string, *Command](0),
		logger:   hclog.NewNullLogger(),
	}
	c.optionSet = newOptionSet(c, "", usage)

	return c
}

// FromCommandLine creates a Context for the arguments of the running
// program.
func FromCommandLine(usage string) *Context {
	return New(usage, os.Args[1:])
}

// SetLogger makes the validator trace its work to logger. The default
// logger discards everything.
func (c *Context) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c.logger = logger
}

// Usage returns the usage summary passed to New().
func (c *Context) Usage() string {
	return c.description
}

// Validate checks the arguments against the registered options and
// commands and records the results. It stops at the first error; results
// recorded before that point are kept, but should not be trusted. The
// usual reaction to an error is to print the help and exit.
//
// Validate consumes the arguments: calling it again returns the first
// result without looking at them again.
func (c *Context) Validate() error {
	if c.validated {
		return c.err
	}
	c.validated = true

	v := &validator{
		ctx:    c,
		stream: &c.stream,
	}
	c.err = v.run()

	return c.err
}

// Args returns the leftover arguments: those that were neither an option,
// an option's value, nor a command name.
func (c *Context) Args() []string {
	return c.leftover
}

// owns reports whether the option handle h was issued by c.
func (c *Context) owns(h Opt) bool {
	return h.set != nil && h.set.root == c && h.index >= 0 && h.index < len(h.set.results)
}
