package cmdparse

import (
	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/btree"
)

// States of the validator.
type state int

const (
	scanning       state = iota // consuming tokens
	expectingValue              // an option that may take a value was just matched
	done                        // all tokens consumed
	failed                      // stopped at the first error
)

func (s state) String() string {
	switch s {
	case scanning:
		return "scanning"
	case expectingValue:
		return "expecting-value"
	case done:
		return "done"
	case failed:
		return "failed"
	default:
		return "unknown"
	}
}

type matchKind int

const (
	matchNone matchKind = iota
	matchOption
	matchCommand
)

// match is the outcome of looking up one token in the active scope.
type match struct {
	kind    matchKind
	option  int
	command *Command
}

// scope is the part of the grammar that tokens are matched against: the
// global options and commands, or the options of the selected command.
type scope struct {
	set      *optionSet
	commands *btree.Map[string, *Command] // nil inside a command
	command  *Command                     // nil in the global scope
	logger   hclog.Logger
}

func (sc scope) name() string {
	if sc.command == nil {
		return ""
	}
	return sc.command.name
}

// validator runs the state machine over the Context's token stream. The
// stream is shared between the global scope and the command scope it
// descends into.
type validator struct {
	ctx    *Context
	stream *tokenStream
}

func (v *validator) run() error {
	c := v.ctx
	return v.scan(scope{set: c.optionSet, commands: c.commands, logger: c.logger})
}

func (v *validator) lookup(sc scope, tok Token) match {
	switch tok.Kind {
	case ShortFlag:
		if i, ok := sc.set.findShort(tok.Short); ok {
			return match{kind: matchOption, option: i}
		}

	case LongFlag:
		if i, ok := sc.set.findLong(tok.Text); ok {
			return match{kind: matchOption, option: i}
		}

	case BareValue:
		if sc.commands != nil {
			if cmd, ok := sc.commands.Get(tok.Text); ok {
				return match{kind: matchCommand, command: cmd}
			}
		}
		// Inside a command, its own name again is a second invocation
		if sc.command != nil && sc.command.name == tok.Text {
			return match{kind: matchCommand, command: sc.command}
		}
	}

	return match{kind: matchNone}
}

// fail builds the error for kind. Pending leftover arguments take
// precedence: they are what the user got wrong first.
func (v *validator) fail(sc scope, kind error, name string) error {
	if len(v.ctx.leftover) > 0 && kind != ErrUnexpectedArgument {
		kind, name = ErrUnexpectedArgument, v.ctx.leftover[0]
	}
	err := &ParseError{Kind: kind, Name: name, Command: sc.name()}
	sc.logger.Debug("validation failed", "error", err)
	return err
}

// checkLeftover fails if leftover arguments precede a matched option or
// command. Leftovers are only allowed after everything else.
func (v *validator) checkLeftover(sc scope) error {
	if len(v.ctx.leftover) == 0 {
		return nil
	}
	return v.fail(sc, ErrUnexpectedArgument, v.ctx.leftover[0])
}

// scan consumes tokens against sc until the stream is exhausted or an
// error occurs. A command name descends into the command's scope, which
// scans the rest of the stream before control returns here.
func (v *validator) scan(sc scope) error {
	var (
		st      = scanning
		err     error
		pending int    // option waiting for a value
		typed   string // pending option as typed on the command line
	)

	for {
		switch st {
		case scanning:
			if v.stream.empty() {
				st = done
				continue
			}

			tok := v.stream.pop()
			sc.logger.Trace("token", "kind", tok.Kind.String(), "token", tok.String())

			switch m := v.lookup(sc, tok); m.kind {
			case matchOption:
				res := &sc.set.results[m.option]
				info := sc.set.options[m.option]
				res.count++
				sc.logger.Trace("option matched", "option", info.Name(), "count", res.count)

				switch {
				case len(v.ctx.leftover) > 0:
					err, st = v.checkLeftover(sc), failed
				case res.count > 1 && info.IsUnique():
					err, st = v.fail(sc, ErrDuplicateOption, tok.String()), failed
				case info.TakesValue() || info.TakesOptionalValue():
					pending, typed, st = m.option, tok.String(), expectingValue
				}

			case matchCommand:
				switch {
				case len(v.ctx.leftover) > 0:
					err, st = v.checkLeftover(sc), failed
				case m.command.selected:
					err, st = v.fail(sc, ErrUnexpectedCommand, m.command.name), failed
				default:
					m.command.selected = true
					sub := scope{
						set:     m.command.optionSet,
						command: m.command,
						logger:  v.ctx.logger.Named(m.command.name),
					}
					sub.logger.Debug("entering command")
					if err = v.scan(sub); err != nil {
						st = failed
					}
				}

			default:
				if tok.IsFlag() {
					err, st = v.fail(sc, ErrUnknownOption, tok.String()), failed
					continue
				}
				sc.logger.Trace("leftover argument", "value", tok.Text)
				v.ctx.leftover = append(v.ctx.leftover, tok.Text)
			}

		case expectingValue:
			info := sc.set.options[pending]
			st = scanning

			if next, ok := v.stream.peek(); ok && !next.IsFlag() {
				v.stream.pop()
				res := &sc.set.results[pending]
				res.values = append(res.values, next.Text)
				sc.logger.Trace("option value", "option", typed, "value", next.Text)
				continue
			}

			if info.TakesValue() {
				err, st = v.fail(sc, ErrMissingArgument, typed), failed
			}

		case done:
			return nil

		case failed:
			return err
		}
	}
}
