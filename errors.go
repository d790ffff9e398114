package cmdparse

import (
	"errors"
	"fmt"
)

// Definition errors, returned when options or commands are registered.
var (
	ErrInvalidDefinition = errors.New("cmdparse: invalid definition")
	ErrDuplicateName     = errors.New("cmdparse: duplicate name")
)

// Validation errors, returned by Validate(). Use errors.Is() to test for them.
var (
	ErrUnknownOption      = errors.New("cmdparse: unknown option")
	ErrMissingArgument    = errors.New("cmdparse: missing argument")
	ErrDuplicateOption    = errors.New("cmdparse: option given more than once")
	ErrUnexpectedArgument = errors.New("cmdparse: unexpected argument")
	ErrUnexpectedCommand  = errors.New("cmdparse: unexpected command")
)

// Accessor errors, returned by Value() and Values().
var (
	ErrBadType         = errors.New("cmdparse: invalid type for value")
	ErrNotPassed       = errors.New("cmdparse: option not passed")
	ErrNoValue         = errors.New("cmdparse: option passed without a value")
	ErrUnsupportedType = errors.New("cmdparse: unsupported value type")
)

// DefinitionError is returned by AddOption() and AddCommand() when a
// definition makes no sense or collides with an earlier one.
type DefinitionError struct {
	Kind    error  // ErrInvalidDefinition or ErrDuplicateName
	Name    string // offending name, formatted as on the command line
	Command string // command scope; empty for global options
	Reason  string
}

func (e *DefinitionError) Error() string {
	s := e.Reason
	if e.Name != "" {
		s = fmt.Sprintf("%s: %s", s, e.Name)
	}
	if e.Command != "" {
		s = fmt.Sprintf("%s (command %s)", s, e.Command)
	}
	return s
}

func (e *DefinitionError) Unwrap() error {
	return e.Kind
}

// ParseError is returned by Validate(). Name holds the offending option
// (with its leading dashes), argument or command.
type ParseError struct {
	Kind    error
	Name    string
	Command string // command scope active when the error occurred, if any
}

func (e *ParseError) Error() string {
	var s string

	switch e.Kind {
	case ErrUnknownOption:
		s = fmt.Sprintf("invalid option: %s", e.Name)
	case ErrMissingArgument:
		s = fmt.Sprintf("missing argument for option: %s", e.Name)
	case ErrDuplicateOption:
		s = fmt.Sprintf("option %s was given more than once", e.Name)
	case ErrUnexpectedArgument:
		s = fmt.Sprintf("unexpected argument: %s", e.Name)
	case ErrUnexpectedCommand:
		s = fmt.Sprintf("unexpected command: %s", e.Name)
	default:
		s = fmt.Sprintf("%v: %s", e.Kind, e.Name)
	}

	if e.Command != "" {
		s = fmt.Sprintf("%s (command %s)", s, e.Command)
	}
	return s
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ConversionError is returned when a captured value cannot be converted
// to the requested type.
type ConversionError struct {
	Option string
	Value  string
	Type   string
	Err    error // underlying strconv/time error, if any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid type for value '%s' of option %s (want %s)",
		e.Value, e.Option, e.Type)
}

// Is makes errors.Is(err, ErrBadType) hold for every ConversionError.
func (e *ConversionError) Is(target error) bool {
	return target == ErrBadType
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// MissingValueError is returned when no value was captured for an option.
// Count distinguishes an option that was never passed (0) from one that
// was passed without a value.
type MissingValueError struct {
	Option string
	Count  uint
}

func (e *MissingValueError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("option %s was not passed", e.Option)
	}
	return fmt.Sprintf("option %s was passed without a value", e.Option)
}

func (e *MissingValueError) Is(target error) bool {
	switch target {
	case ErrNotPassed:
		return e.Count == 0
	case ErrNoValue:
		return e.Count > 0
	}
	return false
}
