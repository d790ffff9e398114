package cmdparse

import (
	"errors"
	"fmt"
	"os"
)

// osExit is replaced in tests.
var osExit = os.Exit

// Parsed is the outcome of converting one captured value.
type Parsed[T any] struct {
	Raw   string // the value as given on the command line
	Value T
	Err   error // a *ConversionError, or nil
}

// result returns the record behind h. It panics if h was not issued by c:
// querying a foreign handle is a programming error.
func (c *Context) result(h Opt) (*result, OptionInfo) {
	if !c.owns(h) {
		panic("cmdparse: option handle does not belong to this context")
	}
	return &h.set.results[h.index], h.set.options[h.index]
}

// Check reports whether the option was given on the command line.
func (c *Context) Check(h Opt) bool {
	return c.Count(h) != 0
}

// Count returns how many times the option was given (eg. 3 for "-vvv").
func (c *Context) Count(h Opt) uint {
	res, _ := c.result(h)
	return res.count
}

// RawValues returns the values captured for the option, unconverted and
// in input order.
func (c *Context) RawValues(h Opt) []string {
	res, _ := c.result(h)
	out := make([]string, len(res.values))
	copy(out, res.values)
	return out
}

func conversionError[T any](info OptionInfo, value string, err error) error {
	if errors.Is(err, ErrUnsupportedType) {
		return err
	}
	return &ConversionError{Option: info.Name(), Value: value, Type: typeName[T](), Err: err}
}

// Value returns the value given to the option, converted to T. If the
// option was given several times, the last value wins.
//
// The possible outcomes are:
//   - a value was captured and converts to T: the value and nil;
//   - a value was captured but does not convert: a *ConversionError,
//     matching ErrBadType;
//   - no value was captured: a *MissingValueError, matching ErrNotPassed
//     if the option was never given, or ErrNoValue if it was given without
//     a value.
func Value[T any](c *Context, h Opt) (T, error) {
	var zero T

	res, info := c.result(h)
	if len(res.values) == 0 {
		return zero, &MissingValueError{Option: info.Name(), Count: res.count}
	}

	raw := res.values[len(res.values)-1]
	v, err := convert[T](raw)
	if err != nil {
		return zero, conversionError[T](info, raw, err)
	}
	return v, nil
}

// Values returns every value given to the option, in input order, each
// converted to T separately. If no value was captured it returns a
// *MissingValueError carrying the number of times the option was given.
func Values[T any](c *Context, h Opt) ([]Parsed[T], error) {
	res, info := c.result(h)
	if len(res.values) == 0 {
		return nil, &MissingValueError{Option: info.Name(), Count: res.count}
	}

	out := make([]Parsed[T], 0, len(res.values))
	for _, raw := range res.values {
		v, err := convert[T](raw)
		if err != nil {
			err = conversionError[T](info, raw, err)
		}
		out = append(out, Parsed[T]{Raw: raw, Value: v, Err: err})
	}
	return out, nil
}

// ValueOr returns the value given to the option, or def if there is none.
// Like Value(), it uses the last value if the option was given several
// times.
//
// If the value does not convert to T, ValueOr prints the help message with
// the conversion error to standard output and exits the program with
// status 2. Use Value() to handle that case yourself.
func ValueOr[T any](c *Context, h Opt, def T) T {
	v, err := Value[T](c, h)

	var missing *MissingValueError
	switch {
	case err == nil:
		return v
	case errors.As(err, &missing):
		return def
	}

	c.PrintHelp(fmt.Sprint(err))
	osExit(2)

	return def
}
