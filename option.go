package cmdparse

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Flags configure how an option is validated and displayed. Flags may be
// combined with "|".
type Flags uint

const (
	Defaults         Flags = 0      // takes no value, may be repeated, shown in help
	Unique           Flags = 1 << 0 // may be given at most once
	Hidden           Flags = 1 << 1 // not shown in help
	TakesArg         Flags = 1 << 2 // must be followed by a value
	TakesOptionalArg Flags = 1 << 3 // may be followed by a value
)

// NoShort is passed to AddOption() for options without a short name.
const NoShort rune = 0

// The name column in the help message is at least this wide.
const minLabelWidth = 15

// Long names: at least two characters, no "=", no whitespace, and the
// first character must not be '-'.
const longName = `^[^-=\s][^=\s]+$`

var longNameRE = regexp.MustCompile(longName)

// OptionInfo describes a registered option. It is what the help formatter
// (or any other display collaborator) reads.
type OptionInfo struct {
	Long        string
	Short       rune
	Description string
	Flags       Flags
}

func (o OptionInfo) has(f Flags) bool {
	return o.Flags&f != 0
}

// IsHidden reports whether the option is left out of the help message.
func (o OptionInfo) IsHidden() bool { return o.has(Hidden) }

// IsUnique reports whether the option may be given at most once.
func (o OptionInfo) IsUnique() bool { return o.has(Unique) }

// TakesValue reports whether the option must be followed by a value.
func (o OptionInfo) TakesValue() bool { return o.has(TakesArg) }

// TakesOptionalValue reports whether the option may be followed by a value.
// An option that requires a value does not take an optional one.
func (o OptionInfo) TakesOptionalValue() bool {
	return o.has(TakesOptionalArg) && !o.has(TakesArg)
}

// Name returns the name used in messages: the long name with "--" if
// there is one, otherwise the short name with "-".
func (o OptionInfo) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Short)
}

// Label returns the option's names formatted for the help message, eg.
// "-o, --output=argument" or "-l [argument]".
func (o OptionInfo) Label() string {
	arg, sarg := "", ""
	switch {
	case o.TakesValue():
		arg, sarg = "=argument", " argument"
	case o.TakesOptionalValue():
		arg, sarg = "[=argument]", " [argument]"
	}

	switch {
	case o.Long != "" && o.Short != NoShort:
		return fmt.Sprintf("-%c, --%s%s", o.Short, o.Long, arg)
	case o.Long != "":
		return fmt.Sprintf("    --%s%s", o.Long, arg)
	default:
		return fmt.Sprintf("-%c%s", o.Short, sarg)
	}
}

// Opt is the handle returned when an option is registered. It is used to
// query the option's results from the owning Context after validation.
// Handles stay valid when more options are added.
type Opt struct {
	set   *optionSet
	index int
}

// result is the mutable record kept for every option.
type result struct {
	count  uint     // number of times the option was seen
	values []string // values given to it, in input order
}

// optionSet is the option registry and result store of one scope: the
// global scope of a Context, or a Command. Handles index into options
// and results, which are only ever appended to.
type optionSet struct {
	root        *Context
	command     string // empty for the global scope
	description string

	long  map[string]int
	short map[rune]int

	options []OptionInfo
	results []result

	width int // widest label so far, used by the help formatter
}

func newOptionSet(root *Context, command, description string) *optionSet {
	return &optionSet{
		root:        root,
		command:     command,
		description: description,
		long:        map[string]int{},
		short:       map[rune]int{},
		width:       minLabelWidth,
	}
}

// isValidShort reports whether r may be used as a short option name.
func isValidShort(r rune) bool {
	return r != '-' && r != '=' && r != unicode.ReplacementChar &&
		unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func (s *optionSet) definitionError(kind error, name, reason string) error {
	return &DefinitionError{Kind: kind, Name: name, Command: s.command, Reason: reason}
}

// AddOption registers a valid option. Pass "" for long if the option has
// no long name, NoShort for short if it has no short name, and "" for
// description to leave it undocumented.
//
// Returns an error wrapping ErrInvalidDefinition if the option has no name
// or a malformed one, and ErrDuplicateName if either name was already
// registered in the same scope. Nothing is registered on error.
func (s *optionSet) AddOption(long string, short rune, description string,
	flags Flags) (Opt, error) {

	if long == "" && short == NoShort {
		return Opt{}, s.definitionError(ErrInvalidDefinition, "",
			"an option needs either a short or a long name")
	}
	if long != "" && !longNameRE.MatchString(long) {
		return Opt{}, s.definitionError(ErrInvalidDefinition, "--"+long,
			"malformed long option name")
	}
	if short != NoShort && !isValidShort(short) {
		return Opt{}, s.definitionError(ErrInvalidDefinition, fmt.Sprintf("-%c", short),
			"malformed short option name")
	}

	if _, ok := s.long[long]; ok && long != "" {
		return Opt{}, s.definitionError(ErrDuplicateName, "--"+long,
			"an option with the same long name was already added")
	}
	if _, ok := s.short[short]; ok && short != NoShort {
		return Opt{}, s.definitionError(ErrDuplicateName, fmt.Sprintf("-%c", short),
			"an option with the same short name was already added")
	}

	info := OptionInfo{Long: long, Short: short, Description: description, Flags: flags}
	index := len(s.options)

	s.options = append(s.options, info)
	s.results = append(s.results, result{})

	if long != "" {
		s.long[long] = index
	}
	if short != NoShort {
		s.short[short] = index
	}

	// Hidden labels are never printed, so they do not widen the column
	if w := runewidth.StringWidth(info.Label()); w > s.width && !info.IsHidden() {
		s.width = w
	}

	return Opt{set: s, index: index}, nil
}

func mustOpt(o Opt, err error) Opt {
	if err != nil {
		panic(err)
	}
	return o
}

// AddOpt registers an option with both a long and a short name and
// Defaults flags. It panics if the definition is invalid.
func (s *optionSet) AddOpt(long string, short rune, description string) Opt {
	return mustOpt(s.AddOption(long, short, description, Defaults))
}

// AddLong registers a long option with Defaults flags. It panics if the
// definition is invalid.
func (s *optionSet) AddLong(long string, description string) Opt {
	return mustOpt(s.AddOption(long, NoShort, description, Defaults))
}

// AddShort registers a short option with Defaults flags. It panics if the
// definition is invalid.
func (s *optionSet) AddShort(short rune, description string) Opt {
	return mustOpt(s.AddOption("", short, description, Defaults))
}

// Options returns the registered options in registration order, hidden
// ones included.
func (s *optionSet) Options() []OptionInfo {
	out := make([]OptionInfo, len(s.options))
	copy(out, s.options)
	return out
}

func (s *optionSet) findShort(r rune) (int, bool) {
	i, ok := s.short[r]
	return i, ok
}

func (s *optionSet) findLong(name string) (int, bool) {
	i, ok := s.long[name]
	return i, ok
}
