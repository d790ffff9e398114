package cmdparse

import (
	"strings"
)

// TokenKind tells short flags, long flags and bare values apart.
type TokenKind int

const (
	ShortFlag TokenKind = iota
	LongFlag
	BareValue
)

func (k TokenKind) String() string {
	switch k {
	case ShortFlag:
		return "short"
	case LongFlag:
		return "long"
	case BareValue:
		return "value"
	default:
		return "unknown"
	}
}

// Token is one element of the tokenized command line.
//
// For ShortFlag tokens Short holds the flag character. For LongFlag tokens
// Text holds the flag name (without the leading "--"). For Value tokens
// Text holds the value; Inline is set if the value was split off a
// "--name=value" argument.
type Token struct {
	Kind   TokenKind
	Short  rune
	Text   string
	Inline bool
}

// IsFlag reports whether the token is a short or long flag.
func (t Token) IsFlag() bool {
	return t.Kind != BareValue
}

// String returns the token as it would appear on the command line.
func (t Token) String() string {
	switch t.Kind {
	case ShortFlag:
		return "-" + string(t.Short)
	case LongFlag:
		return "--" + t.Text
	default:
		return t.Text
	}
}

// Tokenize splits a command line (without the program name) into tokens.
//
//   - "--name=value" becomes a LongFlag followed by an inline Value token;
//     the split happens at the first "=".
//   - "-abc" becomes one ShortFlag token per character.
//   - Anything else is a Value.
//
// Tokenize never fails; malformed input is reported by Validate().
func Tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--"):
			name, value, found := strings.Cut(arg[2:], "=")
			tokens = append(tokens, Token{Kind: LongFlag, Text: name})
			if found {
				tokens = append(tokens, Token{Kind: BareValue, Text: value, Inline: true})
			}

		case strings.HasPrefix(arg, "-"):
			// A lone "-" has no characters and yields no token
			for _, c := range arg[1:] {
				tokens = append(tokens, Token{Kind: ShortFlag, Short: c})
			}

		default:
			tokens = append(tokens, Token{Kind: BareValue, Text: arg})
		}
	}

	return tokens
}

// tokenStream is the consumable token list shared by the top-level scope
// and the command scope it descends into.
type tokenStream struct {
	tokens []Token
}

func (s *tokenStream) empty() bool {
	return len(s.tokens) == 0
}

func (s *tokenStream) pop() Token {
	t := s.tokens[0]
	s.tokens = s.tokens[1:]
	return t
}

// peek returns the next token without consuming it.
func (s *tokenStream) peek() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[0], true
}
