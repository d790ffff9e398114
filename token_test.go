package cmdparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpEmpty = cmpopts.EquateEmpty()

func short(r rune) Token { return Token{Kind: ShortFlag, Short: r} }
func long(s string) Token { return Token{Kind: LongFlag, Text: s} }
func value(s string) Token { return Token{Kind: BareValue, Text: s} }
func inline(s string) Token { return Token{Kind: BareValue, Text: s, Inline: true} }
func tokens(t ...Token) []Token { return t }

func Test_Tokenize(t *testing.T) {
	tests := []struct {
		args []string
		want []Token
	}{
		{[]string{}, tokens()},
		{[]string{"-a"}, tokens(short('a'))},
		{[]string{"-abc"}, tokens(short('a'), short('b'), short('c'))},
		{[]string{"-5"}, tokens(short('5'))},
		{[]string{"-é"}, tokens(short('é'))},
		{[]string{"-"}, tokens()},
		{[]string{"--long"}, tokens(long("long"))},
		{[]string{"--"}, tokens(long(""))},
		{[]string{"--opt=value"}, tokens(long("opt"), inline("value"))},
		{[]string{"--opt=a=b"}, tokens(long("opt"), inline("a=b"))},
		{[]string{"--opt="}, tokens(long("opt"), inline(""))},
		{[]string{"value"}, tokens(value("value"))},
		{[]string{"a=b"}, tokens(value("a=b"))},
		{[]string{""}, tokens(value(""))},
		{[]string{"value", "-x", "--long", "v"},
			tokens(value("value"), short('x'), long("long"), value("v"))},
		{[]string{"-de", "--long1=x", "arg", "-f"},
			tokens(short('d'), short('e'), long("long1"), inline("x"),
				value("arg"), short('f'))},
	}

	for _, test := range tests {
		got := Tokenize(test.args)
		if diff := cmp.Diff(test.want, got, cmpEmpty); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.args, diff)
		}
	}
}

func Test_TokenString(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{short('a'), "-a"},
		{long("long"), "--long"},
		{value("v"), "v"},
		{inline("v"), "v"},
	}

	for _, test := range tests {
		if got := test.token.String(); got != test.want {
			t.Errorf("got=%s want=%s", got, test.want)
		}
	}
}

func Test_tokenStream(t *testing.T) {
	s := tokenStream{tokens: Tokenize([]string{"-a", "b"})}

	if tok, ok := s.peek(); !ok || tok != short('a') {
		t.Errorf("peek: got=%v,%v", tok, ok)
	}
	if tok := s.pop(); tok != short('a') {
		t.Errorf("pop: got=%v", tok)
	}
	if tok := s.pop(); tok != value("b") {
		t.Errorf("pop: got=%v", tok)
	}
	if !s.empty() {
		t.Errorf("stream not empty")
	}
	if _, ok := s.peek(); ok {
		t.Errorf("peek on empty stream succeeded")
	}
}
