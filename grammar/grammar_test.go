package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcatolino/cmdparse"
	"github.com/stretchr/testify/require"
)

const tomlGrammar = `
usage = "prog [options] command"

[[option]]
long = "verbose"
short = "v"
description = "Verbose output"

[[option]]
short = "c"
description = "Config file"
value = "required"
unique = true

[[command]]
name = "run"
description = "Run the program"

[[command.option]]
long = "jobs"
short = "j"
value = "optional"

[[command.option]]
long = "debug"
hidden = true
`

const yamlGrammar = `
usage: prog [options] command
options:
  - long: verbose
    short: v
    description: Verbose output
  - short: c
    description: Config file
    value: required
    unique: true
commands:
  - name: run
    description: Run the program
    options:
      - long: jobs
        short: j
        value: optional
      - long: debug
        hidden: true
`

const hclGrammar = `
usage = "prog [options] command"

option {
  long        = "verbose"
  short       = "v"
  description = "Verbose output"
}

option {
  short       = "c"
  description = "Config file"
  value       = "required"
  unique      = true
}

command "run" {
  description = "Run the program"

  option {
    long  = "jobs"
    short = "j"
    value = "optional"
  }

  option {
    long   = "debug"
    hidden = true
  }
}
`

var wantDefinition = &Definition{
	Usage: "prog [options] command",
	Options: []OptionDef{
		{Long: "verbose", Short: "v", Description: "Verbose output"},
		{Short: "c", Description: "Config file", Value: ValueRequired, Unique: true},
	},
	Commands: []CommandDef{
		{
			Name:        "run",
			Description: "Run the program",
			Options: []OptionDef{
				{Long: "jobs", Short: "j", Value: ValueOptional},
				{Long: "debug", Hidden: true},
			},
		},
	},
}

func Test_Decode(t *testing.T) {
	tests := []struct {
		text   string
		decode func() (*Definition, error)
	}{
		{"toml", func() (*Definition, error) { return DecodeTOML([]byte(tomlGrammar)) }},
		{"yaml", func() (*Definition, error) { return DecodeYAML([]byte(yamlGrammar)) }},
		{"hcl", func() (*Definition, error) { return DecodeHCL([]byte(hclGrammar), "test.hcl") }},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			d, err := test.decode()
			require.NoError(t, err)
			require.Equal(t, wantDefinition, d)
		})
	}
}

func Test_DecodeErrors(t *testing.T) {
	_, err := DecodeTOML([]byte("usage = \"x\"\nunknown = 1\n"))
	require.ErrorContains(t, err, "unknown")

	_, err = DecodeTOML([]byte("usage = "))
	require.Error(t, err)

	_, err = DecodeYAML([]byte("usage: x\nunknown: 1\n"))
	require.Error(t, err)

	_, err = DecodeYAML([]byte("options: [1, 2"))
	require.Error(t, err)

	_, err = DecodeHCL([]byte("option {"), "broken.hcl")
	require.ErrorContains(t, err, "broken.hcl")

	_, err = DecodeHCL([]byte("unknown = 1\n"), "unknown.hcl")
	require.Error(t, err)
}

func Test_DecodeEmpty(t *testing.T) {
	d, err := DecodeYAML(nil)
	require.NoError(t, err)
	require.Equal(t, &Definition{}, d)

	d, err = DecodeTOML(nil)
	require.NoError(t, err)
	require.Equal(t, &Definition{}, d)
}

func Test_LoadFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"grammar.toml": tomlGrammar,
		"grammar.yaml": yamlGrammar,
		"grammar.yml":  yamlGrammar,
		"grammar.HCL":  hclGrammar,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		d, err := LoadFile(path)
		require.NoError(t, err, name)
		require.Equal(t, wantDefinition, d, name)
	}

	_, err := LoadFile(filepath.Join(dir, "grammar.json"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_New(t *testing.T) {
	ctx, b, err := wantDefinition.New([]string{"-v", "-c", "conf", "run", "-j", "4", "target"})
	require.NoError(t, err)
	require.NoError(t, ctx.Validate())

	require.Equal(t, "prog [options] command", ctx.Usage())
	require.True(t, ctx.Check(b.Options["verbose"]))

	conf, err := cmdparse.Value[string](ctx, b.Options["c"])
	require.NoError(t, err)
	require.Equal(t, "conf", conf)

	run := b.Commands["run"]
	require.True(t, ctx.Selected(run.Cmd))

	jobs, err := cmdparse.Value[int](ctx, run.Options["jobs"])
	require.NoError(t, err)
	require.Equal(t, 4, jobs)

	require.False(t, ctx.Check(run.Options["debug"]))
	require.Equal(t, []string{"target"}, ctx.Args())
}

func Test_ApplyFlags(t *testing.T) {
	ctx, b, err := wantDefinition.New([]string{"-c", "a", "-c", "b"})
	require.NoError(t, err)

	err = ctx.Validate()
	require.ErrorIs(t, err, cmdparse.ErrDuplicateOption)
	require.Equal(t, uint(2), ctx.Count(b.Options["c"]))

	opts := ctx.Commands()[0].Options
	require.Len(t, opts, 2)
	require.True(t, opts[0].TakesOptionalValue())
	require.True(t, opts[1].IsHidden())
}

func Test_ApplyErrors(t *testing.T) {
	tests := []struct {
		text string
		def  Definition
		kind error
	}{
		{"value mode",
			Definition{Options: []OptionDef{{Long: "out", Value: "sometimes"}}},
			cmdparse.ErrInvalidDefinition},
		{"short name",
			Definition{Options: []OptionDef{{Short: "ab"}}},
			cmdparse.ErrInvalidDefinition},
		{"no name",
			Definition{Options: []OptionDef{{Description: "nameless"}}},
			cmdparse.ErrInvalidDefinition},
		{"duplicate option",
			Definition{Options: []OptionDef{{Long: "out"}, {Long: "out"}}},
			cmdparse.ErrDuplicateName},
		{"duplicate command",
			Definition{Commands: []CommandDef{{Name: "run"}, {Name: "run"}}},
			cmdparse.ErrDuplicateName},
		{"command name",
			Definition{Commands: []CommandDef{{Name: "-run"}}},
			cmdparse.ErrInvalidDefinition},
		{"command option",
			Definition{Commands: []CommandDef{{Name: "run",
				Options: []OptionDef{{Long: "x", Value: "maybe"}}}}},
			cmdparse.ErrInvalidDefinition},
	}

	for _, test := range tests {
		_, _, err := test.def.New(nil)
		require.ErrorIs(t, err, test.kind, test.text)

		var defErr *cmdparse.DefinitionError
		require.True(t, errors.As(err, &defErr), test.text)
	}
}

func Test_ApplyCommandScope(t *testing.T) {
	d := Definition{Commands: []CommandDef{{Name: "run",
		Options: []OptionDef{{Long: "x", Value: "maybe"}}}}}

	_, _, err := d.New(nil)

	var defErr *cmdparse.DefinitionError
	require.True(t, errors.As(err, &defErr))
	require.Equal(t, "run", defErr.Command)
}

func Test_Key(t *testing.T) {
	require.Equal(t, "long", OptionDef{Long: "long", Short: "l"}.Key())
	require.Equal(t, "l", OptionDef{Short: "l"}.Key())
	require.Equal(t, "", OptionDef{}.Key())
}
