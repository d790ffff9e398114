/*
Package cmdparse implements a small command-line option parser. The
program declares its valid options (and, optionally, commands with their
own options) on a Context, validates the command line against them, and
then queries the results through the handles returned at registration.
A help message is generated from the declarations.


# Features

  - Options with a short name ("-v"), a long name ("--verbose"), or both.
  - Options taking no value, an optional value, or a mandatory value.
  - Grouping of short options ("-abc" is "-a -b -c").
  - Options that may be given at most once, and hidden options.
  - Repeatable options with occurrence counts ("-vvv").
  - Commands taking their own options ("prog [options] command [command-options]").
  - Automatic help message generation.


# Example

To parse "-h/--help, -l, --option, -a [optional_argument(int)],
-m mandatory_argument(str) leftover_argument":

    ctx := cmdparse.New("prog [options] file", os.Args[1:])

    // Convenience wrappers panic on a malformed or duplicate definition
    help := ctx.AddOpt("help", 'h', "Display this help")
    l := ctx.AddShort('l', "Activate the option l")
    option := ctx.AddLong("option", "Activate some option")

    // The full AddOption() returns an error instead
    a, err := ctx.AddOption("", 'a', "Activate the option a", cmdparse.TakesOptionalArg)
    if err != nil {
        log.Fatal(err)
    }
    m, err := ctx.AddOption("", 'm', "Activate the option m", cmdparse.TakesArg)
    if err != nil {
        log.Fatal(err)
    }

    if err := ctx.Validate(); err != nil {
        ctx.PrintHelp(err.Error())
        os.Exit(2)
    }

    if ctx.Check(help) {
        ctx.PrintHelp("")
        return
    }

    n, err := cmdparse.Value[int](ctx, a)
    switch {
    case err == nil:
        fmt.Println("a:", n)
    case errors.Is(err, cmdparse.ErrBadType):
        fmt.Println("a: the argument should be an int")
    case errors.Is(err, cmdparse.ErrNoValue):
        fmt.Println("a was passed without an argument")
    case errors.Is(err, cmdparse.ErrNotPassed):
        fmt.Println("a was not passed")
    }

    // Use a default if -m was not given
    path := cmdparse.ValueOr(ctx, m, "/tmp/stuff")

    files := ctx.Args()


# Command-Line Syntax

An argument starting with "--" is a long option. If it contains an "=",
the part after the first "=" is the option's value ("--output=file").

An argument starting with a single "-" is a group of short options, one
per character ("-abc"). A value for the last option of the group may
follow as the next argument ("-abo file").

Any other argument is a value. A value directly following an option that
takes a value (mandatory or optional) is consumed as that option's value.
A value matching a registered command name selects that command. Any
other value is a leftover argument, returned by Args().

Leftover arguments must come last: a leftover followed by an option or a
command is an error (ErrUnexpectedArgument). Long names must match
exactly; they cannot be abbreviated.


# Commands

A command is registered with AddCommand(), and receives its own options:

    run, cmd, err := ctx.AddCommand("run", "Run the program")
    detach := cmd.AddOpt("detach", 'd', "Run in background")

Once a command name is seen, the rest of the command line belongs to the
command: only the command's options are recognized, and global options
must be given before the command name. A command may be given only once.
Whether a command was given is reported by Context.Selected().


# Results

Check() reports whether an option was given, Count() how many times.
Value() returns the last value given to an option, converted to the
requested type; Values() returns all of them in input order. Supported
types are string, bool, all integer and float kinds, time.Duration,
time.Time (in the format "2006-01-02 15:04:05") and any type whose
pointer implements encoding.TextUnmarshaler.

Value() distinguishes three outcomes when it fails: the value does not
convert (ErrBadType), the option was passed without a value (ErrNoValue),
and the option was not passed at all (ErrNotPassed).

Handles may only be used with the Context that issued them; using a
foreign handle panics.
*/
package cmdparse
