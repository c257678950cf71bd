package cli

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/urfave/cli/v2"
)

// refFlags reads the flags of a command that takes an entry id. urfave/cli
// stops parsing at the first positional argument, so flags written after
// the id ("edit ID --topic x") are parsed here from the remaining
// arguments with the command's own flag definitions.
type refFlags struct {
	c    *cli.Context
	tail *flag.FlagSet
}

// parseRef returns the entry id and the command flags given on either side
// of it. Extra positional arguments and unknown flags are usage errors.
func parseRef(c *cli.Context) (string, *refFlags, error) {
	ref := c.Args().First()
	if ref == "" {
		return "", nil, errMissingRef
	}

	fs := flag.NewFlagSet(c.Command.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, f := range c.Command.Flags {
		if err := f.Apply(fs); err != nil {
			return "", nil, err
		}
	}
	if err := fs.Parse(c.Args().Tail()); err != nil {
		return "", nil, fmt.Errorf("%s: %w", c.Command.Name, err)
	}
	if fs.NArg() > 0 {
		return "", nil, fmt.Errorf("%s: unexpected argument %q", c.Command.Name, fs.Arg(0))
	}
	return ref, &refFlags{c: c, tail: fs}, nil
}

// lookup returns the value of flag name, or any of its aliases, when it was
// given after the id.
func (f *refFlags) lookup(name string) (string, bool) {
	var names []string
	for _, fl := range f.c.Command.Flags {
		if slices.Contains(fl.Names(), name) {
			names = fl.Names()
		}
	}

	var (
		value string
		found bool
	)
	f.tail.Visit(func(fl *flag.Flag) {
		if slices.Contains(names, fl.Name) {
			value, found = fl.Value.String(), true
		}
	})
	return value, found
}

func (f *refFlags) IsSet(name string) bool {
	_, ok := f.lookup(name)
	return ok || f.c.IsSet(name)
}

func (f *refFlags) String(name string) string {
	if v, ok := f.lookup(name); ok {
		return v
	}
	return f.c.String(name)
}

func (f *refFlags) Bool(name string) bool {
	if v, ok := f.lookup(name); ok {
		b, _ := strconv.ParseBool(v)
		return b
	}
	return f.c.Bool(name)
}

// Optional returns nil when flag name was not given.
func (f *refFlags) Optional(name string) *string {
	if !f.IsSet(name) {
		return nil
	}
	v := f.String(name)
	return &v
}
