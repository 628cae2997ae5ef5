package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// flagSet wraps flag.FlagSet to add support for choice flags.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior that
// writes usage and errors to out.
func newCustomFlagSet(name string, out io.Writer) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return &flagSet{FlagSet: fs}
}

// ChoiceVar defines a string flag restricted to choices.
func (fs *flagSet) ChoiceVar(p *string, name, value string, choices []string, usage string) {
	*p = value
	fs.FlagSet.Var(&choiceValue{p: p, choices: choices}, name,
		fmt.Sprintf("%s (%s)", usage, strings.Join(choices, ", ")))
}

// isSet reports whether the flag name was given on the command line.
func (fs *flagSet) isSet(name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// choiceValue implements flag.Value for a fixed set of strings.
type choiceValue struct {
	p       *string
	choices []string
}

func (v *choiceValue) String() string {
	if v.p == nil {
		return ""
	}
	return *v.p
}

func (v *choiceValue) Set(s string) error {
	for _, c := range v.choices {
		if s == c {
			*v.p = s
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, want one of %s", s, strings.Join(v.choices, ", "))
}
