package git

import (
	"context"
	"strings"
)

// FakeRunner is a Runner test double: it records every argv it is given and
// replays canned output, so operations can be tested without spawning git.
type FakeRunner struct {
	// Commands holds the argv of every Run call, in order.
	Commands [][]string
	// Interactive holds the argv of every RunInteractive call, in order.
	Interactive [][]string

	// Lines maps a joined argv ("tag -l v1.*") to the lines Run returns.
	// Unlisted commands return no lines.
	Lines map[string][]string
	// Errs maps a joined argv to the error Run or RunInteractive returns.
	Errs map[string]error
}

// Run records the argv and replays the canned response.
func (f *FakeRunner) Run(_ context.Context, args ...string) ([]string, error) {
	f.Commands = append(f.Commands, args)
	key := strings.Join(args, " ")
	if err, ok := f.Errs[key]; ok {
		return nil, err
	}
	if lines, ok := f.Lines[key]; ok {
		return lines, nil
	}
	return []string{}, nil
}

// RunInteractive records the argv.
func (f *FakeRunner) RunInteractive(_ context.Context, args ...string) error {
	f.Interactive = append(f.Interactive, args)
	return f.Errs[strings.Join(args, " ")]
}

// LastCommand returns the argv of the most recent Run call.
func (f *FakeRunner) LastCommand() []string {
	if len(f.Commands) == 0 {
		return nil
	}
	return f.Commands[len(f.Commands)-1]
}
