package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flom/internal/convert"
	"flom/internal/core"
)

// ScriptedSelector reads one selection from a reader. It serves
// non-interactive stdin and scripted tests; EOF or a blank line is
// ErrNoSelection.
type ScriptedSelector struct {
	in  io.Reader
	out io.Writer
}

// NewScriptedSelector creates a selector reading choices from in and writing
// the menu to out.
func NewScriptedSelector(in io.Reader, out io.Writer) *ScriptedSelector {
	return &ScriptedSelector{in: in, out: out}
}

// Select prints the numbered options and reads a single choice: either the
// option number or its name.
func (s *ScriptedSelector) Select(options []convert.TargetOption) (convert.TargetOption, error) {
	if len(options) == 0 {
		return convert.TargetOption{}, core.ErrNoSelection
	}

	fmt.Fprintln(s.out, "Select target platform:")
	for i, opt := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, opt.Label)
	}
	fmt.Fprintf(s.out, "Choice [1-%d]: ", len(options))

	scanner := bufio.NewScanner(s.in)
	if !scanner.Scan() {
		return convert.TargetOption{}, core.ErrNoSelection
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return convert.TargetOption{}, core.ErrNoSelection
	}

	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(options) {
			return convert.TargetOption{}, fmt.Errorf("%w: choice %d out of range", core.ErrNoSelection, n)
		}
		return options[n-1], nil
	}

	for _, opt := range options {
		if strings.EqualFold(line, opt.Key) || strings.EqualFold(line, opt.Label) {
			return opt, nil
		}
	}

	return convert.TargetOption{}, fmt.Errorf("%w: unknown choice %q", core.ErrNoSelection, line)
}
