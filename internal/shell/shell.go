// Package shell is the invoker-facing terminal: aligned status lines for each
// file action, colored notices, and the interactive yes/no prompt.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// statusWidth is the right-aligned width of the action column.
const statusWidth = 12

// Shell writes status output to Out and reads answers from In.
type Shell struct {
	Out   io.Writer
	Quiet bool

	in *bufio.Reader
}

// New returns a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		Out: out,
		in:  bufio.NewReader(in),
	}
}

var statusColors = map[string]*color.Color{
	"create":    color.New(color.FgGreen, color.Bold),
	"identical": color.New(color.FgBlue, color.Bold),
	"force":     color.New(color.FgYellow, color.Bold),
}

// Status prints "   create  widget/lib/widget.rb". Suppressed when Quiet.
func (s *Shell) Status(action, path string) {
	if s.Quiet {
		return
	}
	label := fmt.Sprintf("%*s", statusWidth, action)
	if c, ok := statusColors[action]; ok {
		label = c.Sprint(label)
	}
	fmt.Fprintf(s.Out, "%s  %s\n", label, path)
}

// Say prints msg on its own line in the given color.
func (s *Shell) Say(msg string, attrs ...color.Attribute) {
	if len(attrs) == 0 {
		fmt.Fprintln(s.Out, msg)
		return
	}
	fmt.Fprintln(s.Out, color.New(attrs...).Sprint(msg))
}

// Warn prints msg in red.
func (s *Shell) Warn(msg string) {
	s.Say(msg, color.FgRed)
}

// YesNo asks question and waits for an answer. "y" and "yes" are affirmative;
// "n", "no", an empty line or end of input are negative. Anything else asks again.
func (s *Shell) YesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(s.Out, "%s [y/N] ", question)

		line, err := s.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		answer, ok := parseAnswer(line)
		if ok {
			return answer, nil
		}
		if err == io.EOF {
			fmt.Fprintln(s.Out)
			return false, nil
		}
		fmt.Fprintln(s.Out, "Please answer yes or no.")
	}
}

// Confirm adapts YesNo to a no-argument decision callback.
func (s *Shell) Confirm(question string) func() (bool, error) {
	return func() (bool, error) {
		return s.YesNo(question)
	}
}

func parseAnswer(line string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "", "n", "no":
		return false, true
	default:
		return false, false
	}
}
