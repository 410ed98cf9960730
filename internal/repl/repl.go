// Package repl implements the read-evaluate-print loop of the arith command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/config"
)

// Exit is the line which ends the loop.
const Exit = "exit"

const (
	banner  = "arith calculator (type 'exit' to quit)"
	goodbye = "Exiting calculator. Goodbye!"
)

// Shell reads expressions line by line and prints their values.
type Shell struct {
	in     io.Reader
	out    io.Writer
	errout io.Writer

	prompt string
	verb   string
	// interactive enables the banner and prompts.
	interactive bool
	opts        []arith.Option

	result  *color.Color
	failure *color.Color
}

// New creates a shell. Results are written to out and evaluation errors to
// errout.
func New(in io.Reader, out, errout io.Writer, cfg *config.Config, interactive bool) *Shell {
	s := Shell{
		in:          in,
		out:         out,
		errout:      errout,
		prompt:      cfg.Prompt,
		verb:        cfg.Format,
		interactive: interactive,
		result:      color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
	}
	if cfg.Newlines {
		s.opts = append(s.opts, arith.Whitespace('\n', '\r'))
	}
	switch cfg.Color {
	case config.ColorAlways:
		s.result.EnableColor()
		s.failure.EnableColor()
	case config.ColorNever:
		s.result.DisableColor()
		s.failure.DisableColor()
	}
	return &s
}

// Run reads and evaluates lines until the input ends or a line is exactly
// "exit". A failed expression is reported and does not stop the loop. The
// only errors returned are from reading the input.
func (s *Shell) Run() error {
	if s.interactive {
		fmt.Fprintln(s.out, banner)
	}
	sc := bufio.NewScanner(s.in)
	// Lines have no length limit.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		if s.interactive {
			fmt.Fprint(s.out, "\n"+s.prompt)
		}
		if !sc.Scan() {
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			return sc.Err()
		}
		line := sc.Text()
		if line == Exit {
			fmt.Fprintln(s.out, goodbye)
			return nil
		}
		s.print("Result: ", line)
	}
}

// Eval evaluates a single expression and prints its bare value. The result
// reports whether evaluation succeeded.
func (s *Shell) Eval(expr string) bool {
	return s.print("", expr)
}

func (s *Shell) print(prefix, expr string) bool {
	r, err := arith.Eval(expr, s.opts...)
	if err != nil {
		s.failure.Fprintf(s.errout, "Error: %v\n", err)
		return false
	}
	s.result.Fprintf(s.out, prefix+s.verb+"\n", r)
	return true
}
