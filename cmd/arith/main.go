package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/arith/internal/config"
	"github.com/zephyrtronium/arith/internal/repl"
)

// errFailed reports that at least one command-line expression failed. The
// failures themselves have already been printed.
var errFailed = errors.New("evaluation failed")

// CLI is the command line of arith.
type CLI struct {
	Config   string   `help:"Configuration file path." type:"path" default:"~/.config/arith.yaml"`
	Fmt      string   `help:"Result formatting verb (default %g)." placeholder:"VERB"`
	Color    string   `help:"Colorize output: auto, always, or never." placeholder:"WHEN"`
	Newlines bool     `help:"Treat newlines inside expressions as whitespace."`
	Exprs    []string `arg:"" optional:"" help:"Expressions to evaluate instead of reading standard input. Use -- before expressions starting with -."`
}

// settings loads the configuration file and applies flags over it.
func (c *CLI) settings() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Fmt != "" {
		cfg.Format = c.Fmt
	}
	if c.Color != "" {
		cfg.Color = c.Color
	}
	if c.Newlines {
		cfg.Newlines = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run evaluates the command-line expressions, or runs the interactive loop
// if there are none.
func (c *CLI) run(stdin *os.File, stdout, stderr io.Writer) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	interactive := isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd())
	sh := repl.New(stdin, stdout, stderr, cfg, interactive)
	if len(c.Exprs) == 0 {
		return sh.Run()
	}
	ok := true
	for _, expr := range c.Exprs {
		ok = sh.Eval(expr) && ok
	}
	if !ok {
		return errFailed
	}
	return nil
}

func main() {
	log.SetFlags(0)
	var cli CLI
	kong.Parse(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate arithmetic expressions."),
		kong.UsageOnError(),
	)
	if err := cli.run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
