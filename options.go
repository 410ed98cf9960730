package arith

import (
	"strconv"
	"strings"
	"unicode"
)

// Option is an option for evaluation.
type Option interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the settings for one evaluation. It is also an Option.
type evalctx struct {
	// space is a string containing whitespace runes to skip in addition to
	// the defaults.
	space string
}

type spaceopt string

// Whitespace tells the evaluator to skip additional whitespace characters
// between tokens. By default only space, tab, vertical tab, and form feed are
// skipped, so an expression containing a newline fails to evaluate. Each rune
// must be a whitespace codepoint.
//
// Whitespace adds to the effect of any previous Whitespace in the options.
func Whitespace(chars ...rune) Option {
	var b strings.Builder
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("arith: not whitespace: " + strconv.QuoteRune(r))
		}
		if strings.ContainsRune(defaultSpace, r) || strings.ContainsRune(b.String(), r) {
			continue
		}
		b.WriteRune(r)
	}
	return spaceopt(b.String())
}

func (o spaceopt) evalOption(p evalctx) evalctx {
	for _, r := range o {
		if !strings.ContainsRune(p.space, r) {
			p.space += string(r)
		}
	}
	return p
}

// Preset combines options so that they can be applied together. It is more
// efficient than passing the same list of options to many calls to Eval.
func Preset(opts ...Option) Option {
	var p evalctx
	for _, opt := range opts {
		p = opt.evalOption(p)
	}
	return &p
}

func (o *evalctx) evalOption(p evalctx) evalctx {
	return spaceopt(o.space).evalOption(p)
}
