// SPDX-License-Identifier: MIT

package cipher

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/matcipher/alphabet"
	"github.com/katalvlaran/matcipher/numeral"
)

// Defaults.
const (
	// DefaultTrimPadding keeps trailing pad symbols in Decode output.
	DefaultTrimPadding = false

	// DefaultKeyCheck skips KeyPair.Verify in New.
	DefaultKeyCheck = false
)

const (
	panicTableNil      = "cipher: WithTable: table must not be nil"
	panicPolicyInvalid = "cipher: WithPolicy: unknown policy"
	panicLoggerNil     = "cipher: WithLogger: logger must not be nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of a Cipher.
type Options struct {
	table       *alphabet.Table
	policy      numeral.Policy
	logger      *slog.Logger
	trimPadding bool
	keyCheck    bool
}

// WithTable replaces the default 77-symbol table.
func WithTable(t *alphabet.Table) Option {
	if t == nil {
		panic(panicTableNil)
	}

	return func(o *Options) { o.table = t }
}

// WithPolicy sets the unmapped-symbol policy of both directions.
func WithPolicy(p numeral.Policy) Option {
	if p != numeral.Drop && p != numeral.FailFast {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithLogger sets the logger shared with the numeral stage.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithTrimPadding strips trailing pad symbols (numeral 0) from Decode output.
// Genuine trailing occurrences of that symbol are stripped too; use
// DecodeLength when the message length is known.
func WithTrimPadding() Option {
	return func(o *Options) { o.trimPadding = true }
}

// WithKeyCheck makes New run KeyPair.Verify and fail on a bad inverse.
func WithKeyCheck() Option {
	return func(o *Options) { o.keyCheck = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		policy:      numeral.DefaultPolicy,
		trimPadding: DefaultTrimPadding,
		keyCheck:    DefaultKeyCheck,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.table == nil {
		o.table = alphabet.Default()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
