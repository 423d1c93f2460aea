// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Policy selects what happens to inputs the table cannot map.
type Policy int

const (
	// Drop skips unmapped inputs and continues.
	Drop Policy = iota

	// FailFast aborts on the first unmapped input.
	FailFast
)

// DefaultPolicy is the policy used when no WithPolicy option is given.
const DefaultPolicy = Drop

const (
	panicPolicyInvalid = "numeral: WithPolicy: unknown policy"
	panicLoggerNil     = "numeral: WithLogger: logger must not be nil"
)

// String returns the config spelling of p ("drop" or "fail").
func (p Policy) String() string {
	switch p {
	case Drop:
		return "drop"
	case FailFast:
		return "fail"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "drop"/"skip" and "fail"/"fail-fast" to a Policy.
// The empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPolicy, nil
	case "drop", "skip":
		return Drop, nil
	case "fail", "fail-fast", "failfast":
		return FailFast, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrBadPolicy)
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a Numeralizer.
type Options struct {
	policy Policy
	logger *slog.Logger
}

// WithPolicy sets the unmapped-input policy.
func WithPolicy(p Policy) Option {
	if p != Drop && p != FailFast {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithLogger sets the logger that receives dropped-input reports.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// discardLogger swallows every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gatherOptions(opts ...Option) Options {
	o := Options{policy: DefaultPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
