package spork

import (
	"github.com/azuqua/spork/pkg/counter"
	"github.com/hashicorp/go-hclog"
	"oss.indeed.com/go/libtime"
)

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger sets the logger the client emits poll traces to. The default
// logger discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock sets the wall clock used to timestamp samples. The default is
// the system clock; tests substitute a controllable one.
func WithClock(clock libtime.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithReader sets the counter reader, overriding the platform's own. Tests
// substitute a synthetic one.
func WithReader(reader counter.Reader) Option {
	return func(c *Client) {
		c.reader = reader
	}
}
