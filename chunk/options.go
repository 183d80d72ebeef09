package chunk

import (
	"os"

	"github.com/hupe1980/columnar"
)

type options struct {
	pageSize int
	logger   *columnar.Logger
}

func defaultOptions() *options {
	return &options{
		pageSize: os.Getpagesize(),
		logger:   columnar.NoopLogger(),
	}
}

// Option configures chunk construction.
type Option func(*options)

// WithPageSize overrides the page size used for mapped placement, mainly
// for tests. The value must be a positive multiple of the platform page
// size or mapping will fail; non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithLogger configures structured logging for chunk construction.
// If nil is passed, logging stays disabled.
func WithLogger(l *columnar.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
