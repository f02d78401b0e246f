package classyfd

import "github.com/jgoring/classyfd/internal/fileio"

// Progress is a callback reporting transferred bytes for a single source
// path during a copy-based operation.
type Progress func(path string, copied int64, total int64)

type options struct {
	overwrite     bool
	recursive     bool
	ignoreMissing bool
	progress      Progress
}

// Option configures a single operation. Options are passed per call; no
// process-wide state is kept.
type Option func(*options)

// WithOverwrite permits a rename, move or copy to replace an existing
// destination file. Directories are never replaced.
func WithOverwrite() Option {
	return func(o *options) {
		o.overwrite = true
	}
}

// WithRecursive permits removing a non-empty directory along with all of
// its descendants.
func WithRecursive() Option {
	return func(o *options) {
		o.recursive = true
	}
}

// WithIgnoreMissing makes a removal succeed when nothing exists at the path.
func WithIgnoreMissing() Option {
	return func(o *options) {
		o.ignoreMissing = true
	}
}

// WithProgress installs a callback receiving byte counts during copy-based
// operations. Same-volume renames complete in a single step and report
// nothing.
func WithProgress(progress Progress) Option {
	return func(o *options) {
		o.progress = progress
	}
}

func (o options) ioProgress() fileio.Progress {
	if o.progress == nil {
		return nil
	}

	return fileio.Progress(o.progress)
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
