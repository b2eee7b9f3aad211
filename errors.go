package tfidf

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingResource matches every MissingResourceError.
	ErrMissingResource = errors.New("missing resource")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// Resource kinds reported by MissingResourceError.
const (
	ResourceStopwords = "stopwords"
	ResourceManifest  = "manifest"
	ResourceDocument  = "document"
)

// MissingResourceError reports an input file that is absent or unreadable.
type MissingResourceError struct {
	Kind string
	Path string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *MissingResourceError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMissingResource) match.
func (e *MissingResourceError) Is(target error) bool {
	return target == ErrMissingResource
}

func missing(kind, path string, err error) error {
	return &MissingResourceError{Kind: kind, Path: path, Err: err}
}
