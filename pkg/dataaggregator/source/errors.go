package source

import "errors"

var (
	ErrUnsupportedSource = errors.New("unsupported source for lookup query")
	ErrNotFound          = errors.New("no matching record found")
)
