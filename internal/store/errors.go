package store

import (
	"errors"
	"fmt"
)

// ErrDataSource marks persistence-layer failures. Callers decide policy:
// report endpoints fail the request, the kitchen queue degrades to empty.
var ErrDataSource = errors.New("data source unavailable")

func dataSourceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataSource, op, err)
}
