// Package catalog defines the storage contract localized texts and words
// are resolved against, together with its file, database and cached
// implementations.
package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no entry exists for the requested
// identifier and language.
var ErrNotFound = errors.New("catalog: entry not found")

// Kind separates the text and word namespaces of a catalog.
type Kind string

const (
	KindText Kind = "text"
	KindWord Kind = "word"
)

// Store resolves localized content by numeric entity id and language id.
// Implementations are expected to be safe for concurrent readers.
type Store interface {
	Text(ctx context.Context, id int, languageID int) (string, error)
	Word(ctx context.Context, id int, languageID int) (string, error)
}
