package repository

import (
	"context"
	"errors"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Store is the system of record for the four state documents. Update is the
// only mutation path: it runs fn on the full snapshot as one uninterrupted
// load-modify-save unit, serialized against every other Load and Update on
// the same store. If fn returns an error nothing is saved.
type Store interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Update(ctx context.Context, fn func(*domain.Snapshot) error) error
}
