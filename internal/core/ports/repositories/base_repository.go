package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically. The transaction travels in
// the context handed to fn; repository calls made with that context take part
// in it. Returning an error from fn rolls every write back.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
