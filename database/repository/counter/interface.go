package counterRepo

import "context"

// CounterRepository hands out monotonically increasing sequence numbers.
// Reference generation (BOOK-/INV- numbers) must not race under concurrent
// creation, so sequences are advanced atomically in the database.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
