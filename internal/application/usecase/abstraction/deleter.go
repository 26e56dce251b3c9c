package abstraction

import "context"

// Deleter defines the interface for deleting media. The boolean reports
// whether anything was removed.
type Deleter interface {
	Delete(ctx context.Context, id string) (bool, error)
}
