package content

import (
	"sync"

	"inkwell-cli/shared"
)

type Item interface {
	ItemId() string
}

type Authored interface {
	Item
	ItemAuthor() shared.AuthorRef
}

// Source is the remote side of a collection: the service calls that back
// LoadAll/Create/Update/Delete. D is the draft type submitted on writes.
type Source[T Item, D any] interface {
	List() ([]T, *shared.ApiError)
	Create(draft D) (T, *shared.ApiError)
	Update(id string, draft D) (T, *shared.ApiError)
	Delete(id string) *shared.ApiError
}

// ReconcilePolicy decides how a collection folds a successful write back into
// its cached list. This is a deliberate per-entity choice, not an accident:
// posts reload because the service fills in dependent fields (image URL,
// resolved author name) that the write response can't be trusted to carry;
// comments are single-field and cheap, so the returned record is spliced in
// directly.
type ReconcilePolicy int

const (
	ReconcileReload ReconcilePolicy = iota
	ReconcileOptimistic
)

// Collection is the cached, ordered local projection of a server-held list.
// It is never authoritative: a failed remote call leaves the cache exactly as
// it was.
type Collection[T Item, D any] struct {
	source Source[T, D]
	policy ReconcilePolicy

	mu      sync.Mutex
	items   []T
	loadErr *shared.ApiError
}

func NewCollection[T Item, D any](source Source[T, D], policy ReconcilePolicy) *Collection[T, D] {
	return &Collection[T, D]{source: source, policy: policy}
}

// LoadAll replaces the cache with the service's current full list. On failure
// the previous items stay intact and the error is retrievable via LoadErr.
func (c *Collection[T, D]) LoadAll() *shared.ApiError {
	items, apiErr := c.source.List()

	c.mu.Lock()
	defer c.mu.Unlock()

	if apiErr != nil {
		c.loadErr = apiErr
		return apiErr
	}

	c.items = items
	c.loadErr = nil
	return nil
}

// Items returns a copy of the cached list in display order.
func (c *Collection[T, D]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T, D]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// LoadErr reports the most recent LoadAll failure, if the cache is stale.
func (c *Collection[T, D]) LoadErr() *shared.ApiError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Create submits a draft. Reconciliation follows the collection's policy:
// reload refetches the authoritative list, optimistic prepends the returned
// record (newest first). On failure the cache is untouched.
func (c *Collection[T, D]) Create(draft D) (T, *shared.ApiError) {
	var zero T

	created, apiErr := c.source.Create(draft)
	if apiErr != nil {
		return zero, apiErr
	}

	switch c.policy {
	case ReconcileOptimistic:
		c.mu.Lock()
		c.items = append([]T{created}, c.items...)
		c.mu.Unlock()
	default:
		if apiErr := c.LoadAll(); apiErr != nil {
			return created, apiErr
		}
	}

	return created, nil
}

// Update submits changes for an existing item. Reload collections refetch;
// optimistic collections replace the entry in place by id. On failure the
// prior entry is untouched and the message is surfaced to the caller.
func (c *Collection[T, D]) Update(id string, draft D) (T, *shared.ApiError) {
	var zero T

	updated, apiErr := c.source.Update(id, draft)
	if apiErr != nil {
		return zero, apiErr
	}

	switch c.policy {
	case ReconcileOptimistic:
		c.mu.Lock()
		for i, item := range c.items {
			if item.ItemId() == id {
				c.items[i] = updated
				break
			}
		}
		c.mu.Unlock()
	default:
		if apiErr := c.LoadAll(); apiErr != nil {
			return updated, apiErr
		}
	}

	return updated, nil
}

// Delete removes an item. On success the entry is filtered out locally; no
// refetch needed since removal can't drift ordering. On failure the entry
// stays.
func (c *Collection[T, D]) Delete(id string) *shared.ApiError {
	if apiErr := c.source.Delete(id); apiErr != nil {
		return apiErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0:0]
	for _, item := range c.items {
		if item.ItemId() != id {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered

	return nil
}
