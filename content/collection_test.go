package content

import (
	"testing"

	"inkwell-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource drives a Collection without the network. Each op can be
// overridden per test; listCalls counts reload-triggered refetches.
type fakeSource struct {
	listFn   func() ([]*shared.Post, *shared.ApiError)
	createFn func(draft string) (*shared.Post, *shared.ApiError)
	updateFn func(id, draft string) (*shared.Post, *shared.ApiError)
	deleteFn func(id string) *shared.ApiError

	listCalls int
}

func (s *fakeSource) List() ([]*shared.Post, *shared.ApiError) {
	s.listCalls++
	return s.listFn()
}

func (s *fakeSource) Create(draft string) (*shared.Post, *shared.ApiError) {
	return s.createFn(draft)
}

func (s *fakeSource) Update(id string, draft string) (*shared.Post, *shared.ApiError) {
	return s.updateFn(id, draft)
}

func (s *fakeSource) Delete(id string) *shared.ApiError {
	return s.deleteFn(id)
}

func fixedList(posts ...*shared.Post) func() ([]*shared.Post, *shared.ApiError) {
	return func() ([]*shared.Post, *shared.ApiError) {
		return posts, nil
	}
}

func networkDown() *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeNetworkUnreachable, Msg: "connection refused"}
}

func TestLoadAllReplacesCache(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	p2 := &shared.Post{Id: "p2"}
	source := &fakeSource{listFn: fixedList(p1, p2)}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)

	require.Nil(t, col.LoadAll())

	assert.Equal(t, []*shared.Post{p1, p2}, col.Items())
	assert.Nil(t, col.LoadErr())
}

func TestLoadAllFailureKeepsPreviousItems(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	source := &fakeSource{listFn: fixedList(p1)}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)
	require.Nil(t, col.LoadAll())

	source.listFn = func() ([]*shared.Post, *shared.ApiError) {
		return nil, networkDown()
	}

	apiErr := col.LoadAll()
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeNetworkUnreachable, apiErr.Type)

	// the stale cache survives and the failure is inspectable
	assert.Equal(t, []*shared.Post{p1}, col.Items())
	assert.Equal(t, apiErr, col.LoadErr())
}

func TestItemsReturnsACopy(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	p2 := &shared.Post{Id: "p2"}
	source := &fakeSource{listFn: fixedList(p1, p2)}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)
	require.Nil(t, col.LoadAll())

	items := col.Items()
	items[0] = &shared.Post{Id: "mutated"}

	assert.Equal(t, "p1", col.Items()[0].Id)
}

func TestCreateWithReloadRefetches(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	created := &shared.Post{Id: "p2"}
	// the reload result is authoritative, not the write response
	reloaded := &shared.Post{Id: "p2", AuthorName: "Ann"}

	source := &fakeSource{
		listFn: fixedList(p1),
		createFn: func(draft string) (*shared.Post, *shared.ApiError) {
			return created, nil
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)
	require.Nil(t, col.LoadAll())

	source.listFn = fixedList(reloaded, p1)

	got, apiErr := col.Create("draft")
	require.Nil(t, apiErr)
	assert.Equal(t, created, got)
	assert.Equal(t, []*shared.Post{reloaded, p1}, col.Items())
	assert.Equal(t, 2, source.listCalls)
}

func TestCreateOptimisticPrepends(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	created := &shared.Post{Id: "p2"}

	source := &fakeSource{
		listFn: fixedList(p1),
		createFn: func(draft string) (*shared.Post, *shared.ApiError) {
			return created, nil
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileOptimistic)
	require.Nil(t, col.LoadAll())

	_, apiErr := col.Create("draft")
	require.Nil(t, apiErr)

	// newest first, no extra round trip
	assert.Equal(t, []*shared.Post{created, p1}, col.Items())
	assert.Equal(t, 1, source.listCalls)
}

func TestCreateFailureLeavesCacheUntouched(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	source := &fakeSource{
		listFn: fixedList(p1),
		createFn: func(draft string) (*shared.Post, *shared.ApiError) {
			return nil, networkDown()
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileOptimistic)
	require.Nil(t, col.LoadAll())

	_, apiErr := col.Create("draft")
	require.NotNil(t, apiErr)
	assert.Equal(t, []*shared.Post{p1}, col.Items())
}

func TestUpdateOptimisticReplacesInPlace(t *testing.T) {
	p1 := &shared.Post{Id: "p1", Title: "old"}
	p2 := &shared.Post{Id: "p2"}
	updated := &shared.Post{Id: "p1", Title: "new"}

	source := &fakeSource{
		listFn: fixedList(p1, p2),
		updateFn: func(id, draft string) (*shared.Post, *shared.ApiError) {
			return updated, nil
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileOptimistic)
	require.Nil(t, col.LoadAll())

	_, apiErr := col.Update("p1", "new")
	require.Nil(t, apiErr)

	// same position, same neighbors
	assert.Equal(t, []*shared.Post{updated, p2}, col.Items())
}

func TestUpdateFailureLeavesEntryUntouched(t *testing.T) {
	p1 := &shared.Post{Id: "p1", Title: "old"}
	source := &fakeSource{
		listFn: fixedList(p1),
		updateFn: func(id, draft string) (*shared.Post, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeForbidden, Status: 403, Msg: "not yours"}
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileOptimistic)
	require.Nil(t, col.LoadAll())

	_, apiErr := col.Update("p1", "new")
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeForbidden, apiErr.Type)
	assert.Equal(t, []*shared.Post{p1}, col.Items())
}

func TestDeleteRemovesExactlyOnePreservingOrder(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	p2 := &shared.Post{Id: "p2"}
	p3 := &shared.Post{Id: "p3"}
	source := &fakeSource{
		listFn: fixedList(p1, p2, p3),
		deleteFn: func(id string) *shared.ApiError {
			return nil
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)
	require.Nil(t, col.LoadAll())

	require.Nil(t, col.Delete("p2"))

	assert.Equal(t, []*shared.Post{p1, p3}, col.Items())
	// removal reconciles locally, no refetch
	assert.Equal(t, 1, source.listCalls)
}

func TestDeleteFailureKeepsEntry(t *testing.T) {
	p1 := &shared.Post{Id: "p1"}
	source := &fakeSource{
		listFn: fixedList(p1),
		deleteFn: func(id string) *shared.ApiError {
			return &shared.ApiError{Type: shared.ApiErrorTypeForbidden, Status: 403, Msg: "not yours"}
		},
	}
	col := NewCollection[*shared.Post, string](source, ReconcileReload)
	require.Nil(t, col.LoadAll())

	apiErr := col.Delete("p1")
	require.NotNil(t, apiErr)
	assert.Equal(t, []*shared.Post{p1}, col.Items())
}
