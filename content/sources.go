package content

import (
	"inkwell-cli/shared"
	"inkwell-cli/types"
)

// postSource adapts the api client to the collection's Source shape for
// posts.
type postSource struct {
	client types.ApiClient
}

func (s postSource) List() ([]*shared.Post, *shared.ApiError) {
	return s.client.ListPosts()
}

func (s postSource) Create(draft types.PostDraft) (*shared.Post, *shared.ApiError) {
	return s.client.CreatePost(draft)
}

func (s postSource) Update(id string, draft types.PostDraft) (*shared.Post, *shared.ApiError) {
	return s.client.UpdatePost(id, draft)
}

func (s postSource) Delete(id string) *shared.ApiError {
	return s.client.DeletePost(id)
}

// NewPostCollection returns the post flavor of the collection: always reload
// after create/update since the service resolves the author name and image
// URL server-side.
func NewPostCollection(client types.ApiClient) *Collection[*shared.Post, types.PostDraft] {
	return NewCollection[*shared.Post, types.PostDraft](postSource{client}, ReconcileReload)
}

// commentSource scopes comment operations to a single post. The draft is the
// comment body.
type commentSource struct {
	client types.ApiClient
	postId string
}

func (s commentSource) List() ([]*shared.Comment, *shared.ApiError) {
	return s.client.ListComments(s.postId)
}

func (s commentSource) Create(body string) (*shared.Comment, *shared.ApiError) {
	return s.client.CreateComment(s.postId, body)
}

func (s commentSource) Update(id string, body string) (*shared.Comment, *shared.ApiError) {
	return s.client.UpdateComment(id, body)
}

func (s commentSource) Delete(id string) *shared.ApiError {
	return s.client.DeleteComment(id)
}
