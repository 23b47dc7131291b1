package content

import (
	"strings"

	"inkwell-cli/shared"
	"inkwell-cli/types"
)

// CommentThread is the per-post comment list: an optimistic collection
// (newest first) plus the owner-or-admin delete check.
type CommentThread struct {
	postId string
	col    *Collection[*shared.Comment, string]
}

func NewCommentThread(client types.ApiClient, postId string) *CommentThread {
	return &CommentThread{
		postId: postId,
		col:    NewCollection[*shared.Comment, string](commentSource{client, postId}, ReconcileOptimistic),
	}
}

func (t *CommentThread) PostId() string {
	return t.postId
}

func (t *CommentThread) Load() *shared.ApiError {
	return t.col.LoadAll()
}

func (t *CommentThread) Comments() []*shared.Comment {
	return t.col.Items()
}

// Add validates and submits a comment body. An empty or whitespace-only body
// is rejected before any request goes out.
func (t *CommentThread) Add(body string) (*shared.Comment, *shared.ApiError) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "comment can't be empty",
		}
	}

	return t.col.Create(body)
}

// Edit replaces a comment's body in place on success.
func (t *CommentThread) Edit(id, body string) (*shared.Comment, *shared.ApiError) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "comment can't be empty",
		}
	}

	return t.col.Update(id, body)
}

func (t *CommentThread) Delete(id string) *shared.ApiError {
	return t.col.Delete(id)
}

// CanDelete reports whether the delete control is offered for a comment:
// the comment's author, or any admin.
func CanDelete(user *shared.User, comment *shared.Comment) bool {
	if user.IsAdmin() {
		return true
	}
	return Owns(user, comment.Author)
}
