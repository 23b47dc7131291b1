package types

import (
	"inkwell-cli/shared"
)

// ApiClient is the remote collaborator for the blog service. Implemented by
// the api package; faked in tests. Methods return a typed *shared.ApiError
// rather than error so callers can branch on the failure class.
type ApiClient interface {
	SignIn(email, password string) (*shared.SessionResponse, *shared.ApiError)
	SignUp(username, email, password string) (*shared.SessionResponse, *shared.ApiError)
	GetMe() (*shared.User, *shared.ApiError)

	ListPosts() ([]*shared.Post, *shared.ApiError)
	GetPost(id string) (*shared.Post, *shared.ApiError)
	CreatePost(draft PostDraft) (*shared.Post, *shared.ApiError)
	UpdatePost(id string, draft PostDraft) (*shared.Post, *shared.ApiError)
	DeletePost(id string) *shared.ApiError

	ListComments(postId string) ([]*shared.Comment, *shared.ApiError)
	CreateComment(postId, content string) (*shared.Comment, *shared.ApiError)
	UpdateComment(id, content string) (*shared.Comment, *shared.ApiError)
	DeleteComment(id string) *shared.ApiError
}

// PostDraft is the client-side form state for creating or editing a post.
// ImagePath points at a local file; it's optional and decides whether the
// request carries a multipart file part.
type PostDraft struct {
	Title     string
	Content   string
	ImagePath string
}

func (d PostDraft) HasAttachment() bool {
	return d.ImagePath != ""
}
