package shared

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the identity record returned by /auth/login, /auth/register and
// /auth/me. The service spells the identifier as either "id" or "_id"
// depending on the endpoint, so decoding normalizes both onto Id.
type User struct {
	Id       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		Id       string   `json:"id"`
		LegacyId string   `json:"_id"`
		Username string   `json:"username"`
		Email    string   `json:"email"`
		Role     UserRole `json:"role"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	u.Id = raw.Id
	if u.Id == "" {
		u.Id = raw.LegacyId
	}
	u.Username = raw.Username
	u.Email = raw.Email
	u.Role = raw.Role

	return nil
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type AuthorRefKind int

const (
	AuthorUnset AuthorRefKind = iota
	AuthorById
	AuthorByRecord
)

// AuthorRef is the service's reference to a content item's creator. The wire
// value is either a bare id string, an embedded {_id, username} record, or
// null/absent when the author account no longer exists.
type AuthorRef struct {
	Kind     AuthorRefKind
	Id       string
	Username string
}

func (r *AuthorRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = AuthorRef{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = AuthorRef{Kind: AuthorById, Id: id}
		return nil
	}

	var record struct {
		Id       string `json:"id"`
		LegacyId string `json:"_id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	resolved := record.Id
	if resolved == "" {
		resolved = record.LegacyId
	}
	*r = AuthorRef{Kind: AuthorByRecord, Id: resolved, Username: record.Username}

	return nil
}

func (r AuthorRef) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case AuthorById:
		return json.Marshal(r.Id)
	case AuthorByRecord:
		return json.Marshal(struct {
			Id       string `json:"_id"`
			Username string `json:"username"`
		}{r.Id, r.Username})
	default:
		return []byte("null"), nil
	}
}

// ResolvedId returns the author's identifier and whether one is recorded.
// An unset reference never resolves, so items without an author can never be
// claimed by anyone.
func (r AuthorRef) ResolvedId() (string, bool) {
	if r.Kind == AuthorUnset || r.Id == "" {
		return "", false
	}
	return r.Id, true
}

type Post struct {
	Id         string    `json:"_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	Author     AuthorRef `json:"author,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p *Post) ItemId() string { return p.Id }
func (p *Post) ItemAuthor() AuthorRef { return p.Author }
func (p *Post) DisplayAuthor() string { return displayAuthor(p.AuthorName, p.Author) }

type Comment struct {
	Id         string    `json:"_id"`
	PostId     string    `json:"postId"`
	Content    string    `json:"content"`
	Author     AuthorRef `json:"author,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c *Comment) ItemId() string { return c.Id }
func (c *Comment) ItemAuthor() AuthorRef { return c.Author }
func (c *Comment) DisplayAuthor() string { return displayAuthor(c.AuthorName, c.Author) }

func displayAuthor(authorName string, ref AuthorRef) string {
	if authorName != "" {
		return authorName
	}
	if ref.Kind == AuthorByRecord && ref.Username != "" {
		return ref.Username
	}
	return "Unknown"
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by both /auth/login and /auth/register.
// Registration may or may not auto-authenticate; Token is empty when it
// doesn't.
type SessionResponse struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user"`
}

type CreateCommentRequest struct {
	PostId  string `json:"postId"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}
