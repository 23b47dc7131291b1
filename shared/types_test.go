package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUnmarshalNormalizesId(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"id only", `{"id":"u1","username":"ann","email":"a@b.c","role":"user"}`, "u1"},
		{"_id only", `{"_id":"u2","username":"bob","email":"b@b.c","role":"user"}`, "u2"},
		{"both spellings prefer id", `{"id":"u3","_id":"legacy","username":"cat","email":"c@b.c","role":"admin"}`, "u3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.want, u.Id)
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())

	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
}

func TestAuthorRefUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want AuthorRef
	}{
		{"bare id", `"u1"`, AuthorRef{Kind: AuthorById, Id: "u1"}},
		{"embedded record", `{"_id":"u2","username":"bob"}`, AuthorRef{Kind: AuthorByRecord, Id: "u2", Username: "bob"}},
		{"record with plain id", `{"id":"u3","username":"cat"}`, AuthorRef{Kind: AuthorByRecord, Id: "u3", Username: "cat"}},
		{"null", `null`, AuthorRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref AuthorRef
			require.NoError(t, json.Unmarshal([]byte(tt.body), &ref))
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestAuthorRefAbsentFieldStaysUnset(t *testing.T) {
	var post Post
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p1","title":"t"}`), &post))
	assert.Equal(t, AuthorUnset, post.Author.Kind)

	_, ok := post.Author.ResolvedId()
	assert.False(t, ok)
}

func TestResolvedId(t *testing.T) {
	id, ok := AuthorRef{Kind: AuthorById, Id: "u1"}.ResolvedId()
	assert.True(t, ok)
	assert.Equal(t, "u1", id)

	id, ok = AuthorRef{Kind: AuthorByRecord, Id: "u2", Username: "bob"}.ResolvedId()
	assert.True(t, ok)
	assert.Equal(t, "u2", id)

	_, ok = AuthorRef{}.ResolvedId()
	assert.False(t, ok)
}

func TestDisplayAuthorFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		post Post
		want string
	}{
		{"authorName wins", Post{AuthorName: "Ann", Author: AuthorRef{Kind: AuthorByRecord, Id: "u1", Username: "ann"}}, "Ann"},
		{"falls back to embedded username", Post{Author: AuthorRef{Kind: AuthorByRecord, Id: "u1", Username: "ann"}}, "ann"},
		{"bare id has no name", Post{Author: AuthorRef{Kind: AuthorById, Id: "u1"}}, "Unknown"},
		{"nothing recorded", Post{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.post.DisplayAuthor())
		})
	}
}

func TestPostUnmarshalWireShape(t *testing.T) {
	body := `{
		"_id": "p1",
		"title": "Hello",
		"content": "world",
		"image": "/uploads/p1.png",
		"author": {"_id": "u1", "username": "ann"},
		"authorName": "Ann",
		"createdAt": "2025-06-01T12:00:00Z"
	}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(body), &post))

	assert.Equal(t, "p1", post.Id)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "/uploads/p1.png", post.Image)
	assert.Equal(t, AuthorByRecord, post.Author.Kind)
	assert.Equal(t, "u1", post.Author.Id)
	assert.Equal(t, 2025, post.CreatedAt.Year())
}
