package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"inkwell-cli/shared"
	"inkwell-cli/types"
)

func (a *Api) SignIn(email, password string) (*shared.SessionResponse, *shared.ApiError) {
	return postSession(apiHost+"/auth/login", shared.SignInRequest{
		Email:    email,
		Password: password,
	})
}

func (a *Api) SignUp(username, email, password string) (*shared.SessionResponse, *shared.ApiError) {
	return postSession(apiHost+"/auth/register", shared.SignUpRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func postSession(serverUrl string, req any) (*shared.SessionResponse, *shared.ApiError) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, decodeErr(err)
	}

	return &session, nil
}

func (a *Api) GetMe() (*shared.User, *shared.ApiError) {
	resp, err := authenticatedFastClient.Get(apiHost + "/auth/me")
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var body struct {
		User *shared.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, decodeErr(err)
	}

	return body.User, nil
}

func (a *Api) ListPosts() ([]*shared.Post, *shared.ApiError) {
	resp, err := authenticatedFastClient.Get(apiHost + "/posts")
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var posts []*shared.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, decodeErr(err)
	}

	return posts, nil
}

func (a *Api) GetPost(id string) (*shared.Post, *shared.ApiError) {
	resp, err := authenticatedFastClient.Get(fmt.Sprintf("%s/posts/%s", apiHost, id))
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var post shared.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, decodeErr(err)
	}

	return &post, nil
}

func (a *Api) CreatePost(draft types.PostDraft) (*shared.Post, *shared.ApiError) {
	return sendPostForm(http.MethodPost, apiHost+"/posts", draft)
}

func (a *Api) UpdatePost(id string, draft types.PostDraft) (*shared.Post, *shared.ApiError) {
	return sendPostForm(http.MethodPut, fmt.Sprintf("%s/posts/%s", apiHost, id), draft)
}

func sendPostForm(method, serverUrl string, draft types.PostDraft) (*shared.Post, *shared.ApiError) {
	body, contentType, err := newPostForm(draft)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building form: %v", err)}
	}

	request, err := http.NewRequest(method, serverUrl, body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", contentType)

	resp, err := authenticatedUploadClient.Do(request)
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var post shared.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, decodeErr(err)
	}

	return &post, nil
}

// newPostForm builds the multipart body for post create/update. The image
// part is only written when the draft has an attachment; the content type
// always comes from the writer so the boundary is negotiated per request.
func newPostForm(draft types.PostDraft) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("title", draft.Title); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("content", draft.Content); err != nil {
		return nil, "", err
	}

	if draft.HasAttachment() {
		file, err := os.Open(draft.ImagePath)
		if err != nil {
			return nil, "", err
		}
		defer file.Close()

		part, err := writer.CreateFormFile("image", filepath.Base(draft.ImagePath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func (a *Api) DeletePost(id string) *shared.ApiError {
	return deleteResource(fmt.Sprintf("%s/posts/%s", apiHost, id))
}

func (a *Api) ListComments(postId string) ([]*shared.Comment, *shared.ApiError) {
	resp, err := authenticatedFastClient.Get(fmt.Sprintf("%s/comments/post/%s", apiHost, postId))
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var comments []*shared.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return nil, decodeErr(err)
	}

	return comments, nil
}

func (a *Api) CreateComment(postId, content string) (*shared.Comment, *shared.ApiError) {
	reqBytes, err := json.Marshal(shared.CreateCommentRequest{PostId: postId, Content: content})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedFastClient.Post(apiHost+"/comments", "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var comment shared.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comment); err != nil {
		return nil, decodeErr(err)
	}

	return &comment, nil
}

func (a *Api) UpdateComment(id, content string) (*shared.Comment, *shared.ApiError) {
	reqBytes, err := json.Marshal(shared.UpdateCommentRequest{Content: content})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/comments/%s", apiHost, id), bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var comment shared.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comment); err != nil {
		return nil, decodeErr(err)
	}

	return &comment, nil
}

func (a *Api) DeleteComment(id string) *shared.ApiError {
	return deleteResource(fmt.Sprintf("%s/comments/%s", apiHost, id))
}

func deleteResource(serverUrl string) *shared.ApiError {
	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}
