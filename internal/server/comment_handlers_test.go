package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"weblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreComment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, m := newTestApp()
		m.postRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)
		m.commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := app.Test(formRequest("/post/1", url.Values{"comment": {"Nice post"}}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var comment models.Comment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&comment))
		assert.Equal(t, "Nice post", comment.Body)
		assert.Equal(t, uint(1), comment.PostID)
	})

	t.Run("Unknown post", func(t *testing.T) {
		app, m := newTestApp()
		m.postRepo.On("Exists", mock.Anything, uint(999)).Return(false, nil)

		resp, err := app.Test(formRequest("/post/999", url.Values{"comment": {"Nice post"}}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		m.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Non-numeric post ID", func(t *testing.T) {
		app, m := newTestApp()

		resp, err := app.Test(formRequest("/post/abc", url.Values{"comment": {"Nice post"}}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		m.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty comment", func(t *testing.T) {
		app, m := newTestApp()
		m.postRepo.On("Exists", mock.Anything, uint(1)).Return(true, nil)

		resp, err := app.Test(formRequest("/post/1", url.Values{"comment": {""}}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		m.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
