package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/application/ledger/usecases"
	"subtrack/internal/interfaces/http/handlers/testutil"
)

func newBookmarkHandler(t *testing.T) *BookmarkHandler {
	t.Helper()
	serviceRepo := newFakeServiceRepo(seedService(t, 1, "Netflix"))
	bookmarkRepo := newFakeBookmarkRepo()

	return NewBookmarkHandler(
		usecases.NewListBookmarksUseCase(bookmarkRepo, serviceRepo, testLogger()),
		usecases.NewAddBookmarkUseCase(bookmarkRepo, serviceRepo, testMarkdown(), testLogger()),
		usecases.NewRemoveBookmarkUseCase(bookmarkRepo, testLogger()),
	)
}

func TestBookmarkHandler_AddAndDuplicate(t *testing.T) {
	h := newBookmarkHandler(t)

	c, w := testutil.NewTestContext("POST", "/api/my/bookmarks", map[string]interface{}{
		"service_id": 1,
	})
	testutil.SetAuthContext(c, 7, "alice", false)

	h.AddBookmark(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same user bookmarking the same service again
	c, w = testutil.NewTestContext("POST", "/api/my/bookmarks", map[string]interface{}{
		"service_id": 1,
	})
	testutil.SetAuthContext(c, 7, "alice", false)

	h.AddBookmark(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "duplicate", resp.Error.Type)
}

func TestBookmarkHandler_Add_UnknownService(t *testing.T) {
	h := newBookmarkHandler(t)

	c, w := testutil.NewTestContext("POST", "/api/my/bookmarks", map[string]interface{}{
		"service_id": 999,
	})
	testutil.SetAuthContext(c, 7, "alice", false)

	h.AddBookmark(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookmarkHandler_Remove_OtherUsersBookmark(t *testing.T) {
	h := newBookmarkHandler(t)

	c, w := testutil.NewTestContext("POST", "/api/my/bookmarks", map[string]interface{}{
		"service_id": 1,
	})
	testutil.SetAuthContext(c, 7, "alice", false)
	h.AddBookmark(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = testutil.NewTestContext("DELETE", "/api/my/bookmarks/201", nil)
	testutil.SetAuthContext(c, 8, "mallory", false)
	testutil.SetURLParam(c, "id", "201")

	h.RemoveBookmark(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
