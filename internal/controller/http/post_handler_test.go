package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) GetAll() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetOne(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Create(ownerID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Update(postID, requesterID string, input usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(postID, requesterID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UploadPoster(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	args := m.Called(postID, requesterID, file, ext, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UploadImage(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	args := m.Called(postID, requesterID, file, ext, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UploadVideo(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	args := m.Called(postID, requesterID, file, ext, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) TogglePublic(postID, requesterID string) (*entity.Post, error) {
	args := m.Called(postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) View(postID string) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostUseCase) Like(postID, userID string) (*entity.Post, bool, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Post), args.Bool(1), args.Error(2)
}

func (m *MockPostUseCase) Delete(postID, requesterID string) error {
	args := m.Called(postID, requesterID)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

const validTitle = "A long morning chasing pike on the upper river"

func authed(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

func TestCreatePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/create-post", authed("user-123", handler.CreatePost))

	body := []entity.Block{{ID: "1", Type: entity.BlockParagraph, Content: "Fog on the water."}}
	input := usecase.CreatePostInput{Title: validTitle, Body: body, Category: []string{"fishing"}}
	mockUseCase.On("Create", "user-123", input).Return(&entity.Post{ID: "post-1", Title: validTitle}, nil)

	req := httptest.NewRequest(http.MethodPost, "/posts/create-post", jsonBody(t, map[string]interface{}{
		"title":    validTitle,
		"body":     body,
		"category": []string{"fishing"},
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "post-1")
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_TitleTooShort(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/create-post", authed("user-123", handler.CreatePost))

	req := httptest.NewRequest(http.MethodPost, "/posts/create-post", jsonBody(t, map[string]interface{}{
		"title":    "Too short",
		"body":     []entity.Block{{ID: "1", Type: entity.BlockParagraph, Content: "x"}},
		"category": []string{"fishing"},
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create")
}

func TestGetOnePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/posts/one-post/:postId", handler.GetOnePost)

	mockUseCase.On("GetOne", "missing").Return(nil, entity.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/posts/one-post/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikePost_Responses(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/posts/like-post/:postId", authed("user-123", handler.LikePost))

	post := &entity.Post{ID: "post-1", Likes: []string{"user-123"}}
	mockUseCase.On("Like", "post-1", "user-123").Return(post, true, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts/like-post/post-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Post liked")

	mockUseCase.On("Like", "post-1", "user-123").Return(&entity.Post{ID: "post-1"}, false, nil).Once()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/like-post/post-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Post unliked")
}

func TestUpdatePost_NotOwner(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/posts/update-post/:postId", authed("user-456", handler.UpdatePost))

	mockUseCase.On("Update", "post-1", "user-456", mock.Anything).Return(nil, entity.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodPatch, "/posts/update-post/post-1", jsonBody(t, map[string]interface{}{
		"title": validTitle,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeletePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/posts/delete-post/:postId", authed("user-123", handler.DeletePost))

	mockUseCase.On("Delete", "post-1", "user-123").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/posts/delete-post/post-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
