package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) GetAll(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Create(postID, authorID, text string) (*entity.Comment, error) {
	args := m.Called(postID, authorID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Update(commentID, requesterID, text string) (*entity.Comment, error) {
	args := m.Called(commentID, requesterID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Like(commentID, userID string) (*entity.Comment, bool, error) {
	args := m.Called(commentID, userID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Comment), args.Bool(1), args.Error(2)
}

func (m *MockCommentUseCase) Delete(commentID, postID, requesterID string) error {
	args := m.Called(commentID, postID, requesterID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

const validCommentText = "What a catch, I have never seen a pike that big before!"

func TestCreateComment(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/comments/create-comment/:postId", authed("user-123", handler.CreateComment))

	mockUseCase.On("Create", "post-1", "user-123", validCommentText).
		Return(&entity.Comment{ID: "comment-1", PostID: "post-1", Text: validCommentText}, nil)

	req := httptest.NewRequest(http.MethodPost, "/comments/create-comment/post-1", jsonBody(t, map[string]string{
		"text": validCommentText,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "comment-1")
	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_TextTooShort(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/comments/create-comment/:postId", authed("user-123", handler.CreateComment))

	req := httptest.NewRequest(http.MethodPost, "/comments/create-comment/post-1", jsonBody(t, map[string]string{
		"text": "Nice!",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create")
}

func TestCreateComment_TextTooLong(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/comments/create-comment/:postId", authed("user-123", handler.CreateComment))

	req := httptest.NewRequest(http.MethodPost, "/comments/create-comment/post-1", jsonBody(t, map[string]string{
		"text": strings.Repeat("a", 1001),
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/comments/delete-comment/:commentId/:postId", authed("user-456", handler.DeleteComment))

	mockUseCase.On("Delete", "comment-1", "post-1", "user-456").Return(entity.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodDelete, "/comments/delete-comment/comment-1/post-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
