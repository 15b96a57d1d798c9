package usecase

import (
	"strings"
	"testing"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/pkg/logger"

	"github.com/stretchr/testify/assert"
)

const testCommentText = "What a catch, I have never seen a pike that big before!"

func newTestCommentUseCase() (CommentUseCase, PostUseCase, *fakePostRepo, *fakeCommentRepo) {
	postRepo := newFakePostRepo()
	commentRepo := newFakeCommentRepo()
	posts := NewPostUseCase(postRepo, commentRepo, &fakeFileStore{}, "https://cdn.example.com/default/poster.png", logger.New())
	comments := NewCommentUseCase(commentRepo, postRepo, logger.New())
	return comments, posts, postRepo, commentRepo
}

func TestCreateComment_IncrementsCounter(t *testing.T) {
	comments, posts, postRepo, _ := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")

	comment, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)

	stored, err := postRepo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.Statistics.NumberComments)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	comments, _, _, _ := newTestCommentUseCase()

	_, err := comments.Create("missing-post", "user-2", testCommentText)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	comments, posts, _, _ := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")

	comment, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)

	newText := strings.Repeat("better text ", 5)
	updated, err := comments.Update(comment.ID, "user-2", newText)
	assert.NoError(t, err)
	assert.Equal(t, newText, updated.Text)

	_, err = comments.Update(comment.ID, "user-3", newText)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLikeComment_Toggle(t *testing.T) {
	comments, posts, _, _ := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")

	comment, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)

	liked, isLiked, err := comments.Like(comment.ID, "user-3")
	assert.NoError(t, err)
	assert.True(t, isLiked)
	assert.Equal(t, 1, liked.NumberLikes)

	unliked, isLiked, err := comments.Like(comment.ID, "user-3")
	assert.NoError(t, err)
	assert.False(t, isLiked)
	assert.Equal(t, 0, unliked.NumberLikes)
}

func TestDeleteComment_DecrementsCounter(t *testing.T) {
	comments, posts, postRepo, commentRepo := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")

	comment, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)

	assert.NoError(t, comments.Delete(comment.ID, post.ID, "user-2"))

	_, err = commentRepo.GetByID(comment.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	stored, err := postRepo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, stored.Statistics.NumberComments)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	comments, posts, _, _ := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")

	comment, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)

	assert.ErrorIs(t, comments.Delete(comment.ID, post.ID, "user-1"), entity.ErrUnauthorized)
}

func TestGetAllComments(t *testing.T) {
	comments, posts, _, _ := newTestCommentUseCase()
	post := createTestPost(t, posts, "user-1")
	other := createTestPost(t, posts, "user-1")

	_, err := comments.Create(post.ID, "user-2", testCommentText)
	assert.NoError(t, err)
	_, err = comments.Create(other.ID, "user-2", testCommentText)
	assert.NoError(t, err)

	list, err := comments.GetAll(post.ID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
