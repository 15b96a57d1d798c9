package http

import (
	"net/http"

	"fisher-blog-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required,min=30,max=1000"`
}

// GetAllComments godoc
// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId path string true "Post ID"
// @Success      200  {array}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /comments/all-comments/{postId} [get]
func (h *CommentHandler) GetAllComments(c *gin.Context) {
	comments, err := h.commentUseCase.GetAll(c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Create a comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/create-comment/{postId} [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.Create(c.Param("postId"), c.GetString("user_id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body CommentRequest true "New text"
// @Success      200  {object}  entity.Comment
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/update-comment/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.Update(c.Param("commentId"), c.GetString("user_id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// LikeComment godoc
// @Summary      Toggle a like on a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments/like-comment/{commentId} [get]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	comment, liked, err := h.commentUseCase.Like(c.Param("commentId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "comment": comment})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Author-only; decrements the post's comment counter
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/delete-comment/{commentId}/{postId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Param("commentId"), c.Param("postId"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
