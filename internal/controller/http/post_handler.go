package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
}

func NewPostHandler(postUseCase usecase.PostUseCase) *PostHandler {
	return &PostHandler{postUseCase: postUseCase}
}

type CreatePostRequest struct {
	Title    string         `json:"title" binding:"required,min=30,max=70"`
	Body     []entity.Block `json:"body" binding:"required"`
	Category []string       `json:"category" binding:"required"`
	Tags     []string       `json:"tags"`
}

type UpdatePostRequest struct {
	Title    *string        `json:"title" binding:"omitempty,min=30,max=70"`
	Body     []entity.Block `json:"body"`
	Category []string       `json:"category"`
	Tags     []string       `json:"tags"`
}

// GetAllPosts godoc
// @Summary      List public posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  entity.Post
// @Router       /posts/all-posts [get]
func (h *PostHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetOnePost godoc
// @Summary      Get one public post
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/one-post/{postId} [get]
func (h *PostHandler) GetOnePost(c *gin.Context) {
	post, err := h.postUseCase.GetOne(c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post from structured body blocks; reading time is computed server-side
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts/create-post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Create(c.GetString("user_id"), usecase.CreatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Owner-only; reading time is recomputed when the body changes
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        request body UpdatePostRequest true "Changed fields"
// @Success      200  {object}  entity.Post
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/update-post/{postId} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Update(c.Param("postId"), c.GetString("user_id"), usecase.UpdatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UploadPoster godoc
// @Summary      Upload the post poster image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        poster formData file true "Poster image"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts/upload-poster/{postId} [post]
func (h *PostHandler) UploadPoster(c *gin.Context) {
	h.uploadPostAsset(c, "poster", validateImage, h.postUseCase.UploadPoster)
}

// UploadImage godoc
// @Summary      Upload a post body image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        image formData file true "Image file"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts/upload-image/{postId} [post]
func (h *PostHandler) UploadImage(c *gin.Context) {
	h.uploadPostAsset(c, "image", validateImage, h.postUseCase.UploadImage)
}

// UploadVideo godoc
// @Summary      Upload a post body video
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        video formData file true "Video file"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts/upload-video/{postId} [post]
func (h *PostHandler) UploadVideo(c *gin.Context) {
	h.uploadPostAsset(c, "video", validateVideo, h.postUseCase.UploadVideo)
}

// UpdatePublic godoc
// @Summary      Toggle post visibility
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/update-public/{postId} [get]
func (h *PostHandler) UpdatePublic(c *gin.Context) {
	post, err := h.postUseCase.TogglePublic(c.Param("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ViewPost godoc
// @Summary      Register a post view
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/view-post/{postId} [get]
func (h *PostHandler) ViewPost(c *gin.Context) {
	if err := h.postUseCase.View(c.Param("postId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "View counted"})
}

// LikePost godoc
// @Summary      Toggle a like on a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/like-post/{postId} [get]
func (h *PostHandler) LikePost(c *gin.Context) {
	post, liked, err := h.postUseCase.Like(c.Param("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "post": post})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Owner-only; removes the post's comments and uploaded assets
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/delete-post/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.Delete(c.Param("postId"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

type uploadPostAssetFunc func(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error)

func (h *PostHandler) uploadPostAsset(c *gin.Context, field string, validate func(*multipart.FileHeader) (string, string, error), upload uploadPostAssetFunc) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " file is required"})
		return
	}

	ext, contentType, err := validate(file)
	if err != nil {
		respondError(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	post, err := upload(c.Param("postId"), c.GetString("user_id"), src, ext, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
