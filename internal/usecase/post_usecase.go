package usecase

import (
	"fmt"
	"io"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/readingtime"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/pkg/logger"

	"github.com/google/uuid"
)

func newAssetID() string {
	return uuid.New().String()
}

// FileStore is the asset host. Implementations must refuse to delete
// platform default assets.
type FileStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(fileURL string) error
	DeleteFolder(prefix string) error
}

type CreatePostInput struct {
	Title    string
	Body     []entity.Block
	Category []string
	Tags     []string
}

type UpdatePostInput struct {
	Title    *string
	Body     []entity.Block
	Category []string
	Tags     []string
}

type PostUseCase interface {
	GetAll() ([]*entity.Post, error)
	GetOne(postID string) (*entity.Post, error)
	Create(ownerID string, input CreatePostInput) (*entity.Post, error)
	Update(postID, requesterID string, input UpdatePostInput) (*entity.Post, error)
	UploadPoster(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error)
	UploadImage(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error)
	UploadVideo(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error)
	TogglePublic(postID, requesterID string) (*entity.Post, error)
	View(postID string) error
	Like(postID, userID string) (*entity.Post, bool, error)
	Delete(postID, requesterID string) error
}

type postUseCase struct {
	postRepo         persistent.PostRepository
	commentRepo      persistent.CommentRepository
	files            FileStore
	defaultPosterURL string
	logger           *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	files FileStore,
	defaultPosterURL string,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		files:            files,
		defaultPosterURL: defaultPosterURL,
		logger:           logger,
	}
}

func (uc *postUseCase) GetAll() ([]*entity.Post, error) {
	return uc.postRepo.ListPublic()
}

func (uc *postUseCase) GetOne(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil || !post.IsPublic {
		return nil, fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}
	return post, nil
}

func (uc *postUseCase) Create(ownerID string, input CreatePostInput) (*entity.Post, error) {
	if err := entity.ValidateBody(input.Body); err != nil {
		return nil, err
	}
	if err := entity.ValidateCategories(input.Category); err != nil {
		return nil, err
	}
	if err := entity.ValidateTags(input.Tags); err != nil {
		return nil, err
	}

	post := &entity.Post{
		OwnerID:  ownerID,
		Title:    input.Title,
		Body:     input.Body,
		Category: input.Category,
		Tags:     input.Tags,
		Statistics: entity.Statistics{
			ReadingTime: readingtime.Estimate(input.Body),
		},
		PosterURL: uc.defaultPosterURL,
		IsPublic:  true,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}
	return post, nil
}

func (uc *postUseCase) Update(postID, requesterID string, input UpdatePostInput) (*entity.Post, error) {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		if err := entity.ValidateBody(input.Body); err != nil {
			return nil, err
		}
		post.Body = input.Body
		post.Statistics.ReadingTime = readingtime.Estimate(input.Body)
	}
	if input.Category != nil {
		if err := entity.ValidateCategories(input.Category); err != nil {
			return nil, err
		}
		post.Category = input.Category
	}
	if input.Tags != nil {
		if err := entity.ValidateTags(input.Tags); err != nil {
			return nil, err
		}
		post.Tags = input.Tags
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post: %v", err)
		return nil, fmt.Errorf("failed to update post")
	}
	return post, nil
}

func (uc *postUseCase) UploadPoster(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := uc.files.DeleteFile(post.PosterURL); err != nil {
		uc.logger.Warn("Failed to delete old poster for post %s: %v", postID, err)
	}

	url, err := uc.uploadAsset("posts/posters", postID, file, ext, contentType)
	if err != nil {
		return nil, err
	}

	post.PosterURL = url
	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post")
	}
	return post, nil
}

func (uc *postUseCase) UploadImage(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploadAsset("posts/images", postID, file, ext, contentType)
	if err != nil {
		return nil, err
	}

	post.ImagesURL = append(post.ImagesURL, url)
	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post")
	}
	return post, nil
}

func (uc *postUseCase) UploadVideo(postID, requesterID string, file io.Reader, ext, contentType string) (*entity.Post, error) {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploadAsset("posts/videos", postID, file, ext, contentType)
	if err != nil {
		return nil, err
	}

	post.VideosURL = append(post.VideosURL, url)
	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post")
	}
	return post, nil
}

func (uc *postUseCase) TogglePublic(postID, requesterID string) (*entity.Post, error) {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	post.IsPublic = !post.IsPublic
	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post")
	}
	return post, nil
}

func (uc *postUseCase) View(postID string) error {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}
	return uc.postRepo.IncrementViews(postID)
}

// Like toggles the requesting user's membership in the likes set. The
// stored counter is derived from the set in the same write. The gap between
// reading the current state and applying the toggle is a known race.
func (uc *postUseCase) Like(postID, userID string) (*entity.Post, bool, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, false, fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}

	liked := false
	if post.HasLike(userID) {
		likes := make([]string, 0, len(post.Likes)-1)
		for _, id := range post.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, userID)
		liked = true
	}
	post.Statistics.NumberLikes = len(post.Likes)

	if err := uc.postRepo.UpdateLikes(postID, post.Likes); err != nil {
		uc.logger.Error("Failed to update likes for post %s: %v", postID, err)
		return nil, false, fmt.Errorf("failed to update likes")
	}
	return post, liked, nil
}

// Delete removes the post, its comments and its uploaded assets. Steps are
// independent and idempotent; there is no transaction around the sequence.
func (uc *postUseCase) Delete(postID, requesterID string) error {
	post, err := uc.ownedPost(postID, requesterID)
	if err != nil {
		return err
	}

	if err := uc.commentRepo.DeleteByPost(postID); err != nil {
		uc.logger.Error("Failed to delete comments of post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post comments")
	}

	if err := uc.files.DeleteFile(post.PosterURL); err != nil {
		uc.logger.Warn("Failed to delete poster of post %s: %v", postID, err)
	}
	for _, folder := range []string{"posts/posters/", "posts/images/", "posts/videos/"} {
		if err := uc.files.DeleteFolder(folder + postID); err != nil {
			uc.logger.Warn("Failed to delete folder %s%s: %v", folder, postID, err)
		}
	}

	return uc.postRepo.Delete(postID)
}

func (uc *postUseCase) ownedPost(postID, requesterID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}
	if post.OwnerID != requesterID {
		return nil, fmt.Errorf("only the owner can modify the post: %w", entity.ErrUnauthorized)
	}
	return post, nil
}

func (uc *postUseCase) uploadAsset(prefix, postID string, file io.Reader, ext, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s%s", prefix, postID, newAssetID(), ext)
	url, err := uc.files.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload asset %s: %v", key, err)
		return "", fmt.Errorf("failed to upload file")
	}
	return url, nil
}
