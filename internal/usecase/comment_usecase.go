package usecase

import (
	"fmt"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/pkg/logger"
)

type CommentUseCase interface {
	GetAll(postID string) ([]*entity.Comment, error)
	Create(postID, authorID, text string) (*entity.Comment, error)
	Update(commentID, requesterID, text string) (*entity.Comment, error)
	Like(commentID, userID string) (*entity.Comment, bool, error)
	Delete(commentID, postID, requesterID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) GetAll(postID string) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}
	return uc.commentRepo.ListByPost(postID)
}

func (uc *commentUseCase) Create(postID, authorID, text string) (*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post with current ID not found: %w", entity.ErrNotFound)
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment")
	}

	if err := uc.postRepo.IncrementComments(postID, 1); err != nil {
		uc.logger.Error("Failed to increment comment counter for post %s: %v", postID, err)
	}

	return comment, nil
}

func (uc *commentUseCase) Update(commentID, requesterID, text string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, fmt.Errorf("comment with current ID not found: %w", entity.ErrNotFound)
	}
	if comment.AuthorID != requesterID {
		return nil, fmt.Errorf("only the author can modify the comment: %w", entity.ErrUnauthorized)
	}

	comment.Text = text
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, fmt.Errorf("failed to update comment")
	}
	return comment, nil
}

func (uc *commentUseCase) Like(commentID, userID string) (*entity.Comment, bool, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, false, fmt.Errorf("comment with current ID not found: %w", entity.ErrNotFound)
	}

	liked := false
	if comment.HasLike(userID) {
		likes := make([]string, 0, len(comment.Likes)-1)
		for _, id := range comment.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		comment.Likes = likes
	} else {
		comment.Likes = append(comment.Likes, userID)
		liked = true
	}
	comment.NumberLikes = len(comment.Likes)

	if err := uc.commentRepo.UpdateLikes(commentID, comment.Likes); err != nil {
		uc.logger.Error("Failed to update likes for comment %s: %v", commentID, err)
		return nil, false, fmt.Errorf("failed to update likes")
	}
	return comment, liked, nil
}

// Delete removes the comment and decrements the owning post's comment
// counter, keeping the two consistent on every deletion path.
func (uc *commentUseCase) Delete(commentID, postID, requesterID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return fmt.Errorf("comment with current ID not found: %w", entity.ErrNotFound)
	}
	if comment.AuthorID != requesterID {
		return fmt.Errorf("only the author can delete the comment: %w", entity.ErrUnauthorized)
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return fmt.Errorf("failed to delete comment")
	}

	if err := uc.postRepo.IncrementComments(postID, -1); err != nil {
		uc.logger.Error("Failed to decrement comment counter for post %s: %v", postID, err)
	}
	return nil
}
