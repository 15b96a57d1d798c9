package persistent

import (
	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByPost(postID string) ([]*entity.Comment, error)
	ListByAuthor(authorID string) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
	DeleteByPost(postID string) error
	UpdateLikes(id string, likes []string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByPost(postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}
	return toCommentEntities(commentModels), nil
}

func (r *commentRepository) ListByAuthor(authorID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Where("author_id = ?", authorID).Find(&commentModels).Error; err != nil {
		return nil, err
	}
	return toCommentEntities(commentModels), nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Save(ToCommentModel(comment)).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.CommentModel{}).Error
}

func (r *commentRepository) DeleteByPost(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.CommentModel{}).Error
}

func (r *commentRepository) UpdateLikes(id string, likes []string) error {
	return r.db.Model(&model.CommentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"likes":        model.StringSlice(likes),
			"number_likes": len(likes),
		}).Error
}

func toCommentEntities(commentModels []model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments
}
