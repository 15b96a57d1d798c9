package persistent

import (
	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	ListPublic() ([]*entity.Post, error)
	ListByOwner(ownerID string) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	IncrementViews(id string) error
	IncrementComments(id string, delta int) error
	UpdateLikes(id string, likes []string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListPublic() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("is_public = ?", true).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListByOwner(ownerID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("owner_id = ?", ownerID).Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Save(ToPostModel(post)).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PostModel{}).Error
}

func (r *postRepository) IncrementViews(id string) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("number_views", gorm.Expr("number_views + 1")).Error
}

func (r *postRepository) IncrementComments(id string, delta int) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("number_comments", gorm.Expr("GREATEST(number_comments + ?, 0)", delta)).Error
}

// UpdateLikes writes the likes set and the derived counter in one update so
// the two can never drift apart.
func (r *postRepository) UpdateLikes(id string, likes []string) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"likes":        model.StringSlice(likes),
			"number_likes": len(likes),
		}).Error
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}
