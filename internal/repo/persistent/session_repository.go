package persistent

import (
	"errors"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Upsert(ownerID, accessToken, refreshToken string) error
	GetByOwner(ownerID string) (*entity.Session, error)
	DeleteByOwner(ownerID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert keeps the single-record-per-owner invariant: an existing record
// gets both token strings overwritten in place, otherwise one is created.
func (r *sessionRepository) Upsert(ownerID, accessToken, refreshToken string) error {
	var sessionModel model.SessionModel
	err := r.db.Where("owner_id = ?", ownerID).First(&sessionModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&model.SessionModel{
			ID:           uuid.New().String(),
			OwnerID:      ownerID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}).Error
	}
	if err != nil {
		return err
	}

	return r.db.Model(&sessionModel).Updates(map[string]interface{}{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}).Error
}

func (r *sessionRepository) GetByOwner(ownerID string) (*entity.Session, error) {
	var sessionModel model.SessionModel
	if err := r.db.Where("owner_id = ?", ownerID).First(&sessionModel).Error; err != nil {
		return nil, err
	}
	return ToSessionEntity(&sessionModel), nil
}

func (r *sessionRepository) DeleteByOwner(ownerID string) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&model.SessionModel{}).Error
}
