package persistent

import (
	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Password:    m.Password,
		DateBirth:   m.DateBirth,
		Gender:      entity.Gender(m.Gender),
		Description: m.Description,
		Profession:  m.Profession,
		PhoneNumber: m.PhoneNumber,
		Location: entity.Location{
			Country: m.Location.Country,
			Region:  m.Location.Region,
			City:    m.Location.City,
		},
		SocialNetworks: entity.SocialNetworks{
			Facebook:  m.SocialNetworks.Facebook,
			Twitter:   m.SocialNetworks.Twitter,
			Instagram: m.SocialNetworks.Instagram,
			LinkedIn:  m.SocialNetworks.LinkedIn,
			YouTube:   m.SocialNetworks.YouTube,
		},
		Hobby:           m.Hobby,
		AvatarURL:       m.AvatarURL,
		PosterURL:       m.PosterURL,
		ActivationToken: m.ActivationToken,
		IsActivated:     m.IsActivated,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Password:    e.Password,
		DateBirth:   e.DateBirth,
		Gender:      string(e.Gender),
		Description: e.Description,
		Profession:  e.Profession,
		PhoneNumber: e.PhoneNumber,
		Location: model.Location{
			Country: e.Location.Country,
			Region:  e.Location.Region,
			City:    e.Location.City,
		},
		SocialNetworks: model.SocialNetworks{
			Facebook:  e.SocialNetworks.Facebook,
			Twitter:   e.SocialNetworks.Twitter,
			Instagram: e.SocialNetworks.Instagram,
			LinkedIn:  e.SocialNetworks.LinkedIn,
			YouTube:   e.SocialNetworks.YouTube,
		},
		Hobby:           e.Hobby,
		AvatarURL:       e.AvatarURL,
		PosterURL:       e.PosterURL,
		ActivationToken: e.ActivationToken,
		IsActivated:     e.IsActivated,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:       m.ID,
		OwnerID:  m.OwnerID,
		Title:    m.Title,
		Body:     toBlockEntities(m.Body),
		Category: m.Category,
		Tags:     m.Tags,
		Statistics: entity.Statistics{
			NumberViews:    m.NumberViews,
			NumberLikes:    m.NumberLikes,
			NumberComments: m.NumberComments,
			ReadingTime:    m.ReadingTime,
		},
		PosterURL: m.PosterURL,
		ImagesURL: m.ImagesURL,
		VideosURL: m.VideosURL,
		IsPublic:  m.IsPublic,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		Title:          e.Title,
		Body:           toBlockModels(e.Body),
		Category:       e.Category,
		Tags:           e.Tags,
		NumberViews:    e.Statistics.NumberViews,
		NumberLikes:    e.Statistics.NumberLikes,
		NumberComments: e.Statistics.NumberComments,
		ReadingTime:    e.Statistics.ReadingTime,
		PosterURL:      e.PosterURL,
		ImagesURL:      e.ImagesURL,
		VideosURL:      e.VideosURL,
		IsPublic:       e.IsPublic,
		Likes:          e.Likes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		AuthorID:    m.AuthorID,
		Text:        m.Text,
		Likes:       m.Likes,
		NumberLikes: m.NumberLikes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:          e.ID,
		PostID:      e.PostID,
		AuthorID:    e.AuthorID,
		Text:        e.Text,
		Likes:       e.Likes,
		NumberLikes: e.NumberLikes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToSessionEntity(m *model.SessionModel) *entity.Session {
	if m == nil {
		return nil
	}

	return &entity.Session{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBlockEntities(blocks model.BlockSlice) []entity.Block {
	out := make([]entity.Block, len(blocks))
	for i, b := range blocks {
		out[i] = entity.Block{
			ID:         b.ID,
			Type:       entity.BlockType(b.Type),
			Content:    b.Content,
			FontSize:   b.FontSize,
			Bold:       b.Bold,
			Italic:     b.Italic,
			URL:        b.URL,
			Color:      b.Color,
			Background: b.Background,
			Size:       b.Size,
			LineType:   b.LineType,
			ListType:   b.ListType,
			ListItems:  b.ListItems,
			VideoSize:  b.VideoSize,
		}
	}
	return out
}

func toBlockModels(blocks []entity.Block) model.BlockSlice {
	out := make(model.BlockSlice, len(blocks))
	for i, b := range blocks {
		out[i] = model.Block{
			ID:         b.ID,
			Type:       string(b.Type),
			Content:    b.Content,
			FontSize:   b.FontSize,
			Bold:       b.Bold,
			Italic:     b.Italic,
			URL:        b.URL,
			Color:      b.Color,
			Background: b.Background,
			Size:       b.Size,
			LineType:   b.LineType,
			ListType:   b.ListType,
			ListItems:  b.ListItems,
			VideoSize:  b.VideoSize,
		}
	}
	return out
}
