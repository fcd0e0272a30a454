package models

import "time"

type Review struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64   `json:"user_id" gorm:"not null;index"`
	MovieID   int64   `json:"movie_id" gorm:"not null;index"`
	Content   string  `json:"content" gorm:"not null;type:text"`
	Rating    int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	MediaURL  *string `json:"media_url,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
	Shares    int     `json:"shares" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations. Likes are rows, never a bare counter: the count and the
	// per-viewer "is liked" check both derive from the same membership list.
	User  User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie Movie        `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Likes []ReviewLike `json:"likes,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:idx_review_liker"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_review_liker"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
