package models

import "time"

// Post lifecycle states. Posts created through the API are persisted before
// the response is written, so clients only ever see confirmed entries; the
// pending and failed states exist for asynchronously imported feed content.
const (
	PostStatusPending   = "pending"
	PostStatusConfirmed = "confirmed"
	PostStatusFailed    = "failed"
)

type Post struct {
	ID      int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  int64    `json:"user_id" gorm:"not null;index"`
	Content string   `json:"content" gorm:"not null;type:text"`
	Images  []string `json:"images" gorm:"serializer:json"`
	MovieID *int64   `json:"movie_id,omitempty" gorm:"index"` // optional embedded movie card
	Shares  int      `json:"shares" gorm:"not null;default:0"`
	Status  string   `json:"status" gorm:"default:'confirmed';not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User  User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie     `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Likes []PostLike `json:"likes,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}

func (Post) TableName() string {
	return "posts"
}

type PostLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID    int64     `json:"post_id" gorm:"not null;uniqueIndex:idx_post_liker"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_post_liker"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type Story struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64  `json:"user_id" gorm:"not null;index"`
	MediaURL  string `json:"media_url" gorm:"not null"`
	MediaType string `json:"media_type" gorm:"not null"` // "image" or "video"

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Story) TableName() string {
	return "stories"
}
