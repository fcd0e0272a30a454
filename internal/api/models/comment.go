package models

import "time"

// Comment belongs to either a review or a post, never both.
type Comment struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ReviewID *int64 `json:"review_id,omitempty" gorm:"index"`
	PostID   *int64 `json:"post_id,omitempty" gorm:"index"`
	UserID   int64  `json:"user_id" gorm:"not null;index"`
	Content  string `json:"content" gorm:"not null;type:text"`
	Likes    int    `json:"likes" gorm:"not null;default:0;check:likes >= 0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
