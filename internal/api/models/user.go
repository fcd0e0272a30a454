package models

import "time"

type User struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Password       string `json:"-" gorm:"column:password_hash;not null"` // Not shown in JSON
	ProfilePicture string `json:"profile_picture"`
	Bio            string `json:"bio"`

	// Denormalized counters, maintained in the same transaction as the
	// follow edge so they never drift from the follows table.
	Followers int `json:"followers" gorm:"not null;default:0;check:followers >= 0"`
	Following int `json:"following" gorm:"not null;default:0;check:following >= 0"`

	MemberSince       string   `json:"member_since"`
	FavoriteGenres    []string `json:"favorite_genres" gorm:"serializer:json"`
	FavoriteDirectors []string `json:"favorite_directors" gorm:"serializer:json"`
	FavoriteMovieIDs  []string `json:"favorite_movie_ids" gorm:"serializer:json"`
	Points            int      `json:"points" gorm:"not null;default:0"`
	ReviewCount       int      `json:"review_count" gorm:"not null;default:0"`
	Role              string   `json:"role" gorm:"default:'user';not null"` // only 2 roles: "user", "critic" for now

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (User) TableName() string {
	return "users"
}
