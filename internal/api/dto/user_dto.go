package dto

import (
	"strconv"
	"time"

	"reelcritic/internal/api/models"
)

// UserResponse is the full profile shape. IsFollowing is always relative to
// the viewing user, derived from the follows table rather than stored.
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	ProfilePicture    string    `json:"profile_picture"`
	Bio               string    `json:"bio"`
	Followers         int       `json:"followers"`
	Following         int       `json:"following"`
	IsFollowing       bool      `json:"is_following"`
	MemberSince       string    `json:"member_since"`
	FavoriteGenres    []string  `json:"favorite_genres"`
	FavoriteDirectors []string  `json:"favorite_directors"`
	FavoriteMovieIDs  []string  `json:"favorite_movie_ids"`
	Points            int       `json:"points"`
	ReviewCount       int       `json:"review_count"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"created_at"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO.
func FromModelToUserResponse(user *models.User, isFollowing bool) *UserResponse {
	return &UserResponse{
		ID:                strconv.FormatInt(user.ID, 10),
		Username:          user.Username,
		Email:             user.Email,
		ProfilePicture:    user.ProfilePicture,
		Bio:               user.Bio,
		Followers:         user.Followers,
		Following:         user.Following,
		IsFollowing:       isFollowing,
		MemberSince:       user.MemberSince,
		FavoriteGenres:    user.FavoriteGenres,
		FavoriteDirectors: user.FavoriteDirectors,
		FavoriteMovieIDs:  user.FavoriteMovieIDs,
		Points:            user.Points,
		ReviewCount:       user.ReviewCount,
		Role:              user.Role,
		CreatedAt:         user.CreatedAt,
	}
}

// UserSummary is the slim shape merged into reviews, comments and posts.
type UserSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// FromModelToUserSummary converts a User model to UserSummary DTO.
func FromModelToUserSummary(user *models.User) *UserSummary {
	return &UserSummary{
		ID:             strconv.FormatInt(user.ID, 10),
		Name:           user.Username,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
	}
}

// UpdateUserDTO is a partial profile patch; nil fields are left untouched.
type UpdateUserDTO struct {
	Username          *string   `json:"username" binding:"omitempty,min=3,max=30"`
	ProfilePicture    *string   `json:"profile_picture"`
	Bio               *string   `json:"bio" binding:"omitempty,max=500"`
	FavoriteGenres    *[]string `json:"favorite_genres"`
	FavoriteDirectors *[]string `json:"favorite_directors"`
	FavoriteMovieIDs  *[]string `json:"favorite_movie_ids"`
}

// FollowResponse returns both sides of a follow toggle so clients can update
// the target profile and the actor's own counts from one payload.
type FollowResponse struct {
	Following bool         `json:"following"`
	Target    UserResponse `json:"target"`
	Actor     UserResponse `json:"actor"`
}

// CriticResponse is a ranked leaderboard entry with the full profile merged in.
type CriticResponse struct {
	UserResponse
	Points int `json:"points"`
	Rank   int `json:"rank"`
}
