package dto

// RegisterDTO is the registration form payload.
type RegisterDTO struct {
	Username        string   `json:"username" binding:"required,min=3,max=30"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	ConfirmPassword string   `json:"confirm_password" binding:"required,eqfield=Password"`
	ProfilePicture  string   `json:"profile_picture"`
	Bio             string   `json:"bio" binding:"max=500"`
	FavoriteGenres  []string `json:"favorite_genres"`
}

// LoginDTO is the login form payload.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the access token plus the logged-in user's profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
