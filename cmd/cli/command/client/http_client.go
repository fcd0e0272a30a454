package client

// HTTP client for the reelcritic CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Request/response structures mirroring the API's JSON shapes.

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
	Bio            string `json:"bio"`
	Followers      int    `json:"followers"`
	Following      int    `json:"following"`
	IsFollowing    bool   `json:"is_following"`
	MemberSince    string `json:"member_since"`
	Points         int    `json:"points"`
	ReviewCount    int    `json:"review_count"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type FollowResponse struct {
	Following bool         `json:"following"`
	Target    UserResponse `json:"target"`
	Actor     UserResponse `json:"actor"`
}

type CriticResponse struct {
	UserResponse
	Points int `json:"points"`
	Rank   int `json:"rank"`
}

type MovieDetails struct {
	ID             string   `json:"id"`
	PrimaryTitle   string   `json:"primaryTitle"`
	AverageRating  float64  `json:"averageRating"`
	ReleaseDate    string   `json:"releaseDate"`
	Description    string   `json:"description"`
	ContentRating  string   `json:"contentRating"`
	Genres         []string `json:"genres"`
	RuntimeMinutes int      `json:"runtimeMinutes"`
}

type MovieResolution struct {
	Movie  MovieDetails `json:"movie"`
	Source string       `json:"source"`
	Cause  string       `json:"cause,omitempty"`
}

type MovieSummary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Year          string  `json:"year"`
	AverageRating float64 `json:"averageRating"`
}

type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type CreateReviewRequest struct {
	MovieID string `json:"movie_id"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type ReviewResponse struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	MovieID      string       `json:"movie_id"`
	Content      string       `json:"content"`
	Rating       int          `json:"rating"`
	LikeCount    int          `json:"like_count"`
	IsLiked      bool         `json:"is_liked"`
	CommentCount int          `json:"comment_count"`
	CreatedAt    time.Time    `json:"created_at"`
	User         *UserSummary `json:"user,omitempty"`
}

type CreatePostRequest struct {
	Content string  `json:"content"`
	MovieID *string `json:"movie_id,omitempty"`
}

type PostResponse struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	LikeCount    int           `json:"like_count"`
	IsLiked      bool          `json:"is_liked"`
	CommentCount int           `json:"comment_count"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	User         *UserSummary  `json:"user,omitempty"`
	Movie        *MovieSummary `json:"movie,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string       `json:"id"`
	ReviewID  string       `json:"review_id,omitempty"`
	PostID    string       `json:"post_id,omitempty"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user,omitempty"`
}

type StoryResponse struct {
	ID        string       `json:"id"`
	MediaURL  string       `json:"media_url"`
	MediaType string       `json:"media_type"`
	Viewed    bool         `json:"viewed"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user,omitempty"`
}

type FeedResponse struct {
	Stories []StoryResponse `json:"stories"`
	Posts   []PostResponse  `json:"posts"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends a JSON request and decodes the response into out (when non-nil).
func (c *HTTPClient) do(method, path string, body any, wantStatus int, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Auth

func (c *HTTPClient) Register(request *RegisterRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do("POST", "/api/auth/register", request, http.StatusCreated, &result); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do("POST", "/api/auth/login", request, http.StatusOK, &result); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) Logout() error {
	return c.do("POST", "/api/auth/logout", nil, http.StatusOK, nil)
}

func (c *HTTPClient) Me() (*UserResponse, error) {
	var result UserResponse
	if err := c.do("GET", "/api/auth/me", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Movies

func (c *HTTPClient) GetAllMovies() ([]MovieSummary, error) {
	var result []MovieSummary
	if err := c.do("GET", "/api/movies", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) ResolveMovie(id string) (*MovieResolution, error) {
	var result MovieResolution
	if err := c.do("GET", "/api/movies/"+url.PathEscape(id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SearchMovies(query string) ([]MovieSummary, error) {
	var result []MovieSummary
	path := "/api/movies/search?query=" + url.QueryEscape(query)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Reviews

func (c *HTTPClient) GetMovieReviews(movieID string) ([]ReviewResponse, error) {
	var result []ReviewResponse
	path := "/api/movies/" + url.PathEscape(movieID) + "/reviews"
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateReview(request *CreateReviewRequest) (*ReviewResponse, error) {
	var result ReviewResponse
	if err := c.do("POST", "/api/reviews", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) LikeReview(reviewID string) (*ReviewResponse, error) {
	var result ReviewResponse
	path := "/api/reviews/" + url.PathEscape(reviewID) + "/like"
	if err := c.do("POST", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Feed

func (c *HTTPClient) GetFeed() (*FeedResponse, error) {
	var result FeedResponse
	if err := c.do("GET", "/api/feed", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetTrending() ([]PostResponse, error) {
	var result []PostResponse
	if err := c.do("GET", "/api/feed/trending", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreatePost(request *CreatePostRequest) (*PostResponse, error) {
	var result PostResponse
	if err := c.do("POST", "/api/posts", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetPostComments(postID string) ([]CommentResponse, error) {
	var result []CommentResponse
	path := "/api/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CommentPost(postID, content string) (*CommentResponse, error) {
	var result CommentResponse
	path := "/api/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do("POST", path, &CreateCommentRequest{Content: content}, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) LikePost(postID string) (*PostResponse, error) {
	var result PostResponse
	path := "/api/posts/" + url.PathEscape(postID) + "/like"
	if err := c.do("POST", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Users

func (c *HTTPClient) GetUsers() ([]UserResponse, error) {
	var result []UserResponse
	if err := c.do("GET", "/api/users", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetUser(id string) (*UserResponse, error) {
	var result UserResponse
	if err := c.do("GET", "/api/users/"+url.PathEscape(id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) FollowUser(id string) (*FollowResponse, error) {
	var result FollowResponse
	path := "/api/users/" + url.PathEscape(id) + "/follow"
	if err := c.do("POST", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Critics

func (c *HTTPClient) GetPopularCritics() ([]CriticResponse, error) {
	var result []CriticResponse
	if err := c.do("GET", "/api/critics/popular", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}
