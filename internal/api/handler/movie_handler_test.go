package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/handler"
)

// --- MOCK SERVICE ---

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetAll(ctx context.Context) ([]dto.MovieSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieSummary), args.Error(1)
}

func (m *MockMovieService) Resolve(ctx context.Context, rawID string) dto.MovieResolution {
	args := m.Called(ctx, rawID)
	return args.Get(0).(dto.MovieResolution)
}

func (m *MockMovieService) Suggest(ctx context.Context, query string) ([]dto.MovieSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieSummary), args.Error(1)
}

func (m *MockMovieService) SuggestExternal(ctx context.Context, query string) ([]dto.MovieDetails, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieDetails), args.Error(1)
}

func (m *MockMovieService) ToggleLike(ctx context.Context, rawMovieID string, userID int64) (*dto.MovieLikeResponse, error) {
	args := m.Called(ctx, rawMovieID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieLikeResponse), args.Error(1)
}

// --- SETUP ---

func setupMovieRouter(mockService *MockMovieService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMovieHandler(mockService)

	public := r.Group("/api/movies")
	protected := r.Group("/api/movies")
	protected.Use(func(c *gin.Context) {
		c.Set("userID", int64(5))
	})
	h.RegisterRoutes(public, protected)
	return r
}

func TestResolveHandler_AlwaysOKWithSourceTag(t *testing.T) {
	mockService := new(MockMovieService)
	router := setupMovieRouter(mockService)

	mockService.On("Resolve", mock.Anything, "999").Return(dto.NotFoundMovie("999"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/movies/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resolution dto.MovieResolution
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolution))
	assert.Equal(t, dto.SourceNotFound, resolution.Source)
	assert.Equal(t, "Movie Details Not Available", resolution.Movie.PrimaryTitle)
	mockService.AssertExpectations(t)
}

func TestSuggestHandler_PassesQuery(t *testing.T) {
	mockService := new(MockMovieService)
	router := setupMovieRouter(mockService)

	mockService.On("Suggest", mock.Anything, "dark").Return([]dto.MovieSummary{
		{ID: "1", Title: "The Dark Knight", Year: "2008"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/movies/search?query=dark", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var suggestions []dto.MovieSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestions))
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "The Dark Knight", suggestions[0].Title)
}

func TestSuggestHandler_EmptyQueryIsEmptyList(t *testing.T) {
	mockService := new(MockMovieService)
	router := setupMovieRouter(mockService)

	mockService.On("Suggest", mock.Anything, "").Return([]dto.MovieSummary{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/movies/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestToggleMovieLikeHandler_Authenticated(t *testing.T) {
	mockService := new(MockMovieService)
	router := setupMovieRouter(mockService)

	mockService.On("ToggleLike", mock.Anything, "1", int64(5)).Return(&dto.MovieLikeResponse{
		MovieID: "1",
		Liked:   true,
		Likes:   7,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/movies/1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MovieLikeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(7), resp.Likes)
}
