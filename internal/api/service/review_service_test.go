package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/models"
)

func newReviewServiceUnderTest() (ReviewService, *MockReviewRepository, *MockCommentRepository, *MockUserRepository, *MockMovieRepository) {
	reviewRepo := new(MockReviewRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	movieRepo := new(MockMovieRepository)
	svc := NewReviewService(reviewRepo, commentRepo, userRepo, movieRepo)
	return svc, reviewRepo, commentRepo, userRepo, movieRepo
}

func TestListByMovie_NewestFirst(t *testing.T) {
	svc, reviewRepo, commentRepo, userRepo, _ := newReviewServiceUnderTest()

	older := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	reviewRepo.On("GetByMovie", int64(1)).Return([]models.Review{
		{ID: 10, UserID: 2, MovieID: 1, Content: "first", Rating: 4, CreatedAt: older},
		{ID: 11, UserID: 3, MovieID: 1, Content: "second", Rating: 5, CreatedAt: newer},
	}, nil)
	commentRepo.On("CountByReview", mock.Anything).Return(int64(0), nil)
	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)
	userRepo.On("FindByID", int64(3)).Return(&models.User{ID: 3, Username: "bob"}, nil)

	views, err := svc.ListByMovie(context.Background(), "1", 0)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "11", views[0].ID)
	assert.Equal(t, "10", views[1].ID)
}

func TestListByMovie_FailedOwnerFetchDegrades(t *testing.T) {
	svc, reviewRepo, commentRepo, userRepo, _ := newReviewServiceUnderTest()

	reviewRepo.On("GetByMovie", int64(1)).Return([]models.Review{
		{ID: 10, UserID: 2, MovieID: 1, Content: "kept", Rating: 4},
		{ID: 11, UserID: 3, MovieID: 1, Content: "enriched", Rating: 5, CreatedAt: time.Now()},
	}, nil)
	commentRepo.On("CountByReview", mock.Anything).Return(int64(0), nil)
	userRepo.On("FindByID", int64(2)).Return(nil, errors.New("user row corrupt"))
	userRepo.On("FindByID", int64(3)).Return(&models.User{ID: 3, Username: "bob"}, nil)

	views, err := svc.ListByMovie(context.Background(), "1", 0)

	// The broken owner degrades one aggregate, never the list
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.NotNil(t, views[0].User)
	assert.Equal(t, "bob", views[0].User.Username)
	assert.Nil(t, views[1].User)
	assert.Equal(t, "kept", views[1].Content)
}

func TestListByMovie_ZeroTimestampSortsOldest(t *testing.T) {
	svc, reviewRepo, commentRepo, userRepo, _ := newReviewServiceUnderTest()

	reviewRepo.On("GetByMovie", int64(1)).Return([]models.Review{
		{ID: 10, UserID: 2, MovieID: 1, Content: "no timestamp", Rating: 3},
		{ID: 11, UserID: 2, MovieID: 1, Content: "dated", Rating: 4, CreatedAt: time.Now()},
	}, nil)
	commentRepo.On("CountByReview", mock.Anything).Return(int64(0), nil)
	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)

	views, err := svc.ListByMovie(context.Background(), "1", 0)

	assert.NoError(t, err)
	assert.Equal(t, "11", views[0].ID)
	assert.Equal(t, "10", views[1].ID)
}

func TestListByMovie_InvalidID(t *testing.T) {
	svc, _, _, _, _ := newReviewServiceUnderTest()

	_, err := svc.ListByMovie(context.Background(), "abc", 0)

	assert.Error(t, err)
}

func TestCreateReview_UnknownMovie(t *testing.T) {
	svc, _, _, _, movieRepo := newReviewServiceUnderTest()

	movieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateReview(context.Background(), 1, &dto.CreateReviewDTO{
		MovieID: "99",
		Content: "great",
		Rating:  5,
	})

	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCreateReview_Success(t *testing.T) {
	svc, reviewRepo, commentRepo, userRepo, movieRepo := newReviewServiceUnderTest()

	movieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1, Title: "Inception"}, nil)
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Return(nil)
	commentRepo.On("CountByReview", mock.Anything).Return(int64(0), nil)
	userRepo.On("FindByID", int64(7)).Return(&models.User{ID: 7, Username: "carol"}, nil)

	view, err := svc.CreateReview(context.Background(), 7, &dto.CreateReviewDTO{
		MovieID: "1",
		Content: "mind-bending",
		Rating:  5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "7", view.UserID)
	assert.Equal(t, "mind-bending", view.Content)
	assert.Equal(t, "carol", view.User.Username)
	reviewRepo.AssertExpectations(t)
}

func TestUpdateReview_OwnershipEnforced(t *testing.T) {
	svc, reviewRepo, _, _, _ := newReviewServiceUnderTest()

	reviewRepo.On("GetByID", int64(10)).Return(&models.Review{ID: 10, UserID: 2}, nil)

	content := "edited"
	_, err := svc.UpdateReview(context.Background(), "10", 99, &dto.UpdateReviewDTO{Content: &content})

	assert.ErrorIs(t, err, ErrNotReviewOwner)
	reviewRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestToggleLike_ViewerMembershipReflected(t *testing.T) {
	svc, reviewRepo, commentRepo, userRepo, _ := newReviewServiceUnderTest()

	reviewRepo.On("ToggleLike", int64(10), int64(5)).Return(&models.Review{
		ID:     10,
		UserID: 2,
		Likes: []models.ReviewLike{
			{ReviewID: 10, UserID: 4},
			{ReviewID: 10, UserID: 5},
		},
	}, nil)
	commentRepo.On("CountByReview", int64(10)).Return(int64(3), nil)
	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)

	view, err := svc.ToggleLike(context.Background(), "10", 5)

	assert.NoError(t, err)
	assert.True(t, view.IsLiked)
	assert.Equal(t, 2, view.LikeCount)
	assert.ElementsMatch(t, []string{"4", "5"}, view.Likes)
	assert.Equal(t, 3, view.CommentCount)
}

func TestToggleLike_UnknownReview(t *testing.T) {
	svc, reviewRepo, _, _, _ := newReviewServiceUnderTest()

	reviewRepo.On("ToggleLike", int64(10), int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ToggleLike(context.Background(), "10", 5)

	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestComments_FailedOwnerFetchDegrades(t *testing.T) {
	svc, _, commentRepo, userRepo, _ := newReviewServiceUnderTest()

	reviewID := int64(10)
	commentRepo.On("GetByReview", reviewID).Return([]models.Comment{
		{ID: 1, ReviewID: &reviewID, UserID: 2, Content: "nice"},
		{ID: 2, ReviewID: &reviewID, UserID: 3, Content: "agreed"},
	}, nil)
	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)
	userRepo.On("FindByID", int64(3)).Return(nil, errors.New("gone"))

	views, err := svc.Comments(context.Background(), "10")

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].User.Username)
	assert.Nil(t, views[1].User)
}

func TestAddComment_UnknownReview(t *testing.T) {
	svc, reviewRepo, _, _, _ := newReviewServiceUnderTest()

	reviewRepo.On("GetByID", int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddComment(context.Background(), "10", 5, "hello")

	assert.ErrorIs(t, err, ErrReviewNotFound)
}
