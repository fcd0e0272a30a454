package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/models"
)

func newFeedServiceUnderTest() (FeedService, *MockPostRepository, *MockStoryRepository, *MockMovieRepository, *MockCommentRepository, *MockUserRepository) {
	postRepo := new(MockPostRepository)
	storyRepo := new(MockStoryRepository)
	movieRepo := new(MockMovieRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	svc := NewFeedService(postRepo, storyRepo, movieRepo, commentRepo, userRepo, nil)
	return svc, postRepo, storyRepo, movieRepo, commentRepo, userRepo
}

func TestHome_AssemblesStoriesAndPosts(t *testing.T) {
	svc, postRepo, storyRepo, _, commentRepo, _ := newFeedServiceUnderTest()

	storyRepo.On("ListSince", mock.AnythingOfType("time.Time")).Return([]models.Story{
		{ID: 1, UserID: 2, MediaURL: "https://cdn.example/1.jpg", MediaType: "image", User: models.User{ID: 2, Username: "alice"}},
	}, nil)
	postRepo.On("List", 50).Return([]models.Post{
		{ID: 10, UserID: 2, Content: "watched it twice", Status: models.PostStatusConfirmed, User: models.User{ID: 2, Username: "alice"}},
	}, nil)
	commentRepo.On("CountByPost", int64(10)).Return(int64(3), nil)

	feed, err := svc.Home(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, feed.Stories, 1)
	assert.Len(t, feed.Posts, 1)
	assert.False(t, feed.Stories[0].Viewed)
	assert.Equal(t, "alice", feed.Posts[0].User.Username)
	assert.Equal(t, 3, feed.Posts[0].CommentCount)
}

func TestTrending_MapsViewerLikes(t *testing.T) {
	svc, postRepo, _, _, commentRepo, _ := newFeedServiceUnderTest()

	commentRepo.On("CountByPost", int64(10)).Return(int64(0), nil)
	postRepo.On("Trending", 10).Return([]models.Post{
		{
			ID:      10,
			UserID:  2,
			Content: "hot take",
			Status:  models.PostStatusConfirmed,
			User:    models.User{ID: 2, Username: "alice"},
			Likes: []models.PostLike{
				{PostID: 10, UserID: 5},
				{PostID: 10, UserID: 6},
			},
		},
	}, nil)

	posts, err := svc.Trending(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.True(t, posts[0].IsLiked)
	assert.Equal(t, 2, posts[0].LikeCount)
}

func TestCreatePost_ReturnsConfirmedEntry(t *testing.T) {
	svc, postRepo, _, _, commentRepo, _ := newFeedServiceUnderTest()

	commentRepo.On("CountByPost", int64(10)).Return(int64(0), nil)
	postRepo.On("Create", mock.AnythingOfType("*models.Post")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Post).ID = 10
	}).Return(nil)
	postRepo.On("GetByID", int64(10)).Return(&models.Post{
		ID:      10,
		UserID:  5,
		Content: "fresh post",
		Status:  models.PostStatusConfirmed,
		User:    models.User{ID: 5, Username: "bob"},
	}, nil)

	post, err := svc.CreatePost(context.Background(), 5, &dto.CreatePostDTO{Content: "fresh post"})

	assert.NoError(t, err)
	assert.Equal(t, models.PostStatusConfirmed, post.Status)
	assert.Equal(t, "bob", post.User.Username)
	postRepo.AssertExpectations(t)
}

func TestCreatePost_TaggedMovieMustExist(t *testing.T) {
	svc, postRepo, _, movieRepo, _, _ := newFeedServiceUnderTest()

	movieID := "99"
	movieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreatePost(context.Background(), 5, &dto.CreatePostDTO{
		Content: "tagged",
		MovieID: &movieID,
	})

	assert.ErrorIs(t, err, ErrMovieNotFound)
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTogglePostLike_UnknownPost(t *testing.T) {
	svc, postRepo, _, _, _, _ := newFeedServiceUnderTest()

	postRepo.On("ToggleLike", int64(10), int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.TogglePostLike(context.Background(), "10", 5)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestTogglePostLike_MembershipDrivesResponse(t *testing.T) {
	svc, postRepo, _, _, commentRepo, _ := newFeedServiceUnderTest()

	commentRepo.On("CountByPost", int64(10)).Return(int64(0), nil)
	postRepo.On("ToggleLike", int64(10), int64(5)).Return(&models.Post{
		ID:     10,
		UserID: 2,
		Status: models.PostStatusConfirmed,
		User:   models.User{ID: 2, Username: "alice"},
		Likes:  []models.PostLike{{PostID: 10, UserID: 5}},
	}, nil)

	post, err := svc.TogglePostLike(context.Background(), "10", 5)

	assert.NoError(t, err)
	assert.True(t, post.IsLiked)
	assert.Equal(t, []string{"5"}, post.Likes)
}

func TestCreateStory_ReloadsWithAuthor(t *testing.T) {
	svc, _, storyRepo, _, _, _ := newFeedServiceUnderTest()

	storyRepo.On("Create", mock.AnythingOfType("*models.Story")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Story).ID = 3
	}).Return(nil)
	storyRepo.On("GetByID", int64(3)).Return(&models.Story{
		ID:        3,
		UserID:    5,
		MediaURL:  "https://cdn.example/clip.mp4",
		MediaType: "video",
		User:      models.User{ID: 5, Username: "bob"},
	}, nil)

	story, err := svc.CreateStory(context.Background(), 5, &dto.CreateStoryDTO{
		MediaURL:  "https://cdn.example/clip.mp4",
		MediaType: "video",
	})

	assert.NoError(t, err)
	assert.Equal(t, "bob", story.User.Username)
	assert.False(t, story.Viewed)
}

func TestMarkStoryViewed_UnknownStory(t *testing.T) {
	svc, _, storyRepo, _, _, _ := newFeedServiceUnderTest()

	storyRepo.On("GetByID", int64(3)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.MarkStoryViewed(context.Background(), "3", 5)

	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestPostComments_OwnerFetchDegrades(t *testing.T) {
	svc, _, _, _, commentRepo, userRepo := newFeedServiceUnderTest()

	postID := int64(10)
	commentRepo.On("GetByPost", postID).Return([]models.Comment{
		{ID: 1, PostID: &postID, UserID: 2, Content: "great pick"},
		{ID: 2, PostID: &postID, UserID: 3, Content: "overrated"},
	}, nil)
	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)
	userRepo.On("FindByID", int64(3)).Return(nil, gorm.ErrRecordNotFound)

	comments, err := svc.PostComments(context.Background(), "10")

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "alice", comments[0].User.Username)
	// The broken owner row degrades that one comment, never drops it
	assert.Nil(t, comments[1].User)
}

func TestAddPostComment_UnknownPost(t *testing.T) {
	svc, postRepo, _, _, commentRepo, _ := newFeedServiceUnderTest()

	postRepo.On("GetByID", int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddPostComment(context.Background(), "10", 5, "nice")

	assert.ErrorIs(t, err, ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddPostComment_AttachesOwner(t *testing.T) {
	svc, postRepo, _, _, commentRepo, userRepo := newFeedServiceUnderTest()

	postRepo.On("GetByID", int64(10)).Return(&models.Post{ID: 10, UserID: 2}, nil)
	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Comment).ID = 7
	}).Return(nil)
	userRepo.On("FindByID", int64(5)).Return(&models.User{ID: 5, Username: "bob"}, nil)

	comment, err := svc.AddPostComment(context.Background(), "10", 5, "nice")

	assert.NoError(t, err)
	assert.Equal(t, "7", comment.ID)
	assert.Equal(t, "10", comment.PostID)
	assert.Equal(t, "bob", comment.User.Username)
	commentRepo.AssertExpectations(t)
}
