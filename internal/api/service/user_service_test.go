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

func newUserServiceUnderTest() (UserService, *MockUserRepository, *MockFollowRepository) {
	userRepo := new(MockUserRepository)
	followRepo := new(MockFollowRepository)
	svc := NewUserService(userRepo, followRepo, nil)
	return svc, userRepo, followRepo
}

func TestGetByID_ViewerRelativeFollowState(t *testing.T) {
	svc, userRepo, followRepo := newUserServiceUnderTest()

	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice", Followers: 3}, nil)
	followRepo.On("IsFollowing", int64(5), int64(2)).Return(true, nil)

	profile, err := svc.GetByID(context.Background(), "2", 5)

	assert.NoError(t, err)
	assert.True(t, profile.IsFollowing)
	assert.Equal(t, 3, profile.Followers)
}

func TestGetByID_AnonymousViewerSkipsFollowLookup(t *testing.T) {
	svc, userRepo, followRepo := newUserServiceUnderTest()

	userRepo.On("FindByID", int64(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)

	profile, err := svc.GetByID(context.Background(), "2", 0)

	assert.NoError(t, err)
	assert.False(t, profile.IsFollowing)
	followRepo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, userRepo, _ := newUserServiceUnderTest()

	userRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "404", 0)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _, _ := newUserServiceUnderTest()

	_, err := svc.GetByID(context.Background(), "!!!", 0)

	assert.Error(t, err)
}

func TestToggleFollow_SelfFollowRejected(t *testing.T) {
	svc, _, followRepo := newUserServiceUnderTest()

	_, err := svc.ToggleFollow(context.Background(), 5, "5")

	assert.ErrorIs(t, err, ErrSelfFollow)
	followRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestToggleFollow_Follow(t *testing.T) {
	svc, _, followRepo := newUserServiceUnderTest()

	target := &models.User{ID: 2, Username: "alice", Followers: 4}
	actor := &models.User{ID: 5, Username: "bob", Following: 11}
	followRepo.On("Toggle", int64(5), int64(2)).Return(true, target, actor, nil)

	resp, err := svc.ToggleFollow(context.Background(), 5, "2")

	assert.NoError(t, err)
	assert.True(t, resp.Following)
	assert.Equal(t, 4, resp.Target.Followers)
	assert.True(t, resp.Target.IsFollowing)
	assert.Equal(t, 11, resp.Actor.Following)
}

func TestToggleFollow_Unfollow(t *testing.T) {
	svc, _, followRepo := newUserServiceUnderTest()

	target := &models.User{ID: 2, Username: "alice", Followers: 3}
	actor := &models.User{ID: 5, Username: "bob", Following: 10}
	followRepo.On("Toggle", int64(5), int64(2)).Return(false, target, actor, nil)

	resp, err := svc.ToggleFollow(context.Background(), 5, "2")

	assert.NoError(t, err)
	assert.False(t, resp.Following)
	assert.False(t, resp.Target.IsFollowing)
}

func TestToggleFollow_UnknownTarget(t *testing.T) {
	svc, _, followRepo := newUserServiceUnderTest()

	followRepo.On("Toggle", int64(5), int64(404)).Return(false, nil, nil, gorm.ErrRecordNotFound)

	_, err := svc.ToggleFollow(context.Background(), 5, "404")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_OnlyOwnerMayPatch(t *testing.T) {
	svc, userRepo, _ := newUserServiceUnderTest()

	bio := "new bio"
	_, err := svc.UpdateProfile(context.Background(), "2", 5, &dto.UpdateUserDTO{Bio: &bio})

	assert.ErrorIs(t, err, ErrNotProfileOwner)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestGetAll_FollowStateBestEffort(t *testing.T) {
	svc, userRepo, followRepo := newUserServiceUnderTest()

	userRepo.On("GetAll").Return([]models.User{
		{ID: 2, Username: "alice"},
		{ID: 5, Username: "bob"},
	}, nil)
	followRepo.On("IsFollowing", int64(5), int64(2)).Return(true, nil)

	users, err := svc.GetAll(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.True(t, users[0].IsFollowing)
	// The viewer's own row never reports IsFollowing
	assert.False(t, users[1].IsFollowing)
}
