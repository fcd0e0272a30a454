package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/repository"
	"reelcritic/internal/cache"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrNotProfileOwner = errors.New("you don't have permission to update this profile")
)

type UserService interface {
	GetAll(ctx context.Context, viewerID int64) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, rawID string, viewerID int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, rawID string, actorID int64, req *dto.UpdateUserDTO) (*dto.UserResponse, error)
	ToggleFollow(ctx context.Context, actorID int64, rawTargetID string) (*dto.FollowResponse, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	sessions   *cache.SessionStore
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, sessions *cache.SessionStore) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
		sessions:   sessions,
	}
}

// GetAll lists users with follow state resolved against the viewer.
func (s *userService) GetAll(ctx context.Context, viewerID int64) ([]dto.UserResponse, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		isFollowing := false
		if viewerID != 0 && viewerID != users[i].ID {
			// Follow state is best-effort for list views
			isFollowing, _ = s.followRepo.IsFollowing(viewerID, users[i].ID)
		}
		responses = append(responses, *dto.FromModelToUserResponse(&users[i], isFollowing))
	}
	return responses, nil
}

// GetByID resolves a profile; IsFollowing is relative to the viewer.
func (s *userService) GetByID(ctx context.Context, rawID string, viewerID int64) (*dto.UserResponse, error) {
	id, err := parseLocalID(rawID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != user.ID {
		isFollowing, err = s.followRepo.IsFollowing(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}
	return dto.FromModelToUserResponse(user, isFollowing), nil
}

// UpdateProfile applies a partial patch over a freshly fetched record so
// unpatched fields are never clobbered. Only the owner may update.
func (s *userService) UpdateProfile(ctx context.Context, rawID string, actorID int64, req *dto.UpdateUserDTO) (*dto.UserResponse, error) {
	id, err := parseLocalID(rawID)
	if err != nil {
		return nil, err
	}
	if id != actorID {
		return nil, ErrNotProfileOwner
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.FavoriteGenres != nil {
		user.FavoriteGenres = *req.FavoriteGenres
	}
	if req.FavoriteDirectors != nil {
		user.FavoriteDirectors = *req.FavoriteDirectors
	}
	if req.FavoriteMovieIDs != nil {
		user.FavoriteMovieIDs = *req.FavoriteMovieIDs
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Keep the session snapshot in step with the profile
	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, err
	}

	return dto.FromModelToUserResponse(user, false), nil
}

// ToggleFollow flips the actor's follow edge on the target. Self-follow is
// rejected outright; the edge and both counters move in one transaction.
func (s *userService) ToggleFollow(ctx context.Context, actorID int64, rawTargetID string) (*dto.FollowResponse, error) {
	targetID, err := parseLocalID(rawTargetID)
	if err != nil {
		return nil, err
	}
	if targetID == actorID {
		return nil, ErrSelfFollow
	}

	nowFollowing, target, actor, err := s.followRepo.Toggle(actorID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.FollowResponse{
		Following: nowFollowing,
		Target:    *dto.FromModelToUserResponse(target, nowFollowing),
		Actor:     *dto.FromModelToUserResponse(actor, false),
	}, nil
}
