package service

import (
	"context"
	"sort"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/models"
	"reelcritic/internal/api/repository"
)

// leaderboardSize caps how many critics the popular list carries.
const leaderboardSize = 10

type CriticService interface {
	Popular(ctx context.Context, viewerID int64) ([]dto.CriticResponse, error)
	RecomputeRankings(ctx context.Context) error
}

type criticService struct {
	criticRepo *repository.CriticRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewCriticService(
	criticRepo *repository.CriticRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) CriticService {
	return &criticService{
		criticRepo: criticRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Popular merges the leaderboard with full profiles, in rank order. A critic
// whose profile row is missing is skipped rather than failing the list.
func (s *criticService) Popular(ctx context.Context, viewerID int64) ([]dto.CriticResponse, error) {
	critics, err := s.criticRepo.ListRanked(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CriticResponse, 0, len(critics))
	for _, critic := range critics {
		user, err := s.userRepo.FindByID(critic.UserID)
		if err != nil {
			continue
		}

		isFollowing := false
		if viewerID != 0 && viewerID != user.ID {
			isFollowing, _ = s.followRepo.IsFollowing(viewerID, user.ID)
		}

		responses = append(responses, dto.CriticResponse{
			UserResponse: *dto.FromModelToUserResponse(user, isFollowing),
			Points:       critic.Points,
			Rank:         critic.Rank,
		})
	}
	return responses, nil
}

// RecomputeRankings rebuilds the leaderboard from current user points.
func (s *criticService) RecomputeRankings(ctx context.Context) error {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	if len(users) > leaderboardSize {
		users = users[:leaderboardSize]
	}

	for i := range users {
		err := s.criticRepo.UpsertScore(ctx, &models.PopularCritic{
			UserID: users[i].ID,
			Points: users[i].Points,
			Rank:   i + 1,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
