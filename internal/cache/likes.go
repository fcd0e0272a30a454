package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// LikeStore tracks per-movie like membership and per-viewer story views as
// redis sets. Membership is the record; counts derive from SCARD.
type LikeStore struct {
	client *redis.Client
}

func NewLikeStore(client *redis.Client) *LikeStore {
	return &LikeStore{client: client}
}

func movieLikesKey(movieID int64) string {
	return fmt.Sprintf("movie_likes:%d", movieID)
}

func storyViewsKey(userID int64) string {
	return fmt.Sprintf("story_views:user:%d", userID)
}

// ToggleMovieLike flips the viewer's membership in the movie's like set and
// reports whether the movie is liked after the toggle.
func (s *LikeStore) ToggleMovieLike(ctx context.Context, movieID, userID int64) (bool, error) {
	key := movieLikesKey(movieID)
	member := fmt.Sprintf("%d", userID)

	liked, err := s.client.SIsMember(ctx, key, member).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check movie like: %w", err)
	}

	if liked {
		if err := s.client.SRem(ctx, key, member).Err(); err != nil {
			return false, fmt.Errorf("failed to remove movie like: %w", err)
		}
		return false, nil
	}

	if err := s.client.SAdd(ctx, key, member).Err(); err != nil {
		return false, fmt.Errorf("failed to add movie like: %w", err)
	}
	return true, nil
}

// MovieLikes returns the like count and whether the viewer is a member.
func (s *LikeStore) MovieLikes(ctx context.Context, movieID, userID int64) (int64, bool, error) {
	key := movieLikesKey(movieID)

	count, err := s.client.SCard(ctx, key).Result()
	if err != nil {
		return 0, false, fmt.Errorf("failed to count movie likes: %w", err)
	}
	liked, err := s.client.SIsMember(ctx, key, fmt.Sprintf("%d", userID)).Result()
	if err != nil {
		return 0, false, fmt.Errorf("failed to check movie like: %w", err)
	}
	return count, liked, nil
}

// MarkStoryViewed records that the viewer has seen the story.
func (s *LikeStore) MarkStoryViewed(ctx context.Context, userID, storyID int64) error {
	if err := s.client.SAdd(ctx, storyViewsKey(userID), fmt.Sprintf("%d", storyID)).Err(); err != nil {
		return fmt.Errorf("failed to mark story viewed: %w", err)
	}
	return nil
}

// ViewedStories returns the set of story ids the viewer has already seen.
func (s *LikeStore) ViewedStories(ctx context.Context, userID int64) (map[int64]bool, error) {
	members, err := s.client.SMembers(ctx, storyViewsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load viewed stories: %w", err)
	}

	viewed := make(map[int64]bool, len(members))
	for _, m := range members {
		var id int64
		if _, err := fmt.Sscanf(m, "%d", &id); err == nil {
			viewed[id] = true
		}
	}
	return viewed, nil
}
