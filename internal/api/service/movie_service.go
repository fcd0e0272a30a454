package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/repository"
	"reelcritic/internal/cache"
	"reelcritic/internal/metadata"
	"reelcritic/internal/shared"
)

var ErrMovieNotFound = errors.New("movie not found")

// suggestLimit caps autocomplete results.
const suggestLimit = 5

// PopularSource abstracts the external provider so the resolution chain can
// be tested without the network.
type PopularSource interface {
	MostPopularMovies(ctx context.Context) ([]metadata.Movie, error)
	Autocomplete(ctx context.Context, query string) ([]metadata.Movie, error)
}

type MovieService interface {
	GetAll(ctx context.Context) ([]dto.MovieSummary, error)
	Resolve(ctx context.Context, rawID string) dto.MovieResolution
	Suggest(ctx context.Context, query string) ([]dto.MovieSummary, error)
	SuggestExternal(ctx context.Context, query string) ([]dto.MovieDetails, error)
	ToggleLike(ctx context.Context, rawMovieID string, userID int64) (*dto.MovieLikeResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	popular   PopularSource
	likes     *cache.LikeStore
}

func NewMovieService(movieRepo repository.MovieRepository, popular PopularSource, likes *cache.LikeStore) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		popular:   popular,
		likes:     likes,
	}
}

// GetAll lists the local catalog as summaries in store order.
func (s *movieService) GetAll(ctx context.Context) ([]dto.MovieSummary, error) {
	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.MovieSummary, 0, len(movies))
	for i := range movies {
		summaries = append(summaries, dto.FromModelToMovieSummary(&movies[i]))
	}
	return summaries, nil
}

// Resolve walks the fallback chain for a movie id: local store, then the
// provider's most-popular collection, then a placeholder. It is total: any
// id yields a record, with the outcome carried in the Source tag.
func (s *movieService) Resolve(ctx context.Context, rawID string) dto.MovieResolution {
	// Local store first. External catalog ids ("tt0468569" style) live in
	// their own namespace, so only plain numeric ids address the store. Any
	// store failure, not-found or transport, falls through to the provider;
	// the error record is reserved for the external leg.
	if shared.IsNumericID(rawID) {
		if id, err := parseLocalID(rawID); err == nil {
			if movie, err := s.movieRepo.GetByID(ctx, id); err == nil {
				return dto.MovieResolution{
					Movie:  dto.FromModelToMovieDetails(movie),
					Source: dto.SourceLocal,
				}
			}
		}
	}

	// Fall back to the provider's popularity collection; no index by id, so
	// the scan is linear over whatever the provider returns.
	popular, err := s.popular.MostPopularMovies(ctx)
	if err != nil {
		return dto.ErrorMovie(rawID, err)
	}
	for i := range popular {
		if popular[i].ID == rawID {
			return dto.MovieResolution{
				Movie:  dto.FromProviderToMovieDetails(&popular[i]),
				Source: dto.SourceExternal,
			}
		}
	}

	return dto.NotFoundMovie(rawID)
}

// Suggest filters the local corpus by case-insensitive title substring. A
// blank query short-circuits before any store access. Order is corpus order
// and the result is capped, matching the search box behavior.
func (s *movieService) Suggest(ctx context.Context, query string) ([]dto.MovieSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.MovieSummary{}, nil
	}

	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	suggestions := make([]dto.MovieSummary, 0, suggestLimit)
	for i := range movies {
		if !strings.Contains(strings.ToLower(movies[i].Title), needle) {
			continue
		}
		suggestions = append(suggestions, dto.FromModelToMovieSummary(&movies[i]))
		if len(suggestions) == suggestLimit {
			break
		}
	}
	return suggestions, nil
}

// SuggestExternal proxies the provider's autocomplete for the search page.
func (s *movieService) SuggestExternal(ctx context.Context, query string) ([]dto.MovieDetails, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.MovieDetails{}, nil
	}

	movies, err := s.popular.Autocomplete(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]dto.MovieDetails, 0, len(movies))
	for i := range movies {
		results = append(results, dto.FromProviderToMovieDetails(&movies[i]))
	}
	return results, nil
}

// ToggleLike flips the viewer's membership in the movie's like set.
func (s *movieService) ToggleLike(ctx context.Context, rawMovieID string, userID int64) (*dto.MovieLikeResponse, error) {
	movieID, err := parseLocalID(rawMovieID)
	if err != nil {
		return nil, err
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	liked, err := s.likes.ToggleMovieLike(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}
	count, _, err := s.likes.MovieLikes(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}

	clean, _ := shared.NormalizeID(rawMovieID)
	return &dto.MovieLikeResponse{
		MovieID: clean,
		Liked:   liked,
		Likes:   count,
	}, nil
}
