package repository

import (
	"context"
	"database/sql"
	"fmt"

	"reelcritic/internal/api/models"
)

// CriticRepository reads the popular-critics leaderboard over plain SQL on
// the pgx stdlib driver; the ranked read path skips the ORM.
type CriticRepository struct {
	db *sql.DB
}

func NewCriticRepository(db *sql.DB) *CriticRepository {
	return &CriticRepository{db: db}
}

// ListRanked returns the leaderboard in rank order.
func (r *CriticRepository) ListRanked(ctx context.Context) ([]models.PopularCritic, error) {
	query := `
		SELECT user_id, points, rank
		FROM popular_critics
		ORDER BY rank ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular critics: %w", err)
	}
	defer rows.Close()

	var critics []models.PopularCritic
	for rows.Next() {
		var critic models.PopularCritic
		if err := rows.Scan(&critic.UserID, &critic.Points, &critic.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan popular critic: %w", err)
		}
		critics = append(critics, critic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate popular critics: %w", err)
	}
	return critics, nil
}

// UpsertScore writes a critic's leaderboard row.
func (r *CriticRepository) UpsertScore(ctx context.Context, critic *models.PopularCritic) error {
	query := `
		INSERT INTO popular_critics (user_id, points, rank)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			points = EXCLUDED.points,
			rank = EXCLUDED.rank
	`

	_, err := r.db.ExecContext(ctx, query, critic.UserID, critic.Points, critic.Rank)
	if err != nil {
		return fmt.Errorf("failed to upsert popular critic: %w", err)
	}
	return nil
}
