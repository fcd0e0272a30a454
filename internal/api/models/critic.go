package models

// PopularCritic is the ranked leaderboard row behind /api/critics/popular.
type PopularCritic struct {
	UserID int64 `json:"user_id" gorm:"primaryKey"`
	Points int   `json:"points" gorm:"not null;default:0"`
	Rank   int   `json:"rank" gorm:"not null"`
}

func (PopularCritic) TableName() string {
	return "popular_critics"
}
