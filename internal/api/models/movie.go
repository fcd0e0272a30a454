package models

import "time"

type Movie struct {
	ID        int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string   `json:"title" gorm:"not null;index"`
	PosterURL string   `json:"poster_url"`
	Year      string   `json:"year"`
	Director  string   `json:"director"`
	Rating    float64  `json:"rating" gorm:"type:decimal(3,1);check:rating >= 0 AND rating <= 10"`
	Genres    []string `json:"genres" gorm:"serializer:json"`
	Runtime   int      `json:"runtime" gorm:"check:runtime >= 0"` // minutes
	Plot      string   `json:"plot" gorm:"type:text"`
	Cast      []string `json:"cast" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
