// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Series represents a TV series in the catalogue.
type Series struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseYear int       `json:"release_year"`
	Seasons     int       `json:"seasons"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SeriesFilter narrows a listing. Empty fields match everything.
type SeriesFilter struct {
	Genre string
}
