// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package models

import (
	"strconv"
	"strings"
)

// Movie is a catalog entry as returned by list endpoints (trending, search,
// recommendations). It is owned by the catalog and treated as immutable.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int   `json:"genre_ids"`
}

// ReleaseYear extracts the year from ReleaseDate ("2010-07-16", "2010").
// ok is false when the date is empty or does not start with a year.
func (m *Movie) ReleaseYear() (year int, ok bool) {
	return ParseReleaseYear(m.ReleaseDate)
}

// Genre is a TMDB genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full catalog record for a single movie.
type MovieDetails struct {
	Movie
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
	Tagline string  `json:"tagline"`
}

// GenreIDSet returns the movie's genre ids. The detail endpoint fills Genres
// while list endpoints fill GenreIDs; Genres wins when both are present.
func (d *MovieDetails) GenreIDSet() []int {
	if len(d.Genres) == 0 {
		return d.GenreIDs
	}
	ids := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// GenreNames returns the resolved genre names in catalog order.
func (d *MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ParseReleaseYear returns the leading four-digit year of a release date.
func ParseReleaseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
