// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package algorithms

import (
	"sort"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// DefaultNeighborhoodSize is the number of similar users kept by FindSimilarUsers.
const DefaultNeighborhoodSize = 5

// Neighbor is a user whose ratings resemble the target user's.
type Neighbor struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
	Overlap    int     `json:"overlap"`
}

// FindSimilarUsers ranks other users by how closely their ratings match the
// target user's on movies both have rated.
//
// targetRatings are the target user's ratings; others are rating rows of any
// other users. For each row of another user on a movie the target also
// rated, RatingSimilarity of the two ratings is added to that user's total.
// Users are ordered by total descending, then by user id ascending, and at
// most k are returned (DefaultNeighborhoodSize when k <= 0).
//
// Rows in others that belong to targetUserID are ignored.
func FindSimilarUsers(targetUserID string, targetRatings, others []models.Rating, k int) []Neighbor {
	if k <= 0 {
		k = DefaultNeighborhoodSize
	}
	if len(targetRatings) == 0 || len(others) == 0 {
		return nil
	}

	mine := make(map[int]float64, len(targetRatings))
	for i := range targetRatings {
		mine[targetRatings[i].MovieID] = targetRatings[i].Rating
	}

	byUser := make(map[string]*Neighbor)
	for i := range others {
		row := &others[i]
		if row.UserID == targetUserID {
			continue
		}
		r, ok := mine[row.MovieID]
		if !ok {
			continue
		}
		n, seen := byUser[row.UserID]
		if !seen {
			n = &Neighbor{UserID: row.UserID}
			byUser[row.UserID] = n
		}
		n.Similarity += RatingSimilarity(r, row.Rating)
		n.Overlap++
	}

	neighbors := make([]Neighbor, 0, len(byUser))
	for _, n := range byUser {
		neighbors = append(neighbors, *n)
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// NeighborIDs returns the user ids of neighbors in rank order.
func NeighborIDs(neighbors []Neighbor) []string {
	ids := make([]string, len(neighbors))
	for i := range neighbors {
		ids[i] = neighbors[i].UserID
	}
	return ids
}

// EstimateRating returns the mean of the neighborhood's ratings for a movie,
// or fallback when there are none. Non-finite ratings are skipped.
func EstimateRating(neighborhoodRatings []float64, fallback float64) float64 {
	var sum float64
	n := 0
	for _, r := range neighborhoodRatings {
		if !finite(r) {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}
