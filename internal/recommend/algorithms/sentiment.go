// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package algorithms

import (
	"math"
	"strings"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// NeutralSentiment is returned when there is nothing to score.
const NeutralSentiment = 0.5

// Lexicon is the pair of word lists used by the sentiment analyzer.
type Lexicon struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// DefaultLexicon returns the built-in movie review vocabulary.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"great", "awesome", "excellent", "good", "love", "amazing", "fantastic",
			"brilliant", "outstanding", "perfect", "masterpiece", "wonderful",
			"enjoyed", "best", "recommend",
		},
		Negative: []string{
			"bad", "poor", "terrible", "awful", "hate", "disappointing", "boring",
			"waste", "worst", "mediocre", "horrible", "unwatchable", "skip",
			"bland", "forgettable",
		},
	}
}

// ReviewWeights controls how a review's text sentiment and numeric rating
// are blended by Aggregate.
type ReviewWeights struct {
	Sentiment float64 `json:"sentiment"`
	Rating    float64 `json:"rating"`
}

// DefaultReviewWeights weighs text and rating equally.
func DefaultReviewWeights() ReviewWeights {
	return ReviewWeights{Sentiment: 0.5, Rating: 0.5}
}

// SentimentAnalyzer scores text against a fixed lexicon. It is immutable
// after construction and safe for concurrent use.
type SentimentAnalyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewSentimentAnalyzer builds an analyzer from lex. Entries are lowercased
// and trimmed; empty entries are ignored.
func NewSentimentAnalyzer(lex Lexicon) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positive: wordSet(lex.Positive),
		negative: wordSet(lex.Negative),
	}
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Analyze returns the sentiment of text in [0,1].
//
// Each whitespace-separated token is lowercased and compared exactly with
// both word sets; punctuation is not stripped, so "great!" does not match
// "great". A word present in both sets counts once each way. With no
// matches the result is exactly 0.5, otherwise (score/matches + 1) / 2.
func (a *SentimentAnalyzer) Analyze(text string) float64 {
	score, matches := 0, 0
	for _, token := range strings.Fields(text) {
		token = strings.ToLower(token)
		if _, ok := a.positive[token]; ok {
			score++
			matches++
		}
		if _, ok := a.negative[token]; ok {
			score--
			matches++
		}
	}

	if matches == 0 {
		return NeutralSentiment
	}
	return (float64(score)/float64(matches) + 1) / 2
}

// Aggregate folds a review list into one signal in [0,1]: the mean over
// reviews of w.Sentiment*Analyze(content) + w.Rating*rating/10.
// An empty list scores exactly 0.5.
func (a *SentimentAnalyzer) Aggregate(reviews []models.Review, w ReviewWeights) float64 {
	if len(reviews) == 0 {
		return NeutralSentiment
	}

	var sum float64
	for i := range reviews {
		sentiment := a.Analyze(reviews[i].Content)
		rating := normalizeRating(reviews[i].Rating)
		sum += w.Sentiment*sentiment + w.Rating*rating
	}
	return sum / float64(len(reviews))
}

// normalizeRating maps a 0-10 rating to [0,1]. Out-of-range values are
// clamped and non-finite values count as 0.
func normalizeRating(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return clamp01(r / models.MaxRating)
}

var defaultAnalyzer = NewSentimentAnalyzer(DefaultLexicon())

// AnalyzeSentiment scores text with the default lexicon.
func AnalyzeSentiment(text string) float64 {
	return defaultAnalyzer.Analyze(text)
}

// AggregateReviews aggregates reviews with the default lexicon and weights.
func AggregateReviews(reviews []models.Review) float64 {
	return defaultAnalyzer.Aggregate(reviews, DefaultReviewWeights())
}
