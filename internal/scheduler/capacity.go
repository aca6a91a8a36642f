package scheduler

import "github.com/alexanderramin/drift/internal/domain"

// CapacityWindowDays is the trailing history window used for estimation.
const CapacityWindowDays = 7

const (
	defaultRating     = 5.0
	defaultCompletion = 0.5

	energyWeight     = 0.4
	sleepWeight      = 0.3
	completionWeight = 0.3

	lowScoreBelow  = 0.4
	highScoreAbove = 0.7

	lowRatingAtMost   = 4.0
	highRatingAtLeast = 7.0
)

// CapacityInput carries the raw history over [D-7, D).
type CapacityInput struct {
	Energy    []int
	Sleep     []int
	Scheduled int
	Completed int
}

// CapacityEstimate is the coarse capacity category plus the narrative factors
// that produced it.
type CapacityEstimate struct {
	Category domain.Capacity
	Score    float64

	MeanEnergy     float64
	MeanSleep      float64
	CompletionRate float64

	EnergyLevel     domain.FactorLevel
	SleepLevel      domain.FactorLevel
	CompletionLevel domain.FactorLevel
}

// EstimateCapacity scores recent energy, sleep and completion. Missing data
// falls back to neutral defaults so an empty history lands on medium.
func EstimateCapacity(in CapacityInput) CapacityEstimate {
	energy := meanOr(in.Energy, defaultRating)
	sleep := meanOr(in.Sleep, defaultRating)
	completion := defaultCompletion
	if in.Scheduled > 0 {
		completion = float64(in.Completed) / float64(in.Scheduled)
	}

	score := energyWeight*energy/10 + sleepWeight*sleep/10 + completionWeight*completion

	return CapacityEstimate{
		Category:        categorize(score),
		Score:           score,
		MeanEnergy:      energy,
		MeanSleep:       sleep,
		CompletionRate:  completion,
		EnergyLevel:     ratingLevel(energy),
		SleepLevel:      ratingLevel(sleep),
		CompletionLevel: completionLevel(completion),
	}
}

func categorize(score float64) domain.Capacity {
	switch {
	case score < lowScoreBelow:
		return domain.CapacityLow
	case score > highScoreAbove:
		return domain.CapacityHigh
	default:
		return domain.CapacityMedium
	}
}

func ratingLevel(mean float64) domain.FactorLevel {
	switch {
	case mean <= lowRatingAtMost:
		return domain.FactorLow
	case mean >= highRatingAtLeast:
		return domain.FactorHigh
	default:
		return domain.FactorModerate
	}
}

func completionLevel(rate float64) domain.FactorLevel {
	switch {
	case rate < lowScoreBelow:
		return domain.FactorLow
	case rate > highScoreAbove:
		return domain.FactorHigh
	default:
		return domain.FactorModerate
	}
}

func meanOr(vals []int, fallback float64) float64 {
	if len(vals) == 0 {
		return fallback
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}
