package crypto

import (
	"math"
	"unicode/utf8"
)

// StrengthLevel buckets a strength score.
type StrengthLevel string

const (
	LevelWeak       StrengthLevel = "weak"
	LevelMedium     StrengthLevel = "medium"
	LevelStrong     StrengthLevel = "strong"
	LevelVeryStrong StrengthLevel = "very-strong"

	MaxScore = 10
)

// Entropy thresholds in bits; each one crossed adds a point.
var entropyThresholds = []float64{28, 36, 60, 80, 100}

// StrengthResult is a heuristic strength estimate for a password.
type StrengthResult struct {
	Score   float64       `json:"score"`
	Level   StrengthLevel `json:"level"`
	Entropy float64       `json:"entropy"`
}

// Entropy returns length * log2(poolSize), or 0 for pools of one character or fewer.
func Entropy(length, poolSize int) float64 {
	if poolSize <= 1 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// CalculateStrength scores password against the pool that opts describe.
// The options must match those the password was generated with for the
// entropy estimate to be meaningful. The estimate assumes uniform sampling
// and ignores the per-class guarantee.
func CalculateStrength(password string, opts Options) StrengthResult {
	length := utf8.RuneCountInString(password)
	entropy := Entropy(length, BuildPool(opts).Size())

	var score float64
	for _, t := range entropyThresholds {
		if entropy >= t {
			score++
		}
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if ok {
			score += 0.5
		}
	}

	if length >= 16 {
		score++
	}
	if length >= 24 {
		score++
	}

	score = math.Min(score, MaxScore)

	return StrengthResult{
		Score:   score,
		Level:   LevelForScore(score),
		Entropy: entropy,
	}
}

// LevelForScore maps a score to its level. Each bound is inclusive.
func LevelForScore(score float64) StrengthLevel {
	switch {
	case score <= 3:
		return LevelWeak
	case score <= 5:
		return LevelMedium
	case score <= 7:
		return LevelStrong
	default:
		return LevelVeryStrong
	}
}
