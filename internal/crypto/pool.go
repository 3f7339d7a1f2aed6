package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterChars    = lowercaseChars + uppercaseChars
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are glyphs that are easily confused with one another.
	AmbiguousChars = "0O1lI"

	DefaultLength = 16
)

var (
	ErrInvalidOptions = errors.New("invalid password options")
	ErrEmptyPool      = errors.New("character pool is empty")
)

// Options configures password generation and strength estimation.
type Options struct {
	Length           int
	IncludeLetters   bool
	IncludeNumbers   bool
	IncludeSymbols   bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns 16 characters drawn from letters, numbers and symbols.
func DefaultOptions() Options {
	return Options{
		Length:         DefaultLength,
		IncludeLetters: true,
		IncludeNumbers: true,
		IncludeSymbols: true,
	}
}

// Validate reports whether the options can produce a password.
func (o Options) Validate() error {
	if o.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidOptions, o.Length)
	}
	return nil
}

// CharClass is one enabled character category.
type CharClass struct {
	Name  string
	Chars string
}

// Pool is the set of characters eligible for sampling together with the
// classes that contributed to it. Both are already ambiguous-filtered when
// the options ask for it; classes filtered down to nothing are omitted.
type Pool struct {
	Chars   string
	Classes []CharClass
}

// BuildPool unions the enabled classes. With no class enabled it falls back
// to letters.
func BuildPool(opts Options) Pool {
	var classes []CharClass
	if opts.IncludeLetters {
		classes = append(classes, CharClass{Name: "letters", Chars: letterChars})
	}
	if opts.IncludeNumbers {
		classes = append(classes, CharClass{Name: "numbers", Chars: numberChars})
	}
	if opts.IncludeSymbols {
		classes = append(classes, CharClass{Name: "symbols", Chars: symbolChars})
	}
	if len(classes) == 0 {
		classes = append(classes, CharClass{Name: "letters", Chars: letterChars})
	}

	var pool strings.Builder
	active := classes[:0]
	for _, c := range classes {
		if opts.ExcludeAmbiguous {
			c.Chars = stripAmbiguous(c.Chars)
		}
		if c.Chars == "" {
			continue
		}
		pool.WriteString(c.Chars)
		active = append(active, c)
	}

	return Pool{Chars: pool.String(), Classes: active}
}

// Size returns the number of distinct characters in the pool.
func (p Pool) Size() int {
	seen := make(map[rune]struct{}, len(p.Chars))
	for _, r := range p.Chars {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// Contains reports whether r is eligible for sampling.
func (p Pool) Contains(r rune) bool {
	return strings.ContainsRune(p.Chars, r)
}

func stripAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, s)
}
