package service

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrLengthTooLong    = errors.New("password length exceeds the allowed maximum")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password exceeds the allowed maximum length")
)

const (
	defaultMaxLength = 128
	operationGen     = "generate"
	operationCheck   = "strength"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator     *crypto.Generator
	defaultLength int
	maxLength     int
}

// Option customizes a GeneratorService.
type Option func(*GeneratorService)

// WithSource replaces the random source. Tests use crypto.NewChaChaSource.
func WithSource(src crypto.RandomSource) Option {
	return func(s *GeneratorService) {
		s.generator = crypto.NewGenerator(src)
	}
}

// WithLengths sets the length used when a request omits one and the largest
// length a request may ask for. Non-positive values keep the defaults.
func WithLengths(defaultLength, maxLength int) Option {
	return func(s *GeneratorService) {
		if defaultLength > 0 {
			s.defaultLength = defaultLength
		}
		if maxLength > 0 {
			s.maxLength = maxLength
		}
	}
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(opts ...Option) *GeneratorService {
	s := &GeneratorService{
		generator:     crypto.NewGenerator(nil),
		defaultLength: crypto.DefaultLength,
		maxLength:     defaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password and its strength based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := resolveOptions(req.OptionFlags)
	opts.Length = req.Length
	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}
	if opts.Length > s.maxLength {
		metrics.RecordError(operationGen, "length_too_long")
		return model.GenerateResponse{}, fmt.Errorf("%w: %d > %d", ErrLengthTooLong, opts.Length, s.maxLength)
	}

	password, err := s.generator.Generate(opts)
	if err != nil {
		metrics.RecordError(operationGen, errorReason(err))
		return model.GenerateResponse{}, err
	}

	strength := crypto.CalculateStrength(password, opts)
	metrics.RecordGeneration(string(strength.Level), len(password))
	slog.Debug("password generated",
		"length", len(password),
		"level", strength.Level,
		"entropy", strength.Entropy,
	)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: toStrength(strength),
	}, nil
}

// Strength scores a caller-supplied password against the pool its options describe
// and adds a zxcvbn guessability estimate.
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		metrics.RecordError(operationCheck, "password_required")
		return model.StrengthResponse{}, ErrPasswordRequired
	}
	if utf8.RuneCountInString(req.Password) > s.maxLength {
		metrics.RecordError(operationCheck, "password_too_long")
		return model.StrengthResponse{}, ErrPasswordTooLong
	}

	strength := crypto.CalculateStrength(req.Password, resolveOptions(req.Options))
	metrics.RecordStrengthCheck(string(strength.Level))

	guess := zxcvbn.PasswordStrength(req.Password, nil)

	return model.StrengthResponse{
		Strength: toStrength(strength),
		Guessability: model.Guessability{
			Score:     guess.Score,
			CrackTime: guess.CrackTimeDisplay,
		},
	}, nil
}

// resolveOptions fills missing flags from crypto.DefaultOptions.
func resolveOptions(f model.OptionFlags) crypto.Options {
	def := crypto.DefaultOptions()
	return crypto.Options{
		IncludeLetters:   boolOrDefault(f.IncludeLetters, def.IncludeLetters),
		IncludeNumbers:   boolOrDefault(f.IncludeNumbers, def.IncludeNumbers),
		IncludeSymbols:   boolOrDefault(f.IncludeSymbols, def.IncludeSymbols),
		ExcludeAmbiguous: boolOrDefault(f.ExcludeAmbiguous, def.ExcludeAmbiguous),
	}
}

func toStrength(r crypto.StrengthResult) model.Strength {
	return model.Strength{
		Score:   r.Score,
		Level:   string(r.Level),
		Entropy: r.Entropy,
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrInvalidOptions):
		return "invalid_options"
	case errors.Is(err, crypto.ErrEmptyPool):
		return "empty_pool"
	default:
		return "internal"
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
