package crypto

import "fmt"

// Generator builds passwords from a RandomSource.
type Generator struct {
	src RandomSource
}

// NewGenerator returns a Generator backed by src, or by crypto/rand when src is nil.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a cryptographically secure random password with crypto/rand.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a password of exactly opts.Length characters drawn from
// the pool for opts. One character from each active class is placed before
// the shuffle. When Length is smaller than the number of active classes the
// shuffled buffer is truncated, so some classes may not appear.
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	pool := BuildPool(opts)
	if pool.Chars == "" {
		return "", ErrEmptyPool
	}

	buf := make([]byte, 0, max(opts.Length, len(pool.Classes)))

	// Guarantee at least one character from each active class.
	for _, class := range pool.Classes {
		ch, err := g.randChar(class.Chars)
		if err != nil {
			return "", fmt.Errorf("sampling %s: %w", class.Name, err)
		}
		buf = append(buf, ch)
	}

	for len(buf) < opts.Length {
		ch, err := g.randChar(pool.Chars)
		if err != nil {
			return "", fmt.Errorf("sampling pool: %w", err)
		}
		buf = append(buf, ch)
	}

	if err := g.shuffle(buf); err != nil {
		return "", fmt.Errorf("shuffling: %w", err)
	}

	return string(buf[:opts.Length]), nil
}

// randChar picks a random byte from charset. All charsets are ASCII.
func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.src.Intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
