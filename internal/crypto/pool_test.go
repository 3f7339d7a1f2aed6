package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantSize    int
		wantClasses []string
	}{
		{"all classes", Options{IncludeLetters: true, IncludeNumbers: true, IncludeSymbols: true}, 88, []string{"letters", "numbers", "symbols"}},
		{"all classes without ambiguous", Options{IncludeLetters: true, IncludeNumbers: true, IncludeSymbols: true, ExcludeAmbiguous: true}, 83, []string{"letters", "numbers", "symbols"}},
		{"letters", Options{IncludeLetters: true}, 52, []string{"letters"}},
		{"numbers", Options{IncludeNumbers: true}, 10, []string{"numbers"}},
		{"symbols", Options{IncludeSymbols: true}, 26, []string{"symbols"}},
		{"nothing enabled", Options{}, 52, []string{"letters"}},
		{"nothing enabled without ambiguous", Options{ExcludeAmbiguous: true}, 49, []string{"letters"}},
		{"numbers without ambiguous", Options{IncludeNumbers: true, ExcludeAmbiguous: true}, 8, []string{"numbers"}},
		{"symbols unaffected by ambiguous", Options{IncludeSymbols: true, ExcludeAmbiguous: true}, 26, []string{"symbols"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := BuildPool(tt.opts)
			if got := pool.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			if len(pool.Classes) != len(tt.wantClasses) {
				t.Fatalf("got %d classes, want %d", len(pool.Classes), len(tt.wantClasses))
			}
			for i, name := range tt.wantClasses {
				if pool.Classes[i].Name != name {
					t.Errorf("class[%d] = %q, want %q", i, pool.Classes[i].Name, name)
				}
				if !strings.Contains(pool.Chars, pool.Classes[i].Chars) {
					t.Errorf("pool does not contain class %q", name)
				}
			}
			if tt.opts.ExcludeAmbiguous && strings.ContainsAny(pool.Chars, AmbiguousChars) {
				t.Errorf("pool %q still contains ambiguous characters", pool.Chars)
			}
		})
	}
}

func TestPoolSizeCountsDistinct(t *testing.T) {
	pool := Pool{Chars: "aabbc"}
	if got := pool.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
	if err := (Options{Length: 1}).Validate(); err != nil {
		t.Errorf("length 1 Validate() = %v", err)
	}
	err := (Options{Length: 0}).Validate()
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("length 0 Validate() = %v, want ErrInvalidOptions", err)
	}
}
