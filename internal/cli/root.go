package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vaultpass/passgen/internal/crypto"
)

// writeClipboard is swapped out in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type classFlags struct {
	letters          bool
	numbers          bool
	symbols          bool
	excludeAmbiguous bool
}

func (f *classFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.letters, "letters", true, "include letters (a-z, A-Z)")
	fs.BoolVar(&f.numbers, "numbers", true, "include numbers (0-9)")
	fs.BoolVar(&f.symbols, "symbols", true, "include symbols")
	fs.BoolVar(&f.excludeAmbiguous, "exclude-ambiguous", false, "leave out look-alike characters ("+crypto.AmbiguousChars+")")
}

func (f classFlags) options(length int) crypto.Options {
	return crypto.Options{
		Length:           length,
		IncludeLetters:   f.letters,
		IncludeNumbers:   f.numbers,
		IncludeSymbols:   f.symbols,
		ExcludeAmbiguous: f.excludeAmbiguous,
	}
}

type generated struct {
	password string
	strength crypto.StrengthResult
}

// NewRootCommand builds the passgen command tree.
func NewRootCommand() *cobra.Command {
	var (
		classes classFlags
		length  int
		count   int
		copyOut bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:          "passgen",
		Short:        "Generate random passwords and report their strength",
		Long:         `passgen draws passwords from the selected character classes using crypto/rand and scores them by estimated entropy.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			opts := classes.options(length)
			gen := crypto.NewGenerator(nil)
			results := make([]generated, 0, count)
			for i := 0; i < count; i++ {
				password, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				results = append(results, generated{
					password: password,
					strength: crypto.CalculateStrength(password, opts),
				})
			}

			out := cmd.OutOrStdout()
			switch {
			case quiet:
				for _, r := range results {
					fmt.Fprintln(out, r.password)
				}
			case count == 1:
				fmt.Fprintln(out, results[0].password)
				printStrength(out, results[0].strength)
			default:
				renderTable(out, results)
			}

			if copyOut {
				if err := writeClipboard(results[0].password); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				if !quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
				}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&length, "length", "l", crypto.DefaultLength, "password length")
	fs.IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	fs.BoolVar(&copyOut, "copy", false, "copy the first password to the clipboard")
	fs.BoolVarP(&quiet, "quiet", "q", false, "print passwords only")
	classes.register(fs)

	cmd.AddCommand(newStrengthCommand())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func printStrength(w io.Writer, s crypto.StrengthResult) {
	fmt.Fprintf(w, "strength: %s (score %.1f/%d, entropy %.1f bits)\n", s.Level, s.Score, crypto.MaxScore, s.Entropy)
}
