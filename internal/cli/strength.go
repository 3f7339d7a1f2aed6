package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/crypto"
)

func newStrengthCommand() *cobra.Command {
	var classes classFlags

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password against the pool of the selected classes",
		Long: `Score a password against the pool of the selected classes.
With no argument the password is read from the first line of stdin,
which keeps it out of shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if scanner.Scan() {
					password = strings.TrimRight(scanner.Text(), "\r")
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
			}
			if password == "" {
				return errors.New("password is required")
			}

			printStrength(cmd.OutOrStdout(), crypto.CalculateStrength(password, classes.options(0)))
			return nil
		},
	}

	classes.register(cmd.Flags())
	return cmd
}
