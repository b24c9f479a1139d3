package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bandit",
		Short: "Evaluate epsilon-greedy policies on a stochastic multi-armed bandit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return UpdateFlags()
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		EpsilonGreedyCommand(),
	)

	return cmd
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(flags.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
