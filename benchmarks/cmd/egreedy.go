package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testing/benchmarks/egreedy"
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

func EpsilonGreedyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "egreedy",
		Short: "Compare epsilon-greedy policies on one bandit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			if err := flags.Record(); err != nil {
				logger.Warn().Err(err).Str("path", flags.SavePath).Msg("failed to record config")
			}

			seed := flags.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Info().
				Uint64("seed", seed).
				Int("horizon", flags.Horizon).
				Int("arms", flags.Arms).
				Floats64("epsilons", flags.Epsilons).
				Msg("starting comparison")

			src := rand.NewSource(seed)
			cmp, _, err := egreedy.PrepareComparison(flags, src, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			writer := uilive.New()
			writer.Out = cmd.ErrOrStderr()
			writer.Start()
			result := cmp.Run(ctx, &core.RunConfig{
				Source: src,
				Writer: writer,
				Logger: logger,
			})
			writer.Stop()
			close(doneCh)

			logger.Info().
				Int("completed", result.CompletedTrials).
				Int("errors", result.ErrorTrials).
				Int("steps", result.TotalSteps).
				Msg("comparison finished")
			return result.Error
		},
	}

	return cmd
}
