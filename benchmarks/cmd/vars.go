package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeu5/bandit-testing/benchmarks/common"
)

var (
	flags      *common.Flags = common.DefaultFlags()
	configFile string
)

func AddFlags(cmd *cobra.Command) {
	defaultEpsilons := make([]string, len(flags.Epsilons))
	for i, eps := range flags.Epsilons {
		defaultEpsilons[i] = strconv.FormatFloat(eps, 'g', -1, 64)
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional config file (yaml, json or toml)")
	cmd.PersistentFlags().String("save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().Int("horizon", flags.Horizon, "Number of reward samples per arm (T)")
	cmd.PersistentFlags().Int("arms", flags.Arms, "Number of arms (N)")
	cmd.PersistentFlags().Float64("sigma", flags.Sigma, "Standard deviation of the arm rewards")
	cmd.PersistentFlags().StringSlice("epsilons", defaultEpsilons, "Epsilon values to compare")
	cmd.PersistentFlags().Uint64("seed", flags.Seed, "Seed of the random source, 0 uses the clock")
	cmd.PersistentFlags().Bool("plot", flags.Plot, "Render the cumulative reward plot")
	cmd.PersistentFlags().Bool("debug", flags.Debug, "Dump the decisions of every trial")
	cmd.PersistentFlags().String("log-level", flags.LogLevel, "Log level (debug, info, warn, error)")

	viper.BindPFlags(cmd.PersistentFlags())
	viper.SetEnvPrefix("BANDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// UpdateFlags resolves flags, environment variables and the config file into flags.
func UpdateFlags() error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	epsilons, err := parseEpsilons(viper.GetStringSlice("epsilons"))
	if err != nil {
		return err
	}

	flags.SavePath = viper.GetString("save-path")
	flags.Horizon = viper.GetInt("horizon")
	flags.Arms = viper.GetInt("arms")
	flags.Sigma = viper.GetFloat64("sigma")
	flags.Epsilons = epsilons
	flags.Seed = viper.GetUint64("seed")
	flags.Plot = viper.GetBool("plot")
	flags.Debug = viper.GetBool("debug")
	flags.LogLevel = viper.GetString("log-level")
	return flags.Validate()
}

// parseEpsilons accepts values separated by commas or whitespace.
func parseEpsilons(values []string) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		for _, field := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			eps, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing epsilon %q: %w", field, err)
			}
			out = append(out, eps)
		}
	}
	return out, nil
}
