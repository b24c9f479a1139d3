package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEpsilons(t *testing.T) {
	eps, err := parseEpsilons([]string{"0.05", "0.1,0.2", "0.4 1"})
	require.NoError(t, err)
	require.Equal(t, []float64{0.05, 0.1, 0.2, 0.4, 1}, eps)

	eps, err = parseEpsilons(nil)
	require.NoError(t, err)
	require.Empty(t, eps)

	_, err = parseEpsilons([]string{"abc"})
	require.Error(t, err)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := RootCommand()
	sub, _, err := root.Find([]string{"egreedy"})
	require.NoError(t, err)
	require.Equal(t, "egreedy", sub.Name())
	require.NotNil(t, root.PersistentFlags().Lookup("horizon"))
	require.NotNil(t, root.PersistentFlags().Lookup("epsilons"))
}
