package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rijuma15/cash-faster/internal/config"
)

func TestLoanIDs_FromArgs(t *testing.T) {
	ids, err := loanIDs([]string{"22019", "22020"}, config.Default())
	require.NoError(t, err)
	assert.Equal(t, []int{22019, 22020}, ids)
}

func TestLoanIDs_FallBackToConfig(t *testing.T) {
	cfg := config.Default()
	cfg.LoanIDs = []int{1, 2}

	ids, err := loanIDs(nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}

func TestLoanIDs_InvalidArg(t *testing.T) {
	_, err := loanIDs([]string{"22019", "abc"}, config.Default())
	assert.ErrorContains(t, err, `invalid loan id "abc"`)
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0, 2)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "batch")
	assert.Contains(t, names, "serve")
}
