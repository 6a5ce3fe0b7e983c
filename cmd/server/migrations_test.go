package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationCommand(t *testing.T) {
	for _, command := range []string{"up", "down", "status"} {
		run, err := migrationCommand(command)
		require.NoError(t, err, command)
		assert.NotNil(t, run, command)
	}

	run, err := migrationCommand("reset")
	assert.Nil(t, run)
	assert.ErrorContains(t, err, `unknown migration command "reset"`)
}
