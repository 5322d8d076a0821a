package main

import (
	"testing"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRejectsBadAddr(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--addr", "no-port"})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidConfig)
}
