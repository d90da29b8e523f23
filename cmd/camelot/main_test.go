package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "report", baseName("report.pdf"))
	assert.Equal(t, "report", baseName("/data/in/report.pdf"))
	assert.Equal(t, "report", baseName("https://example.com/files/report.pdf"))
	assert.Equal(t, "archive.tar", baseName("archive.tar.gz"))
}

func TestMain_Run_requires_a_command(t *testing.T) {
	t.Parallel()

	m := NewMain()
	m.DBPath = ":memory:"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_runs_command_with_empty_database(t *testing.T) {
	t.Parallel()

	m := NewMain()
	m.DBPath = ":memory:"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"runs"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No runs found")
}

func TestMain_Run_delete_unknown_run(t *testing.T) {
	t.Parallel()

	m := NewMain()
	m.DBPath = ":memory:"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"delete", "nope"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "run not found")
}
