package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delog-tool/delog/pkg/types"
)

func TestRunTriggersList(t *testing.T) {
	triggersPath = ""
	triggersFormat = "table"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runTriggersList(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "js.console.log")
	assert.Contains(t, output, "console.error")
}

func TestRunTriggersListJSON(t *testing.T) {
	triggersPath = ""
	triggersFormat = "json"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runTriggersList(cmd, []string{})
	require.NoError(t, err)

	var triggers []*types.Trigger
	require.NoError(t, json.Unmarshal(buf.Bytes(), &triggers))
	assert.NotEmpty(t, triggers)
}

func TestRunTriggersListCustomFile(t *testing.T) {
	tmpDir := t.TempDir()
	triggersFile := filepath.Join(tmpDir, "custom.yml")
	yaml := `triggers:
  - id: custom.trace
    call: tracer.log
`
	require.NoError(t, os.WriteFile(triggersFile, []byte(yaml), 0644))

	triggersPath = triggersFile
	triggersFormat = "table"
	defer func() { triggersPath = "" }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runTriggersList(cmd, []string{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "custom.trace")
}

func TestRunTriggersListInvalidFormat(t *testing.T) {
	triggersPath = ""
	triggersFormat = "xml"
	defer func() { triggersFormat = "table" }()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runTriggersList(cmd, []string{})
	assert.Error(t, err)
}
