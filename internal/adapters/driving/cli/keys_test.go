package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysCmd_Use(t *testing.T) {
	assert.Equal(t, "keys [file]", keysCmd.Use)
}

func TestKeysCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "keys")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestKeysCmd_Executes(t *testing.T) {
	path := writeDocument(t, "config.yaml", sampleYAML)

	out, err := executeCommand(t, "keys", path)

	require.NoError(t, err)
	assert.Contains(t, out, "version = 1")
	assert.Contains(t, out, "train.batch_size = 64")
	assert.Contains(t, out, "valid.batch_size = 128")
}

func TestKeysCmd_EmptyDocument(t *testing.T) {
	path := writeDocument(t, "config.json", "{}")

	out, err := executeCommand(t, "keys", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No keys.")
}

func TestKeysCmd_JSON(t *testing.T) {
	defer func() { keysJSON = false }()

	path := writeDocument(t, "config.yaml", sampleYAML)

	out, err := executeCommand(t, "keys", "--json", path)
	require.NoError(t, err)

	var entries []keyEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, keyEntry{Key: "version", Value: "1"}, entries[0])
	assert.Equal(t, keyEntry{Key: "train.batch_size", Value: "64"}, entries[1])
}

func TestKeysCmd_MaxDepth(t *testing.T) {
	defer func() { keysMaxDepth = -1 }()

	path := writeDocument(t, "config.yaml", sampleYAML)

	out, err := executeCommand(t, "keys", "--max-depth", "0", path)

	require.NoError(t, err)
	assert.Contains(t, out, "version = 1")
	assert.Contains(t, out, "train = {batch_size: 64}")
	assert.NotContains(t, out, "train.batch_size")
}

func TestKeysCmd_FixedDepth(t *testing.T) {
	defer func() { keysFixedDepth = -1 }()

	path := writeDocument(t, "config.yaml", sampleYAML)

	out, err := executeCommand(t, "keys", "--fixed-depth", "1", path)

	require.NoError(t, err)
	assert.Contains(t, out, "train.batch_size = 64")
	assert.NotContains(t, out, "version")
}
