package bootstrap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("prod", &buf).Info("hello", "room_id", 1)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])

	buf.Reset()
	NewLogger("local", &buf).Debug("turn", "room_id", 1)
	assert.Contains(t, buf.String(), "msg=turn")
}
