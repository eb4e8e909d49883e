package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSON с временем и уровнем", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Options{Level: "debug", Writer: &buf})

		log.Debug().Str("team_id", "t1").Msg("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "t1", entry["team_id"])
		assert.Equal(t, "hello", entry["message"])
		assert.Contains(t, entry, "time")
	})

	t.Run("неизвестный уровень понижается до info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Options{Level: "loud", Writer: &buf})

		log.Debug().Msg("hidden")
		assert.Empty(t, buf.String())

		log.Info().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}
