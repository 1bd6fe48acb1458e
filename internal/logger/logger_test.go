package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			SetLevel(tt.level)
			require.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutputCaptures(t *testing.T) {
	t.Cleanup(func() { SetOutput(bytes.NewBuffer(nil)) })

	var buf bytes.Buffer
	SetOutput(&buf)

	Log.Info().Str("command", "/state").Msg("command handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "command handled", entry["message"])
	require.Equal(t, "/state", entry["command"])
	require.Contains(t, entry, "time")
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "<empty>"},
		{"single word", "hello", "<redacted: 1 words, 5 chars>"},
		{"sentence", "Can I afford to spend $50?", "<redacted: 6 words, 26 chars>"},
		{"whitespace collapsed", "  two   words  ", "<redacted: 2 words, 15 chars>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, SanitizeText(tt.in))
		})
	}
}

func TestSanitizeTextNeverEchoesInput(t *testing.T) {
	t.Parallel()

	secret := "my card number is 4111 1111 1111 1111"
	out := SanitizeText(secret)
	require.NotContains(t, out, "4111")
	require.NotContains(t, out, "card")
}
