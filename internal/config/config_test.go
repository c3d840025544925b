package config

import (
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when nothing is set", func(t *testing.T) {
		unsetEnv(t, "TTT_LOG_LEVEL")
		unsetEnv(t, "TTT_LANGUAGE")

		conf, err := Load()

		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "warn", Language: "es"}, conf)
	})

	t.Run("Reads values from the environment", func(t *testing.T) {
		t.Setenv("TTT_LOG_LEVEL", "debug")
		t.Setenv("TTT_LANGUAGE", "en")

		conf, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "en", conf.Language)
	})

	t.Run("Rejects an unknown language", func(t *testing.T) {
		unsetEnv(t, "TTT_LOG_LEVEL")
		t.Setenv("TTT_LANGUAGE", "fr")

		_, err := Load()

		require.Error(t, err)
		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "Language", validationErrors[0].Field())
	})

	t.Run("MustLoad panics on a bad log level", func(t *testing.T) {
		t.Setenv("TTT_LOG_LEVEL", "loud")
		unsetEnv(t, "TTT_LANGUAGE")

		assert.Panics(t, func() { MustLoad() })
	})
}

// unsetEnv - removes the variable for the duration of the test, t.Setenv restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
