package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ivascu/gestiune-api/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "debug"})

	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	cases := []string{"", "verbose", "INFO MAX"}

	for _, level := range cases {
		l := logger.New(logger.Config{Env: "production", Level: level})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", level)
	}
}
