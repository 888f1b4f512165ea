package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	_, _, err := NewLogger(Config{
		Environment: EnvironmentDevelopment,
		Level:       "not-a-level",
		Outputs:     []string{"stderr"},
	})
	require.Error(t, err)

	zapLogger, level, err := NewLogger(Config{
		Environment: EnvironmentProduction,
		Level:       "warn",
		Outputs:     []string{"stderr"},
	})
	require.NoError(t, err)
	require.NotNil(t, zapLogger)
	require.Equal(t, "warn", level.String())
}

func TestWithFields(t *testing.T) {
	Init(Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"},
	})
	root := GetDefaultLogger()
	child := WithFields("module", "test")
	require.NotSame(t, root, child)
	require.NotNil(t, child.GetSugaredLogger())

	child.Infof("child logger %s", "works")
	root.Debugw("root logger works", "key", "value")
}
