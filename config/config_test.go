package config

import (
	"os"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestGetEnvInt(t *testing.T) {
	const name = "SNAKE_CONFIG_TEST_INT"
	defer os.Unsetenv(name)

	require.Equal(t, 7, getEnvInt(name, 7))

	os.Setenv(name, "42")
	require.Equal(t, 42, getEnvInt(name, 7))

	os.Setenv(name, "forty-two")
	require.Equal(t, 7, getEnvInt(name, 7), "unparseable values fall back to the default")

	os.Setenv(name, "99999999999")
	require.Equal(t, 7, getEnvInt(name, 7), "out of range values fall back to the default")
}

func TestGetEnvMillis(t *testing.T) {
	const name = "SNAKE_CONFIG_TEST_MS"
	defer os.Unsetenv(name)

	require.Equal(t, 250*time.Millisecond, getEnvMillis(name, 250))
	os.Setenv(name, "90")
	require.Equal(t, 90*time.Millisecond, getEnvMillis(name, 250))
}

func TestGameSettings(t *testing.T) {
	s := GameSettings()
	require.NoError(t, s.Validate())

	defer func(size int) { GridSize = size }(GridSize)
	GridSize = 20
	s = GameSettings()
	require.NoError(t, s.Validate())
	require.Equal(t, int32(20), s.Size)
	require.Equal(t, int32(10), s.InitialSnake[0].X)
	require.Equal(t, int32(5), s.InitialFood.X)
}

func TestGetEnvRate(t *testing.T) {
	const name = "SNAKE_CONFIG_TEST_RPS"
	defer os.Unsetenv(name)

	require.Equal(t, rate.Limit(2), getEnvRate(name, 2))

	os.Setenv(name, "5")
	require.Equal(t, rate.Limit(5), getEnvRate(name, 2))

	os.Setenv(name, "0")
	require.Equal(t, rate.Every(time.Second), getEnvRate(name, 2), "a zero rate is raised to one a second")

	os.Setenv(name, "-3")
	require.Equal(t, rate.Limit(1), getEnvRate(name, 2))
}

func TestGetEnvMin(t *testing.T) {
	const name = "SNAKE_CONFIG_TEST_BURST"
	defer os.Unsetenv(name)

	require.Equal(t, 1, getEnvMin(name, 1, 1))
	os.Setenv(name, "0")
	require.Equal(t, 1, getEnvMin(name, 1, 1))
	os.Setenv(name, "4")
	require.Equal(t, 4, getEnvMin(name, 1, 1))
}

func TestGameSettingsGridTooSmall(t *testing.T) {
	defer func(size int) { GridSize = size }(GridSize)
	for _, size := range []int{-1, 0, 3} {
		GridSize = size
		s := GameSettings()
		require.NoError(t, s.Validate())
		require.Equal(t, int32(12), s.Size, "size %d", size)
		require.Equal(t, rules.Point{X: 6, Y: 6}, s.InitialSnake[0])
	}
}
