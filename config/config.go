package config

import (
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// game and the high score backends.
var (
	GridSize     = getEnvInt("GRID_SIZE", 12)
	FoodReward   = getEnvInt("FOOD_REWARD", 10)
	InitialSpeed = getEnvMillis("INITIAL_SPEED_MS", 250)
	SpeedStep    = getEnvMillis("SPEED_STEP_MS", 5)
	MinSpeed     = getEnvMillis("MIN_SPEED_MS", 120)
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 20)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 20)
	PersistRate  = getEnvRate("PERSIST_RPS", 2)
	PersistBurst = getEnvMin("PERSIST_BURST", 1, 1)
)

const minGridSize = 4

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// getEnvMin is getEnvInt with values below min replaced by min.
func getEnvMin(varName string, defaults, min int) int {
	val := getEnvInt(varName, defaults)
	if val < min {
		log.WithFields(log.Fields{
			"var":   varName,
			"value": val,
			"min":   min,
		}).Warn("config value too small, using minimum")
		return min
	}
	return val
}

// getEnvRate reads a per second rate of at least one event a second. A zero
// rate would never let an event through.
func getEnvRate(varName string, defaults int) rate.Limit {
	return rate.Limit(getEnvMin(varName, defaults, 1))
}

func getEnvMillis(varName string, defaults int) time.Duration {
	return time.Duration(getEnvInt(varName, defaults)) * time.Millisecond
}

// GameSettings returns the default game settings with the tuning variables
// above applied. The snake and food start in the same relative positions as
// on the default 12x12 board.
func GameSettings() rules.Settings {
	s := rules.DefaultSettings()
	size := int32(GridSize)
	if size < minGridSize {
		log.WithFields(log.Fields{
			"var":   "GRID_SIZE",
			"value": size,
			"min":   minGridSize,
		}).Warn("grid too small, using default size")
		size = s.Size
	}
	if size != s.Size {
		s.InitialSnake = []rules.Point{{X: size / 2, Y: size / 2}}
		s.InitialFood = rules.Point{X: size / 4, Y: size / 4}
		s.Size = size
	}
	s.FoodReward = int64(FoodReward)
	s.InitialSpeed = InitialSpeed
	s.SpeedStep = SpeedStep
	s.MinSpeed = MinSpeed
	return s
}
