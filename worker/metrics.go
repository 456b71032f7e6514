package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "ticks_total",
		Help:      "Game ticks processed.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "food_eaten_total",
		Help:      "Food eaten across all games.",
	})
	gamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "games_finished_total",
			Help:      "Games that ended, by status and death cause.",
		},
		[]string{"status", "cause"},
	)
	commandsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "commands_total",
			Help:      "Player commands that changed the game.",
		},
		[]string{"command"},
	)
	scoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "recorder",
			Name:      "writes_total",
			Help:      "High score writes by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(ticks, foodEaten, gamesFinished, commandsApplied, scoreWrites)
}
