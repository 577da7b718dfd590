package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	FullPlayouts int
	Actions      int // Candidate turns at the root
}

type MoveMetric struct {
	Step   int
	Player int
	Action string
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Players    []string
	Winner     string // Empty if the turn limit was reached
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	Scores     []int // Total coins per player
}

type Collector interface {
	Start(goroutines, cutoff, actions int)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	actions      int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff, actions int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.actions = actions
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Actions:      m.actions,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff, actions int) {}
func (m *dummyCollector) AddFullPlayout()                      {}
func (m *dummyCollector) AddEpisode()                          {}
func (m *dummyCollector) Complete() SearchMetric               { return SearchMetric{} }
