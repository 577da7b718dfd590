package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dfb159/scythe-bot/agent"
	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/meta"
	"github.com/dfb159/scythe-bot/metrics"
	"github.com/dfb159/scythe-bot/turn"
)

var ErrAgentCount = errors.New("number of agents does not match number of players")

// Local plays a game in process, asking one agent per seat for its turn.
type Local struct {
	ID       uuid.UUID
	Game     *game.Game
	Agents   []agent.Agent
	MaxTurns int
}

func NewLocal(g *game.Game, agents []agent.Agent, maxTurns int) (*Local, error) {
	if len(agents) != len(g.Players) {
		return nil, ErrAgentCount
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &Local{
		ID:       uuid.New(),
		Game:     g,
		Agents:   agents,
		MaxTurns: maxTurns,
	}, nil
}

// Run executes the game loop until a player has won or the turn limit is
// reached. It returns the index of the winner, or -1.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	g := e.Game
	gameMetric := metrics.GameMetric{
		ID:        e.ID,
		Players:   make([]string, len(g.Players)),
		StartTime: time.Now(),
	}
	for i := range g.Players {
		gameMetric.Players[i] = g.Players[i].Name
	}

	log.Info().Msgf("game %s: %s is starting", e.ID, g.ActivePlayer().Name)

	var moveMetrics []metrics.MoveMetric
	for g.Winner() < 0 && g.Turn < e.MaxTurns {
		player := g.Active()
		mask, searchMetric := e.Agents[player].FindTurn(g)

		if err := turn.Turn(g, mask); err != nil {
			// Tax is always legal
			log.Warn().Err(err).Msgf("game %s: %s submitted %v, taxing instead", e.ID, g.Players[player].Name, mask)
			mask = turn.PrimaryOnly{Action: turn.Tax{}}
			if err := turn.Turn(g, mask); err != nil {
				panic(err)
			}
		}
		log.Debug().Msgf("game %s turn %d: %s plays %s", e.ID, g.Turn, g.Players[player].Name, mask)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         g.Turn,
			Player:       player,
			Action:       mask.String(),
			SearchMetric: searchMetric,
		})
	}

	winner := g.Winner()
	if winner >= 0 {
		gameMetric.Winner = g.Players[winner].Name
		log.Info().Msgf("game %s: %s won after %d turns", e.ID, gameMetric.Winner, g.Turn)
	} else {
		log.Info().Msgf("game %s: stopped after %d turns without winner", e.ID, g.Turn)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = g.Turn
	gameMetric.Scores = make([]int, len(g.Players))
	for i := range g.Players {
		gameMetric.Scores[i] = g.TotalCoins(i)
	}
	return winner, gameMetric, moveMetrics
}
