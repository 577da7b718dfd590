package searcher

import "github.com/dfb159/scythe-bot/game"

// Evaluate scores a non-terminal game from a player's perspective between
// -1 and 1.
type Evaluate func(g *game.Game, player int) float64

// EvaluateCoins compares the player's total coins with the best opponent.
func EvaluateCoins(g *game.Game, player int) float64 {
	best := 0
	for i := range g.Players {
		if i != player {
			best = max(best, g.TotalCoins(i))
		}
	}
	return normalize(float64(g.TotalCoins(player)), float64(best))
}

// EvaluateStars compares the player's stars with the best opponent and
// breaks ties with coins.
func EvaluateStars(g *game.Game, player int) float64 {
	best := 0
	for i := range g.Players {
		if i != player {
			best = max(best, g.Players[i].Stars())
		}
	}
	stars := normalize(float64(g.Players[player].Stars()), float64(best))
	return (2*stars + EvaluateCoins(g, player)) / 3
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
