package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const WIN = 1.0  // Reward for winning outcome
const LOSS = 0.0 // Reward for any other outcome

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// scale maps an evaluation between -1 and 1 onto the reward range.
func scale(score float64) float64 {
	return LOSS + (WIN-LOSS)*(score+1)/2
}

// rewarder returns the reward function of a finished or cut off playout.
func rewarder(winner int, scores []float64) func(player int) float64 {
	return func(player int) float64 {
		if winner >= 0 {
			if player == winner {
				return WIN
			}
			return LOSS
		}
		if player < 0 || player >= len(scores) {
			return LOSS
		}
		return scale(scores[player])
	}
}
