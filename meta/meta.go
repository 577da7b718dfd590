// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines a search agent uses.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines how many turns a rollout plays before evaluating.
const WITH_CUTOFF = 40

// MAX_TURNS ends a game without winner. Counts turns of all players.
const MAX_TURNS = 400
