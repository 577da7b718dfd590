package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/dfb159/scythe-bot/board"
)

var (
	ErrNotEnoughPlayers = errors.New("need at least two players")
	ErrTooManyPlayers   = errors.New("more players than homes on the board")
	ErrHomeTaken        = errors.New("home is already taken")
)

// Seat describes a player joining a new game.
type Seat struct {
	Name    string
	Faction Faction
	Mat     Mat
	Home    int
}

// Game is the complete state of a running game. The active player is
// Turn modulo the number of players.
type Game struct {
	Board   *board.Board
	Players []Player
	Turn    int
}

func New(b *board.Board, seats []Seat) (*Game, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	homes := b.Homes()
	if len(seats) > len(homes) {
		return nil, ErrTooManyPlayers
	}

	g := &Game{Board: b, Players: make([]Player, len(seats))}
	taken := make(map[int]bool, len(seats))
	for i, seat := range seats {
		if seat.Home < 0 || seat.Home >= len(homes) {
			return nil, fmt.Errorf("seat %s: home %d does not exist", seat.Name, seat.Home)
		}
		if taken[seat.Home] {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, ErrHomeTaken)
		}
		if err := seat.Mat.Validate(); err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		taken[seat.Home] = true
		g.Players[i] = newPlayer(seat.Name, seat.Faction, seat.Mat, homes[seat.Home])
	}
	return g, nil
}

// Active returns the index of the player whose turn it is.
func (g *Game) Active() int {
	return g.Turn % len(g.Players)
}

func (g *Game) ActivePlayer() *Player {
	return &g.Players[g.Active()]
}

func (g *Game) Copy() *Game {
	players := make([]Player, len(g.Players))
	copy(players, g.Players)
	return &Game{
		Board:   g.Board.Copy(),
		Players: players,
		Turn:    g.Turn,
	}
}

// Control returns the player controlling field. A field is controlled by the
// only player whose character, workers or mechs stand on it, or, if no unit
// stands on it, by the only player with a building there.
func (g *Game) Control(field board.FieldID) (int, bool) {
	owner := -1
	for i := range g.Players {
		if g.Players[i].Occupies(field) {
			if owner >= 0 {
				return -1, false
			}
			owner = i
		}
	}
	if owner >= 0 {
		return owner, true
	}
	for i := range g.Players {
		if g.Players[i].Buildings.On(field) {
			if owner >= 0 {
				return -1, false
			}
			owner = i
		}
	}
	return owner, owner >= 0
}

// Territory lists the fields controlled by a player in ascending order.
// Home bases never count.
func (g *Game) Territory(player int) []board.FieldID {
	var fields []board.FieldID
	for id := board.FieldID(0); int(id) < g.Board.Len(); id++ {
		if g.Board.Field(id).Tile == board.Home {
			continue
		}
		if owner, ok := g.Control(id); ok && owner == player {
			fields = append(fields, id)
		}
	}
	return fields
}

// TerritoryResources sums the resources stored on a player's territory.
func (g *Game) TerritoryResources(player int) board.Resources {
	var total board.Resources
	for _, id := range g.Territory(player) {
		total = total.Add(g.Board.Field(id).Resources)
	}
	return total
}

// CanAfford reports whether a player's territory stocks the cost of a
// bottom row action.
func (g *Game) CanAfford(player int, s SecondaryAction) bool {
	p := &g.Players[player]
	return g.TerritoryResources(player).Get(s.Resource()) >= p.Upgrades.Cost(s)
}

// Pay removes n units of r from the player's territory, draining fields in
// ascending order. Nothing is removed if the territory holds too little.
func (g *Game) Pay(player int, r board.Resource, n int) bool {
	territory := g.Territory(player)
	available := 0
	for _, id := range territory {
		available += g.Board.Field(id).Resources.Get(r)
	}
	if available < n {
		return false
	}
	for _, id := range territory {
		if n == 0 {
			break
		}
		f := g.Board.Field(id)
		take := min(f.Resources.Get(r), n)
		f.Resources, _ = f.Resources.Sub(board.Single(r, take))
		n -= take
	}
	return true
}

// TotalCoins is the final score of a player.
func (g *Game) TotalCoins(player int) int {
	p := &g.Players[player]
	starMult, fieldsMult, resourcesMult := PopularityMultipliers(p.Popularity.Value)
	resources := g.TerritoryResources(player).Total()
	return p.Coins +
		p.Stars()*starMult +
		len(g.Territory(player))*fieldsMult +
		resources/2*resourcesMult
}

// Winner returns the index of the first player with enough stars, or -1.
func (g *Game) Winner() int {
	for i := range g.Players {
		if g.Players[i].HasWon() {
			return i
		}
	}
	return -1
}

// Hash fingerprints the mutable game state.
func (g *Game) Hash() uint64 {
	h := fnv.New64a()
	write := func(values ...int) {
		for _, v := range values {
			binary.Write(h, binary.LittleEndian, int64(v))
		}
	}
	write(g.Turn)
	for i := range g.Players {
		p := &g.Players[i]
		write(int(p.Character), p.Coins, p.Cards, p.Military.Value, p.Popularity.Value)
		for _, f := range p.Workers.Fields {
			write(int(f))
		}
		for _, f := range p.Mechs.Fields {
			write(int(f))
		}
		for _, f := range p.Buildings.Fields {
			write(int(f))
		}
		for i := range p.Recruits.Secondary {
			write(boolInt(p.Recruits.Secondary[i]), boolInt(p.Recruits.OneTime[i]))
		}
		for _, evolved := range p.Upgrades.Evolved {
			write(boolInt(evolved))
		}
		for _, e := range p.Upgrades.Evolutions {
			write(e)
		}
		write(p.Stars())
	}
	g.Board.WriteHash(h)
	return h.Sum64()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
