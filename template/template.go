package template

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/utils"
)

//go:embed default.yaml
var defaultTemplate []byte

var ErrUnknownName = errors.New("template: unknown name")

// Set bundles a board layout with the factions and player mats that can be
// seated on it.
type Set struct {
	Board    board.Template `yaml:"board"`
	Factions []game.Faction `yaml:"factions"`
	Mats     []game.Mat     `yaml:"mats"`
}

func Parse(raw []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	for _, m := range s.Mats {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("template: %w", err)
		}
	}
	return &s, nil
}

func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	return Parse(raw)
}

// Default returns the embedded template set.
func Default() *Set {
	s, err := Parse(defaultTemplate)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) Faction(name string) (game.Faction, error) {
	names := utils.Map(s.Factions, func(f game.Faction) string { return f.Name })
	i := utils.FindIndex(names, name)
	if i < 0 {
		return game.Faction{}, fmt.Errorf("faction %q: %w", name, ErrUnknownName)
	}
	return s.Factions[i], nil
}

func (s *Set) Mat(name string) (game.Mat, error) {
	names := utils.Map(s.Mats, func(m game.Mat) string { return m.Name })
	i := utils.FindIndex(names, name)
	if i < 0 {
		return game.Mat{}, fmt.Errorf("mat %q: %w", name, ErrUnknownName)
	}
	return s.Mats[i], nil
}

// Seats pairs the first n factions and mats with the first n homes.
func (s *Set) Seats(n int) ([]game.Seat, error) {
	if n > len(s.Factions) || n > len(s.Mats) || n > len(s.Board.Homes) {
		return nil, fmt.Errorf("template supports at most %d players", min(len(s.Factions), len(s.Mats), len(s.Board.Homes)))
	}
	seats := make([]game.Seat, n)
	for i := range seats {
		seats[i] = game.Seat{
			Name:    s.Factions[i].Name,
			Faction: s.Factions[i],
			Mat:     s.Mats[i],
			Home:    i,
		}
	}
	return seats, nil
}

// NewGame builds the board and seats n players on it.
func (s *Set) NewGame(n int) (*game.Game, error) {
	seats, err := s.Seats(n)
	if err != nil {
		return nil, err
	}
	return game.New(board.New(s.Board), seats)
}
