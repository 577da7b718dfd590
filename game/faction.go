package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Faction carries the starting values a faction adds to a seat.
type Faction struct {
	Name  string `yaml:"name"`
	Power int    `yaml:"power"`
	Cards int    `yaml:"cards"`
}

// SecondaryCost describes one bottom row action of a player mat.
type SecondaryCost struct {
	Cost       int `yaml:"cost"`
	Evolutions int `yaml:"evolutions"`
	Coins      int `yaml:"coins"`
}

// Mat is a player mat. The links between top row and bottom row actions are
// fixed for the whole game.
type Mat struct {
	Name       string `yaml:"name"`
	Coins      int    `yaml:"coins"`
	Popularity int    `yaml:"popularity"`

	MoveSecondary    SecondaryAction `yaml:"move"`
	TradeSecondary   SecondaryAction `yaml:"trade"`
	ProduceSecondary SecondaryAction `yaml:"produce"`
	BolsterSecondary SecondaryAction `yaml:"bolster"`

	Upgrade SecondaryCost `yaml:"upgrade"`
	Deploy  SecondaryCost `yaml:"deploy"`
	Build   SecondaryCost `yaml:"build"`
	Enlist  SecondaryCost `yaml:"enlist"`
}

func (m Mat) cost(s SecondaryAction) SecondaryCost {
	switch s {
	case ActionUpgrade:
		return m.Upgrade
	case ActionDeploy:
		return m.Deploy
	case ActionBuild:
		return m.Build
	default:
		return m.Enlist
	}
}

// Validate checks that every top row column links to a distinct bottom row
// action.
func (m Mat) Validate() error {
	seen := make(map[SecondaryAction]bool, 4)
	for _, s := range []SecondaryAction{m.MoveSecondary, m.TradeSecondary, m.ProduceSecondary, m.BolsterSecondary} {
		if seen[s] {
			return fmt.Errorf("mat %s links %s twice", m.Name, s)
		}
		seen[s] = true
	}
	return nil
}

func ParseSecondaryAction(name string) (SecondaryAction, error) {
	for _, s := range AllSecondaryActions {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown secondary action %q", name)
}

func (a *SecondaryAction) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	s, err := ParseSecondaryAction(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = s
	return nil
}
