package turn

import (
	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

type workerEntry struct {
	from, to board.FieldID
	workers  WorkerMask
}

type resourceEntry struct {
	from, to board.FieldID
	amount   board.Resources
}

// History is the ledger of hypothetical unit and resource movements of the
// turn being validated. Entries are replayed in the order they were recorded,
// so later moves see the board as earlier moves left it. A History belongs to
// a single validation and is never stored in the game.
type History struct {
	workers   []workerEntry
	resources []resourceEntry

	characterMoved bool
	workerMoved    WorkerMask
	mechMoved      MechMask
}

func NewHistory() *History {
	return &History{}
}

// Clone copies the ledger so that a branch can be explored without
// affecting the original.
func (h *History) Clone() *History {
	c := *h
	c.workers = append([]workerEntry(nil), h.workers...)
	c.resources = append([]resourceEntry(nil), h.resources...)
	return &c
}

func (h *History) CharacterMoved() bool     { return h.characterMoved }
func (h *History) WorkersMoved() WorkerMask { return h.workerMoved }
func (h *History) MechsMoved() MechMask     { return h.mechMoved }

// Available returns the resources on field after replaying the ledger.
func (h *History) Available(b *board.Board, field board.FieldID) (board.Resources, error) {
	current := b.Field(field).Resources
	for _, e := range h.resources {
		if e.from == e.to {
			continue
		}
		if e.from == field {
			var ok bool
			current, ok = current.Sub(e.amount)
			if !ok {
				return current, ErrResourceHistoryNegative
			}
		}
		if e.to == field {
			current = current.Add(e.amount)
		}
	}
	return current, nil
}

// Stationed returns the workers of p standing on field after replaying the
// ledger.
func (h *History) Stationed(p *game.Player, field board.FieldID) (WorkerMask, error) {
	current := Workers(p.Workers.On(field)...)
	for _, e := range h.workers {
		if e.from == e.to {
			continue
		}
		if e.from == field {
			if !current.Contains(e.workers) {
				return current, ErrWorkersNotStationed
			}
			current = current.Difference(e.workers)
		}
		if e.to == field {
			if current.Intersects(e.workers) {
				return current, ErrWorkersAlreadyStationed
			}
			current = current.Union(e.workers)
		}
	}
	return current, nil
}

// WorkerField is the field a worker stands on once every recorded move has
// been applied.
func (h *History) WorkerField(p *game.Player, w game.Worker) board.FieldID {
	field := p.Workers.Fields[w]
	for _, e := range h.workers {
		if e.workers.Has(w) {
			field = e.to
		}
	}
	return field
}

func (h *History) recordWorkers(from, to board.FieldID, workers WorkerMask) {
	h.workers = append(h.workers, workerEntry{from: from, to: to, workers: workers})
}

func (h *History) recordResources(from, to board.FieldID, amount board.Resources) {
	h.resources = append(h.resources, resourceEntry{from: from, to: to, amount: amount})
}
