package piling

import (
	"iter"

	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
	"github.com/matzehuels/raagpile/pkg/word"
)

// Options configures a computation.
type Options struct {
	// OnStep, if set, receives a snapshot after every unit step. It runs
	// synchronously and cannot influence the computation.
	OnStep func(Snapshot)
}

// cancels is the cancellation predicate for a non-empty stack whose top
// mark is top, receiving a letter of sign eps.
func cancels(typ group.Type, top, eps Mark) bool {
	if typ == group.Coxeter {
		return top != Blocked
	}
	return top == -eps
}

// Pile is the mutable state of one computation.
// The zero value is not usable; use [NewPile].
type Pile struct {
	grp      *group.Group
	state    State
	maxDepth int
	steps    int
}

// NewPile returns an empty pile for grp.
func NewPile(grp *group.Group) *Pile {
	return &Pile{
		grp:   grp,
		state: newState(grp.Graph().Generators()),
	}
}

// Step applies one unit letter. The identity is a no-op. Unknown
// generators and signs other than ±1 are rejected without touching the
// pile.
func (p *Pile) Step(gen group.Generator, sign int) error {
	if gen == group.Identity {
		return nil
	}
	if err := p.grp.Graph().Unknown([]group.Generator{gen}); err != nil {
		return err
	}
	if sign != 1 && sign != -1 {
		return errors.New(errors.ErrCodeInvalidInput, "letter sign must be +1 or -1, got %d", sign)
	}
	p.apply(gen, Mark(sign))
	return nil
}

// apply performs one unit step on a validated letter. Each neighbour
// stack is touched exactly once, so neighbour order does not matter.
func (p *Pile) apply(gen group.Generator, eps Mark) {
	p.steps++
	blocked := p.grp.Graph().NonCommuting(gen)

	if top, ok := p.state.Top(gen); ok && cancels(p.grp.Type(), top, eps) {
		p.pop(gen)
		for _, h := range blocked {
			p.pop(h)
		}
		return
	}

	p.push(gen, eps)
	for _, h := range blocked {
		p.push(h, Blocked)
	}
}

func (p *Pile) push(g group.Generator, m Mark) {
	p.state[g] = append(p.state[g], m)
	p.maxDepth = max(p.maxDepth, len(p.state[g]))
}

// pop removes the top mark; empty stacks are left alone.
func (p *Pile) pop(g group.Generator) {
	if stack := p.state[g]; len(stack) > 0 {
		p.state[g] = stack[:len(stack)-1]
	}
}

// Snapshot returns a deep copy of the current state labelled with the
// given position and generator.
func (p *Pile) Snapshot(position int, gen group.Generator) Snapshot {
	return Snapshot{
		State:     p.state.Clone(),
		Step:      p.steps,
		Position:  position,
		Generator: gen,
	}
}

// Result returns a copy of the current state with the statistics so far.
func (p *Pile) Result() *Result {
	return &Result{
		State:    p.state.Clone(),
		MaxDepth: p.maxDepth,
		Steps:    p.steps,
	}
}

// Compute runs w through a fresh pile for grp.
//
// Every generator of w is checked against the group before the first step,
// so a failing call never exposes a partially built pile.
func Compute(w word.Word, grp *group.Group, opts Options) (*Result, error) {
	if err := grp.Graph().Unknown(w.Generators()); err != nil {
		return nil, err
	}

	p := NewPile(grp)
	for l := range w.Letters() {
		p.apply(l.Generator, Mark(l.Sign))
		if opts.OnStep != nil {
			opts.OnStep(p.Snapshot(l.Term, l.Generator))
		}
	}
	return &Result{State: p.state, MaxDepth: p.maxDepth, Steps: p.steps}, nil
}

// Trace computes w and returns every frame: the empty pile first, then one
// snapshot per unit step.
func Trace(w word.Word, grp *group.Group) ([]Snapshot, *Result, error) {
	if err := grp.Graph().Unknown(w.Generators()); err != nil {
		return nil, nil, err
	}

	frames := make([]Snapshot, 0, w.Len()+1)
	frames = append(frames, NewPile(grp).Snapshot(-1, ""))
	res, err := Compute(w, grp, Options{
		OnStep: func(s Snapshot) { frames = append(frames, s) },
	})
	if err != nil {
		return nil, nil, err
	}
	return frames, res, nil
}

// Steps returns an iterator over the per-step snapshots of w. Validation
// happens up front; breaking out of the loop abandons the computation.
func Steps(w word.Word, grp *group.Group) (iter.Seq[Snapshot], error) {
	if err := grp.Graph().Unknown(w.Generators()); err != nil {
		return nil, err
	}
	return func(yield func(Snapshot) bool) {
		p := NewPile(grp)
		for l := range w.Letters() {
			p.apply(l.Generator, Mark(l.Sign))
			if !yield(p.Snapshot(l.Term, l.Generator)) {
				return
			}
		}
	}, nil
}
