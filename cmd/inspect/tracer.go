package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/ownref"
	"github.com/wippyai/ownref/errors"
	"github.com/wippyai/ownref/owner"
)

// tracer is one narrowing session over a fixture's owner. apply takes a
// step in the fixture kind's step syntax and returns the rendered
// combinator after the step.
type tracer interface {
	current() string
	apply(step string) (string, error)
	close()
}

func newTracer(fx fixture) (tracer, error) {
	switch fx.Kind {
	case "text":
		ref := ownref.ForText(owner.NewText(fx.Text))
		return &textTracer{cur: ref}, nil
	case "buffer":
		ref := ownref.ForBuffer(owner.NewBuffer(fx.Values))
		return &bufferTracer{cur: ref}, nil
	case "record":
		rec := record{Tag: fx.Tag, X: fx.X, Y: fx.Y, Z: fx.Z}
		return &recordTracer{base: ownref.ForBox(owner.NewBox(rec))}, nil
	case "shared":
		sh := owner.NewShared(fx.Values)
		return &sharedTracer{owner: sh, base: ownref.ForShared(sh)}, nil
	default:
		return nil, errors.InvalidData(errors.PhaseFixture, []string{fx.Name}, fmt.Sprintf("unknown fixture kind %q", fx.Kind))
	}
}

// parseRange parses "lo:hi" against the current view length.
func parseRange(step string, length int) (int, int, error) {
	los, his, ok := strings.Cut(step, ":")
	if !ok {
		return 0, 0, errors.InvalidData(errors.PhaseFixture, nil, fmt.Sprintf("step %q is not a lo:hi range", step))
	}

	lo := 0
	hi := length
	var err error
	if los != "" {
		if lo, err = strconv.Atoi(los); err != nil {
			return 0, 0, errors.InvalidData(errors.PhaseFixture, nil, fmt.Sprintf("range start %q is not a number", los))
		}
	}
	if his != "" {
		if hi, err = strconv.Atoi(his); err != nil {
			return 0, 0, errors.InvalidData(errors.PhaseFixture, nil, fmt.Sprintf("range end %q is not a number", his))
		}
	}
	if lo < 0 || hi > length || lo > hi {
		return 0, 0, errors.OutOfBounds(errors.PhaseFixture, lo, hi-lo, length)
	}
	return lo, hi, nil
}

// textTracer narrows an owned string by sub-ranges. Each step re-narrows
// the previous view, so ranges are relative to the current view.
type textTracer struct {
	cur ownref.TextRef
}

func (t *textTracer) current() string { return t.cur.String() }

func (t *textTracer) apply(step string) (string, error) {
	lo, hi, err := parseRange(step, len(t.cur.Deref()))
	if err != nil {
		return "", err
	}
	t.cur = ownref.Map(t.cur, func(s string) string { return s[lo:hi] })
	return t.cur.String(), nil
}

func (t *textTracer) close() {}

// bufferTracer narrows an owned element sequence. A "lo:hi" step keeps
// narrowing; a bare index projects a single element and ends the session.
type bufferTracer struct {
	cur      ownref.BufferRef[int64, []int64]
	terminal string
}

func (b *bufferTracer) current() string {
	if b.terminal != "" {
		return b.terminal
	}
	return b.cur.String()
}

func (b *bufferTracer) apply(step string) (string, error) {
	if b.terminal != "" {
		return "", errors.InvalidData(errors.PhaseFixture, nil, "view already narrowed to a single element")
	}

	if strings.Contains(step, ":") {
		lo, hi, err := parseRange(step, len(b.cur.Deref()))
		if err != nil {
			return "", err
		}
		b.cur = ownref.Map(b.cur, func(s []int64) []int64 { return s[lo:hi] })
		return b.cur.String(), nil
	}

	i, err := strconv.Atoi(step)
	if err != nil {
		return "", errors.InvalidData(errors.PhaseFixture, nil, fmt.Sprintf("step %q is not an index or range", step))
	}
	if i < 0 || i >= len(b.cur.Deref()) {
		return "", errors.OutOfBounds(errors.PhaseFixture, i, 1, len(b.cur.Deref()))
	}

	elem := ownref.Map(b.cur, func(s []int64) *int64 { return &s[i] })
	b.terminal = elem.String()
	return b.terminal, nil
}

func (b *bufferTracer) close() {}

// record is the boxed payload behind record fixtures.
type record struct {
	Tag uint32
	X   uint16
	Y   uint16
	Z   uint16
}

// recordTracer projects single fields out of a boxed record. Every step
// projects from the record itself, not from the previous field.
type recordTracer struct {
	base ownref.BoxRef[record, *record]
	last string
}

func (r *recordTracer) current() string {
	if r.last != "" {
		return r.last
	}
	return r.base.String()
}

func (r *recordTracer) apply(step string) (string, error) {
	switch strings.ToLower(step) {
	case "tag":
		r.last = ownref.Map(r.base, func(p *record) *uint32 { return &p.Tag }).String()
	case "x":
		r.last = ownref.Map(r.base, func(p *record) *uint16 { return &p.X }).String()
	case "y":
		r.last = ownref.Map(r.base, func(p *record) *uint16 { return &p.Y }).String()
	case "z":
		r.last = ownref.Map(r.base, func(p *record) *uint16 { return &p.Z }).String()
	default:
		return "", errors.NotFound(errors.PhaseFixture, "field", step)
	}
	return r.last, nil
}

func (r *recordTracer) close() {}

// sharedTracer clones a counted owner once per step and narrows the clone
// to the step's range, so every step shows the handle count growing while
// all clones view the same backing array.
type sharedTracer struct {
	owner  owner.Shared[[]int64]
	base   ownref.SharedRef[[]int64, []int64]
	clones []ownref.SharedRef[[]int64, []int64]
}

func (s *sharedTracer) current() string {
	return s.base.String()
}

func (s *sharedTracer) apply(step string) (string, error) {
	lo, hi, err := parseRange(step, len(s.base.Deref()))
	if err != nil {
		return "", err
	}

	narrowed := ownref.Map(ownref.Clone(s.base), func(v []int64) []int64 { return v[lo:hi] })
	s.clones = append(s.clones, narrowed)
	return fmt.Sprintf("%s (handles=%d)", narrowed.String(), s.owner.Refs()), nil
}

func (s *sharedTracer) close() {
	for _, c := range s.clones {
		c.Drop()
	}
	s.base.Drop()
}
