package engine

import "sort"

// System is one stage of the per-tick pipeline
type System interface {
	Update(r *Run, dt float64)
	Priority() int // Lower values run first
}

// pipeline keeps systems ordered by priority; equal priorities keep insertion order
type pipeline []System

func (p *pipeline) add(s System) {
	*p = append(*p, s)
	sort.SliceStable(*p, func(i, j int) bool {
		return (*p)[i].Priority() < (*p)[j].Priority()
	})
}

func (p pipeline) update(r *Run, dt float64) {
	for _, s := range p {
		s.Update(r, dt)
	}
}
