package finpredictor

import (
	"slices"
	"sync"
)

// Planner keeps a Request together with its latest Projection.
//
// Every change goes through Update, which recomputes the whole projection and
// then notifies the listeners. There is no incremental update and no deferred
// recomputation.
type Planner struct {
	mu        sync.Mutex
	req       Request
	proj      Projection
	err       error
	listeners []func(Request, Projection, error)
}

// NewPlanner returns a Planner already computed for req.
func NewPlanner(req Request) *Planner {
	p := &Planner{req: req}
	p.proj, p.err = Project(req)
	return p
}

// OnChange registers f to be called after each recomputation.
func (p *Planner) OnChange(f func(Request, Projection, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, f)
}

// Update applies change to the request and recomputes the projection.
// It returns the recomputation error, if any.
func (p *Planner) Update(change func(*Request)) error {
	p.mu.Lock()
	req := p.req
	change(&req)
	proj, err := Project(req)
	p.req, p.proj, p.err = req, proj, err
	listeners := slices.Clone(p.listeners)
	p.mu.Unlock()

	for _, f := range listeners {
		f(req, proj, err)
	}
	return err
}

// Request returns the current request.
func (p *Planner) Request() Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.req
}

// Projection returns the latest projection and the error that came with it.
func (p *Planner) Projection() (Projection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.proj, p.err
}
