package finpredictor

import (
	"errors"
	"testing"
)

func TestPlanner_Update(t *testing.T) {
	p := NewPlanner(Request{Monthly: 1000, Years: 1})
	proj, err := p.Projection()
	if err != nil {
		t.Fatalf("Projection() error = %v", err)
	}
	if proj.FinalValue() != 12000 {
		t.Fatalf("FinalValue() = %v, want 12000", proj.FinalValue())
	}

	var calls int
	var last Projection
	p.OnChange(func(_ Request, proj Projection, _ error) {
		calls++
		last = proj
	})

	if err := p.Update(func(r *Request) { r.Years = 2 }); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
	if len(last) != 25 || last.FinalValue() != 24000 {
		t.Errorf("listener got %d points ending at %v, want 25 points ending at 24000", len(last), last.FinalValue())
	}
	// the first projection is left untouched.
	if len(proj) != 13 {
		t.Errorf("previous projection has %d points, want 13", len(proj))
	}
	if got := p.Request().Years; got != 2 {
		t.Errorf("Request().Years = %d, want 2", got)
	}
}

func TestPlanner_UpdateError(t *testing.T) {
	p := NewPlanner(Request{Monthly: 1000, Years: 1})
	var gotErr error
	p.OnChange(func(_ Request, _ Projection, err error) { gotErr = err })

	err := p.Update(func(r *Request) { r.Inflation = -1 })
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("Update() error = %v, want ErrDomain", err)
	}
	if !errors.Is(gotErr, ErrDomain) {
		t.Errorf("listener error = %v, want ErrDomain", gotErr)
	}
	if proj, err := p.Projection(); proj != nil || err == nil {
		t.Errorf("Projection() = %v, %v, want nil and an error", proj, err)
	}
}

func TestPlanner_ListenerAddsListener(t *testing.T) {
	p := NewPlanner(Request{Monthly: 1000, Years: 1})
	var first, second int
	p.OnChange(func(Request, Projection, error) {
		first++
		if first == 1 {
			p.OnChange(func(Request, Projection, error) { second++ })
		}
	})

	p.Update(func(r *Request) { r.Monthly = 2000 })
	if first != 1 || second != 0 {
		t.Errorf("after first Update: calls = %d, %d, want 1, 0", first, second)
	}
	p.Update(func(r *Request) { r.Monthly = 3000 })
	if first != 2 || second != 1 {
		t.Errorf("after second Update: calls = %d, %d, want 2, 1", first, second)
	}
}
