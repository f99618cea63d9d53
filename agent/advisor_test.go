package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/date"
	"github.com/etnz/finpredictor/store"
	"github.com/google/go-cmp/cmp"
)

type fakeModel struct {
	calls   int
	prompt  string
	answer  []finpredictor.Insight
	failure error
}

func (m *fakeModel) GenerateInsights(_ context.Context, prompt string) ([]finpredictor.Insight, error) {
	m.calls++
	m.prompt = prompt
	return m.answer, m.failure
}

func TestAdvisor_Demo(t *testing.T) {
	a := &Advisor{}
	got, err := a.Predict(context.Background(), finpredictor.PredictionRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	want := finpredictor.Prediction{Recommendations: DemoInsights, Note: DemoNote}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Predict() mismatch (-want +got):\n%s", diff)
	}
	if titles := len(got.Recommendations); titles != 4 {
		t.Errorf("got %d demo insights, want 4", titles)
	}
}

func TestAdvisor_MissingUser(t *testing.T) {
	_, err := (&Advisor{}).Predict(context.Background(), finpredictor.PredictionRequest{})
	if !errors.Is(err, finpredictor.ErrInvalid) {
		t.Errorf("Predict() error = %v, want %v", err, finpredictor.ErrInvalid)
	}
}

func TestAdvisor_ModelFailureFallsBack(t *testing.T) {
	m := &fakeModel{failure: errors.New("quota exceeded")}
	cache := store.NewMemoryCache()
	a := &Advisor{Model: m, Cache: cache, TTL: time.Hour}

	got, err := a.Predict(context.Background(), finpredictor.PredictionRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Note != DemoNote {
		t.Errorf("Predict() note = %q, want the demo note", got.Note)
	}
	if _, ok := cache.Get(context.Background(), "prediction:u1"); ok {
		t.Error("a fallback prediction was cached")
	}
}

func TestAdvisor_CachesModelPredictions(t *testing.T) {
	ctx := context.Background()
	m := &fakeModel{answer: []finpredictor.Insight{{Title: "Raise SIP", Detail: "Add ₹2,000 a month."}}}
	a := &Advisor{
		Model: m,
		Cache: store.NewMemoryCache(),
		TTL:   time.Hour,
		Today: func() date.Date { return date.New(2025, time.January, 1) },
	}
	goal := finpredictor.Goal{
		Title:              "Car",
		TargetAmount:       30000,
		TargetDate:         date.New(2026, time.January, 1),
		CurrentSIP:         2500,
		ExpectedReturnRate: 0,
		InflationRate:      0,
	}
	req := finpredictor.PredictionRequest{UserID: "u1", Goals: []finpredictor.Goal{goal}}

	for range 2 {
		got, err := a.Predict(ctx, req)
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}
		if diff := cmp.Diff(finpredictor.Prediction{Recommendations: m.answer}, got); diff != "" {
			t.Errorf("Predict() mismatch (-want +got):\n%s", diff)
		}
	}
	if m.calls != 1 {
		t.Errorf("model called %d times, want 1", m.calls)
	}
	for _, want := range []string{"Today is 2025-01-01", "Car: ₹30,000.00 projected"} {
		if !strings.Contains(m.prompt, want) {
			t.Errorf("prompt does not contain %q:\n%s", want, m.prompt)
		}
	}
}

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []finpredictor.Insight
		wantErr bool
	}{
		{
			name: "plain",
			in:   `[{"title":"A","detail":"a"}]`,
			want: []finpredictor.Insight{{Title: "A", Detail: "a"}},
		},
		{
			name: "fenced",
			in:   "```json\n[{\"title\":\"A\",\"detail\":\"a\"},{\"title\":\"\",\"detail\":\"dropped\"}]\n```",
			want: []finpredictor.Insight{{Title: "A", Detail: "a"}},
		},
		{name: "empty", in: `[]`, wantErr: true},
		{name: "not json", in: `Sure! Here are insights`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsights(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInsights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseInsights() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
