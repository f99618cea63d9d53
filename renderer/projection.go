package renderer

import "github.com/etnz/finpredictor"

// Projection is the data of a projection report.
type Projection struct {
	Request finpredictor.Request
	View    finpredictor.View
	Points  finpredictor.Projection
}

// Final returns the last real value of the projection.
func (p Projection) Final() float64 { return p.Points.FinalValue() }

// ProjectionMarkdown renders a projection, its inputs first.
func ProjectionMarkdown(req finpredictor.Request, view finpredictor.View, points finpredictor.Projection) string {
	partials := map[string]string{
		"projection_inputs": "projection_inputs.md",
		"projection_points": "projection_points.md",
	}
	return renderTemplate("projection", "projection.md", partials, Projection{Request: req, View: view, Points: points})
}

// SIP is the data of a required SIP report.
type SIP struct {
	Target    float64
	Years     float64
	Starting  float64
	Return    finpredictor.Rate
	Inflation finpredictor.Rate
	Monthly   float64
}

// SIPMarkdown renders the monthly contribution required to reach a target.
func SIPMarkdown(s SIP) string {
	return renderTemplate("sip", "sip.md", nil, s)
}
