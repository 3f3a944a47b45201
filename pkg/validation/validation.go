// Package validation collects findings about request parameters and input
// data into a single report.
package validation

import (
	"fmt"
	"strings"
)

// Scope names the stage that produced a finding.
type Scope string

const (
	ScopeParameter Scope = "parameter"
	ScopeGrid      Scope = "grid"
	ScopeData      Scope = "data"
)

// Severity separates findings that reject a request from advisory ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem with a named field.
type Finding struct {
	Scope    Scope    `json:"scope"`
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Got      any      `json:"got,omitempty"`
	Want     string   `json:"want,omitempty"`
	Hints    []string `json:"hints,omitempty"`
}

// Report groups findings by severity. A report with any error is invalid.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Summary  string    `json:"summary"`
}

func NewReport() *Report {
	r := &Report{Valid: true, Errors: []Finding{}, Warnings: []Finding{}}
	r.summarize()
	return r
}

// Fail records f as an error.
func (r *Report) Fail(f Finding) {
	f.Severity = SeverityError
	r.Errors = append(r.Errors, f)
	r.Valid = false
	r.summarize()
}

// Warn records f without invalidating the report.
func (r *Report) Warn(f Finding) {
	f.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, f)
	r.summarize()
}

// Merge appends the findings of o.
func (r *Report) Merge(o *Report) {
	if o == nil {
		return
	}
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
	r.Valid = r.Valid && o.Valid
	r.summarize()
}

// Messages joins the error messages with "; ".
func (r *Report) Messages() string {
	var b strings.Builder
	for i, f := range r.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Message)
	}
	return b.String()
}

func (r *Report) summarize() {
	r.Summary = plural(len(r.Errors), "error") + ", " + plural(len(r.Warnings), "warning")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
