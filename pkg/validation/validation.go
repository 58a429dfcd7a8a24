// Package validation collects findings about a room project and its layout.
// Findings never stop the editor: geometry degrades to a fallback value and
// the report explains what happened.
package validation

import (
	"fmt"
	"strings"
)

// Level names the pass that produced a finding: schema checks on room.yaml,
// or spatial checks made while placing racks and AC units.
type Level string

const (
	LevelSchema  Level = "schema"
	LevelSpatial Level = "spatial"
)

// Severity orders findings. Only errors make a report invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding. Field is the room.yaml path it concerns, such as
// "racks.count" or "ac_units[2].side".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Field       string   `json:"field,omitempty"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report groups findings by severity.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.summarize()
	return r
}

func (r *Report) AddError(result Result)   { r.add(SeverityError, result) }
func (r *Report) AddWarning(result Result) { r.add(SeverityWarning, result) }
func (r *Report) AddInfo(result Result)    { r.add(SeverityInfo, result) }

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.summarize()
}

// Merge appends other's findings. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.summarize()
}

// ForField returns the findings recorded against field or any path below it,
// errors first. "ac_units[2]" matches "ac_units[2].side" but not
// "ac_units[20]".
func (r *Report) ForField(field string) []Result {
	var out []Result
	for _, group := range [][]Result{r.Errors, r.Warnings, r.Info} {
		for _, res := range group {
			if under(res.Field, field) {
				out = append(out, res)
			}
		}
	}
	return out
}

func under(path, field string) bool {
	if !strings.HasPrefix(path, field) {
		return false
	}
	rest := path[len(field):]
	return rest == "" || rest[0] == '.' || rest[0] == '['
}

func (r *Report) summarize() {
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"), len(r.Info))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
