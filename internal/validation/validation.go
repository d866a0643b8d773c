package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// IssueType identifies the kind of integrity problem
type IssueType string

const (
	IssueDuplicateID      IssueType = "duplicate_id"
	IssueInvalidDate      IssueType = "invalid_date"
	IssueHistoryOrder     IssueType = "history_order"
	IssueNegativeValue    IssueType = "negative_value"
	IssueTotalDrift       IssueType = "total_drift"
	IssueInvalidGoal      IssueType = "invalid_goal"
	IssueUnknownChallenge IssueType = "unknown_challenge"
	IssueInvalidAnswers   IssueType = "invalid_answers"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MaxTotalDrift is the largest accepted gap between a stored total and the
// sum of its independently rounded categories.
const MaxTotalDrift = 3

// Issue is one detected problem
type Issue struct {
	Type        IssueType
	Severity    Severity
	ID          string // offending record, if any
	Description string
}

// Report collects the issues of every check
type Report struct {
	Issues []Issue
}

func (r *Report) add(t IssueType, sev Severity, id, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{Type: t, Severity: sev, ID: id, Description: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any issue is an error rather than a warning
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues with the given severity
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all issues
func (r *Report) FormatReport() string {
	if len(r.Issues) == 0 {
		return "No issues detected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s), %d warning(s):\n", r.Count(SeverityError), r.Count(SeverityWarning))
	for _, i := range r.Issues {
		fmt.Fprintf(&b, "- [%s] %s\n", i.Severity, i.Description)
	}
	return b.String()
}

// Input is the stored state to check. Catalog lists known challenges;
// nil skips the challenge id check.
type Input struct {
	History   []models.HistoricalEntry
	Goals     []models.PersonalGoal
	Completed []string
	Catalog   []models.Challenge
	Footprint *models.CurrentFootprint
}

// Validate runs every check over in
func Validate(in Input) Report {
	var r Report
	checkHistory(&r, in.History)
	checkGoals(&r, in.Goals)
	checkCompleted(&r, in.Completed, in.Catalog)
	if in.Footprint != nil {
		checkFootprint(&r, *in.Footprint)
	}
	return r
}

func checkBreakdown(r *Report, id, label string, b models.FootprintBreakdown) {
	values := []struct {
		name string
		v    int
	}{
		{"transport", b.Transport}, {"energy", b.Energy}, {"food", b.Food},
		{"consumption", b.Consumption}, {"total", b.Total},
	}
	for _, f := range values {
		if f.v < 0 {
			r.add(IssueNegativeValue, SeverityError, id, "%s has negative %s value %d", label, f.name, f.v)
		}
	}

	sum := b.Transport + b.Energy + b.Food + b.Consumption
	if drift := b.Total - sum; drift > MaxTotalDrift || drift < -MaxTotalDrift {
		r.add(IssueTotalDrift, SeverityWarning, id, "%s total %d differs from category sum %d", label, b.Total, sum)
	}
}

func checkHistory(r *Report, history []models.HistoricalEntry) {
	seen := make(map[string]bool, len(history))
	var prev time.Time
	for i, e := range history {
		label := fmt.Sprintf("history entry %q", e.ID)
		if e.ID == "" {
			r.add(IssueDuplicateID, SeverityError, "", "history entry #%d has an empty id", i+1)
		} else if seen[e.ID] {
			r.add(IssueDuplicateID, SeverityError, e.ID, "duplicate history id %q", e.ID)
		}
		seen[e.ID] = true

		d, err := time.Parse(constants.DateFormat, e.Date)
		if err != nil {
			r.add(IssueInvalidDate, SeverityError, e.ID, "%s has invalid date %q", label, e.Date)
		} else {
			if !prev.IsZero() && d.After(prev) {
				r.add(IssueHistoryOrder, SeverityWarning, e.ID, "%s (%s) is newer than the entry before it", label, e.Date)
			}
			prev = d
		}

		checkBreakdown(r, e.ID, label, e.Data)
	}
}

func checkGoals(r *Report, goals []models.PersonalGoal) {
	seen := make(map[string]bool, len(goals))
	for _, g := range goals {
		if g.ID != "" && seen[g.ID] {
			r.add(IssueDuplicateID, SeverityError, g.ID, "duplicate goal id %q", g.ID)
		}
		seen[g.ID] = true

		if g.ID == "" {
			r.add(IssueInvalidGoal, SeverityError, "", "goal %q has an empty id", g.Title)
		}
		if err := g.Validate(); err != nil {
			r.add(IssueInvalidGoal, SeverityError, g.ID, "goal %q: %v", g.Title, err)
		}
	}
}

func checkCompleted(r *Report, ids []string, catalog []models.Challenge) {
	known := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		known[c.ID] = true
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			r.add(IssueDuplicateID, SeverityWarning, id, "challenge %q is marked completed twice", id)
		}
		seen[id] = true
		if catalog != nil && !known[id] {
			r.add(IssueUnknownChallenge, SeverityWarning, id, "completed challenge %q is not in the catalog", id)
		}
	}
}

func checkFootprint(r *Report, fp models.CurrentFootprint) {
	checkBreakdown(r, "", "current footprint", fp.Breakdown)
	if _, err := models.ParseVehicleType(string(fp.Answers.VehicleType)); err != nil {
		r.add(IssueInvalidAnswers, SeverityError, "", "current footprint: %v", err)
	}
	if _, err := models.ParseHeatingType(string(fp.Answers.HeatingType)); err != nil {
		r.add(IssueInvalidAnswers, SeverityError, "", "current footprint: %v", err)
	}
}
