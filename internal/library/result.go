package library

import "github.com/backmassage/mediareport/internal/term"

// Status thresholds on the average of the three coverage percentages.
const (
	StatusGoodMin = 85.0
	StatusFairMin = 70.0
)

// Coverage is the number of media files with one kind of companion and
// that number as a percentage of the library total.
type Coverage struct {
	Count   int
	Percent float64
}

// Status is the overall verdict for a library.
type Status struct {
	Severity term.Severity
	Label    string
	Message  string
	Color    string
}

// ScanResult holds the counts for one library root. When Total is zero
// only Root is set.
type ScanResult struct {
	Root      string
	Total     int
	Info      Coverage
	Subtitles Coverage
	Images    Coverage
	Status    Status
}

// Empty reports whether the scan found no media files.
func (r ScanResult) Empty() bool { return r.Total == 0 }

// Average returns the unweighted mean of the three percentages, or 0 for an
// empty result.
func (r ScanResult) Average() float64 {
	if r.Empty() {
		return 0
	}
	return (r.Info.Percent + r.Subtitles.Percent + r.Images.Percent) / 3
}

// newCoverage computes count as a percentage of total. total must be > 0.
func newCoverage(count, total int) Coverage {
	return Coverage{Count: count, Percent: float64(count) / float64(total) * 100}
}

// StatusSeverity maps an average percentage onto a status tier; both
// boundaries are inclusive on the upper tier.
func StatusSeverity(avg float64) term.Severity {
	switch {
	case avg >= StatusGoodMin:
		return term.SeverityGood
	case avg >= StatusFairMin:
		return term.SeverityFair
	default:
		return term.SeverityPoor
	}
}

var statusMessages = map[term.Severity]string{
	term.SeverityGood: "Most items are complete",
	term.SeverityFair: "Some missing metadata",
	term.SeverityPoor: "Many items incomplete",
}

// StatusFor builds the status tuple for avg, colored from pal.
func StatusFor(avg float64, pal term.Palette) Status {
	sev := StatusSeverity(avg)
	return Status{
		Severity: sev,
		Label:    sev.String(),
		Message:  statusMessages[sev],
		Color:    pal.Color(sev),
	}
}
