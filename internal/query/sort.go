package query

import (
	"cmp"
	"slices"

	"go-jobboard-backend/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortJobs returns a stably ordered copy of jobs. Ties keep their input
// order. An unknown key returns the jobs unchanged.
func SortJobs(jobs []domain.Job, key domain.SortKey) []domain.Job {
	out := slices.Clone(jobs)
	if out == nil {
		out = []domain.Job{}
	}

	switch key {
	case domain.SortRecent:
		slices.SortStableFunc(out, func(a, b domain.Job) int {
			return b.PostedDate.Compare(a.PostedDate)
		})
	case domain.SortSalaryHigh:
		slices.SortStableFunc(out, func(a, b domain.Job) int {
			return cmp.Compare(b.SalaryRange.Max, a.SalaryRange.Max)
		})
	case domain.SortSalaryLow:
		slices.SortStableFunc(out, func(a, b domain.Job) int {
			return cmp.Compare(a.SalaryRange.Min, b.SalaryRange.Min)
		})
	case domain.SortTitle:
		// A collator keeps internal buffers, so one per call
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b domain.Job) int {
			return col.CompareString(a.Title, b.Title)
		})
	}
	return out
}
