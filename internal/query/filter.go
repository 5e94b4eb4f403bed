package query

import (
	"slices"
	"strings"

	"go-jobboard-backend/internal/domain"
)

// FilterJobs returns the jobs that satisfy every active predicate of f,
// in input order.
//
// The salary bounds test containment: MinSalary is compared against the
// lower end of the range and MaxSalary against the upper end, so a job whose
// range only overlaps the bounds is excluded. A bound of zero is the same
// as no bound.
func FilterJobs(jobs []domain.Job, f domain.JobFilter) []domain.Job {
	location := strings.ToLower(f.Location)
	keyword := strings.ToLower(f.Query)

	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if lo, ok := salaryBound(f.MinSalary); ok && job.SalaryRange.Min < lo {
			continue
		}
		if hi, ok := salaryBound(f.MaxSalary); ok && job.SalaryRange.Max > hi {
			continue
		}
		if len(f.JobTypes) > 0 && !slices.Contains(f.JobTypes, job.Type) {
			continue
		}
		if len(f.ExperienceLevels) > 0 && !slices.Contains(f.ExperienceLevels, job.ExperienceLevel) {
			continue
		}
		if keyword != "" && !matchesKeyword(job, keyword) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func salaryBound(p *int64) (int64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}

// matchesKeyword checks title, company name and requirements. keyword is lowercased.
func matchesKeyword(job domain.Job, keyword string) bool {
	if strings.Contains(strings.ToLower(job.Title), keyword) {
		return true
	}
	if job.Company != nil && strings.Contains(strings.ToLower(job.Company.Name), keyword) {
		return true
	}
	for _, req := range job.Requirements {
		if strings.Contains(strings.ToLower(req), keyword) {
			return true
		}
	}
	return false
}

// JobsByCompany returns the open positions of one company
func JobsByCompany(jobs []domain.Job, companyID int64) []domain.Job {
	out := make([]domain.Job, 0)
	for _, job := range jobs {
		if job.CompanyID == companyID {
			out = append(out, job)
		}
	}
	return out
}

// FilterCompanies keeps companies whose name or industry contains f.Search
// (case-insensitive) and, when set, whose industry equals f.Industry exactly.
func FilterCompanies(companies []domain.Company, f domain.CompanyFilter) []domain.Company {
	search := strings.ToLower(f.Search)

	out := make([]domain.Company, 0, len(companies))
	for _, c := range companies {
		matchesSearch := strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(strings.ToLower(c.Industry), search)
		matchesIndustry := f.Industry == "" || c.Industry == f.Industry
		if matchesSearch && matchesIndustry {
			out = append(out, c)
		}
	}
	return out
}

// Industries returns the distinct industries, sorted
func Industries(companies []domain.Company) []string {
	seen := make(map[string]struct{}, len(companies))
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		if _, ok := seen[c.Industry]; ok {
			continue
		}
		seen[c.Industry] = struct{}{}
		out = append(out, c.Industry)
	}
	slices.Sort(out)
	return out
}
