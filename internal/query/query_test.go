package query_test

import (
	"time"

	"go-jobboard-backend/internal/domain"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func newJob(id int64, title, location, jobType string, min, max int64, daysAgo int) domain.Job {
	return domain.Job{
		ID:          id,
		CompanyID:   id%3 + 1,
		Title:       title,
		Location:    location,
		Type:        jobType,
		SalaryRange: domain.SalaryRange{Min: min, Max: max},
		PostedDate:  baseTime.AddDate(0, 0, -daysAgo),
	}
}

func sampleJobs() []domain.Job {
	jobs := []domain.Job{
		newJob(1, "Senior Go Engineer", "San Francisco, CA", domain.JobTypeFullTime, 150000, 190000, 1),
		newJob(2, "frontend developer", "Remote", domain.JobTypeRemote, 90000, 120000, 3),
		newJob(3, "Data Analyst", "New York, NY", domain.JobTypeContract, 60000, 80000, 2),
		newJob(4, "Backend Engineer", "Austin, TX", domain.JobTypeHybrid, 110000, 140000, 5),
		newJob(5, "Product Designer", "san francisco, CA", domain.JobTypePartTime, 50000, 70000, 4),
	}
	jobs[0].ExperienceLevel = domain.ExperienceSenior
	jobs[0].Requirements = []string{"Go", "Kubernetes"}
	jobs[1].ExperienceLevel = domain.ExperienceMid
	jobs[1].Company = &domain.CompanySummary{ID: 2, Name: "Pixel Labs"}
	jobs[3].ExperienceLevel = domain.ExperienceMid
	return jobs
}

func ids(jobs []domain.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
