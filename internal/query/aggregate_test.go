package query_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"

	"github.com/stretchr/testify/assert"
)

func apps(statuses ...string) []domain.Application {
	out := make([]domain.Application, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, domain.Application{ID: int64(i + 1), Status: s})
	}
	return out
}

func reviews(ratings ...int) []domain.Review {
	out := make([]domain.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, domain.Review{ID: int64(i + 1), Rating: r})
	}
	return out
}

func TestApplicationStatusCounts(t *testing.T) {
	t.Run("Should count each status and the total", func(t *testing.T) {
		counts := query.ApplicationStatusCounts(apps("submitted", "submitted", "interview", "rejected"))
		assert.Equal(t, domain.StatusCounts{All: 4, Submitted: 2, Interview: 1, Rejected: 1}, counts)
	})

	t.Run("Should compare statuses case-insensitively", func(t *testing.T) {
		counts := query.ApplicationStatusCounts(apps("Offered", "OFFERED", "reviewed"))
		assert.Equal(t, 2, counts.Offered)
		assert.Equal(t, 1, counts.Reviewed)
	})

	t.Run("Should work over joined details", func(t *testing.T) {
		details := []domain.ApplicationDetail{
			{Application: domain.Application{Status: "interview"}},
			{Application: domain.Application{Status: "offered"}},
		}
		counts := query.ApplicationStatusCounts(details)
		assert.Equal(t, 2, counts.All)
		assert.Equal(t, 1, counts.Interview)
		assert.Equal(t, 1, counts.Offered)
	})

	t.Run("Unknown statuses count only towards all", func(t *testing.T) {
		counts := query.ApplicationStatusCounts(apps("withdrawn", "submitted"))
		assert.Equal(t, 2, counts.All)
		sum := counts.Submitted + counts.Reviewed + counts.Interview + counts.Rejected + counts.Offered
		assert.Equal(t, 1, sum)
	})
}

func TestFilterApplicationsByStatus(t *testing.T) {
	list := apps("submitted", "Interview", "rejected", "interview")

	assert.Len(t, query.FilterApplicationsByStatus(list, query.StatusAll), 4)
	assert.Len(t, query.FilterApplicationsByStatus(list, ""), 4)

	got := query.FilterApplicationsByStatus(list, domain.ApplicationStatusInterview)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	assert.Empty(t, query.FilterApplicationsByStatus(list, domain.ApplicationStatusOffered))
}

func TestNotificationAggregates(t *testing.T) {
	ns := []domain.Notification{
		{ID: 1, Type: domain.NotificationTypeApplication, Read: false},
		{ID: 2, Type: domain.NotificationTypeJob, Read: true},
		{ID: 3, Type: domain.NotificationTypeApplication, Read: true},
		{ID: 4, Type: domain.NotificationTypeAccount, Read: false},
	}

	assert.Equal(t, domain.TypeCounts{All: 4, Application: 2, Job: 1, Account: 1}, query.NotificationTypeCounts(ns))
	assert.Equal(t, 2, query.UnreadCount(ns))
	assert.Len(t, query.FilterNotificationsByType(ns, domain.NotificationTypeApplication), 2)
	assert.Len(t, query.FilterNotificationsByType(ns, query.StatusAll), 4)
	assert.Equal(t, 0, query.UnreadCount(nil))
}

func TestReviewSummary(t *testing.T) {
	t.Run("Should average and bucket ratings", func(t *testing.T) {
		summary := query.SummarizeReviews(reviews(5, 5, 4, 3, 5))
		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 4.4, summary.Average)
		assert.Equal(t, []domain.RatingBucket{
			{Rating: 5, Count: 3},
			{Rating: 4, Count: 1},
			{Rating: 3, Count: 1},
			{Rating: 2, Count: 0},
			{Rating: 1, Count: 0},
		}, summary.Distribution)
	})

	t.Run("No reviews average to zero with empty buckets", func(t *testing.T) {
		summary := query.SummarizeReviews(nil)
		assert.Equal(t, 0.0, summary.Average)
		assert.Len(t, summary.Distribution, 5)
		for _, b := range summary.Distribution {
			assert.Zero(t, b.Count)
		}
	})

	t.Run("Average rounds to one decimal", func(t *testing.T) {
		assert.Equal(t, 3.7, query.AverageRating(reviews(4, 4, 3)))
		assert.Equal(t, 1.5, query.AverageRating(reviews(1, 2)))
	})

	t.Run("Average stays within the rating bounds and buckets sum to total", func(t *testing.T) {
		sets := [][]int{{1}, {5}, {1, 5}, {2, 2, 3}, {5, 4, 4, 4, 1, 1, 3}}
		for _, set := range sets {
			rs := reviews(set...)
			avg := query.AverageRating(rs)
			assert.GreaterOrEqual(t, avg, 1.0)
			assert.LessOrEqual(t, avg, 5.0)

			sum := 0
			for _, b := range query.RatingDistribution(rs) {
				sum += b.Count
			}
			assert.Equal(t, len(rs), sum)
		}
	})
}

func TestFilterReviewsByRating(t *testing.T) {
	rs := reviews(5, 3, 5, 1)

	assert.Len(t, query.FilterReviewsByRating(rs, domain.RatingAll), 4)

	fives := query.FilterReviewsByRating(rs, domain.RatingFilter(5))
	assert.Len(t, fives, 2)
	for _, r := range fives {
		assert.Equal(t, 5, r.Rating)
	}

	assert.Empty(t, query.FilterReviewsByRating(rs, domain.RatingFilter(2)))
}

func TestParseRatingFilter(t *testing.T) {
	cases := []struct {
		in   string
		want domain.RatingFilter
		ok   bool
	}{
		{"", domain.RatingAll, true},
		{"all", domain.RatingAll, true},
		{"1", 1, true},
		{"5", 5, true},
		{"0", 0, false},
		{"6", 0, false},
		{"five", 0, false},
	}
	for _, tc := range cases {
		got, ok := query.ParseRatingFilter(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCountBy(t *testing.T) {
	counts := query.CountBy([]string{"a", "b", "a"}, func(s string) string { return s })
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, counts)
}
