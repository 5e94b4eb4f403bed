package query

import (
	"math"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/domain"
)

// StatusAll is the pass-through value of the status and type filters
const StatusAll = "all"

// CountBy builds a histogram of items keyed by keyFn
func CountBy[T any, K comparable](items []T, keyFn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	return counts
}

// ApplicationStatusCounts counts applications per status. Statuses are
// compared case-insensitively and every bucket is present.
func ApplicationStatusCounts[T interface{ GetStatus() string }](apps []T) domain.StatusCounts {
	counts := CountBy(apps, func(a T) string { return strings.ToLower(a.GetStatus()) })
	return domain.StatusCounts{
		All:       len(apps),
		Submitted: counts[domain.ApplicationStatusSubmitted],
		Reviewed:  counts[domain.ApplicationStatusReviewed],
		Interview: counts[domain.ApplicationStatusInterview],
		Rejected:  counts[domain.ApplicationStatusRejected],
		Offered:   counts[domain.ApplicationStatusOffered],
	}
}

// FilterApplicationsByStatus keeps applications with the given status, or
// all of them for StatusAll.
func FilterApplicationsByStatus[T interface{ GetStatus() string }](apps []T, status string) []T {
	out := make([]T, 0, len(apps))
	for _, app := range apps {
		if status == StatusAll || status == "" || strings.ToLower(app.GetStatus()) == status {
			out = append(out, app)
		}
	}
	return out
}

// NotificationTypeCounts counts notifications per type
func NotificationTypeCounts(ns []domain.Notification) domain.TypeCounts {
	counts := CountBy(ns, func(n domain.Notification) string { return n.Type })
	return domain.TypeCounts{
		All:         len(ns),
		Application: counts[domain.NotificationTypeApplication],
		Job:         counts[domain.NotificationTypeJob],
		Account:     counts[domain.NotificationTypeAccount],
	}
}

// FilterNotificationsByType keeps notifications of one type, or all for StatusAll
func FilterNotificationsByType(ns []domain.Notification, notificationType string) []domain.Notification {
	out := make([]domain.Notification, 0, len(ns))
	for _, n := range ns {
		if notificationType == StatusAll || notificationType == "" || n.Type == notificationType {
			out = append(out, n)
		}
	}
	return out
}

func UnreadCount(ns []domain.Notification) int {
	unread := 0
	for _, n := range ns {
		if !n.Read {
			unread++
		}
	}
	return unread
}

// AverageRating is the mean rating rounded to one decimal, or 0 for no reviews
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// RatingDistribution returns all five star buckets from 5 down to 1.
// Ratings outside 1..5 are not counted.
func RatingDistribution(reviews []domain.Review) []domain.RatingBucket {
	counts := CountBy(reviews, func(r domain.Review) int { return r.Rating })
	buckets := make([]domain.RatingBucket, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		buckets = append(buckets, domain.RatingBucket{Rating: rating, Count: counts[rating]})
	}
	return buckets
}

func SummarizeReviews(reviews []domain.Review) domain.ReviewSummary {
	return domain.ReviewSummary{
		Total:        len(reviews),
		Average:      AverageRating(reviews),
		Distribution: RatingDistribution(reviews),
	}
}

// FilterReviewsByRating keeps reviews with exactly the selected rating
func FilterReviewsByRating(reviews []domain.Review, rating domain.RatingFilter) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if rating == domain.RatingAll || r.Rating == int(rating) {
			out = append(out, r)
		}
	}
	return out
}

// ParseRatingFilter accepts "all", "" or a star count between 1 and 5
func ParseRatingFilter(s string) (domain.RatingFilter, bool) {
	if s == "" || s == StatusAll {
		return domain.RatingAll, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return domain.RatingFilter(n), true
}
