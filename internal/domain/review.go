package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReviewTargetKind tells what a review is about
type ReviewTargetKind string

const (
	ReviewTargetTour  ReviewTargetKind = "tour"
	ReviewTargetHotel ReviewTargetKind = "hotel"
)

// ReviewTarget is either a tour or a hotel, never both and never neither.
// The zero value is invalid; construct it with TourTarget or HotelTarget.
type ReviewTarget struct {
	kind ReviewTargetKind
	id   int64
}

// TourTarget creates a review target for a tour
func TourTarget(tourID int64) ReviewTarget {
	return ReviewTarget{kind: ReviewTargetTour, id: tourID}
}

// HotelTarget creates a review target for a hotel
func HotelTarget(hotelID int64) ReviewTarget {
	return ReviewTarget{kind: ReviewTargetHotel, id: hotelID}
}

// NewReviewTarget builds a target from two nullable references, exactly one must be set
func NewReviewTarget(tourID, hotelID *int64) (ReviewTarget, error) {
	switch {
	case tourID != nil && hotelID == nil:
		return TourTarget(*tourID), nil
	case hotelID != nil && tourID == nil:
		return HotelTarget(*hotelID), nil
	default:
		return ReviewTarget{}, ErrInvalidReviewTarget
	}
}

func (t ReviewTarget) Kind() ReviewTargetKind { return t.kind }
func (t ReviewTarget) ID() int64              { return t.id }
func (t ReviewTarget) IsZero() bool           { return t.kind == "" }

// TourID returns the tour reference or nil for hotel reviews
func (t ReviewTarget) TourID() *int64 {
	if t.kind != ReviewTargetTour {
		return nil
	}
	id := t.id
	return &id
}

// HotelID returns the hotel reference or nil for tour reviews
func (t ReviewTarget) HotelID() *int64 {
	if t.kind != ReviewTargetHotel {
		return nil
	}
	id := t.id
	return &id
}

// Review represents a user's rating of a tour or a hotel
type Review struct {
	ID        int64
	UserID    int64
	Target    ReviewTarget
	Rating    int
	Text      string
	CreatedAt time.Time
}

// NewReview validates and creates a review
func NewReview(userID int64, target ReviewTarget, rating int, text string, now time.Time) (*Review, error) {
	if target.IsZero() {
		return nil, ErrInvalidReviewTarget
	}
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return &Review{
		UserID:    userID,
		Target:    target,
		Rating:    rating,
		Text:      strings.TrimSpace(text),
		CreatedAt: now,
	}, nil
}

// RatingSummary aggregated ratings of one target
type RatingSummary struct {
	Count int64
	Sum   int64
}

// Average returns the mean rating rounded to two places, false when there are no reviews
func (s RatingSummary) Average() (decimal.Decimal, bool) {
	if s.Count == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(s.Sum).DivRound(decimal.NewFromInt(s.Count), 2), true
}
