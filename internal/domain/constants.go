package domain

// Default limits for landing and detail pages
const (
	DefaultFeaturedLimit       = 5
	DefaultPromotionsLimit     = 3
	DefaultRecentBookingsLimit = 5
	MaxListLimit               = 50
)

// Business validation constants
const (
	MinRating            = 1
	MaxRating            = 5
	MinHotelStars        = 1
	MaxHotelStars        = 5
	MinHeadcount         = 1
	MaxReviewTextLength  = 2000
	MaxTourTitleLength   = 200
	MaxSearchQueryLength = 200
)

// FilterAll значение фильтра, означающее "без ограничения"
const FilterAll = "all"

// InactiveStatuses статусы бронирований, которые не занимают и не будут занимать места
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
