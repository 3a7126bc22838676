package domain

// Country reference entity
type Country struct {
	ID     int64
	Name   string
	Cities []City
}

// City belongs to exactly one country
type City struct {
	ID        int64
	Name      string
	CountryID int64
}

// Hotel represents accommodation used by tours
type Hotel struct {
	ID          int64
	Name        string
	Stars       int
	Address     string
	Description string
	CountryID   *int64
	CityID      *int64
	CountryName string
	CityName    string
	ImageIDs    []int64
}

// HasValidStars returns true if stars are within 1..5
func (h *Hotel) HasValidStars() bool {
	return h.Stars >= MinHotelStars && h.Stars <= MaxHotelStars
}

// Image stored picture reference
type Image struct {
	ID      int64
	File    string
	Caption string
}
