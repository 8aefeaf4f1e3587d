package domain

// ListingLocation is the location payload of a search result. Every field is
// optional: the API marks unknown coordinates as 0 and an unknown distance as
// -1000, both of which are normalized to nil at parse time.
type ListingLocation struct {
	City         *string  `json:"city,omitempty"`
	Country      *string  `json:"country,omitempty"`
	CountryShort *string  `json:"country_short,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	// Distance to the search postcode, in meters.
	Distance *int `json:"distance,omitempty"`
}
