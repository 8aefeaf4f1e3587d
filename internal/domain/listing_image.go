package domain

// ListingFirstImage holds the resized URLs of the first picture of a search
// result. Only the first picture is kept from the search payload; the full
// set comes from scraping the listing's detail page instead.
type ListingFirstImage struct {
	ExtraSmall string `json:"extra_small"`
	Medium     string `json:"medium"`
	Large      string `json:"large"`
	ExtraLarge string `json:"extra_large"`
}
