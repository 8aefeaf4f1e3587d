package domain

import "time"

// Attribute is one key/value(s) record attached to a listing. The search API
// uses the same shape for attributes and extendedAttributes.
type Attribute struct {
	Key    string   `json:"key"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Listing is one item offered for sale, as represented by one search result.
type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Date has calendar-date precision. Nil when the upstream value could
	// not be parsed.
	Date     *time.Time      `json:"date,omitempty"`
	Seller   ListingSeller   `json:"seller"`
	Location ListingLocation `json:"location"`
	// Price in euros, converted from the cent amount on the wire.
	Price     float64   `json:"price"`
	PriceType PriceType `json:"price_type"`
	// Link is always <redirect domain>/<id>, never taken from the response.
	Link       string             `json:"link"`
	FirstImage *ListingFirstImage `json:"first_image,omitempty"`
	CategoryID int                `json:"category_id"`
	// Never nil; a listing without attributes gets an empty slice.
	Attributes         []Attribute `json:"attributes"`
	ExtendedAttributes []Attribute `json:"extended_attributes"`
}

// Equal compares by ID only.
func (l Listing) Equal(other Listing) bool {
	return l.ID == other.ID
}

// PriceAsString renders the price the way Marktplaats displays it, in the
// given language ("en" or "nl").
func (l Listing) PriceAsString(euroSign bool, lang string) (string, error) {
	return l.PriceType.Label(l.Price, euroSign, lang)
}
