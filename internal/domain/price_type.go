package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is returned when a price label is requested in a
// language the library has no translations for.
var ErrUnsupportedLanguage = errors.New("unsupported language (supported: en, nl)")

// PriceType is the pricing mode of a listing. The values match the strings
// the Marktplaats search API puts on the wire.
type PriceType string

const (
	// "Gratis", price is 0
	PriceTypeFree PriceType = "FREE"
	// "Bieden", price is 0
	PriceTypeBid PriceType = "FAST_BID"
	// "Gereserveerd", price is 0
	PriceTypeReserved PriceType = "RESERVED"
	// "Zie omschrijving", price is 0
	PriceTypeSeeDescription PriceType = "SEE_DESCRIPTION"
	// "N.o.t.k.", price is 0
	PriceTypeToBeAgreedUpon PriceType = "NOTK"
	// "Op aanvraag", price is 0
	PriceTypeOnRequest PriceType = "ON_REQUEST"
	// "Ruilen", price is 0
	PriceTypeExchange PriceType = "EXCHANGE"
	// Just the asking price
	PriceTypeFixed PriceType = "FIXED"
	// Asking price with a separate bidding option. The bid does not start
	// from the listing price but from another value the API does not expose.
	PriceTypeBidFrom PriceType = "MIN_BID"

	// PriceTypeUnknown is the fallback for wire values this library does not
	// know about yet, so a new value introduced upstream never breaks parsing.
	PriceTypeUnknown PriceType = "UNKNOWN"
)

var knownPriceTypes = map[PriceType]struct{}{
	PriceTypeFree:           {},
	PriceTypeBid:            {},
	PriceTypeReserved:       {},
	PriceTypeSeeDescription: {},
	PriceTypeToBeAgreedUpon: {},
	PriceTypeOnRequest:      {},
	PriceTypeExchange:       {},
	PriceTypeFixed:          {},
	PriceTypeBidFrom:        {},
}

// ParsePriceType maps a raw wire value onto the enumeration. Unknown values
// map to PriceTypeUnknown with ok=false; this never fails.
func ParsePriceType(raw string) (pt PriceType, ok bool) {
	pt = PriceType(raw)
	if _, known := knownPriceTypes[pt]; known {
		return pt, true
	}
	return PriceTypeUnknown, false
}

var priceTypeLabels = map[PriceType]map[string]string{
	PriceTypeFree:           {"en": "Free", "nl": "Gratis"},
	PriceTypeBid:            {"en": "Bid", "nl": "Bieden"},
	PriceTypeReserved:       {"en": "Reserved", "nl": "Gereserveerd"},
	PriceTypeSeeDescription: {"en": "See description", "nl": "Zie omschrijving"},
	PriceTypeToBeAgreedUpon: {"en": "To be agreed upon", "nl": "N.o.t.k."},
	PriceTypeOnRequest:      {"en": "On request", "nl": "Op aanvraag"},
	PriceTypeExchange:       {"en": "Exchange", "nl": "Ruilen"},
	// no real translation here, an UNKNOWN type means the upstream value
	// was not recognized in the first place
	PriceTypeUnknown: {"en": "UNKNOWN", "nl": "UNKNOWN"},
}

// Label renders the price the way Marktplaats displays it. Only FIXED and
// MIN_BID carry a meaningful numeric price; every other type renders as a
// fixed label string.
func (p PriceType) Label(price float64, euroSign bool, lang string) (string, error) {
	if lang != "en" && lang != "nl" {
		return "", fmt.Errorf("%q: %w", lang, ErrUnsupportedLanguage)
	}

	if p == PriceTypeFixed || p == PriceTypeBidFrom {
		if euroSign {
			return fmt.Sprintf("€ %.2f", price), nil
		}
		return fmt.Sprintf("%.2f", price), nil
	}

	labels, ok := priceTypeLabels[p]
	if !ok {
		return priceTypeLabels[PriceTypeUnknown][lang], nil
	}
	return labels[lang], nil
}
