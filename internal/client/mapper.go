package client

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"marktplaats/client/internal/domain"
)

// monthMapping translates the Dutch three-letter month abbreviations the
// search API emits into their English equivalents, so the generic date
// parser can handle them.
var monthMapping = map[string]string{
	"jan": "Jan",
	"feb": "Feb",
	"mrt": "Mar",
	"apr": "Apr",
	"mei": "May",
	"jun": "Jun",
	"jul": "Jul",
	"aug": "Aug",
	"sep": "Sep",
	"okt": "Oct",
	"nov": "Nov",
	"dec": "Dec",
}

// searchResponse is the raw envelope of the search endpoint. This is the
// single decoding boundary for that endpoint; everything downstream works on
// domain types.
type searchResponse struct {
	TotalResultCount *int         `json:"totalResultCount"`
	Listings         []rawListing `json:"listings"`
}

type rawListing struct {
	ItemID             string               `json:"itemId"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Date               string               `json:"date"`
	CategoryID         int                  `json:"categoryId"`
	PriceInfo          rawPriceInfo         `json:"priceInfo"`
	Location           rawLocation          `json:"location"`
	SellerInformation  rawSellerInformation `json:"sellerInformation"`
	Pictures           []rawPicture         `json:"pictures"`
	Attributes         []domain.Attribute   `json:"attributes"`
	ExtendedAttributes []domain.Attribute   `json:"extendedAttributes"`
}

type rawPriceInfo struct {
	PriceCents int    `json:"priceCents"`
	PriceType  string `json:"priceType"`
}

type rawLocation struct {
	CityName    *string `json:"cityName"`
	CountryName *string `json:"countryName"`
	// sic: the API misspells "abbreviation"
	CountryAbbreviation *string `json:"countryAbbrevation"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	DistanceMeters      *int    `json:"distanceMeters"`
}

type rawSellerInformation struct {
	SellerID   int    `json:"sellerId"`
	SellerName string `json:"sellerName"`
	IsVerified bool   `json:"isVerified"`
}

type rawPicture struct {
	ExtraSmallURL      string `json:"extraSmallUrl"`
	MediumURL          string `json:"mediumUrl"`
	LargeURL           string `json:"largeUrl"`
	ExtraExtraLargeURL string `json:"extraExtraLargeUrl"`
}

type sellerProfileResponse struct {
	AverageScore    float64 `json:"averageScore"`
	NumberOfReviews int     `json:"numberOfReviews"`
	BankAccount     bool    `json:"bankAccount"`
	Identification  bool    `json:"identification"`
	PhoneNumber     bool    `json:"phoneNumber"`
}

func replaceDutchMonths(dateStr string) string {
	for dutch, english := range monthMapping {
		dateStr = strings.Replace(dateStr, dutch, english, 1)
	}
	return dateStr
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseListingDate handles the two date shapes the search API emits: a
// relative Dutch word or an absolute date like "10 mrt 24".
func parseListingDate(raw string) (time.Time, error) {
	switch raw {
	case "Vandaag":
		return dateOnly(time.Now()), nil
	case "Gisteren":
		return dateOnly(time.Now().AddDate(0, 0, -1)), nil
	case "Eergisteren":
		return dateOnly(time.Now().AddDate(0, 0, -2)), nil
	}

	parsed, err := time.Parse("2 Jan 06", replaceDutchMonths(raw))
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func mapLocation(raw rawLocation) domain.ListingLocation {
	loc := domain.ListingLocation{
		City:         raw.CityName,
		Country:      raw.CountryName,
		CountryShort: raw.CountryAbbreviation,
	}
	// 0/0 coordinates and a -1000 distance mean "unknown"
	if raw.Latitude != 0 {
		lat := raw.Latitude
		loc.Latitude = &lat
	}
	if raw.Longitude != 0 {
		lon := raw.Longitude
		loc.Longitude = &lon
	}
	if raw.DistanceMeters != nil && *raw.DistanceMeters != -1000 {
		loc.Distance = raw.DistanceMeters
	}
	return loc
}

func mapFirstImage(pictures []rawPicture) *domain.ListingFirstImage {
	if len(pictures) == 0 {
		return nil
	}
	// only the first picture is kept from the search payload
	first := pictures[0]
	return &domain.ListingFirstImage{
		ExtraSmall: first.ExtraSmallURL,
		Medium:     first.MediumURL,
		Large:      first.LargeURL,
		ExtraLarge: first.ExtraExtraLargeURL,
	}
}

// mapListing builds one domain listing out of a raw search result. Soft data
// anomalies (unknown date format, unknown price type) are logged and replaced
// with fallbacks; they never fail the listing.
func mapListing(raw rawListing, linkBaseURL string) domain.Listing {
	var listingDate *time.Time
	if raw.Date != "" {
		if parsed, err := parseListingDate(raw.Date); err != nil {
			log.Warnf("unknown date format for listing %s: %q", raw.ItemID, raw.Date)
		} else {
			listingDate = &parsed
		}
	}

	priceType, ok := domain.ParsePriceType(raw.PriceInfo.PriceType)
	if !ok {
		log.Warnf("unknown price type for listing %s: %q", raw.ItemID, raw.PriceInfo.PriceType)
	}

	attributes := raw.Attributes
	if attributes == nil {
		attributes = []domain.Attribute{}
	}
	extendedAttributes := raw.ExtendedAttributes
	if extendedAttributes == nil {
		extendedAttributes = []domain.Attribute{}
	}

	return domain.Listing{
		ID:          raw.ItemID,
		Title:       raw.Title,
		Description: raw.Description,
		Date:        listingDate,
		Seller: domain.ListingSeller{
			ID:         raw.SellerInformation.SellerID,
			Name:       raw.SellerInformation.SellerName,
			IsVerified: raw.SellerInformation.IsVerified,
		},
		Location:           mapLocation(raw.Location),
		Price:              float64(raw.PriceInfo.PriceCents) / 100,
		PriceType:          priceType,
		Link:               strings.TrimRight(linkBaseURL, "/") + "/" + raw.ItemID,
		FirstImage:         mapFirstImage(raw.Pictures),
		CategoryID:         raw.CategoryID,
		Attributes:         attributes,
		ExtendedAttributes: extendedAttributes,
	}
}

func mapListings(raw []rawListing, linkBaseURL string) []domain.Listing {
	listings := make([]domain.Listing, 0, len(raw))
	for _, item := range raw {
		listings = append(listings, mapListing(item, linkBaseURL))
	}
	return listings
}
