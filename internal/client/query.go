package client

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"marktplaats/client/internal/domain"
)

// SortBy enumerates the sorting methods Marktplaats supports.
//
// SortByDate sorts by absolute time, so ascending is from oldest to newest.
type SortBy string

const (
	SortByDate      SortBy = "SORT_INDEX"
	SortByPrice     SortBy = "PRICE"
	SortByOptimized SortBy = "OPTIMIZED"
	SortByLocation  SortBy = "LOCATION"
)

// SortOrder enumerates the sort directions.
type SortOrder string

const (
	SortOrderDesc SortOrder = "DECREASING"
	SortOrderAsc  SortOrder = "INCREASING"
)

// Condition enumerates item conditions by their attribute ID.
//
// New, AsGoodAsNew and Used always work. Refurbished and NotWorking are
// specific to some categories.
type Condition int

const (
	ConditionNew         Condition = 30
	ConditionRefurbished Condition = 14050
	ConditionAsGoodAsNew Condition = 31
	ConditionUsed        Condition = 32
	ConditionNotWorking  Condition = 13940
)

// defaultDistance is effectively unlimited.
const defaultDistance = 1000000

// SearchRequest describes one search against the Marktplaats search API.
// The zero value of every optional field means "not filtered".
type SearchRequest struct {
	Query   string
	ZipCode string
	// Distance in meters from ZipCode; 0 means unlimited
	Distance int
	// Price bounds in euros
	PriceFrom *int
	PriceTo   *int
	// Limit defaults to 1, the API minimum; raise it for real use
	Limit        int
	Offset       int
	SortBy       SortBy    // defaults to SortByOptimized
	SortOrder    SortOrder // defaults to SortOrderAsc
	Condition    *Condition
	OfferedSince *time.Time
	Category     domain.Category
	// ExtraAttributes are raw attribute IDs merged into the same filter list
	// as Condition
	ExtraAttributes []int
}

// priceCents converts a euro bound to the wire encoding. Marktplaats uses the
// literal string "null" for an absent bound.
func priceCents(price *int) string {
	if price == nil {
		return "null"
	}
	return strconv.Itoa(*price * 100)
}

// Params produces the exact parameter set the search endpoint expects.
// It fails with ErrInvalidArguments when the query is empty and no category
// is given.
func (r SearchRequest) Params() (url.Values, error) {
	if r.Query == "" && r.Category == nil {
		return nil, ErrInvalidArguments
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 1
	}
	distance := r.Distance
	if distance <= 0 {
		distance = defaultDistance
	}
	sortBy := r.SortBy
	if sortBy == "" {
		sortBy = SortByOptimized
	}
	sortOrder := r.SortOrder
	if sortOrder == "" {
		sortOrder = SortOrderAsc
	}

	params := url.Values{
		"limit":                       {strconv.Itoa(limit)},
		"offset":                      {strconv.Itoa(r.Offset)},
		"query":                       {r.Query},
		"searchInTitleAndDescription": {"true"},
		"viewOptions":                 {"list-view"},
		"distanceMeters":              {strconv.Itoa(distance)},
		"postcode":                    {r.ZipCode},
		"sortBy":                      {string(sortBy)},
		"sortOrder":                   {string(sortOrder)},
	}

	// Only scope on price when a bound is actually given, to match the
	// website's behavior.
	if r.PriceFrom != nil || r.PriceTo != nil {
		params.Add("attributeRanges[]",
			fmt.Sprintf("PriceCents:%s:%s", priceCents(r.PriceFrom), priceCents(r.PriceTo)))
	}

	if r.Condition != nil {
		params.Add("attributesById[]", strconv.Itoa(int(*r.Condition)))
	}
	for _, id := range r.ExtraAttributes {
		params.Add("attributesById[]", strconv.Itoa(id))
	}

	if r.OfferedSince != nil {
		params.Add("attributesByKey[]",
			fmt.Sprintf("offeredSince:%d", r.OfferedSince.UnixMilli()))
	}

	switch cat := r.Category.(type) {
	case domain.L2Category:
		// A subcategory scopes on both levels
		params.Set("l2CategoryId", strconv.Itoa(cat.ID))
		params.Set("l1CategoryId", strconv.Itoa(cat.Parent.ID))
	case domain.L1Category:
		params.Set("l1CategoryId", strconv.Itoa(cat.ID))
	}

	return params, nil
}
