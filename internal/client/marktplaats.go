package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"marktplaats/client/internal/config"
	"marktplaats/client/internal/domain"
)

// browserUserAgent makes the requests look like they come from the website
// itself; the search API is not an official public API.
const browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/101.0.0.0 Safari/537.36"

// SearchResult is the normalized answer to one search query.
type SearchResult struct {
	// TotalResultCount is the match count across all pages, when the API
	// reports one. Useful when paging with Limit/Offset.
	TotalResultCount *int
	Listings         []domain.Listing
}

type MarktplaatsClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	FetchSeller(ctx context.Context, seller domain.ListingSeller) (*domain.Seller, error)
	FetchListingImages(ctx context.Context, listingID string) ([]string, error)
}

type marktplaatsClient struct {
	rl         ratelimit.Limiter
	config     config.MarktplaatsConfig
	httpClient *resty.Client
}

func NewMarktplaatsClient(cfg config.MarktplaatsConfig) MarktplaatsClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Sec-Fetch-Mode", "cors").
		SetHeader("Sec-Fetch-Site", "same-origin")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &marktplaatsClient{
		rl:         rl,
		config:     cfg,
		httpClient: client,
	}
}

// Search performs one GET against the search endpoint and normalizes the
// response into domain listings.
func (c *marktplaatsClient) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	params, err := req.Params()
	if err != nil {
		return nil, err
	}

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(c.config.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if resp.IsError() {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &UnexpectedStatusError{StatusCode: resp.StatusCode()}
	}

	body := resp.String()
	var envelope searchResponse
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	listings := mapListings(envelope.Listings, c.config.LinkBaseURL)
	log.Debugf("search for %q returned %d listings", req.Query, len(listings))

	return &SearchResult{
		TotalResultCount: envelope.TotalResultCount,
		Listings:         listings,
	}, nil
}

// FetchSeller fetches the extended profile of the given seller. The summary
// fields carry over unchanged; the profile endpoint only adds the review and
// verification details. Nothing is cached, every call hits the network.
func (c *marktplaatsClient) FetchSeller(ctx context.Context, seller domain.ListingSeller) (*domain.Seller, error) {
	url := fmt.Sprintf("%s/%d", strings.TrimRight(c.config.SellerProfileURL, "/"), seller.ID)

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("seller profile request failed: %w", err)
	}

	if resp.IsError() {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	body := resp.String()
	var profile sellerProfileResponse
	if err := json.Unmarshal([]byte(body), &profile); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	return &domain.Seller{
		ID:              seller.ID,
		Name:            seller.Name,
		IsVerified:      seller.IsVerified,
		AverageScore:    profile.AverageScore,
		NumberOfReviews: profile.NumberOfReviews,
		BankAccount:     profile.BankAccount,
		Identification:  profile.Identification,
		PhoneNumber:     profile.PhoneNumber,
	}, nil
}
