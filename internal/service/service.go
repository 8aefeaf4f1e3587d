package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"marktplaats/client/internal/categories"
	"marktplaats/client/internal/client"
	"marktplaats/client/internal/config"
	"marktplaats/client/internal/domain"
)

// Service runs the configured search and reports the results.
type Service struct {
	client client.MarktplaatsClient
	search config.SearchConfig
}

func NewService(client client.MarktplaatsClient, search config.SearchConfig) *Service {
	return &Service{
		client: client,
		search: search,
	}
}

// Run executes one search and logs every listing. When fetch_images is set,
// it additionally scrapes each listing's detail page for the full image set.
func (s *Service) Run(ctx context.Context) error {
	req := client.SearchRequest{
		Query:    s.search.Query,
		ZipCode:  s.search.Postcode,
		Distance: s.search.Distance,
		Limit:    s.search.Limit,
		Offset:   s.search.Offset,
	}

	if s.search.Category != "" {
		category, err := categories.FromName(s.search.Category)
		if err != nil {
			return fmt.Errorf("failed to resolve category %q: %w", s.search.Category, err)
		}
		req.Category = category
	}

	result, err := s.client.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.TotalResultCount != nil {
		log.Infof("Found %d listings in total, showing %d", *result.TotalResultCount, len(result.Listings))
	}

	for _, listing := range result.Listings {
		s.report(ctx, listing)
	}

	return nil
}

func (s *Service) report(ctx context.Context, listing domain.Listing) {
	price, err := listing.PriceAsString(true, s.search.Language)
	if err != nil {
		log.Warnf("Failed to render price for listing %s: %v", listing.ID, err)
		price = fmt.Sprintf("%.2f", listing.Price)
	}

	fields := log.Fields{
		"id":     listing.ID,
		"price":  price,
		"seller": listing.Seller.Name,
		"link":   listing.Link,
	}
	if listing.Date != nil {
		fields["date"] = listing.Date.Format("2006-01-02")
	}
	if listing.Location.City != nil {
		fields["city"] = *listing.Location.City
	}
	log.WithFields(fields).Info(listing.Title)

	if s.search.FetchImages {
		images, err := s.client.FetchListingImages(ctx, listing.ID)
		if err != nil {
			log.Warnf("Failed to fetch images for listing %s: %v", listing.ID, err)
			return
		}
		for _, url := range images {
			log.Infof("  image: %s", url)
		}
	}
}
