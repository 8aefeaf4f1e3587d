package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// structuredData is the subset of an ld+json block this client cares about.
type structuredData struct {
	Type  string    `json:"@type"`
	Image imageList `json:"image"`
}

// imageList tolerates both shapes the structured data uses for images: a
// single URL string or a list of them.
type imageList []string

func (l *imageList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = []string{one}
	return nil
}

// FetchListingImages fetches the listing's public page and recovers the
// full-resolution image URLs from its embedded structured data. A page
// without a Product block yields an empty slice; a failed fetch is an error,
// since the caller explicitly opted into this extra network call.
func (c *marktplaatsClient) FetchListingImages(ctx context.Context, listingID string) ([]string, error) {
	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.config.LinkBaseURL, "/"), listingID)

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("listing page request failed: %w", err)
	}

	if resp.IsError() {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	return parseListingImages(resp.String())
}

// parseListingImages scans the page for ld+json script blocks and takes the
// image list of the first one typed "Product". Image entries arrive
// scheme-relative and get the https scheme prefixed.
func parseListingImages(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	urls := make([]string, 0)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var data structuredData
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			log.Debugf("skipping unparseable ld+json block %d: %v", i, err)
			return true
		}
		if data.Type != "Product" {
			return true
		}
		for _, img := range data.Image {
			if strings.HasPrefix(img, "//") {
				img = "https:" + img
			}
			urls = append(urls, img)
		}
		return false
	})

	return urls, nil
}
