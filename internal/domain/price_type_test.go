package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marktplaats/client/internal/domain"
)

func TestParsePriceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		want   domain.PriceType
		wantOK bool
	}{
		{name: "fixed", raw: "FIXED", want: domain.PriceTypeFixed, wantOK: true},
		{name: "free", raw: "FREE", want: domain.PriceTypeFree, wantOK: true},
		{name: "bid", raw: "FAST_BID", want: domain.PriceTypeBid, wantOK: true},
		{name: "reserved", raw: "RESERVED", want: domain.PriceTypeReserved, wantOK: true},
		{name: "see description", raw: "SEE_DESCRIPTION", want: domain.PriceTypeSeeDescription, wantOK: true},
		{name: "to be agreed upon", raw: "NOTK", want: domain.PriceTypeToBeAgreedUpon, wantOK: true},
		{name: "on request", raw: "ON_REQUEST", want: domain.PriceTypeOnRequest, wantOK: true},
		{name: "exchange", raw: "EXCHANGE", want: domain.PriceTypeExchange, wantOK: true},
		{name: "bid from", raw: "MIN_BID", want: domain.PriceTypeBidFrom, wantOK: true},
		{name: "unknown value falls back", raw: "SOME_NEW_TYPE", want: domain.PriceTypeUnknown, wantOK: false},
		{name: "empty value falls back", raw: "", want: domain.PriceTypeUnknown, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := domain.ParsePriceType(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPriceTypeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pt       domain.PriceType
		price    float64
		euroSign bool
		lang     string
		want     string
	}{
		{name: "fixed with euro sign", pt: domain.PriceTypeFixed, price: 75, euroSign: true, lang: "en", want: "€ 75.00"},
		{name: "fixed without euro sign", pt: domain.PriceTypeFixed, price: 75, euroSign: false, lang: "en", want: "75.00"},
		{name: "bid from renders the asking price", pt: domain.PriceTypeBidFrom, price: 12.5, euroSign: true, lang: "nl", want: "€ 12.50"},
		{name: "free in english", pt: domain.PriceTypeFree, price: 0, euroSign: true, lang: "en", want: "Free"},
		{name: "free in dutch", pt: domain.PriceTypeFree, price: 0, euroSign: true, lang: "nl", want: "Gratis"},
		{name: "to be agreed upon in dutch", pt: domain.PriceTypeToBeAgreedUpon, price: 0, euroSign: true, lang: "nl", want: "N.o.t.k."},
		{name: "unknown has no translation", pt: domain.PriceTypeUnknown, price: 0, euroSign: true, lang: "nl", want: "UNKNOWN"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.pt.Label(tt.price, tt.euroSign, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceTypeLabelUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	_, err := domain.PriceTypeFree.Label(0, true, "de")
	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestListingEqualByID(t *testing.T) {
	t.Parallel()

	a := domain.Listing{ID: "m1", Title: "one"}
	b := domain.Listing{ID: "m1", Title: "renamed"}
	c := domain.Listing{ID: "m2", Title: "one"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
