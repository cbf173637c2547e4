// Package market serves the market-price analytics consumed by the price
// dashboard: monthly crop price series with a forecast tail, regional
// supply/demand trends, and agricultural input prices.
package market

import "strings"

// PricePoint is one month of an observed or forecast price, in whole TZS.
type PricePoint struct {
	Month string `json:"month"`
	Price int64  `json:"price"`
}

// PriceSeries is a year of prices for one product in one location.
type PriceSeries struct {
	Product  string       `json:"product"`
	Location string       `json:"location"`
	Points   []PricePoint `json:"points"`
	Forecast []PricePoint `json:"forecast"`
}

// RegionalTrend is the supply/demand picture of one region.
type RegionalTrend struct {
	Region     string `json:"region"`
	SupplyTons int64  `json:"supply_tons"`
	DemandTons int64  `json:"demand_tons"`
}

// InputPrice is the going rate for one agricultural input in a location.
type InputPrice struct {
	Input    string `json:"input"`
	Price    int64  `json:"price"`
	Unit     string `json:"unit"`
	Location string `json:"location"`
}

type seriesKey struct {
	product  string
	location string
}

// Board holds the analytics data, loaded once at startup. Lookups on
// missing keys report absence rather than failing.
type Board struct {
	series map[seriesKey]PriceSeries
	trends map[string][]RegionalTrend
	inputs map[string][]InputPrice
}

// PriceHistory returns the price series for a product/location pair.
// Keys are case-insensitive.
func (b *Board) PriceHistory(product, location string) (PriceSeries, bool) {
	s, ok := b.series[seriesKey{slug(product), slug(location)}]
	return s, ok
}

// RegionalTrends returns the supply/demand rows for a product, or an empty
// slice when none are tracked.
func (b *Board) RegionalTrends(product string) []RegionalTrend {
	rows := b.trends[slug(product)]
	out := make([]RegionalTrend, len(rows))
	copy(out, rows)
	return out
}

// InputPrices returns the input price table for a location, or an empty
// slice when none is tracked.
func (b *Board) InputPrices(location string) []InputPrice {
	rows := b.inputs[slug(location)]
	out := make([]InputPrice, len(rows))
	copy(out, rows)
	return out
}

func slug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
