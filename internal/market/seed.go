package market

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func series(product, location string, prices, forecast []int64) PriceSeries {
	s := PriceSeries{Product: product, Location: location}
	for i, p := range prices {
		s.Points = append(s.Points, PricePoint{Month: months[i], Price: p})
	}
	// The forecast tail covers the last months of the year.
	for i, p := range forecast {
		s.Forecast = append(s.Forecast, PricePoint{Month: months[len(months)-len(forecast)+i], Price: p})
	}
	return s
}

// NewBoard returns a Board seeded with the tracked market data.
func NewBoard() *Board {
	b := &Board{
		series: make(map[seriesKey]PriceSeries),
		trends: make(map[string][]RegionalTrend),
		inputs: make(map[string][]InputPrice),
	}

	for _, s := range []PriceSeries{
		series("maize", "arusha",
			[]int64{1000, 1200, 1150, 1300, 1250, 1400, 1500, 1600, 1550, 1450, 1400, 1350},
			[]int64{1550, 1500, 1550, 1650}),
		series("maize", "morogoro",
			[]int64{950, 1100, 1100, 1250, 1200, 1300, 1400, 1500, 1450, 1400, 1300, 1250},
			[]int64{1450, 1400, 1450, 1500}),
		series("rice", "mbeya",
			[]int64{2200, 2300, 2250, 2400, 2450, 2500, 2600, 2700, 2650, 2600, 2500, 2450},
			[]int64{2650, 2700, 2750, 2800}),
	} {
		b.series[seriesKey{slug(s.Product), slug(s.Location)}] = s
	}

	b.trends["maize"] = []RegionalTrend{
		{Region: "Arusha", SupplyTons: 120, DemandTons: 100},
		{Region: "Dodoma", SupplyTons: 80, DemandTons: 90},
		{Region: "Dar es Salaam", SupplyTons: 60, DemandTons: 120},
		{Region: "Mwanza", SupplyTons: 100, DemandTons: 90},
		{Region: "Mbeya", SupplyTons: 150, DemandTons: 130},
		{Region: "Morogoro", SupplyTons: 90, DemandTons: 95},
	}

	b.inputs["arusha"] = []InputPrice{
		{Input: "NPK Fertilizer", Price: 75000, Unit: "50kg bag", Location: "Arusha"},
		{Input: "Urea", Price: 65000, Unit: "50kg bag", Location: "Arusha"},
		{Input: "DAP", Price: 85000, Unit: "50kg bag", Location: "Arusha"},
		{Input: "Maize Seeds (Hybrid)", Price: 12000, Unit: "2kg pack", Location: "Arusha"},
		{Input: "Pesticide (General)", Price: 15000, Unit: "1L bottle", Location: "Arusha"},
		{Input: "Herbicide", Price: 18000, Unit: "1L bottle", Location: "Arusha"},
	}

	return b
}
