package domain

// Total is an aggregated sales value for one product or month.
type Total struct {
	Key   string  `json:"key"`
	Sales float64 `json:"sales"`
}

type Insights struct {
	Records      int     `json:"records"`
	TotalSales   float64 `json:"total_sales"`
	AverageSales float64 `json:"average_sales"`
	TopProduct   string  `json:"top_product"`
	ByProduct    []Total `json:"by_product"`
	ByMonth      []Total `json:"by_month"`
}
