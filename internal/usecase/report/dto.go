package report

type TotalSalesResponse struct {
	TotalSales float64 `json:"totalSales"`
}

type AverageOrderValueResponse struct {
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type TopSellingRequest struct {
	SortBy string `validate:"oneof=totalOrders totalRevenue"`
	Limit  int    `validate:"min=1"`
}

type TopSellingItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
