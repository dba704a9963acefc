package recommendation

// CategoryRecommendation is one classified category from the model reply.
// Confidence is expected in [0,1]; it is passed through, not re-scored.
type CategoryRecommendation struct {
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// DisplayItem is the public DTO for one product card. One item is produced
// per (recommendation, product-in-matched-category) pair and lives only for
// a single response. JSON tags follow the camelCase convention used
// elsewhere in the project.
type DisplayItem struct {
	Category    string  `json:"category"`
	ProductName string  `json:"productName"`
	Price       int     `json:"productPrice"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
	Image       string  `json:"productImg"`
}
