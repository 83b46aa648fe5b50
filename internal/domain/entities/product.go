package entities

// Product is a catalog document. Price is kept as an opaque string;
// the catalog is read-only from this service's perspective.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	CP    string `json:"cp"`
}

// ProductSearchResult is a product plus the store-assigned text
// relevance score for the query that matched it.
type ProductSearchResult struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price string  `json:"price"`
	CP    string  `json:"cp"`
	Score float64 `json:"score"`
}

// SearchProductsInput represents a free-text catalog query
type SearchProductsInput struct {
	Query string `form:"q" binding:"required,max=128"`
}
