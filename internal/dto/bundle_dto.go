// FILE: internal/dto/bundle_dto.go
package dto

type CreateBundleRequest struct {
	ProductHandle string `json:"product_handle" validate:"required"`
	Policy        string `json:"policy" validate:"omitempty,oneof=cross_sell frequently_bought_together"`
}

type ChangeBundleSourceRequest struct {
	ProductHandle string `json:"product_handle" validate:"required"`
}

type ToggleBundleItemRequest struct {
	ProductId string `json:"product_id" validate:"required"`
}

type BundleItemDTO struct {
	ProductCard
	Selected bool `json:"selected"`
	IsSource bool `json:"is_source"`
}

type BundleTotalsDTO struct {
	Total         string `json:"total"`
	Bundle        string `json:"bundle"`
	Savings       string `json:"savings"`
	DiscountRate  string `json:"discount_rate"`
	CurrencyCode  string `json:"currency_code"`
	SelectedCount int    `json:"selected_count"`
}

type BundleResponse struct {
	Id        string          `json:"id"`
	Version   uint64          `json:"version"`
	Policy    string          `json:"policy"`
	Loading   bool            `json:"loading"`
	Rendered  bool            `json:"rendered"`
	SourceId  string          `json:"source_id,omitempty"`
	Items     []BundleItemDTO `json:"items"`
	Totals    BundleTotalsDTO `json:"totals"`
	CanCommit bool            `json:"can_commit"`
}

type BundleCommitResponse struct {
	Added   int      `json:"added"`
	Skipped []string `json:"skipped"`
}
