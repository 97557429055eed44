package query

// NoPreviousPage marks a page window with no previous page.
const NoPreviousPage = -1

// PageInfo is the paging envelope shared by list responses. Next is the
// offset of the following window, Limit the number of entries actually
// returned, Previous the offset of the preceding window or NoPreviousPage.
type PageInfo struct {
	Next     int `json:"next"`
	Limit    int `json:"limit"`
	Previous int `json:"previous"`
}

func newPageInfo(limit, offset, returned int) PageInfo {
	previous := NoPreviousPage
	if offset-limit >= 0 {
		previous = offset - limit
	}
	return PageInfo{
		Next:     offset + limit,
		Limit:    returned,
		Previous: previous,
	}
}

// ProductSummary is one row of a catalog listing.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductList is the listProducts response.
type ProductList struct {
	Data []ProductSummary `json:"data"`
	Page PageInfo         `json:"page"`
}

// ProductDetails is the catalog data joined onto an order line at read time.
type ProductDetails struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// EnrichedOrderItem is an order line joined against the current catalog.
type EnrichedOrderItem struct {
	ProductDetails ProductDetails `json:"productDetails"`
	Qty            int            `json:"qty"`
}

// EnrichedOrder carries an order's lines with current product data and a
// total computed from current prices. Totals therefore shift when catalog
// prices change; no price snapshot exists on the order.
type EnrichedOrder struct {
	ID    string              `json:"id"`
	Items []EnrichedOrderItem `json:"items"`
	Total float64             `json:"total"`
}

// OrderList is the listUserOrders response.
type OrderList struct {
	Data []EnrichedOrder `json:"data"`
	Page PageInfo        `json:"page"`
}
