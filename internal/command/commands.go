package command

import "github.com/example/ec-commerce/internal/domain/catalog"

type CreateProduct struct {
	Name  string                `json:"name"`
	Price float64               `json:"price"`
	Sizes []catalog.SizeVariant `json:"sizes"`
}

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type PlaceOrder struct {
	UserID string           `json:"userId"`
	Items  []OrderItemInput `json:"items"`
}
