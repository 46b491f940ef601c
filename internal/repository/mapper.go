package repository

import (
	cartResponse "github.com/minimartlabs/minimart/cart/pkg/response"
	orderResponse "github.com/minimartlabs/minimart/order/pkg/response"
	productResponse "github.com/minimartlabs/minimart/product/pkg/response"
)

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func (d CartItemDetail) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:        d.ID,
		ProductID: d.ProductID,
		Name:      d.ProductName,
		Price:     d.UnitPrice,
		Quantity:  d.Quantity,
		LineTotal: d.LineTotal(),
	}
}

func CartResponse(cartID string, items []CartItemDetail) cartResponse.Cart {
	cartItems := make([]cartResponse.CartItem, len(items))
	for i, item := range items {
		cartItems[i] = item.Response()
	}
	return cartResponse.Cart{
		CartID: cartID,
		Items:  cartItems,
		Total:  CartTotal(items),
	}
}

func (o Order) Response(items []OrderItem) orderResponse.Order {
	orderItems := make([]orderResponse.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = orderResponse.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return orderResponse.Order{
		ID:         o.ID,
		Total:      o.Total,
		OrderItems: orderItems,
		CreatedAt:  o.CreatedAt,
	}
}
