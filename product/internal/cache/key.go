package cache

const (
	KeyProducts = "products"
	KeyProduct  = "products:"
)
