package constants

const (
	AppMinimart = "minimart"

	AppProductService = "minimart-product"
	AppCartService    = "minimart-cart"
	AppOrderService   = "minimart-order"
	AppHealthService  = "minimart-health"
)
