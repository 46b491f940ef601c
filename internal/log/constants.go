package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyConfig        = "config"
	KeyDbURL         = "dbUrl"
	KeyRequestID     = "requestId"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyCacheKey      = "cacheKey"
	KeyJsonCache     = "jsonCache"
	KeyCartID        = "cartId"
	KeyCartItems     = "cartItems"
	KeyCartTotal     = "cartTotal"
	KeyProduct       = "product"
	KeyProducts      = "products"
	KeyProductID     = "productId"
	KeyOrder         = "order"
	KeyOrders        = "orders"
	KeyOrderID       = "orderId"
	KeyOrderItems    = "orderItems"
)
