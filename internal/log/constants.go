package log

const (
	KeyAppName            = "app"
	KeyTag                = "tag"
	KeyProcess            = "process"
	KeyRequestID          = "requestId"
	KeyConfig             = "config"
	KeyEmail              = "email"
	KeyDbURL              = "dbUrl"
	KeyCacheKey           = "cacheKey"
	KeySessionID          = "sessionId"
	KeyProductName        = "productName"
	KeyProductID          = "productId"
	KeyCartItemID         = "cartItemId"
	KeyOrderID            = "orderId"
	KeyOrderStatus        = "orderStatus"
	KeyAction             = "action"
	KeySummary            = "summary"
	KeyRequest            = "request"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyRequestIDHeader    = "X-Request-Id"
	KeyRequestProcessedAt = "requestProcessedAt"
)
