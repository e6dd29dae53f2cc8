package constants

const (
	AppCartService    = "cart-service"
	AppProductService = "product-service"
	AppAdminService   = "admin-service"
	AppMainShop       = "readify-shop"

	AudienceAdmin = "audience-admin"
)
