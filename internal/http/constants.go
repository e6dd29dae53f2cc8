package http

const (
	HeaderContentType = "Content-Type"
	HeaderValueJson   = "application/json"

	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
)
