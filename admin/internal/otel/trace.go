package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/readify/shop/internal/constants"
)

var Tracer = otel.Tracer(constants.AppAdminService)
