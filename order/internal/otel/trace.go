package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/minimartlabs/minimart/internal/constants"
)

var Tracer = otel.Tracer(constants.AppOrderService)
