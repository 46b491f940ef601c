package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/health/internal/otel"
	"github.com/minimartlabs/minimart/health/internal/service"
	inHttp "github.com/minimartlabs/minimart/internal/http"
	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
)

type HealthController struct {
	service service.HealthService
}

func AttachHealthController(router *mux.Router, service service.HealthService) {
	controller := HealthController{service}

	router.HandleFunc("/health", controller.Check).Methods(http.MethodGet)
}

func (ctrl HealthController) Check(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "HealthController Check")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "HealthController Check").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking health").Logger()
	logger.Trace().Msg("checking health")
	span.AddEvent("checking health")
	c = logger.WithContext(c)
	if err := ctrl.service.Check(c); err != nil {
		err = fmt.Errorf("failed checking health with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusServiceUnavailable,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("checked health")
	logger.Info().Msg("checked health")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "ok",
		"statusCode": http.StatusOK,
		"message":    "service is healthy",
	})
}
