package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/cart/internal/otel"
	"github.com/minimartlabs/minimart/cart/internal/service"
	"github.com/minimartlabs/minimart/cart/pkg/request"
	inErrors "github.com/minimartlabs/minimart/internal/errors"
	inHttp "github.com/minimartlabs/minimart/internal/http"
	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/internal/validate"
)

const defaultCartID = "default"

type CartController struct {
	service service.CartService
}

func AttachCartController(router *mux.Router, service service.CartService) {
	controller := CartController{service}

	cartRouter := router.PathPrefix("/cart").Subrouter()
	cartRouter.HandleFunc("", controller.GetCart).Methods(http.MethodGet)
	cartRouter.HandleFunc("", controller.AddCartItem).Methods(http.MethodPost)
}

// cartIdFromRequest falls back to the shared demo cart when the caller does
// not scope the request with an X-Cart-Id header.
func cartIdFromRequest(r *http.Request) string {
	cartID := r.Header.Get(inHttp.KeyHeaderCartID)
	if cartID == "" {
		return defaultCartID
	}
	return cartID
}

func (ctrl CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddCartItem")
	defer span.End()

	cartID := cartIdFromRequest(r)
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartController AddCartItem").
		Str(log.KeyCartID, cartID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	span.AddEvent("decoding request body")
	reqBody := request.AddCartItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("decoded request body")
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	span.AddEvent("validating request body")
	if err := validate.New().StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("validated request body")
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	cart, err := ctrl.service.AddCartItem(c, cartID, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrProductNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("added cart item")
	logger.Info().Msg("added cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "successfully added cart item",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (ctrl CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController GetCart")
	defer span.End()

	cartID := cartIdFromRequest(r)
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartController GetCart").
		Str(log.KeyCartID, cartID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting cart").Logger()
	logger.Trace().Msg("getting cart")
	span.AddEvent("getting cart")
	c = logger.WithContext(c)
	cart, err := ctrl.service.GetCart(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed getting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("got cart")
	logger.Info().Msg("got cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cart found",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}
