package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/minimartlabs/minimart/internal/errors"
	inHttp "github.com/minimartlabs/minimart/internal/http"
	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/order/internal/otel"
	"github.com/minimartlabs/minimart/order/internal/service"
)

const defaultCartID = "default"

type OrderController struct {
	service service.OrderService
}

func AttachOrderController(router *mux.Router, service service.OrderService) {
	controller := OrderController{service}

	router.HandleFunc("/checkout", controller.Checkout).Methods(http.MethodPost)

	orderRouter := router.PathPrefix("/orders").Subrouter()
	orderRouter.HandleFunc("", controller.GetOrders).Methods(http.MethodGet)
	orderRouter.HandleFunc("/{orderId}", controller.FindOrderById).Methods(http.MethodGet)
}

func cartIdFromRequest(r *http.Request) string {
	cartID := r.Header.Get(inHttp.KeyHeaderCartID)
	if cartID == "" {
		return defaultCartID
	}
	return cartID
}

func (ctrl OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController Checkout")
	defer span.End()

	cartID := cartIdFromRequest(r)
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderController Checkout").
		Str(log.KeyCartID, cartID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking out cart").Logger()
	logger.Info().Msg("checking out cart")
	span.AddEvent("checking out cart")
	c = logger.WithContext(c)
	order, err := ctrl.service.Checkout(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed checking out cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrEmptyCart) {
			statusCode = http.StatusBadRequest
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("checked out cart")
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("checked out cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "successfully checked out cart",
		"data": map[string]interface{}{
			"order": order,
		},
	})
}

func (ctrl OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController GetOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderController GetOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting orders").Logger()
	logger.Trace().Msg("getting orders")
	span.AddEvent("getting orders")
	c = logger.WithContext(c)
	orders, err := ctrl.service.GetOrders(c)
	if err != nil {
		err = fmt.Errorf("failed getting orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("got orders")
	logger = logger.With().Int(log.KeyOrders, len(orders)).Logger()
	logger.Info().Msg("got orders")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "orders found",
		"data": map[string]interface{}{
			"orders": orders,
		},
	})
}

func (ctrl OrderController) FindOrderById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderController FindOrderById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting pathValue orderId").Logger()
	logger.Trace().Msg("getting pathValue orderId")
	span.AddEvent("getting pathValue orderId")
	pathValues := mux.Vars(r)
	id, err := uuid.Parse(pathValues["orderId"])
	if err != nil {
		err = fmt.Errorf("failed getting pathValue orderId with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, id.String()).Logger()
	logger.Trace().Msg("got pathValue orderId")

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Trace().Msg("finding order")
	span.AddEvent("finding order")
	c = logger.WithContext(c)
	order, err := ctrl.service.FindOrderById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding order with id=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	span.AddEvent("found order")
	logger.Info().Msg("found order")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("order id=%s found", id.String()),
		"data": map[string]interface{}{
			"order": order,
		},
	})
}
