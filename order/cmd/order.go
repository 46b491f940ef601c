package cmd

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/minimartlabs/minimart/internal/repository"
	"github.com/minimartlabs/minimart/order/internal/controller"
	"github.com/minimartlabs/minimart/order/internal/service"
)

func AttachOrderService(router *mux.Router, store repository.Store, cache *redis.Client) {
	controller.AttachOrderController(router, service.NewOrderService(store, cache))
}
