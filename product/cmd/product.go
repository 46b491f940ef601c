package cmd

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/minimartlabs/minimart/internal/repository"
	"github.com/minimartlabs/minimart/product/internal/controller"
	"github.com/minimartlabs/minimart/product/internal/service"
)

func AttachProductService(router *mux.Router, store repository.Store, cache *redis.Client) {
	controller.AttachProductController(router, service.NewProductService(store, cache))
}
