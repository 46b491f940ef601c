package cmd

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/minimartlabs/minimart/cart/internal/controller"
	"github.com/minimartlabs/minimart/cart/internal/service"
	"github.com/minimartlabs/minimart/internal/repository"
)

func AttachCartService(router *mux.Router, store repository.Store, cache *redis.Client) {
	controller.AttachCartController(router, service.NewCartService(store, cache))
}
