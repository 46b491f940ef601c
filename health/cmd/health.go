package cmd

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/minimartlabs/minimart/health/internal/controller"
	"github.com/minimartlabs/minimart/health/internal/service"
	"github.com/minimartlabs/minimart/internal/repository"
)

func AttachHealthService(router *mux.Router, store repository.Store, cache *redis.Client) {
	controller.AttachHealthController(router, service.NewHealthService(store, cache))
}
