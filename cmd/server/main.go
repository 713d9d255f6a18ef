package main

import (
	"net/http"

	"github.com/example/perfdash/internal/config"
	"github.com/example/perfdash/internal/container"
	"github.com/example/perfdash/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		ObjectiveHandler: c.ObjectiveContainer.Handler,
		ProfileHandler:   c.ProfileContainer.Handler,
		ContractHandler:  c.ContractContainer.Handler,
	})

	addr := ":" + config.Getenv("PORT", "8080")
	config.Logger.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		config.Logger.WithError(err).Fatal("server stopped")
	}
}
