package internal

import (
	"net/http"

	"ard/internal/controllers"
	"ard/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/report", http.HandlerFunc(apiController.GetReport))
	routers.Post("/run", http.HandlerFunc(apiController.TriggerRun))
	return routers
}
