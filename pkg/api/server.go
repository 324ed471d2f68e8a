package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/setoferry/setoferry/pkg/api/routes"
	"github.com/setoferry/setoferry/pkg/config"
)

// NewApp builds the HTTP application. Lookups go through the global data
// aggregator, which must be set up before requests are served.
func NewApp(cfg config.AppConfig) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName: routes.ServiceName,
	})
	webApp.Use(NewLogger())
	webApp.Use(recover.New())
	webApp.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowedOrigins, ","),
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	webApp.Get("/", routes.Root)
	webApp.Get("/health", routes.Health)
	webApp.Get("/debug/data-status", routes.DataStatus)

	group := webApp.Group(cfg.Server.APIPrefix)

	group.Get("version", routes.APIVersion)
	group.Get("stats", routes.Stats)

	routes.SailingsRouter(group.Group("/routes"), cfg.PopularRoutes)
	routes.StopsRouter(group.Group("/ports"))
	routes.OperatorsRouter(group.Group("/companies"))
	routes.FaresRouter(group.Group("/fares"))
	routes.IslandsRouter(group.Group("/islands"))

	return webApp
}

func SetupServer(cfg config.AppConfig) error {
	return NewApp(cfg).Listen(cfg.Server.Listen)
}
