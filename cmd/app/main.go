package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/catalog_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/geo_fx"
	"wayfarer/cmd/fx/photos_fx"
	"wayfarer/cmd/fx/planner_fx"
	"wayfarer/cmd/fx/store_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		store_fx.Module,
		planner_fx.Module,
		photos_fx.Module,
		geo_fx.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.GetLogger().Infow("starting HTTP server", "port", port)
				if err := engine.Run(":" + port); err != nil {
					logger.GetLogger().Fatalw("failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.GetLogger().Info("stopping HTTP server")
			return logger.Close()
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	plannerController *controllers.PlannerController,
	photosController *controllers.PhotosController,
	geoController *controllers.GeoController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripsController, plannerController, photosController, geoController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	plannerController *controllers.PlannerController,
	photosController *controllers.PhotosController,
	geoController *controllers.GeoController,
	catalogController *controllers.CatalogController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	trips := r.Group("/trips")
	trips.GET("", tripsController.ListTrips)
	trips.POST("", tripsController.CreateTrip)
	trips.POST("/import", tripsController.ImportTrip)
	trips.GET("/:tripId", tripsController.GetTrip)
	trips.PUT("/:tripId", tripsController.UpdateTrip)
	trips.DELETE("/:tripId", tripsController.DeleteTrip)
	trips.GET("/:tripId/view", tripsController.GetDayView)
	trips.GET("/:tripId/export", tripsController.ExportTrip)
	trips.POST("/:tripId/activities", tripsController.CreateActivity)
	trips.PUT("/:tripId/activities/:activityId", tripsController.UpdateActivity)
	trips.DELETE("/:tripId/activities/:activityId", tripsController.DeleteActivity)
	trips.POST("/:tripId/activities/reorder", tripsController.ReorderActivity)

	planner := r.Group("/planner")
	planner.POST("/generate", plannerController.GenerateTrip)

	photos := r.Group("/photos")
	photos.GET("/search", photosController.SearchCoverImage)

	geo := r.Group("/geo")
	geo.GET("/locate", geoController.Locate)
	geo.POST("/routes", geoController.Routes)

	catalog := r.Group("/catalog")
	catalog.GET("/options", catalogController.GetPlannerOptions)
}
