package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/akozyreva/airlines/api"
	"github.com/akozyreva/airlines/config"
	"github.com/akozyreva/airlines/internal/service/booking"
	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/akozyreva/airlines/internal/service/flights"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	orderSvc booking.OrderUseCase,
) error {
	router := newRouter(cfg, catalogSvc, flightSvc, orderSvc)
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	orderSvc booking.OrderUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	v1 := router.Group("/api/v1")
	api.NewAirportHandler(catalogSvc).Register(v1.Group("/airports"))
	api.NewAirplaneHandler(catalogSvc).Register(v1.Group("/airplanes"), v1.Group("/airplane-types"))
	api.NewCrewHandler(catalogSvc).Register(v1.Group("/crew"))
	api.NewRouteHandler(catalogSvc).Register(v1.Group("/routes"))
	api.NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	api.NewOrderHandler(orderSvc).Register(v1.Group("/orders"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/docs/swagger.json", filepath.Join(cfg.HTTP.SwaggerDir, "swagger.json"))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/swagger.json"))))
	}

	return router
}
