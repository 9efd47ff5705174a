// Package server wires the HTTP API: the order endpoint, the menu, health
// and metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/events"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/ordering"
	"github.com/gin-gonic/gin"
)

const (
	PlaceOrderPath = "/api/place-order"
	MenuPath       = "/api/menu"
	CategoriesPath = "/api/menu/categories"
	HealthPath     = "/health"
	MetricsPath    = "/metrics"

	shutdownTimeout = 10 * time.Second
)

type Server struct {
	addr    string
	router  *gin.Engine
	metrics *Metrics
	logger  *logger.Logger
}

func New(cfg *models.Config, cat *catalog.Catalog, publisher events.Publisher, log *logger.Logger) *Server {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	s := &Server{
		addr:    cfg.Addr(),
		metrics: NewMetrics(),
		logger:  log,
	}
	s.router = s.routes(
		ordering.NewHandler(ordering.NewIDGenerator(), publisher, log),
		NewMenuHandler(cat),
	)
	return s
}

func (s *Server) routes(orders *ordering.Handler, menu *MenuHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	})
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger), Instrument(s.metrics))

	r.POST(PlaceOrderPath, orders.PlaceOrder)
	r.GET(MenuPath, menu.List)
	r.GET(CategoriesPath, menu.Categories)
	r.GET(HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET(MetricsPath, gin.WrapH(s.metrics.Handler()))
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server_started", "", "HTTP server listening", map[string]any{"addr": s.addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("graceful_shutdown", "", "Shutting down HTTP server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
