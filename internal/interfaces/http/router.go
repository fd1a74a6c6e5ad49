package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/talento-hq/talento/internal/infrastructure/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// StartPaymentScheduler starts the stale checkout expiry job
func (r *Router) StartPaymentScheduler() {
	if r.schedulerManager != nil {
		r.schedulerManager.Start()
	}
}
