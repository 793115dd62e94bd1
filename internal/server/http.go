package server

import (
	"fmt"

	"currency-bot/internal/infra/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Bot is awake!")
	})

	return router
}

// RunLiveness serves the single liveness route used by uptime pingers.
// It blocks, so callers run it on its own goroutine.
func RunLiveness(port int) error {
	gin.SetMode(gin.ReleaseMode)
	router := newRouter()

	log.LogInfo("Web server running", zap.Int("port", port))

	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return fmt.Errorf("liveness server stopped: %w", err)
	}
	return nil
}
