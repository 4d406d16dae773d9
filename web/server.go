package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
)

// Server wraps a gin engine behind the RegisterHandler interface the
// domain packages expect, so they can mount plain http.Handlers without
// knowing the router.
type Server struct {
	router *gin.Engine
	logger log.Logger
}

func NewServer(logger log.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Root and ping
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Topic Manager API"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	return &Server{
		router: router,
		logger: logger,
	}
}

// RegisterHandler mounts f on path and method. Path parameters are exposed
// to the handler through the request context under "params".
func (s *Server) RegisterHandler(path, method string, f http.Handler) {
	s.router.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		f.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler exposes the underlying router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.logger.Printf("server started, listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
