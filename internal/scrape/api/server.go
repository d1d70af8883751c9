package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scholarship-feed/internal/scrape/model"
	"scholarship-feed/internal/scrape/store"
)

// Runner runs one scrape cycle.
type Runner interface {
	RunCycle(ctx context.Context) model.CycleSummary
}

// Catalog reads persisted listings. *store.Catalog satisfies it.
type Catalog interface {
	Find(ctx context.Context, q store.ListingQuery) ([]model.Listing, int64, error)
	Ping(ctx context.Context) error
}

type Server struct {
	Runner  Runner
	Catalog Catalog
	Log     *zap.Logger
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())
	r.POST("/api/scrape", s.scrape)
	r.GET("/api/scrape", s.scrape)
	r.GET("/api/listings", s.listListings) // ?category=&domain=&source=&trending=&page=1&limit=20
	r.GET("/healthz", s.health)
	return r
}

func (s *Server) scrape(c *gin.Context) {
	// a dropped trigger connection must not abort writes already under way
	sum := s.Runner.RunCycle(context.WithoutCancel(c.Request.Context()))
	if !sum.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   sum.Message,
			"error":     sum.Error,
			"timestamp": sum.Timestamp,
		})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) listListings(c *gin.Context) {
	q := store.ListingQuery{
		Category: c.Query("category"),
		Domain:   c.Query("domain"),
		Source:   c.Query("source"),
	}
	if v := c.Query("trending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "trending must be a boolean"})
			return
		}
		q.Trending = &b
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	q = q.Normalized()

	out, total, err := s.Catalog.Find(c.Request.Context(), q)
	if err != nil {
		s.Log.Error("Failed to query listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"data":  out,
		"page":  q.Page,
		"limit": q.Limit,
	})
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.Catalog.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
