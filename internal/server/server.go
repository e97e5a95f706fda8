// Package server exposes the pipeline's cached outputs and the knowledge
// graph over HTTP. Pure translation: no pipeline logic lives here.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abelbrown/vantage/internal/graph"
	"github.com/abelbrown/vantage/internal/pipeline"
)

// Server wires the HTTP read surface.
type Server struct {
	pipeline *pipeline.Pipeline
	graph    *graph.Graph
	engine   *gin.Engine
}

// New builds the router.
func New(p *pipeline.Pipeline, g *graph.Graph) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{pipeline: p, graph: g, engine: gin.New()}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/report", s.getReport)
	api.GET("/news", s.getNews)
	api.GET("/signals", s.getSignals)
	api.GET("/alerts", s.getAlerts)
	api.GET("/scenarios", s.getScenarios)
	api.GET("/graph", s.getGraph)
	api.GET("/graph/connections/:id", s.getConnections)
	api.GET("/graph/supply-chain/:id", s.getSupplyChain)
	api.GET("/graph/path", s.getPath)

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) getReport(c *gin.Context) {
	report := s.pipeline.Report()
	if report == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no cycle completed yet"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) getNews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.pipeline.NewsForCity(c.Query("city"))})
}

func (s *Server) getSignals(c *gin.Context) {
	report := s.pipeline.Report()
	if report == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no cycle completed yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signals": report.Signals})
}

func (s *Server) getAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": s.pipeline.Alerts()})
}

func (s *Server) getScenarios(c *gin.Context) {
	report := s.pipeline.Report()
	if report == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no cycle completed yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": report.Scenarios})
}

func (s *Server) getGraph(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nodes": s.graph.Nodes(), "edges": s.graph.Edges()})
}

func (s *Server) getConnections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connections": s.graph.Connections(c.Param("id"))})
}

func (s *Server) getSupplyChain(c *gin.Context) {
	c.JSON(http.StatusOK, s.graph.SupplyChainExposure(c.Param("id")))
}

// getPath returns 200 with a null path when the nodes are disconnected or
// unknown; "no path" is a valid outcome, not an error.
func (s *Server) getPath(c *gin.Context) {
	hops := s.graph.RiskTransmissionPath(c.Query("from"), c.Query("to"))
	c.JSON(http.StatusOK, gin.H{"path": hops})
}
