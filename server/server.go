// Package server exposes finpredictor over an HTTP JSON API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/agent"
	"github.com/etnz/finpredictor/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server is the finpredictor API.
type Server struct {
	users      *store.Users
	portfolios *store.Portfolios
	goals      *store.Goals
	advisor    *agent.Advisor
	engine     *gin.Engine
}

// Options configures a Server. Nil stores are created empty.
type Options struct {
	Users       *store.Users
	Portfolios  *store.Portfolios
	Goals       *store.Goals
	Advisor     *agent.Advisor
	CORSOrigins []string // "*" allows any origin
}

// New creates a Server and registers its routes.
func New(opts Options) *Server {
	s := &Server{
		users:      opts.Users,
		portfolios: opts.Portfolios,
		goals:      opts.Goals,
		advisor:    opts.Advisor,
	}
	if s.users == nil {
		s.users = store.NewUsers()
	}
	if s.portfolios == nil {
		s.portfolios = store.NewPortfolios()
	}
	if s.goals == nil {
		s.goals = store.NewGoals()
	}
	if s.advisor == nil {
		s.advisor = &agent.Advisor{}
	}

	s.engine = gin.New()
	s.engine.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig(opts.CORSOrigins)))
	s.routes()
	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "finpredictor", "status": "ok"})
	})

	users := r.Group("/api/users")
	users.POST("/signup", handle(s.signup))
	users.POST("/login", handle(s.login))
	users.GET("/:userId", handle(s.user))

	portfolio := r.Group("/api/portfolio")
	portfolio.GET("/:userId", handle(s.portfolio))
	portfolio.POST("/:userId/assets", handle(s.addAsset))
	portfolio.DELETE("/:userId/assets/:assetId", handle(s.deleteAsset))

	goals := r.Group("/api/goals")
	goals.GET("/:userId", handle(s.listGoals))
	goals.POST("/:userId", handle(s.createGoal))
	goals.DELETE("/:userId/:goalId", handle(s.deleteGoal))

	r.POST("/api/ai/predict", handle(s.predict))
	r.POST("/api/projection", handle(s.project))
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully
// within 10 seconds.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("finpredictor API listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server exited")
	return nil
}

type okResponse struct {
	OK bool `json:"ok"`
}

func (s *Server) signup(c *gin.Context) error {
	var in finpredictor.UserCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	u, err := s.users.Signup(c, in)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, u)
	return nil
}

func (s *Server) login(c *gin.Context) error {
	var in finpredictor.Credentials
	if err := bind(c, &in); err != nil {
		return err
	}
	u, err := s.users.Login(c, in)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, u)
	return nil
}

func (s *Server) user(c *gin.Context) error {
	u, err := s.users.Get(c, c.Param("userId"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, u)
	return nil
}

func (s *Server) portfolio(c *gin.Context) error {
	c.JSON(http.StatusOK, s.portfolios.Get(c, c.Param("userId")))
	return nil
}

func (s *Server) addAsset(c *gin.Context) error {
	var in finpredictor.AssetCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	a, err := s.portfolios.Add(c, c.Param("userId"), in)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, a)
	return nil
}

func (s *Server) deleteAsset(c *gin.Context) error {
	if err := s.portfolios.Delete(c, c.Param("userId"), c.Param("assetId")); err != nil {
		return err
	}
	c.JSON(http.StatusOK, okResponse{OK: true})
	return nil
}

func (s *Server) listGoals(c *gin.Context) error {
	c.JSON(http.StatusOK, s.goals.List(c, c.Param("userId")))
	return nil
}

func (s *Server) createGoal(c *gin.Context) error {
	in := finpredictor.NewGoalCreate()
	if err := bind(c, &in); err != nil {
		return err
	}
	g, err := s.goals.Create(c, c.Param("userId"), in)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, g)
	return nil
}

func (s *Server) deleteGoal(c *gin.Context) error {
	if err := s.goals.Delete(c, c.Param("userId"), c.Param("goalId")); err != nil {
		return err
	}
	c.JSON(http.StatusOK, okResponse{OK: true})
	return nil
}

// predict answers insights, reading the user's portfolio and goals from the
// stores when the request does not carry them.
func (s *Server) predict(c *gin.Context) error {
	var req finpredictor.PredictionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Portfolio == nil {
		p := s.portfolios.Get(c, req.UserID)
		req.Portfolio = &p
	}
	if req.Goals == nil {
		req.Goals = s.goals.List(c, req.UserID)
	}
	p, err := s.advisor.Predict(c, req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, p)
	return nil
}

type projectionResponse struct {
	Points     finpredictor.Projection `json:"points"`
	FinalValue float64                 `json:"final_value"`
}

func (s *Server) project(c *gin.Context) error {
	view, err := finpredictor.ParseView(c.Query("view"))
	if err != nil {
		return err
	}
	var req finpredictor.Request
	if err := bind(c, &req); err != nil {
		return err
	}
	points, err := finpredictor.Project(req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, projectionResponse{Points: points.In(view), FinalValue: points.FinalValue()})
	return nil
}
