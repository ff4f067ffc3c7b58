// Package server hosts environment instances over HTTP so that a training
// loop in another process can drive them.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zeu5/player-selector/types"
)

// instance is one environment driven sequentially
type instance struct {
	lock  *sync.Mutex
	envID string
	env   types.Environment
}

type Server struct {
	Addr   string
	server *http.Server
	logger logrus.FieldLogger

	registry  *types.Registry
	lock      *sync.Mutex
	instances map[string]*instance
}

func New(addr string, registry *types.Registry, logger logrus.FieldLogger) *Server {
	s := &Server{
		Addr:      addr,
		logger:    logger,
		registry:  registry,
		lock:      new(sync.Mutex),
		instances: make(map[string]*instance),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests)
	v1 := r.Group("/v1")
	v1.GET("/registry", s.handleRegistry)
	v1.GET("/envs", s.handleList)
	v1.POST("/envs", s.handleCreate)
	v1.DELETE("/envs/:id", s.handleClose)
	v1.POST("/envs/:id/reset", s.handleReset)
	v1.POST("/envs/:id/step", s.handleStep)
	v1.POST("/envs/:id/seed", s.handleSeed)
	v1.GET("/envs/:id/spaces", s.handleSpaces)
	v1.GET("/envs/:id/render", s.handleRender)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run serves until the context is cancelled
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.Addr).Info("serving environments")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.WithFields(logrus.Fields{
		"method":   c.Request.Method,
		"path":     c.FullPath(),
		"status":   c.Writer.Status(),
		"duration": time.Since(start),
	}).Debug("request")
}

func (s *Server) get(id string) (*instance, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	i, ok := s.instances[id]
	return i, ok
}

// withInstance runs f holding the instance lock
func (s *Server) withInstance(c *gin.Context, f func(*instance)) {
	i, ok := s.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown instance"})
		return
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	f(i)
}

type registryEntry struct {
	ID              string `json:"id"`
	MaxEpisodeSteps int    `json:"max_episode_steps"`
}

func (s *Server) handleRegistry(c *gin.Context) {
	out := make([]registryEntry, 0)
	for _, spec := range s.registry.Specs() {
		out = append(out, registryEntry{ID: spec.ID, MaxEpisodeSteps: spec.MaxEpisodeSteps})
	}
	c.JSON(http.StatusOK, gin.H{"envs": out})
}

func (s *Server) handleList(c *gin.Context) {
	s.lock.Lock()
	out := make(map[string]string, len(s.instances))
	for id, i := range s.instances {
		out[id] = i.envID
	}
	s.lock.Unlock()
	c.JSON(http.StatusOK, gin.H{"all_envs": out})
}

type createRequest struct {
	EnvID string `json:"env_id" binding:"required"`
}

func (s *Server) handleCreate(c *gin.Context) {
	req := createRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
		return
	}
	env, err := s.registry.Make(req.EnvID)
	if errors.Is(err, types.ErrUnknownEnvironment) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		s.logger.WithError(err).WithField("env_id", req.EnvID).Error("failed to create environment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New().String()
	s.lock.Lock()
	s.instances[id] = &instance{lock: new(sync.Mutex), envID: req.EnvID, env: env}
	s.lock.Unlock()

	s.logger.WithFields(logrus.Fields{"env_id": req.EnvID, "instance_id": id}).Info("created environment")
	c.JSON(http.StatusCreated, gin.H{"instance_id": id})
}

func (s *Server) handleClose(c *gin.Context) {
	id := c.Param("id")
	s.lock.Lock()
	_, ok := s.instances[id]
	delete(s.instances, id)
	s.lock.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown instance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (s *Server) handleReset(c *gin.Context) {
	s.withInstance(c, func(i *instance) {
		state := i.env.Reset()
		c.JSON(http.StatusOK, gin.H{"observation": state.Observation()})
	})
}

type stepRequest struct {
	Action *int `json:"action" binding:"required"`
}

type stepResponse struct {
	Observation []float64  `json:"observation"`
	Reward      float64    `json:"reward"`
	Done        bool       `json:"done"`
	Info        types.Info `json:"info"`
}

func (s *Server) handleStep(c *gin.Context) {
	req := stepRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
		return
	}
	s.withInstance(c, func(i *instance) {
		result, err := i.env.Step(types.Action(*req.Action))
		if errors.Is(err, types.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stepResponse{
			Observation: result.State.Observation(),
			Reward:      result.Reward,
			Done:        result.Done,
			Info:        result.Info,
		})
	})
}

type seedRequest struct {
	Seed *uint64 `json:"seed"`
}

func (s *Server) handleSeed(c *gin.Context) {
	req := seedRequest{}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
			return
		}
	}
	s.withInstance(c, func(i *instance) {
		c.JSON(http.StatusOK, gin.H{"seeds": i.env.Seed(req.Seed)})
	})
}

type spaceInfo struct {
	Name  string    `json:"name"`
	N     int       `json:"n,omitempty"`
	Shape []int     `json:"shape"`
	Low   []float64 `json:"low,omitempty"`
	High  []float64 `json:"high,omitempty"`
}

func describe(space types.Space) spaceInfo {
	info := spaceInfo{Shape: space.Shape()}
	switch sp := space.(type) {
	case types.Discrete:
		info.Name = "Discrete"
		info.N = sp.N
	case types.Box:
		info.Name = "Box"
		info.Low = sp.Low
		info.High = sp.High
	default:
		info.Name = space.String()
	}
	return info
}

func (s *Server) handleSpaces(c *gin.Context) {
	s.withInstance(c, func(i *instance) {
		c.JSON(http.StatusOK, gin.H{
			"action_space":      describe(i.env.ActionSpace()),
			"observation_space": describe(i.env.ObservationSpace()),
		})
	})
}

func (s *Server) handleRender(c *gin.Context) {
	s.withInstance(c, func(i *instance) {
		r, ok := i.env.(types.Renderer)
		if !ok {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "environment does not render"})
			return
		}
		out := new(bytes.Buffer)
		if err := r.Render(out); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.String(http.StatusOK, out.String())
	})
}

// Instances returns the live instance ids, sorted
func (s *Server) Instances() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	ids := make([]string, 0, len(s.instances))
	for id := range s.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
