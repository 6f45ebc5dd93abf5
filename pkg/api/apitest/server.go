// Package apitest runs an in-memory fitness backend for tests.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tableflip.dev/fitlog/pkg/api"
)

// Server is a fake backend. Every collection accepts the list, get, create,
// update and delete calls the client makes.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	data     map[api.Collection][]map[string]any
	fail     map[api.Collection]int
	requests []string
	handler  http.Handler
}

// NewServer starts a fake backend. Requests must carry token as a bearer
// token unless it is empty.
func NewServer(token string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		token: token,
		data:  map[api.Collection][]map[string]any{},
		fail:  map[api.Collection]int{},
	}
	r := gin.New()
	r.Use(s.record, s.auth, s.known)
	r.GET("/api/:collection", s.list)
	r.POST("/api/:collection", s.create)
	r.GET("/api/:collection/:id", s.get)
	r.PUT("/api/:collection/:id", s.update)
	r.DELETE("/api/:collection/:id", s.remove)
	s.handler = r
	s.Server = httptest.NewServer(r)
	return s
}

// Handler is the gin engine behind the server, for serving the fake backend
// on a real listener.
func (s *Server) Handler() http.Handler { return s.handler }

// Seed stores records in col. Each record is encoded through JSON.
func (s *Server) Seed(col api.Collection, records ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			panic(fmt.Sprintf("apitest: seed %s: %v", col, err))
		}
		obj := map[string]any{}
		if err := json.Unmarshal(data, &obj); err != nil {
			panic(fmt.Sprintf("apitest: seed %s: %v", col, err))
		}
		s.data[col] = append(s.data[col], obj)
	}
}

// Fail makes every request to col answer code. Zero clears it.
func (s *Server) Fail(col api.Collection, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.fail, col)
		return
	}
	s.fail[col] = code
}

// Records returns a copy of what col currently holds.
func (s *Server) Records(col api.Collection) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.data[col]))
	copy(out, s.data[col])
	return out
}

// Requests returns "METHOD /path?query" for every request seen so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests matched method and path prefix.
func (s *Server) Count(method, prefix string) int {
	n := 0
	for _, r := range s.Requests() {
		if strings.HasPrefix(r, method+" "+prefix) {
			n++
		}
	}
	return n
}

func collectionOf(c *gin.Context) api.Collection {
	return api.Collection("/api/" + c.Param("collection"))
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.RequestURI())
	code := s.fail[collectionOf(c)]
	s.mu.Unlock()
	if code != 0 {
		c.AbortWithStatusJSON(code, gin.H{"detail": "injected failure"})
		return
	}
	c.Next()
}

func (s *Server) auth(c *gin.Context) {
	if s.token == "" {
		c.Next()
		return
	}
	if c.GetHeader("Authorization") != "Bearer "+s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
		return
	}
	c.Next()
}

func (s *Server) known(c *gin.Context) {
	if !collectionOf(c).Known() {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "unknown collection"})
		return
	}
	c.Next()
}

func (s *Server) list(c *gin.Context) {
	col := collectionOf(c)
	filter := c.Query("date_filter")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []map[string]any{}
	for _, obj := range s.data[col] {
		if filter != "" && obj["date"] != filter {
			continue
		}
		out = append(out, obj)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) get(c *gin.Context) {
	col := collectionOf(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(col, c.Param("id")); i >= 0 {
		c.JSON(http.StatusOK, s.data[col][i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
}

func (s *Server) create(c *gin.Context) {
	col := collectionOf(c)
	obj := map[string]any{}
	if err := c.ShouldBindJSON(&obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if id, _ := obj["id"].(string); id == "" {
		obj["id"] = uuid.NewString()
	}
	s.mu.Lock()
	s.data[col] = append(s.data[col], obj)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, obj)
}

func (s *Server) update(c *gin.Context) {
	col := collectionOf(c)
	obj := map[string]any{}
	if err := c.ShouldBindJSON(&obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	id := c.Param("id")
	obj["id"] = id
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(col, id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return
	}
	s.data[col][i] = obj
	c.JSON(http.StatusOK, obj)
}

func (s *Server) remove(c *gin.Context) {
	col := collectionOf(c)
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(col, id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return
	}
	s.data[col] = append(s.data[col][:i:i], s.data[col][i+1:]...)
	c.Status(http.StatusNoContent)
}

func (s *Server) index(col api.Collection, id string) int {
	for i, obj := range s.data[col] {
		if obj["id"] == id {
			return i
		}
	}
	return -1
}
