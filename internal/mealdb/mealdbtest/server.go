// Package mealdbtest provides a scripted fake of the MealDB endpoint for tests.
package mealdbtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/five82/platter/internal/catalog"
)

// Path is the route the fake serves.
const Path = "/api/json/v1/1/filter.php"

// Response scripts one reply. A zero Status means 200.
type Response struct {
	Status int
	Body   string
	// Wait, when non-nil, holds the reply until it is closed or the request
	// context ends.
	Wait <-chan struct{}
}

// Server is an httptest server replaying scripted responses in order. Once
// the script is exhausted the last response repeats.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	script    []Response
	last      Response
	hits      int
	requestID string
	userAgent string
}

// NewServer starts a fake and registers its shutdown with t.Cleanup.
func NewServer(t testing.TB, responses ...Response) *Server {
	t.Helper()

	s := &Server{script: append([]Response(nil), responses...)}

	r := chi.NewRouter()
	r.Get(Path, s.serveList)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Endpoint returns the full URL a client should be pointed at.
func (s *Server) Endpoint() string {
	return s.URL + Path
}

// Enqueue appends responses to the script.
func (s *Server) Enqueue(responses ...Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, responses...)
}

// Hits returns how many list requests were served.
func (s *Server) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

// LastRequestID returns the X-Request-ID header of the latest request.
func (s *Server) LastRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestID
}

// LastUserAgent returns the User-Agent header of the latest request.
func (s *Server) LastUserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

func (s *Server) next() Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits++
	if len(s.script) > 0 {
		s.last = s.script[0]
		s.script = s.script[1:]
	}
	return s.last
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requestID = r.Header.Get("X-Request-ID")
	s.userAgent = r.Header.Get("User-Agent")
	s.mu.Unlock()

	resp := s.next()
	if resp.Wait != nil {
		select {
		case <-resp.Wait:
		case <-r.Context().Done():
			return
		}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp.Body))
}

// MealsJSON renders items in TheMealDB's {"meals":[...]} envelope.
func MealsJSON(items ...catalog.Item) string {
	type meal struct {
		ID    string `json:"idMeal"`
		Name  string `json:"strMeal"`
		Thumb string `json:"strMealThumb"`
	}
	meals := make([]meal, 0, len(items))
	for _, item := range items {
		meals = append(meals, meal{ID: item.ID, Name: item.DisplayName, Thumb: item.ImageURL})
	}
	data, err := json.Marshal(map[string]any{"meals": meals})
	if err != nil {
		panic(err)
	}
	return string(data)
}

// OK is a 200 reply carrying items.
func OK(items ...catalog.Item) Response {
	return Response{Body: MealsJSON(items...)}
}

// Status is a reply with the given status code and a small JSON body.
func Status(code int) Response {
	return Response{Status: code, Body: `{"error":"scripted failure"}`}
}
