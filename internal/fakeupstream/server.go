// Package fakeupstream serves weatherapi.com-shaped current-conditions
// documents for tests and local development.
package fakeupstream

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Provider error codes as documented by weatherapi.com
const (
	codeKeyMissing      = 1002
	codeQueryMissing    = 1003
	codeNoMatch         = 1006
	codeKeyInvalid      = 2006
	codeInternalFailure = 9999
)

type Server struct {
	apiKey string

	mu        sync.Mutex
	documents map[string]gin.H
	statuses  map[string]int
	requests  map[string]int
}

// NewServer creates a fake upstream accepting apiKey and preloaded with a few
// well-known locations
func NewServer(apiKey string) *Server {
	s := &Server{
		apiKey:    apiKey,
		documents: make(map[string]gin.H),
		statuses:  make(map[string]int),
		requests:  make(map[string]int),
	}

	s.AddLocation(Location{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom",
		Lat: 51.52, Lon: -0.11, TzID: "Europe/London"}, Conditions{TempC: 18.0, Humidity: 72, WindKph: 13.0,
		ConditionText: "Cloudy", ConditionCode: 1006, IsDay: 1})
	s.AddLocation(Location{Name: "Paris", Region: "Ile-de-France", Country: "France",
		Lat: 48.87, Lon: 2.33, TzID: "Europe/Paris"}, Conditions{TempC: 21.0, Humidity: 60, WindKph: 9.0,
		ConditionText: "Sunny", ConditionCode: 1000, IsDay: 1})
	s.AddLocation(Location{Name: "Kyiv", Region: "Kyyivs'ka Oblast'", Country: "Ukraine",
		Lat: 50.43, Lon: 30.52, TzID: "Europe/Kiev"}, Conditions{TempC: 12.0, Humidity: 82, WindKph: 15.1,
		ConditionText: "Overcast", ConditionCode: 1009, IsDay: 0})

	return s
}

type Location struct {
	Name    string
	Region  string
	Country string
	Lat     float64
	Lon     float64
	TzID    string
}

type Conditions struct {
	TempC         float64
	Humidity      int
	WindKph       float64
	IsDay         int
	ConditionText string
	ConditionCode int
}

// AddLocation registers the document served for loc.Name (case-insensitive)
func (s *Server) AddLocation(loc Location, cur Conditions) {
	doc := gin.H{
		"location": gin.H{
			"name":            loc.Name,
			"region":          loc.Region,
			"country":         loc.Country,
			"lat":             loc.Lat,
			"lon":             loc.Lon,
			"tz_id":           loc.TzID,
			"localtime_epoch": 1718003580,
			"localtime":       "2024-06-10 8:13",
		},
		"current": gin.H{
			"last_updated_epoch": 1718002800,
			"last_updated":       "2024-06-10 08:00",
			"temp_c":             cur.TempC,
			"temp_f":             cur.TempC*9/5 + 32,
			"is_day":             cur.IsDay,
			"condition": gin.H{
				"text": cur.ConditionText,
				"icon": "//cdn.weatherapi.com/weather/64x64/day/119.png",
				"code": cur.ConditionCode,
			},
			"wind_kph":    cur.WindKph,
			"wind_mph":    cur.WindKph / 1.609,
			"humidity":    cur.Humidity,
			"feelslike_c": cur.TempC,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[strings.ToLower(loc.Name)] = doc
}

// SetStatus makes every request for location answer with status and the
// provider's error document. A status of 0 restores normal answers.
func (s *Server) SetStatus(location string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == 0 {
		delete(s.statuses, strings.ToLower(location))
		return
	}
	s.statuses[strings.ToLower(location)] = status
}

// Requests returns how many authorized requests were made for location
func (s *Server) Requests(location string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[strings.ToLower(location)]
}

// Handler returns the gin engine serving /current.json and /health
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/current.json", s.handleCurrent)
	r.GET("/v1/current.json", s.handleCurrent)

	return r
}

func (s *Server) handleCurrent(c *gin.Context) {
	key := c.Query("key")
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	switch {
	case key == "":
		providerError(c, http.StatusUnauthorized, codeKeyMissing, "API key is invalid or not provided.")
		return
	case key != s.apiKey:
		providerError(c, http.StatusForbidden, codeKeyInvalid, "API key provided is invalid")
		return
	case query == "":
		providerError(c, http.StatusBadRequest, codeQueryMissing, "Parameter q is missing.")
		return
	}

	s.mu.Lock()
	s.requests[query]++
	status, forced := s.statuses[query]
	doc, found := s.documents[query]
	s.mu.Unlock()

	if forced {
		if status >= http.StatusInternalServerError {
			providerError(c, status, codeInternalFailure, "Internal application error.")
			return
		}
		providerError(c, status, codeNoMatch, "No matching location found.")
		return
	}

	if !found {
		providerError(c, http.StatusBadRequest, codeNoMatch, "No matching location found.")
		return
	}

	c.JSON(http.StatusOK, doc)
}

func providerError(c *gin.Context, status, code int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
