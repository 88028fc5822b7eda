package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// RemoteDocument is a well-formed snake_case body as the remote AI service sends it
const RemoteDocument = `{
	"recommendation": "# Remote plan\n\nEat more leafy greens and legumes.",
	"sources": [{"title": "PubMed", "url": "https://pubmed.ncbi.nlm.nih.gov/", "type": "pubmed", "summary": "Peer-reviewed research", "relevance_score": 0.95}],
	"allergy_masked": [],
	"nutritional_highlights": ["Rich in fiber"],
	"safety_score": 97,
	"confidence": 88,
	"use_case": "Cardiovascular Health",
	"meal_plan": {"breakfast": ["Oatmeal"], "lunch": ["Lentil soup"], "dinner": ["Baked salmon"], "snacks": ["Apple"]},
	"specific_recommendations": {"immediate": ["Cut added salt"], "short_term": ["Walk 30 minutes daily"], "long_term": ["Recheck blood pressure"]},
	"supplement_suggestions": [],
	"lifestyle_recommendations": ["Sleep 7-9 hours"],
	"timestamp": "2026-03-14T09:30:00.000000",
	"version": "2.0.0",
	"analysis_type": "comprehensive_multi_source"
}`

// FakeBackend is an httptest stand-in for the remote AI service
type FakeBackend struct {
	Server *httptest.Server

	mu        sync.Mutex
	recommend http.HandlerFunc
	healthy   bool
	calls     atomic.Int32
	requests  []map[string]interface{}
}

// NewFakeBackend starts a healthy fake that answers with RemoteDocument
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		recommend: JSONHandler(http.StatusOK, RemoteDocument),
		healthy:   true,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/recommend", fb.serveRecommend)
	mux.HandleFunc("/health", fb.serveHealth)

	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL returns the base URL of the fake
func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

// SetRecommendHandler replaces the POST /recommend behaviour
func (fb *FakeBackend) SetRecommendHandler(h http.HandlerFunc) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.recommend = h
}

// SetHealthy switches the GET /health answer between 200 and 503
func (fb *FakeBackend) SetHealthy(healthy bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.healthy = healthy
}

// Calls returns how many recommend requests arrived
func (fb *FakeBackend) Calls() int {
	return int(fb.calls.Load())
}

// Requests returns the decoded recommend bodies received so far
func (fb *FakeBackend) Requests() []map[string]interface{} {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]map[string]interface{}, len(fb.requests))
	copy(out, fb.requests)
	return out
}

func (fb *FakeBackend) serveRecommend(w http.ResponseWriter, r *http.Request) {
	fb.calls.Add(1)

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		fb.mu.Lock()
		fb.requests = append(fb.requests, body)
		fb.mu.Unlock()
	}

	fb.mu.Lock()
	h := fb.recommend
	fb.mu.Unlock()
	h(w, r)
}

func (fb *FakeBackend) serveHealth(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	healthy := fb.healthy
	fb.mu.Unlock()

	if healthy {
		JSONHandler(http.StatusOK, `{"status":"healthy"}`)(w, r)
		return
	}
	JSONHandler(http.StatusServiceUnavailable, `{"status":"initializing"}`)(w, r)
}

// JSONHandler answers with a fixed JSON body
func JSONHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// HTMLHandler answers 200 with an HTML maintenance page
func HTMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<html><body>Down for maintenance</body></html>")
	}
}

// SlowHandler answers after delay unless the caller gives up first
func SlowHandler(delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
			JSONHandler(http.StatusOK, RemoteDocument)(w, r)
		case <-r.Context().Done():
		}
	}
}

// TruncatedHandler answers with a JSON body cut short
func TruncatedHandler() http.HandlerFunc {
	return JSONHandler(http.StatusOK, RemoteDocument[:len(RemoteDocument)/2])
}

// MissingNarrativeHandler answers with a well-formed body that lacks the narrative
func MissingNarrativeHandler() http.HandlerFunc {
	return JSONHandler(http.StatusOK, `{"use_case": "General Wellness", "safety_score": 99}`)
}
