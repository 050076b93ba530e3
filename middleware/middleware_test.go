// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/secret-santa/models"
)

func TestWithLogging_RequestID(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("generated when missing", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/participants", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if !called {
			t.Fatal("Expected wrapped handler to run")
		}
		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201 to pass through, got %d", w.Code)
		}
		if id := w.Header().Get(RequestIDHeader); len(id) != 36 {
			t.Errorf("Expected a generated UUID request id, got '%s'", id)
		}
	})

	t.Run("reused when provided", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/matches", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		handler(w, req)

		if id := w.Header().Get(RequestIDHeader); id != "abc-123" {
			t.Errorf("Expected request id 'abc-123', got '%s'", id)
		}
	})
}

func TestJSONResponse_MatchPayload(t *testing.T) {
	receiverID := int64(2)
	resp := models.GenerateMatchesResponse{
		RunID:   "run-1",
		Matches: models.MatchResult{"Alice": "Bob"},
		Pairs: []models.Pair{
			{GiverID: 1, GiverName: "Alice", ReceiverID: &receiverID, ReceiverName: "Bob"},
			{GiverID: 3, GiverName: "Cleo", ReceiverName: models.Nobody},
		},
	}

	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, resp)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}

	body := w.Body.String()
	// odd-one-out has no receiver_id, and odd_one_out is omitted when unset
	if strings.Count(body, `"receiver_id"`) != 1 {
		t.Errorf("Expected exactly one receiver_id, got %s", body)
	}
	if strings.Contains(body, `"odd_one_out"`) {
		t.Errorf("Expected odd_one_out to be omitted, got %s", body)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode    int
		message       string
		expectedError string
	}{
		{http.StatusBadRequest, "name is required", "Bad Request"},
		{http.StatusNotFound, "Participant not found", "Not Found"},
		{http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedError, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError || resp.Message != tc.message {
				t.Errorf("Expected {%s %s}, got %+v", tc.expectedError, tc.message, resp)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("participant request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/participants", strings.NewReader(`{"name":"Alice","extra":1}`))
		w := httptest.NewRecorder()

		var parsed models.AddParticipantRequest
		if err := ParseJSONBody(w, req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "Alice" {
			t.Errorf("Expected name 'Alice', got '%s'", parsed.Name)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/participants", strings.NewReader(`{name:`))
		w := httptest.NewRecorder()

		var parsed models.AddParticipantRequest
		if err := ParseJSONBody(w, req, &parsed); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/participants", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.AddParticipantRequest
		err := ParseJSONBody(w, req, &parsed)

		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			t.Errorf("Expected *http.MaxBytesError, got %v", err)
		}
	})
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handled"))
	})
	handler := CORS([]string{"http://localhost:5173"})(next)

	testCases := []struct {
		name            string
		method          string
		origin          string
		wantOrigin      string
		wantCredentials string
		wantBody        string
	}{
		{"allowed origin", "GET", "http://localhost:5173", "http://localhost:5173", "true", "handled"},
		{"other origin", "GET", "https://evil.example", "*", "", "handled"},
		{"no origin", "GET", "", "*", "", "handled"},
		{"preflight", "OPTIONS", "http://localhost:5173", "http://localhost:5173", "true", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/participants", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("Expected Allow-Origin '%s', got '%s'", tc.wantOrigin, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCredentials {
				t.Errorf("Expected Allow-Credentials '%s', got '%s'", tc.wantCredentials, got)
			}
			if w.Body.String() != tc.wantBody {
				t.Errorf("Expected body '%s', got '%s'", tc.wantBody, w.Body.String())
			}
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader) {
				t.Errorf("Expected %s in allowed headers", RequestIDHeader)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "192.168.1.100"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "203.0.113.50"},
		{"ipv4 with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"ipv4 without port", nil, "192.168.1.50", "192.168.1.50"},
		{"ipv6 with port", nil, "[::1]:80", "::1"},
		{"ipv6 without port", nil, "[2001:db8::1]", "2001:db8::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
