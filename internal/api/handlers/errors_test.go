package handlers

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyQuoteError(t *testing.T) {
	transport := &url.Error{Op: "Get", URL: "http://maps.internal/maps/api/directions/json?origin=Hub", Err: timeoutErr{}}

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid", domain.ErrInvalidShipment, http.StatusBadRequest, "invalid shipment"},
		{"no vehicle", domain.ErrNoFeasibleVehicle, http.StatusUnprocessableEntity, "load too heavy for a single vehicle"},
		{"no route", domain.ErrNoRouteFound, http.StatusUnprocessableEntity, "no route found: check the addresses or coordinates"},
		{"deadline", &domain.ServiceError{Op: "google directions", Err: fmt.Errorf("wait: %w", context.DeadlineExceeded)}, http.StatusGatewayTimeout, "mapping service connection error: timed out"},
		{"transport timeout", &domain.ServiceError{Op: "google directions", Err: transport}, http.StatusGatewayTimeout, "mapping service connection error: timed out"},
		{"status", &domain.ServiceError{Op: "google directions", Status: "OVER_QUERY_LIMIT", Err: errors.New("quota")}, http.StatusBadGateway, "mapping service connection error: OVER_QUERY_LIMIT"},
		{"http", &domain.ServiceError{Op: "google directions", StatusCode: 503, Err: errors.New("down")}, http.StatusBadGateway, "mapping service connection error: http 503"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		f := classifyQuoteError(tt.err)
		if f.Status != tt.status || f.Message != tt.msg {
			t.Errorf("%s: got %d %q, want %d %q", tt.name, f.Status, f.Message, tt.status, tt.msg)
		}
	}
}

func TestClassifyQuoteErrorHidesUpstreamURL(t *testing.T) {
	err := &domain.ServiceError{
		Op:  "google directions",
		Err: &url.Error{Op: "Get", URL: "http://maps.internal/maps/api/directions/json?origin=Hub", Err: errors.New("connection refused")},
	}

	f := classifyQuoteError(err)
	if f.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", f.Status)
	}
	if strings.Contains(f.Message, "maps.internal") || strings.Contains(f.Message, "origin=") {
		t.Fatalf("message leaks upstream url: %q", f.Message)
	}
}
