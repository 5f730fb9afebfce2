package handlers

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fmt"
	"net"
	"net/http"
)

// quoteFailure is how a quote error is shown to the user.
type quoteFailure struct {
	Status  int
	Message string
	// Warning marks failures the user can fix by correcting the input.
	Warning bool
	Outcome string
}

func classifyQuoteError(err error) quoteFailure {
	var se *domain.ServiceError

	switch {
	case errors.Is(err, domain.ErrInvalidShipment):
		return quoteFailure{Status: http.StatusBadRequest, Message: err.Error(), Warning: true, Outcome: "invalid"}
	case errors.Is(err, domain.ErrNoFeasibleVehicle):
		return quoteFailure{Status: http.StatusUnprocessableEntity, Message: "load too heavy for a single vehicle", Outcome: "no_vehicle"}
	case errors.Is(err, domain.ErrNoRouteFound):
		return quoteFailure{Status: http.StatusUnprocessableEntity, Message: "no route found: check the addresses or coordinates", Warning: true, Outcome: "no_route"}
	case isTimeout(err):
		return quoteFailure{Status: http.StatusGatewayTimeout, Message: "mapping service connection error: timed out", Outcome: "service_error"}
	case errors.As(err, &se):
		return quoteFailure{Status: http.StatusBadGateway, Message: serviceMessage(se), Outcome: "service_error"}
	default:
		return quoteFailure{Status: http.StatusInternalServerError, Message: "internal server error", Outcome: "error"}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// serviceMessage describes a mapping failure without echoing upstream URLs.
func serviceMessage(se *domain.ServiceError) string {
	switch {
	case se.Status != "":
		return "mapping service connection error: " + se.Status
	case se.StatusCode != 0:
		return fmt.Sprintf("mapping service connection error: http %d", se.StatusCode)
	default:
		return "mapping service connection error"
	}
}
