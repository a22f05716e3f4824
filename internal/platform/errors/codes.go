// Package errors provides structured domain errors shared by the arena
// services and their gRPC, MCP and HTTP boundaries.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Lookup errors
	CodeNotFound     Code = "NOT_FOUND"
	CodeNPCNotFound  Code = "NPC_NOT_FOUND"
	CodeMoveNotFound Code = "MOVE_NOT_FOUND"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeFilterInvalid   Code = "FILTER_INVALID"
	CodeSeedOutOfRange  Code = "SEED_OUT_OF_RANGE"

	// Content errors
	CodeCatalogInvalid Code = "CATALOG_INVALID"

	// Narration errors
	CodeNarrationUnavailable Code = "NARRATION_UNAVAILABLE"
	CodeNarrationFailed      Code = "NARRATION_FAILED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidArgument,
		CodeFilterInvalid,
		CodeSeedOutOfRange:
		return codes.InvalidArgument

	case CodeNotFound,
		CodeNPCNotFound,
		CodeMoveNotFound:
		return codes.NotFound

	case CodeCatalogInvalid:
		return codes.FailedPrecondition

	case CodeNarrationUnavailable:
		return codes.Unavailable

	case CodeNarrationFailed:
		return codes.Unknown

	default:
		return codes.Internal
	}
}

// HTTPStatus maps domain codes to HTTP response statuses.
func (c Code) HTTPStatus() int {
	switch c.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Unknown:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
