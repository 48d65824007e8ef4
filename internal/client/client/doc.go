// Package client talks to the griot server over gRPC.
//
// GRPCClient keeps the session token returned by Login and attaches it to
// every call through a unary interceptor. Status codes coming back from the
// server are mapped to the sentinel errors in errors.go so callers can match
// them with errors.Is:
//
//	Unauthenticated               -> ErrUnauthorized
//	PermissionDenied              -> ErrForbidden
//	NotFound                      -> ErrNotFound
//	InvalidArgument               -> ErrInvalidInput (server message kept)
//	Unavailable, DeadlineExceeded -> ErrUnavailable
package client
