// Package common contains shared constants, sentinel errors and small helpers
// used across griot components.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the session token
// on every authenticated request.
const AccessTokenHeaderName = "access_token"

// SessionTokenBytes is the number of random bytes behind a session token key.
// Keys are hex encoded, so the wire form is twice as long.
const SessionTokenBytes = 20
