package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token is invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrAuthHeaderMissing = errors.New("authorization header missing")
	ErrTokenMissing      = errors.New("bearer token missing")
	ErrTokenInvalid      = errors.New("token is invalid")
	ErrTokenVerification = errors.New("token verification failed")
	ErrQueryFailed       = errors.New("query failed")
)

// TokenExpiredError carries the expiry so callers can report when the
// token stopped being valid.
type TokenExpiredError struct {
	ExpiredAt time.Time
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("token expired at %s", e.ExpiredAt.Format(time.RFC3339))
}

// TokenNotActiveError carries the not-before time of a token presented
// too early.
type TokenNotActiveError struct {
	NotBefore time.Time
}

func (e *TokenNotActiveError) Error() string {
	return fmt.Sprintf("token not valid before %s", e.NotBefore.Format(time.RFC3339))
}

// TokenClaims is the normalized principal resolved once at the
// authentication boundary. User tokens carry UserID, admin tokens carry
// AdminID (plus UserID as a compatibility alias), so SubjectID is
// non-empty for every verified token.
type TokenClaims struct {
	UserID    string
	AdminID   string
	Email     string
	Username  string
	FirstName string
	LastName  string
	Role      string
	IsAdmin   bool
}

func (c TokenClaims) SubjectID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.AdminID
}
