package errcode

import "fmt"

// Error represents a business error
type Error struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("errcode: %d, msg: %s", e.Code, e.Msg)
}

// New creates a new error with code and message
func New(code int, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Wrap wraps an error with additional context
func (e *Error) Wrap(err error) *Error {
	if err == nil {
		return e
	}
	return &Error{
		Code: e.Code,
		Msg:  fmt.Sprintf("%s: %v", e.Msg, err),
	}
}

// Common error codes
var (
	// Success
	ErrSuccess = New(0, "success")

	// Common errors (1xxx)
	ErrInvalidParam   = New(1001, "invalid parameter")
	ErrInternalServer = New(1002, "internal server error")
	ErrUnauthorized   = New(1003, "unauthorized")
	ErrForbidden      = New(1004, "forbidden")
	ErrNotFound       = New(1005, "not found")
	ErrNoPermission   = New(1006, "no permission to access this resource")

	// Token errors (2xxx)
	ErrTokenInvalid = New(2001, "token invalid")
	ErrTokenExpired = New(2002, "token expired")
	ErrTokenMissing = New(2003, "token missing")
	ErrTokenRevoked = New(2004, "token revoked")

	// Messaging errors (3xxx)
	ErrConvNotFound    = New(3001, "conversation not found")
	ErrMessageNotFound = New(3002, "message not found")
	ErrNotParticipant  = New(3003, "not a participant of this conversation")
	ErrSelfRead        = New(3004, "cannot mark own message as read")
	ErrEmptyContent    = New(3005, "message content must not be empty")

	// Admin errors (4xxx)
	ErrPartnerNotFound   = New(4001, "partner not found")
	ErrBookingNotFound   = New(4002, "booking not found")
	ErrInvalidTransition = New(4003, "invalid status transition")
	ErrRuleNotFound      = New(4004, "commission rule not found")
	ErrConfigNotFound    = New(4005, "configuration not found")
	ErrRoleNotFound      = New(4006, "role not found")
	ErrRoleExists        = New(4007, "role already exists")
	ErrSystemRole        = New(4008, "system role cannot be modified")
	ErrAdminUserNotFound = New(4009, "admin user not found")
	ErrAdminUserExists   = New(4010, "admin user already exists")
)
