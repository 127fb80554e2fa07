package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("the email address or the password is wrong")
	ErrPasswordWeak       = errors.New("the password must be at least 10 characters long and contain an uppercase letter, a lowercase letter, a digit and a special character")
	ErrPasswordTooLong    = errors.New("the password must not be longer than 72 bytes")
	ErrPasswordIncorrect  = errors.New("the current password is wrong")
	ErrTokenMissing       = errors.New("the request is not authenticated, the Authorization header must contain a Bearer token")
	ErrTokenInvalid       = errors.New("the access token is invalid or has expired")
)
