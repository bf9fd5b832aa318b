package reporting

import "errors"

var (
	// ErrAccountKeyRequired is returned when several accounts are configured
	// and the request names none of them
	ErrAccountKeyRequired = errors.New("an account key is required when more than one account is configured")
	// ErrAccountNotFound is returned for an unknown account key
	ErrAccountNotFound = errors.New("no configuration found for the selected account key")
	// ErrNoAccounts is returned when the server has no accounts configured
	ErrNoAccounts = errors.New("no ad accounts are configured")
)
