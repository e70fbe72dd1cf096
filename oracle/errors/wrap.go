package errors

import (
	"errors"
	"strings"
)

var retryablePatterns = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"temporary failure",
	"too many requests",
	"rate limit",
	"database is locked",
}

// Wrap converts err into an OracleError unless it already is one, in which
// case message is recorded as context.
func Wrap(err error, code ErrorCode, chain, message string) *OracleError {
	if err == nil {
		return nil
	}

	var oErr *OracleError
	if errors.As(err, &oErr) {
		oErr.WithContext("wrapped_message", message)
		if chain != "" && oErr.Chain == "" {
			oErr.Chain = chain
		}
		return oErr
	}

	return New(code, chain, message, err)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// HasCode checks if an error is an OracleError with the given code
func HasCode(err error, code ErrorCode) bool {
	var oErr *OracleError
	if errors.As(err, &oErr) {
		return oErr.Code == code
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var oErr *OracleError
	if errors.As(err, &oErr) {
		return oErr.IsRetryable()
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range retryablePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// GetSeverity returns the severity of an error
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityInfo
	}

	var oErr *OracleError
	if errors.As(err, &oErr) {
		return oErr.Severity
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "panic"), strings.Contains(msg, "fatal"):
		return SeverityCritical
	case strings.Contains(msg, "failed"), strings.Contains(msg, "error"):
		return SeverityHigh
	case strings.Contains(msg, "warning"):
		return SeverityMedium
	}
	return SeverityLow
}
