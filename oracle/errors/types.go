package errors

import (
	"fmt"
)

// ErrorCode represents different categories of errors
type ErrorCode string

const (
	// ErrCodeValidation indicates input validation errors
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeDatabase indicates attestation store errors
	ErrCodeDatabase ErrorCode = "DATABASE"

	// ErrCodeSubmission indicates the relay ledger rejected a submission
	ErrCodeSubmission ErrorCode = "SUBMISSION"

	// ErrCodeSigning indicates digest signing failures
	ErrCodeSigning ErrorCode = "SIGNING"

	// ErrCodeConfig indicates configuration errors
	ErrCodeConfig ErrorCode = "CONFIG"

	// ErrCodeTimeout indicates timeout errors
	ErrCodeTimeout ErrorCode = "TIMEOUT"

	// ErrCodeInternal indicates internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Severity represents the severity level of an error
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// OracleError is an error raised by the oracle client, tagged with the chain
// it concerns.
type OracleError struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Chain    string         `json:"chain,omitempty"`
	Severity Severity       `json:"severity"`
	Cause    error          `json:"-"`
	Context  map[string]any `json:"context,omitempty"`
}

// New creates a new OracleError
func New(code ErrorCode, chain, message string, cause error) *OracleError {
	return &OracleError{
		Code:     code,
		Message:  message,
		Chain:    chain,
		Severity: determineSeverity(code),
		Cause:    cause,
		Context:  make(map[string]any),
	}
}

// Error implements the error interface
func (e *OracleError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Chain != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Chain, e.Code, e.Severity, msg)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, msg)
}

// Unwrap returns the underlying cause
func (e *OracleError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *OracleError) WithContext(key string, value any) *OracleError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithSeverity overrides the default severity
func (e *OracleError) WithSeverity(severity Severity) *OracleError {
	e.Severity = severity
	return e
}

// IsRetryable returns true if the error is retryable
func (e *OracleError) IsRetryable() bool {
	switch e.Code {
	case ErrCodeTimeout:
		return true
	case ErrCodeDatabase:
		return e.Severity != SeverityCritical
	default:
		return false
	}
}

func determineSeverity(code ErrorCode) Severity {
	switch code {
	case ErrCodeInternal:
		return SeverityCritical
	case ErrCodeDatabase, ErrCodeSigning:
		return SeverityHigh
	case ErrCodeSubmission, ErrCodeTimeout:
		return SeverityMedium
	case ErrCodeValidation, ErrCodeConfig:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// NewValidationError creates a validation error
func NewValidationError(chain, message string) *OracleError {
	return New(ErrCodeValidation, chain, message, nil)
}

// NewDatabaseError creates a database error
func NewDatabaseError(chain, message string, cause error) *OracleError {
	return New(ErrCodeDatabase, chain, message, cause)
}

// NewSubmissionError creates a submission error
func NewSubmissionError(chain, message string, cause error) *OracleError {
	return New(ErrCodeSubmission, chain, message, cause)
}

// NewSigningError creates a signing error
func NewSigningError(chain, message string, cause error) *OracleError {
	return New(ErrCodeSigning, chain, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string) *OracleError {
	return New(ErrCodeConfig, "", message, nil)
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(chain, message string, cause error) *OracleError {
	return New(ErrCodeTimeout, chain, message, cause)
}
