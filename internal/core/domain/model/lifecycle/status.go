package lifecycle

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Status is the pipeline stage a product is in.
//
// Main path:
//
//	RECEIVED ──> IN_ANALYSIS ──> APPROVED ──> IN_STORAGE ──> IN_PREPARATION ──> IN_SHIPPING ──> DELIVERED
//	                  │                            ^                                  │
//	                  └──> REJECTED ──> IN_RETURN <┼──────────────────────────────────┘
//	                                       │       │
//	                                       │   CANCELLED (reachable from every pre-shipping stage)
//	                                       ├──> RECEIVED (re-processing)
//	                                       └──> ELIMINATED
//
// DELIVERED and ELIMINATED are terminal. The authoritative edge list lives in graph.go.
type Status int

const (
	// Unknown (0) catches uninitialised Status values.
	Unknown Status = iota
	Received
	InAnalysis
	Approved
	Rejected
	InStorage
	InPreparation
	InShipping
	Delivered
	InReturn
	Eliminated
	Cancelled
)

var statusNames = map[Status]string{
	Received:      "RECEIVED",
	InAnalysis:    "IN_ANALYSIS",
	Approved:      "APPROVED",
	Rejected:      "REJECTED",
	InStorage:     "IN_STORAGE",
	InPreparation: "IN_PREPARATION",
	InShipping:    "IN_SHIPPING",
	Delivered:     "DELIVERED",
	InReturn:      "IN_RETURN",
	Eliminated:    "ELIMINATED",
	Cancelled:     "CANCELLED",
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Received, InAnalysis, Approved, Rejected, InStorage, InPreparation,
		InShipping, Delivered, InReturn, Eliminated, Cancelled,
	}
}

// ParseStatus maps a persisted or user supplied name ("IN_STORAGE") to a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the eleven pipeline stages.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText encodes the status by name so JSON payloads carry "IN_STORAGE"
// rather than an ordinal.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
