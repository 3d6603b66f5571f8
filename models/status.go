package models

import "fmt"

// IssueCategory enum
type IssueCategory string

const (
	Roads       IssueCategory = "Roads"
	Water       IssueCategory = "Water"
	Sanitation  IssueCategory = "Sanitation"
	Electricity IssueCategory = "Electricity"
	Other       IssueCategory = "Other"
)

// Categories lists every valid issue category.
var Categories = []IssueCategory{Roads, Water, Sanitation, Electricity, Other}

func (c IssueCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IssueStatus is the lifecycle stage of a reported issue.
type IssueStatus string

const (
	Pending        IssueStatus = "Pending"
	Confirmation   IssueStatus = "Confirmation"
	Acknowledgment IssueStatus = "Acknowledgment"
	Resolution     IssueStatus = "Resolution"
)

// StatusOrder is the canonical progression. Every component that renders
// or mutates status derives ordering from this slice, nowhere else.
var StatusOrder = []IssueStatus{Pending, Confirmation, Acknowledgment, Resolution}

// Index returns the ordinal position of the status in StatusOrder,
// or -1 for an unknown value.
func (s IssueStatus) Index() int {
	for i, known := range StatusOrder {
		if s == known {
			return i
		}
	}
	return -1
}

func (s IssueStatus) Valid() bool {
	return s.Index() >= 0
}

// Next returns the following stage. The second return value is false
// when s is terminal (Resolution) or unknown.
func (s IssueStatus) Next() (IssueStatus, bool) {
	i := s.Index()
	if i < 0 || i >= len(StatusOrder)-1 {
		return s, false
	}
	return StatusOrder[i+1], true
}

// Progress is the completion fraction used for progress bars:
// Index / (len(StatusOrder)-1). Derived for display, never persisted.
func (s IssueStatus) Progress() float64 {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return float64(i) / float64(len(StatusOrder)-1)
}

// ParseIssueStatus validates a raw string against the known stages.
func ParseIssueStatus(raw string) (IssueStatus, error) {
	s := IssueStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown issue status %q", raw)
	}
	return s, nil
}
