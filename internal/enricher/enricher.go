// Package enricher derives higher-level findings, such as design patterns,
// from an analysis result.
package enricher

// DetectedPattern represents a recognized design pattern.
type DetectedPattern struct {
	Name         string
	Description  string
	Participants []string // type/interface keys involved
}
