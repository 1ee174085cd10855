package enricher

import (
	"fmt"

	"github.com/olehluchkiv/birdadapter/internal/analyzer"
	"github.com/olehluchkiv/birdadapter/internal/diagram"
)

// PatternDetector identifies design patterns in the interface graph.
type PatternDetector interface {
	Detect(result *analyzer.Result) []DetectedPattern
}

// AdapterPattern is the name reported for every detected adapter.
const AdapterPattern = "Adapter"

// AdapterDetector reports one Adapter pattern per adapter relationship found
// by the analyzer. Participants are ordered adapter type, adaptee, target.
type AdapterDetector struct{}

func NewAdapterDetector() *AdapterDetector { return &AdapterDetector{} }

func (d *AdapterDetector) Detect(result *analyzer.Result) []DetectedPattern {
	adapters := diagram.SortedAdapters(result.Adapters)
	if len(adapters) == 0 {
		return nil
	}

	patterns := make([]DetectedPattern, 0, len(adapters))
	for _, ad := range adapters {
		patterns = append(patterns, DetectedPattern{
			Name: AdapterPattern,
			Description: fmt.Sprintf("%s exposes %s as %s through field %s",
				ad.Type.Name, ad.Adaptee.Name, ad.Target.Name, ad.Field),
			Participants: []string{
				analyzer.TypeKey(ad.Type),
				analyzer.IfaceKey(ad.Adaptee),
				analyzer.IfaceKey(ad.Target),
			},
		})
	}
	return patterns
}

var _ PatternDetector = (*AdapterDetector)(nil)
