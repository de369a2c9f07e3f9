package aggregators

import (
	"pageview-analytics/internal/models"
	"pageview-analytics/internal/trees"
)

// Outcome tells what Ingest did with a URL.
type Outcome string

const (
	OutcomeIngested  Outcome = "ingested"
	OutcomeFiltered  Outcome = "filtered"
	OutcomeMalformed Outcome = "malformed"
)

// URLMatcher decides which normalised URLs are ingested.
type URLMatcher interface {
	MatchString(s string) bool
}

//go:generate mockgen -source=url_aggregator.go -destination=./mocks/url_aggregator_mock.go -package=mocks
type URLAggregator interface {
	// Ingest merges metrics into every node along the path of url. Malformed and
	// filtered URLs leave the tree untouched.
	Ingest(url string, metrics models.MetricSet) Outcome
	// Root returns the tree built so far; the root holds the grand totals.
	Root() *trees.PathNode
}

// Option configures a URLAggregator.
type Option func(*urlAggregator)

// WithURLFilter only ingests URLs matched by matcher after normalisation.
func WithURLFilter(matcher URLMatcher) Option {
	return func(a *urlAggregator) {
		a.filter = matcher
	}
}

type urlAggregator struct {
	root      *trees.PathNode
	sortField string
	filter    URLMatcher
}

// NewURLAggregator creates an aggregator over an empty tree. sortField selects the
// metric mirrored into each node's weight.
func NewURLAggregator(sortField string, opts ...Option) URLAggregator {
	aggregator := &urlAggregator{
		root:      trees.NewRoot(),
		sortField: sortField,
	}
	for _, opt := range opts {
		opt(aggregator)
	}
	return aggregator
}

func (a *urlAggregator) Root() *trees.PathNode {
	return a.root
}

func (a *urlAggregator) Ingest(url string, metrics models.MetricSet) Outcome {
	url = NormalizeURL(url)
	if a.filter != nil && !a.filter.MatchString(url) {
		metricURLsTotal.WithLabelValues(string(OutcomeFiltered)).Inc()
		return OutcomeFiltered
	}

	parsed, ok := parseURL(url)
	if !ok {
		metricURLsTotal.WithLabelValues(string(OutcomeMalformed)).Inc()
		return OutcomeMalformed
	}

	a.root.Record(metrics, a.sortField)
	node := a.root
	segments := parsed.segments
	for {
		// The node before an empty trailing segment is a leaf too: "/a/" marks "a".
		if len(segments) == 0 || segments[0] == "" {
			node.MarkLeaf()
		}
		if len(segments) == 0 {
			break
		}
		node = node.RecordChild(segments[0], metrics, a.sortField)
		segments = segments[1:]
	}

	a.recordParameters(node, parsed.params, metrics)

	metricURLsTotal.WithLabelValues(string(OutcomeIngested)).Inc()
	return OutcomeIngested
}

// recordParameters attaches params to the terminal path node only. A key or
// key/value pair repeated within one URL is counted once.
func (a *urlAggregator) recordParameters(node *trees.PathNode, params []queryParam, metrics models.MetricSet) {
	seenKeys := make(map[string]*trees.ParameterNode, len(params))
	seenPairs := make(map[queryParam]struct{}, len(params))

	for _, param := range params {
		parameter, ok := seenKeys[param.key]
		if !ok {
			parameter = node.RecordParameter(param.key, metrics, a.sortField)
			seenKeys[param.key] = parameter
		}
		if _, ok := seenPairs[param]; ok {
			continue
		}
		seenPairs[param] = struct{}{}
		parameter.RecordValue(param.value, metrics, a.sortField)
	}
}
