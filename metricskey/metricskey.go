package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsTokenParsed is a counter of parsed tokens, tagged with the
	// parse status name
	StatsTokenParsed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "jwt_token_parsed",
		Help:         "jwt_token_parsed provides the counter of token parse outcomes",
		RequiredTags: []string{"status"},
	}
)

// Perf
var (
	// PerfTokenParse is perf metric
	PerfTokenParse = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_jwt_parse",
		Help:         "perf_jwt_parse provides the sample metrics of token parsing",
		RequiredTags: []string{"status"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&StatsTokenParsed,
	&PerfTokenParse,
}
