package parser

import "time"

// ParserOpt configures a parse.
type ParserOpt func(*ParserConfig)

// ParserConfig holds the options collected from ParserOpt values.
type ParserConfig struct {
	telemetry bool
}

// WithTelemetry records lexeme, node and timing counts into
// ParseResult.Telemetry.
func WithTelemetry() ParserOpt {
	return func(c *ParserConfig) {
		c.telemetry = true
	}
}

// ParseTelemetry holds performance metrics for one parse.
type ParseTelemetry struct {
	LexemeCount int
	NodeCount   int
	ErrorCount  int
	ParseTime   time.Duration
}
