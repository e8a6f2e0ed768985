package parser

// ParseSource parses input with the given options.
func ParseSource(input string, opts ...ParserOpt) *ParseResult {
	return New(input, opts...).Parse()
}
