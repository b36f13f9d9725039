package logs

// Span identifies one logical unit of work, e.g. one scan of a source file.
// It propagates through context and is attached to every record logged
// within the span.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
