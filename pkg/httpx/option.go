package httpx

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen caps the logged size of request and response bodies.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

// WithSensitiveDataMasker scrubs payloads before they reach the log.
func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithoutBodyDump keeps request and response bodies out of the log, leaving
// only the request line and headers. The body stream is not consumed.
func WithoutBodyDump() Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpBody = false
	}
}
