package api

// interpretResponse classifies an HTTP status and raw body into payload bytes
// or a typed failure. The mapping is total: every status resolves to exactly
// one outcome.
func interpretResponse(status int, body []byte) ([]byte, error) {
	switch {
	case status >= 200 && status <= 299:
		return unwrapEnvelope(body)
	case status == 401:
		return nil, &Error{Kind: KindUnauthorized}
	case status == 403:
		return nil, &Error{Kind: KindForbidden}
	case status == 404:
		return nil, &Error{Kind: KindNotFound}
	case status == 422:
		detail := envelopeError(body)
		if detail == nil {
			detail = &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}
		}
		return nil, &Error{Kind: KindValidation, Detail: detail}
	case status == 429:
		return nil, &Error{Kind: KindRateLimited}
	case status >= 500 && status <= 599:
		return nil, &Error{Kind: KindServer, Status: status}
	default:
		return nil, &Error{Kind: KindHTTP, Status: status}
	}
}
