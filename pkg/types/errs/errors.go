package errs

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrAllProvidersFailed = errors.New("all image providers failed or none are configured")
	ErrNoImagePayload     = errors.New("provider response contains no image payload")
)
