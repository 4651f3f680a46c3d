package http

import (
	"strings"
)

type Headers struct {
	values map[string]string
}

func NewHeaders(headers map[string]string) Headers {
	values := make(map[string]string, len(headers))

	for key, value := range headers {
		values[transformHeaderKey(key)] = value
	}

	return Headers{values: values}
}

func (headers Headers) All() map[string]string {
	return headers.values
}

func (headers Headers) Get(key string) string {
	return headers.values[transformHeaderKey(key)]
}

func (headers Headers) Has(key string) bool {
	_, ok := headers.values[transformHeaderKey(key)]

	return ok
}

// Header keys are matched case-insensitively.
func transformHeaderKey(key string) string {
	return strings.ToLower(key)
}
