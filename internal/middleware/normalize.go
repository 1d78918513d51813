package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for the request-section existence flags.
const (
	// PayloadExistsKey marks whether the request carries a payload body.
	PayloadExistsKey = "payloadExists"
	// ParamsExistsKey marks whether the request carries route parameters.
	ParamsExistsKey = "paramsExists"
	// QueryExistsKey marks whether the request carries query parameters.
	QueryExistsKey = "queryExists"
)

// Normalize returns a middleware that annotates each request with
// existence flags for the three payload sections: body, route
// parameters, and query parameters. A section with zero entries, or
// whose every entry's value is absent, is marked non-existent. GET
// requests never have a payload regardless of any body supplied.
//
// The flags are a pre-pass for downstream handlers; the body is
// restored after inspection so handlers can still bind it.
func Normalize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(PayloadExistsKey, payloadExists(c))
		c.Set(ParamsExistsKey, paramsExist(c.Params))
		c.Set(QueryExistsKey, queryExists(c.Request.URL.Query()))

		c.Next()
	}
}

// HasPayload reports whether the normalization pass marked the request
// body as existent.
func HasPayload(c *gin.Context) bool {
	return c.GetBool(PayloadExistsKey)
}

// HasParams reports whether the request carries route parameters with
// defined values.
func HasParams(c *gin.Context) bool {
	return c.GetBool(ParamsExistsKey)
}

// HasQuery reports whether the request carries query parameters with
// defined values.
func HasQuery(c *gin.Context) bool {
	return c.GetBool(QueryExistsKey)
}

// payloadExists inspects the request body without consuming it.
func payloadExists(c *gin.Context) bool {
	if c.Request.Method == http.MethodGet {
		return false
	}
	if c.Request.Body == nil {
		return false
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return false
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	return bodyHasDefinedValue(body)
}

// bodyHasDefinedValue reports whether the body holds at least one
// entry with a defined value. JSON objects and arrays are inspected
// entry by entry; JSON null counts as absent. Non-JSON bodies count
// as existent when non-empty.
func bodyHasDefinedValue(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return false
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return true
	}

	switch v := decoded.(type) {
	case nil:
		return false
	case map[string]any:
		for _, value := range v {
			if value != nil {
				return true
			}
		}
		return false
	case []any:
		for _, value := range v {
			if value != nil {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// paramsExist reports whether at least one route parameter has a
// non-empty value.
func paramsExist(params gin.Params) bool {
	for _, p := range params {
		if p.Value != "" {
			return true
		}
	}
	return false
}

// queryExists reports whether at least one query parameter has a
// non-empty value.
func queryExists(values map[string][]string) bool {
	for _, vs := range values {
		for _, v := range vs {
			if v != "" {
				return true
			}
		}
	}
	return false
}
