package lambda

import (
	"net/http"
)

// Response is the gateway response envelope returned by the function.
// The JSON keys match what API Gateway and Lambda function URLs expect.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Header names for the fixed response header set
const (
	HeaderContentType  = "Content-Type"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
)

// ContentTypeJSON is the content type of every response body
const ContentTypeJSON = "application/json; charset=utf-8"

// CORSHeaders returns a fresh copy of the headers sent with every response
func CORSHeaders() map[string]string {
	return map[string]string{
		HeaderContentType:  ContentTypeJSON,
		HeaderAllowOrigin:  "*",
		HeaderAllowHeaders: "content-type",
		HeaderAllowMethods: "OPTIONS,POST",
	}
}

// NewResponse creates a response with the standard header set
func NewResponse(statusCode int, body string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    CORSHeaders(),
		Body:       body,
	}
}

// NoContent creates an empty 204 response
func NoContent() *Response {
	return NewResponse(http.StatusNoContent, "")
}
