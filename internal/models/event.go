package models

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// MethodOptions is the CORS preflight verb
const MethodOptions = "OPTIONS"

// Event is a read-only view over an inbound gateway event.
// No schema is enforced: every accessor tolerates missing or mistyped fields.
type Event struct {
	root Fields
}

// Fields is a JSON object whose values are looked up by key.
// The zero value behaves as an empty object.
type Fields struct {
	obj gjson.Result
}

// ParseEvent wraps raw event JSON. Anything that is not a JSON object
// yields an event with no fields.
func ParseEvent(raw []byte) Event {
	return Event{root: parseFields(raw)}
}

// NewEvent builds an event from an in-memory mapping
func NewEvent(fields map[string]interface{}) (Event, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Event{}, err
	}
	return ParseEvent(raw), nil
}

// EventFromHTTP builds the event a gateway would deliver for a plain HTTP request
func EventFromHTTP(method string, body []byte) Event {
	event, err := NewEvent(map[string]interface{}{
		"httpMethod": method,
		"body":       string(body),
	})
	if err != nil {
		return Event{}
	}
	return event
}

func parseFields(raw []byte) Fields {
	if !gjson.ValidBytes(raw) {
		return Fields{}
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return Fields{}
	}
	return Fields{obj: parsed}
}

// Get returns the value stored under key, or a non-existent result
func (f Fields) Get(key string) gjson.Result {
	if !f.obj.IsObject() {
		return gjson.Result{}
	}
	return f.obj.Get(escapeKey(key))
}

// GetString returns the value under key when it is a string
func (f Fields) GetString(key string) (string, bool) {
	value := f.Get(key)
	if value.Type != gjson.String {
		return "", false
	}
	return value.Str, true
}

// Object returns the value under key when it is a JSON object
func (f Fields) Object(key string) Fields {
	value := f.Get(key)
	if !value.IsObject() {
		return Fields{}
	}
	return Fields{obj: value}
}

// Fields returns the top-level fields of the event
func (e Event) Fields() Fields {
	return e.root
}

// Method resolves the HTTP verb from requestContext.http.method (HTTP API
// payloads) or httpMethod (REST API payloads), uppercased.
func (e Event) Method() string {
	method, _ := e.root.Object("requestContext").Object("http").GetString("method")
	if method == "" {
		method, _ = e.root.GetString("httpMethod")
	}
	return strings.ToUpper(method)
}

// IsPreflight reports whether the event is a CORS preflight request
func (e Event) IsPreflight() bool {
	return e.Method() == MethodOptions
}

// Body resolves the request payload. A string body is decoded as JSON; an
// undecodable or non-object payload is treated as an empty object.
func (e Event) Body() Fields {
	body := e.root.Get("body")
	switch {
	case body.Type == gjson.String:
		return parseFields([]byte(body.Str))
	case body.IsObject():
		return Fields{obj: body}
	default:
		return Fields{}
	}
}

var keyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`=`, `\=`,
	`<`, `\<`,
	`>`, `\>`,
	`%`, `\%`,
)

// escapeKey turns a literal object key into a single-segment gjson path
func escapeKey(key string) string {
	return keyEscaper.Replace(key)
}
