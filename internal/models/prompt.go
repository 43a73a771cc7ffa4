package models

import (
	"github.com/tidwall/gjson"
)

// PromptScope selects which object a PromptRule reads from
type PromptScope int

const (
	// ScopeBody reads from the decoded request body
	ScopeBody PromptScope = iota
	// ScopeEvent reads from the top level of the event
	ScopeEvent
)

func (s PromptScope) String() string {
	if s == ScopeEvent {
		return "event"
	}
	return "body"
}

// PromptRule extracts a prompt from a single field.
// A text rule matches a non-empty string value. A serialized rule matches
// any non-null value and renders it as JSON text.
type PromptRule struct {
	Scope     PromptScope
	Field     string
	Serialize bool
}

// PromptRules is the extraction order; the first matching rule wins
var PromptRules = []PromptRule{
	{Scope: ScopeBody, Field: "prompt"},
	{Scope: ScopeBody, Field: "message"},
	{Scope: ScopeBody, Field: "input"},
	{Scope: ScopeBody, Field: "text"},
	{Scope: ScopeBody, Field: "data", Serialize: true},
	{Scope: ScopeEvent, Field: "prompt"},
	{Scope: ScopeEvent, Field: "message"},
	{Scope: ScopeEvent, Field: "input"},
	{Scope: ScopeEvent, Field: "text"},
}

// Apply runs the rule against the body and top-level event fields
func (r PromptRule) Apply(body, event Fields) (string, bool) {
	source := body
	if r.Scope == ScopeEvent {
		source = event
	}

	if r.Serialize {
		value := source.Get(r.Field)
		if !value.Exists() || value.Type == gjson.Null {
			return "", false
		}
		return FormatJSON(value, true), true
	}

	text, ok := source.GetString(r.Field)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// Prompt holds an extracted prompt and the rule that produced it
type Prompt struct {
	Text string
	Rule PromptRule
}

// ExtractPrompt resolves the prompt from the event using PromptRules
func ExtractPrompt(event Event) (*Prompt, bool) {
	body := event.Body()
	fields := event.Fields()

	for _, rule := range PromptRules {
		if text, ok := rule.Apply(body, fields); ok {
			return &Prompt{Text: text, Rule: rule}, true
		}
	}
	return nil, false
}
