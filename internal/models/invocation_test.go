package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestNewInvokePayload(t *testing.T) {
	payload := NewInvokePayload("hi", 512, 0.6)

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"anthropic_version":"bedrock-2023-05-31","max_tokens":512,"temperature":0.6,"messages":[{"role":"user","content":"hi"}]}`
	if string(raw) != want {
		t.Errorf("Expected payload %s, got %s", want, raw)
	}
}

func TestExtractAnswer(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"concatenates text parts", `{"content":[{"type":"text","text":"foo"},{"type":"text","text":"bar"}]}`, "foobar", false},
		{"skips non-text parts", `{"content":[{"type":"tool_use","text":"x"},"junk",{"type":"text","text":" ok "}]}`, "ok", false},
		{"part without text", `{"content":[{"type":"text"},{"type":"text","text":"a"}]}`, "a", false},
		{"empty content no fallback", `{"content":[]}`, "", false},
		{"blank content falls back", `{"content":[{"type":"text","text":"   "}],"completion":"legacy"}`, "legacy", false},
		{"completion trimmed", `{"completion":"  hi  "}`, "hi", false},
		{"legacy key order", `{"message":"m","outputText":"o"}`, "o", false},
		{"first string key decides", `{"completion":"  ","answer":"later"}`, "", false},
		{"non-string legacy key skipped", `{"completion":5,"result":"r"}`, "r", false},
		{"not an object", `["text"]`, "", false},
		{"non-string text part", `{"content":[{"type":"text","text":3}]}`, "", true},
		{"null text part", `{"content":[{"type":"text","text":null}]}`, "", true},
		{"invalid json", `{"content":`, "", true},
		{"empty body", ``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAnswer([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got answer %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractAnswer failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected answer %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("invalid json sentinel", func(t *testing.T) {
		_, err := ExtractAnswer([]byte("nope"))
		if !errors.Is(err, ErrInvalidResponseJSON) {
			t.Errorf("Expected ErrInvalidResponseJSON, got %v", err)
		}
	})
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		asciiOnly bool
		want      string
	}{
		{"object", `{"a":1,"b":[1,2]}`, true, `{"a": 1, "b": [1, 2]}`},
		{"nested empty", `{"a":{},"b":[]}`, true, `{"a": {}, "b": []}`},
		{"string escapes", `"quote\" slash\\ nl\n tab\t"`, true, `"quote\" slash\\ nl\n tab\t"`},
		{"control char", `"\u0001\u001f"`, true, `"\u0001\u001f"`},
		{"non-ascii escaped", `"café"`, true, `"caf\u00e9"`},
		{"astral plane surrogates", `"😀"`, true, `"\ud83d\ude00"`},
		{"non-ascii kept", `"café"`, false, `"café"`},
		{"slash not escaped", `"a/b"`, true, `"a/b"`},
		{"html not escaped", `"<b>&"`, true, `"<b>&"`},
		{"number literal kept", `1.50`, true, `1.50`},
		{"literals", `[true,false,null]`, true, `[true, false, null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatJSON(gjson.Parse(tt.raw), tt.asciiOnly); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFormatObject(t *testing.T) {
	if got := FormatObject("error", "missing prompt"); got != `{"error": "missing prompt"}` {
		t.Errorf("Unexpected object text: %s", got)
	}

	got := FormatObject("answer", "naïve \"quote\"\n")
	want := `{"answer": "naïve \"quote\"\n"}`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	if !json.Valid([]byte(got)) {
		t.Errorf("Expected valid JSON, got %s", got)
	}
}
