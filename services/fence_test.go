package services

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"1\": \"a\"}\n```", `{"1": "a"}`},
		{"bare fence", "```\n{}\n```", `{}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  \n", `{}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"leading fence only", "```json\n{}", `{}`},
		{"both leading markers", "```json```{}```", `{}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripCodeFence([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
