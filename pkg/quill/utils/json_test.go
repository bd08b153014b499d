package utils

import (
	"errors"
	"testing"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"title":"A"}`, `{"title":"A"}`},
		{"fenced", "```json\n{\"title\":\"A\"}\n```", `{"title":"A"}`},
		{"chatter around", "Here you are: {\"a\":1} Enjoy.", `{"a":1}`},
		{"nested braces", `Sure. {"a":{"b":1}} done`, `{"a":{"b":1}}`},
		{"no object", "  nothing here  ", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractObject(tt.in); got != tt.want {
				t.Errorf("ExtractObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeReply(t *testing.T) {
	var out struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	reply := "```json\n{\"name\": \"Dr. Johnathan Ashbourne\", \"description\": \"A physician.\"}\n```"
	if err := DecodeReply(reply, &out); err != nil {
		t.Fatalf("DecodeReply() error = %v", err)
	}
	if out.Name != "Dr. Johnathan Ashbourne" {
		t.Errorf("Name = %q", out.Name)
	}

	err := DecodeReply("not json", &out)
	if !errors.Is(err, quillerrors.ErrMalformedResponse) {
		t.Errorf("DecodeReply(non-JSON) error = %v, want ErrMalformedResponse", err)
	}
}

func TestOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		fallback string
		want     string
	}{
		{"present", "Fog", "raw", "Fog"},
		{"empty", "", "raw", "raw"},
		{"blank", " \n\t", "raw", "raw"},
		{"untrimmed kept", " Fog ", "raw", " Fog "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrDefault(tt.field, tt.fallback); got != tt.want {
				t.Errorf("OrDefault(%q, %q) = %q, want %q", tt.field, tt.fallback, got, tt.want)
			}
		})
	}
}
