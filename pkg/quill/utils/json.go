// Package utils tidies model replies before the rest of the program sees them.
package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

// ExtractObject drops markdown fences and any chatter around the outermost
// JSON object of a reply. A reply with no object comes back trimmed.
func ExtractObject(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```", "")

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start >= 0 && end > start {
		reply = reply[start : end+1]
	}
	return strings.TrimSpace(reply)
}

// DecodeReply unmarshals the object found in reply into target. Failures wrap
// ErrMalformedResponse.
func DecodeReply(reply string, target any) error {
	if err := json.Unmarshal([]byte(ExtractObject(reply)), target); err != nil {
		return fmt.Errorf("%w: %v", quillerrors.ErrMalformedResponse, err)
	}
	return nil
}

// OrDefault returns field unless it is blank, in which case it returns fallback.
func OrDefault(field, fallback string) string {
	if strings.TrimSpace(field) == "" {
		return fallback
	}
	return field
}
