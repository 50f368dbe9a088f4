package email

import (
	"encoding/base64"
	"strings"
)

// encodeBase64Wrapped encodes data and wraps lines at 76 characters as
// required for MIME bodies.
func encodeBase64Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var sb strings.Builder
	for len(encoded) > 76 {
		sb.WriteString(encoded[:76])
		sb.WriteString("\r\n")
		encoded = encoded[76:]
	}
	sb.WriteString(encoded)
	return sb.String()
}
