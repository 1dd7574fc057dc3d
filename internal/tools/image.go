package tools

import (
	"encoding/base64"
	"strings"
)

// DecodeImagePayload decodes an image payload sent as base64 text. A data
// URI prefix ("data:image/png;base64,....") is stripped before decoding.
func DecodeImagePayload(payload string) ([]byte, error) {
	data := payload
	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		data = payload[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
