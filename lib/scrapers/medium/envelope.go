package medium

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// hijackPrefix is prepended to otherwise valid JSON by some endpoints to
// defeat JSON hijacking. It must match byte for byte.
const hijackPrefix = "])}while(1);</x>"

// decodePayload strips the anti-hijacking prefix if present, parses the
// remaining JSON and unmarshals the nested "payload" object into out.
// A malformed envelope means the upstream contract broke, so every
// failure propagates.
func decodePayload(body []byte, out any) error {
	cleaned := bytes.ReplaceAll(body, []byte(hijackPrefix), nil)

	var envelope struct {
		Payload json.RawMessage `json:"payload"`
	}
	err := json.Unmarshal(cleaned, &envelope)
	if err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if envelope.Payload == nil {
		return fmt.Errorf(`decode response envelope: missing "payload" key`)
	}

	err = json.Unmarshal(envelope.Payload, out)
	if err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}

// decodeGraphqlPost parses a GraphQL response body and returns the
// "data.post" object. GraphQL responses never carry the anti-hijacking
// prefix.
func decodeGraphqlPost(body []byte) (map[string]any, error) {
	var result struct {
		Data struct {
			Post map[string]any `json:"post"`
		} `json:"data"`
	}
	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("decode graphql response: %w", err)
	}
	if result.Data.Post == nil {
		return nil, fmt.Errorf(`decode graphql response: missing "data.post"`)
	}
	return result.Data.Post, nil
}
