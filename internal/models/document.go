package models

import (
	"encoding/json"
	"strings"
)

// splitDocument decodes the declared keys of data into dst and returns every
// other top-level field. The client-supplied "_id" and operator-like keys
// (leading "$") are dropped.
func splitDocument(data []byte, dst interface{}, declared ...string) (map[string]interface{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	delete(raw, "_id")

	known := make(map[string]json.RawMessage, len(declared))
	for _, key := range declared {
		if v, ok := raw[key]; ok {
			known[key] = v
			delete(raw, key)
		}
	}
	b, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return nil, err
	}

	var extra map[string]interface{}
	for key, v := range raw {
		if key == "" || strings.HasPrefix(key, "$") {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(v, &value); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = make(map[string]interface{}, len(raw))
		}
		extra[key] = value
	}
	return extra, nil
}

// joinDocument encodes known and overlays it on top of extra.
func joinDocument(known interface{}, extra map[string]interface{}) ([]byte, error) {
	if len(extra) == 0 {
		return json.Marshal(known)
	}
	b, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(extra)+len(fields))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}
