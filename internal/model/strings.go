package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringList is a JSON string array that also accepts a bare scalar or null.
// Numbers and booleans keep their literal text; null, nested arrays and
// objects inside the array are dropped. Decoding never fails.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = listOf(data)
	return nil
}

// Text is a JSON string that also accepts an array of strings (joined with
// ", ") or any other scalar. Decoding never fails.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(textOf(data))
	return nil
}

// textOf renders a raw JSON value as text. Strings are unquoted, numbers and
// booleans keep their literal form, arrays are joined. Null and objects
// yield "".
func textOf(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '[':
		return strings.Join(listOf(raw), ", ")
	case '{', 'n':
		return ""
	default:
		return string(raw)
	}
}

// listOf decodes a raw JSON value as a list of text values
func listOf(raw json.RawMessage) StringList {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == 'n' || raw[0] == '{' {
		return nil
	}
	if raw[0] != '[' {
		return StringList{textOf(raw)}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make(StringList, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] == '[' || item[0] == '{' || item[0] == 'n' {
			continue
		}
		out = append(out, textOf(item))
	}
	return out
}
