package upstream

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text is a string field that upstreams send either bare or as an object
// carrying a name, e.g. "Reuters" or {"name": "Reuters"}.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
	case '{':
		var named struct {
			Name        string `json:"name"`
			Title       string `json:"title"`
			Label       string `json:"label"`
			DisplayName string `json:"display_name"`
		}
		if err := json.Unmarshal(b, &named); err != nil {
			return err
		}
		*t = Text(FirstNonEmpty(named.Name, named.DisplayName, named.Title, named.Label))
	case '[':
		var list TextList
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*t = Text(strings.Join(list.Strings(), ", "))
	default:
		*t = Text(string(b))
	}
	return nil
}

// String returns the text value
func (t Text) String() string {
	return string(t)
}

// TextList accepts a single Text or an array of them
type TextList []Text

// UnmarshalJSON implements json.Unmarshaler
func (l *TextList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}

	if b[0] != '[' {
		var single Text
		if err := json.Unmarshal(b, &single); err != nil {
			return err
		}
		if single == "" {
			*l = nil
			return nil
		}
		*l = TextList{single}
		return nil
	}

	var items []Text
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Strings returns the non-blank values in order
func (l TextList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, item := range l {
		if s := strings.TrimSpace(string(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
