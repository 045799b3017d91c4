package http

import "encoding/json"

// nullableStr tells an absent JSON field apart from an explicit null.
type nullableStr struct {
	Set   bool
	Value string
}

func (n *nullableStr) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = ""
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// ptr is nil when the field was absent and points at "" for null.
func (n nullableStr) ptr() *string {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
