//go:generate templ generate

package templates

import "encoding/json"

// hxVals encodes form values for an hx-vals attribute.
func hxVals(values map[string]string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "{}"
	}
	return string(b)
}
