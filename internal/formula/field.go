package formula

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a raw form value. It decodes from a JSON string or number so that
// clients may post either the typed text or a parsed value.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = Field(n.String())
	return nil
}

// Blank reports whether nothing was entered.
func (f Field) Blank() bool {
	return strings.TrimSpace(string(f)) == ""
}

func (f Field) float() (float64, bool) {
	s := strings.TrimSpace(string(f))
	// decimal notation only; ParseFloat would also take hex floats
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (f Field) int() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return v, true
}
