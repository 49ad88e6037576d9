package property

import (
	"encoding/json"
	"strconv"
)

// Label is a field that arrives either as a JSON number or as free
// text: bedrooms can be 2 or "Студия", bathrooms 2 or 2.5. The value
// is kept in textual form and marshals back to a bare number whenever
// the text parses as one, so documents keep their original shape.
type Label string

func (l Label) String() string { return string(l) }

func (l Label) MarshalJSON() ([]byte, error) {
	s := string(l)
	if s == "" {
		return []byte(`""`), nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Label(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = Label(n.String())
	return nil
}
