package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of free-text labels as a jsonb column. Stored rows
// are not guaranteed to be clean: some carry a real JSON array, some a
// JSON-encoded string containing an array. Anything unparsable scans as an
// empty list instead of failing the query.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		*l = items
		return nil
	}

	// Double-encoded variant: a JSON string holding the array
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &items); err == nil {
			*l = items
			return nil
		}
	}

	*l = StringList{}
	return nil
}
