package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID is a record id that POS clients may send either as a JSON
// number or as a numeric string. An empty string or null decodes to zero.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*id = 0
			return nil
		}
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = FlexibleID(n)
	return nil
}
