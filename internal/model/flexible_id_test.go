package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexibleID
		wantErr bool
	}{
		{"number", `{"businessId":42}`, 42, false},
		{"numeric string", `{"businessId":"42"}`, 42, false},
		{"empty string", `{"businessId":""}`, 0, false},
		{"null", `{"businessId":null}`, 0, false},
		{"absent", `{}`, 0, false},
		{"word", `{"businessId":"abc"}`, 0, true},
		{"negative", `{"businessId":-3}`, 0, true},
		{"fraction", `{"businessId":"4.2"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ValidateLicenseInput
			err := json.Unmarshal([]byte(tt.input), &in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.BusinessID)
		})
	}
}

func TestFlexibleIDMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(GenerateLicenseInput{BusinessID: 7})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"businessId":7`)
}
