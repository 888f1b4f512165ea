package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type durationTest struct {
	Timeout Duration `json:"timeout"`
}

func TestDurationUnmarshal(t *testing.T) {
	tcs := []struct {
		name           string
		input          string
		expectedResult *Duration
		expectedErr    bool
	}{
		{
			name:           "valid duration",
			input:          `{"timeout":"2m"}`,
			expectedResult: &Duration{Duration: 2 * time.Minute},
		},
		{
			name:           "milliseconds",
			input:          `{"timeout":"300ms"}`,
			expectedResult: &Duration{Duration: 300 * time.Millisecond},
		},
		{
			name:        "int value",
			input:       `{"timeout":5}`,
			expectedErr: true,
		},
		{
			name:        "no units",
			input:       `{"timeout":"5"}`,
			expectedErr: true,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var d durationTest
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, *tc.expectedResult, d.Timeout)

			text, err := d.Timeout.MarshalText()
			require.NoError(t, err)
			var back Duration
			require.NoError(t, back.UnmarshalText(text))
			require.Equal(t, d.Timeout, back)
		})
	}

	require.Equal(t, "string", Duration{}.JSONSchema().Type)
}
