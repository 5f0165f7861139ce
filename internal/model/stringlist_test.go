package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected StringList
	}{
		{"valid json array bytes", []byte(`["a","b"]`), StringList{"a", "b"}},
		{"valid json array string", `["magisk","kernelsu"]`, StringList{"magisk", "kernelsu"}},
		{"empty array", []byte(`[]`), StringList{}},
		{"null column", nil, nil},
		{"malformed json degrades to nil", []byte(`{"not":"an array"`), nil},
		{"non-array json degrades to nil", []byte(`"just a string"`), nil},
		{"unexpected driver type degrades to nil", 42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			err := list.Scan(tt.input)
			require.NoError(t, err, "scan must never fail")
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStringListRoundTrip(t *testing.T) {
	original := StringList{"a", "b"}
	stored, err := original.Value()
	require.NoError(t, err)

	var restored StringList
	require.NoError(t, restored.Scan(stored))
	assert.Equal(t, original, restored)
}
