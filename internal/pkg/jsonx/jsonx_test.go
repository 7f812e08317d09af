package jsonx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string", `"0195a1b2-aaaa"`, "0195a1b2-aaaa"},
		{"millis number", `1700000000000`, "1700000000000"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestTime_Unmarshal(t *testing.T) {
	ms := time.UnixMilli(1700000000000)
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-03-10T09:00:00Z"`, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{"millis number", `1700000000000`, ms},
		{"millis string", `"1700000000000"`, ms},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, tt.want.Equal(got.Std()), "got %v", got.Std())
		})
	}

	var bad Time
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))

	var zero *Time
	assert.Nil(t, zero.Ptr())
	assert.Nil(t, new(Time).Ptr())
}

func TestInt_Unmarshal(t *testing.T) {
	var n Int
	require.NoError(t, json.Unmarshal([]byte(`"30"`), &n))
	assert.Equal(t, Int(30), n)

	require.NoError(t, json.Unmarshal([]byte(`45`), &n))
	assert.Equal(t, Int(45), n)

	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.Equal(t, Int(0), n)

	assert.Error(t, json.Unmarshal([]byte(`"half an hour"`), &n))
}

func TestOptionalDecimal_Unmarshal(t *testing.T) {
	var o OptionalDecimal
	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.Nil(t, o.Value)

	require.NoError(t, json.Unmarshal([]byte(`"5000"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, "5000", o.Value.String())

	require.NoError(t, json.Unmarshal([]byte(`4200.5`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, "4200.5", o.Value.String())
}

func TestFixed_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Rate  Fixed1  `json:"rate"`
		Hours Fixed2  `json:"hours"`
		Avg   *Fixed2 `json:"avg"`
	}{
		Rate:  NewFixed1(decimal.NewFromInt(50)),
		Hours: NewFixed2(decimal.NewFromInt(8)),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":"50.0","hours":"8.00","avg":null}`, string(out))

	var back struct {
		Hours Fixed2 `json:"hours"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"hours":"7.50"}`), &back))
	assert.Equal(t, "7.5", back.Hours.String())
}
