package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", d.String())

	_, err = ParseDate("19.10.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateOf_IgnoresClockTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	late := time.Date(2026, 10, 19, 23, 59, 0, 0, loc)

	assert.True(t, DateOf(late).Equal(NewDate(2026, 10, 19)))
}

func TestDate_Arithmetic(t *testing.T) {
	start := NewDate(2026, 12, 30)
	end := start.AddDays(5)

	assert.Equal(t, "2027-01-04", end.String())
	assert.Equal(t, 5, start.DaysUntil(end))
	assert.Equal(t, -5, end.DaysUntil(start))
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.Equal(t, -1, start.Compare(end))
}

func TestDate_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}{Start: NewDate(2026, 1, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2026-01-02","end":null}`, string(payload))

	var got struct {
		Start Date `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2026-03-04"}`), &got))
	assert.True(t, got.Start.Equal(NewDate(2026, 3, 4)))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{name: "time", src: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), want: "2026-05-01"},
		{name: "string", src: "2026-05-02", want: "2026-05-02"},
		{name: "bytes with time part", src: []byte("2026-05-03T00:00:00Z"), want: "2026-05-03"},
		{name: "null", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}
