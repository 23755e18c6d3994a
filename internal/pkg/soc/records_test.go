package soc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  Int
		fails bool
	}{
		{`1`, Int{Value: 1, Valid: true}, false},
		{`"2"`, Int{Value: 2, Valid: true}, false},
		{`""`, Int{}, false},
		{`" "`, Int{}, false},
		{`null`, Int{}, false},
		{`"abc"`, Int{}, true},
	}
	for _, c := range cases {
		var got Int
		err := json.Unmarshal([]byte(c.input), &got)
		if c.fails {
			assert.Error(t, err, "input %s", c.input)
			continue
		}
		require.NoError(t, err, "input %s", c.input)
		assert.Equal(t, c.want, got, "input %s", c.input)
	}
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-10"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d.Value)

	require.NoError(t, json.Unmarshal([]byte(`"10/03/2025"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d.Value)

	// Blank, null and garbage all decode to the zero Date.
	for _, input := range []string{`""`, `null`, `"not-a-date"`} {
		var zero Date
		require.NoError(t, json.Unmarshal([]byte(input), &zero), "input %s", input)
		assert.False(t, zero.Valid, "input %s", input)
		assert.Nil(t, zero.Ptr(), "input %s", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", FormatDate(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestDiffDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 0, DiffDays(day(1), day(1)))
	assert.Equal(t, 30, DiffDays(day(1), day(31)))
	// Partial days round up.
	assert.Equal(t, 1, DiffDays(day(1), day(1).Add(6*time.Hour)))
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "Sim", Flag(true))
	assert.Equal(t, "", Flag(false))
}

func TestStr(t *testing.T) {
	assert.Nil(t, Str(""))
	assert.Nil(t, Str("  "))
	require.NotNil(t, Str(" RH "))
	assert.Equal(t, "RH", *Str(" RH "))
}
