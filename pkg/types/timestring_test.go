package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/pkg/types"
)

// TestNewTimeStringFromString проверяет валидацию формата HH:MM.
func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	for _, bad := range []string{"", "8:30:00", "25:00", "08:61", "morning"} {
		_, err := types.NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, types.ErrInvalidTimeString, "input %q", bad)
	}
}

// TestAddMinutes проверяет сдвиг времени вперед с обрезанием на границе суток.
func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		minutes  int
		expected string
	}{
		{"simple shift", "08:30", 45, "09:15"},
		{"hour rollover", "09:50", 20, "10:10"},
		{"clamped at midnight", "23:30", 45, "23:59"},
		{"zero shift", "12:00", 0, "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.TimeString(tt.start).AddMinutes(tt.minutes)

			require.NoError(t, err)
			assert.Equal(t, types.TimeString(tt.expected), got)
		})
	}
}

// TestIsBefore проверяет сравнение времен.
func TestIsBefore(t *testing.T) {
	assert.True(t, types.TimeString("08:00").IsBefore("09:00"))
	assert.False(t, types.TimeString("09:00").IsBefore("08:00"))
	assert.False(t, types.TimeString("08:00").IsBefore("08:00"))
	assert.True(t, types.TimeString("09:00").IsAfter("08:00"))
}

// TestScan проверяет чтение из БД: строки со значениями секунд обрезаются,
// time.Time конвертируется, nil дает пустое значение.
func TestScan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("08:30:00"))
	assert.Equal(t, types.TimeString("08:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:45")))
	assert.Equal(t, types.TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

// TestValue проверяет запись в БД: пустое значение дает NULL,
// некорректное - ошибку.
func TestValue(t *testing.T) {
	v, err := types.TimeString("08:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:30", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = types.TimeString("bogus").Value()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
