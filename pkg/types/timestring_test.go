package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, s := range []string{"00:00", "11:00", "18:30", "23:59"} {
			ts, err := NewTimeStringFromString(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, ts.String())
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, s := range []string{"", "25:00", "11:60", "1100", "11:00:00", "9:00am"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, s)
		}
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.September, 10, 18, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("18:30"), ts)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("11:00").Validate())
	assert.ErrorIs(t, TimeString("25:99").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("11:00").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("11:00"))

	assert.True(t, TimeString("13:00").IsAfter("11:00"))
	assert.False(t, TimeString("11:00").IsAfter("13:00"))

	// Некорректные значения никогда не "раньше" и не "позже"
	assert.False(t, TimeString("bad").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsAfter("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		shifted, err := TimeString("11:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("12:30"), shifted)
	})

	t.Run("crossing midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("invalid base value", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(30)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
