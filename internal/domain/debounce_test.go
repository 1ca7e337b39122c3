package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDebounceMode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    DebounceMode
		wantErr bool
	}{
		{name: "empty defaults to cooldown", raw: "", want: DebounceCooldown},
		{name: "cooldown", raw: "cooldown", want: DebounceCooldown},
		{name: "same value with spacing and case", raw: " Same-Value ", want: DebounceSameValue},
		{name: "unknown mode", raw: "queue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDebounceMode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCooldownDebouncerRejectsEverythingInsideWindow(t *testing.T) {
	d := NewDebouncer(DebounceConfig{Mode: DebounceCooldown, Window: time.Second})
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	assert.True(t, d.Accept("111", t0))
	assert.False(t, d.Accept("111", t0.Add(100*time.Millisecond)))
	assert.False(t, d.Accept("222", t0.Add(999*time.Millisecond)))
	assert.True(t, d.Accept("111", t0.Add(time.Second)))
}

func TestCooldownDebouncerIdenticalBurstYieldsOneScan(t *testing.T) {
	d := NewDebouncer(DebounceConfig{})
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	accepted := 0
	for i := 0; i < 10; i++ {
		if d.Accept("111", t0.Add(time.Duration(i)*50*time.Millisecond)) {
			accepted++
		}
	}

	assert.Equal(t, 1, accepted)
}

func TestSameValueDebouncerHoldsLockUntilCompletePlusDelay(t *testing.T) {
	d := NewDebouncer(DebounceConfig{Mode: DebounceSameValue, ReleaseDelay: 500 * time.Millisecond})
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.True(t, d.Accept("111", t0))
	assert.False(t, d.Accept("111", t0.Add(10*time.Second)), "lock held while lookup is in flight")

	d.Complete(t0.Add(10 * time.Second))
	assert.False(t, d.Accept("111", t0.Add(10*time.Second+499*time.Millisecond)))
	assert.True(t, d.Accept("111", t0.Add(10*time.Second+500*time.Millisecond)))
}

func TestSameValueDebouncerAllowsDifferentBarcode(t *testing.T) {
	d := NewDebouncer(DebounceConfig{Mode: DebounceSameValue})
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.True(t, d.Accept("111", t0))
	d.Complete(t0)

	assert.True(t, d.Accept("222", t0.Add(time.Millisecond)))
}

func TestDebouncerResetRearms(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for _, mode := range []DebounceMode{DebounceCooldown, DebounceSameValue} {
		t.Run(string(mode), func(t *testing.T) {
			d := NewDebouncer(DebounceConfig{Mode: mode})
			require.True(t, d.Accept("111", t0))
			require.False(t, d.Accept("111", t0))

			d.Reset()

			assert.True(t, d.Accept("111", t0))
			assert.Equal(t, mode, d.Mode())
		})
	}
}

func TestParseCommand(t *testing.T) {
	for raw, want := range map[string]Command{
		"start":        CommandStart,
		" STOP ":       CommandStop,
		"next":         CommandNextPatient,
		"next-patient": CommandNextPatient,
	} {
		got, err := ParseCommand(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseCommand("pause")
	require.Error(t, err)
}
