package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_AddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"mid-month is untouched", NewDate(2024, 3, 15), 1, NewDate(2024, 4, 15)},
		{"jan 31 clamps to leap feb", NewDate(2024, 1, 31), 1, NewDate(2024, 2, 29)},
		{"jan 31 clamps to non-leap feb", NewDate(2025, 1, 31), 1, NewDate(2025, 2, 28)},
		{"two months from jan 31 recovers the 31st", NewDate(2024, 1, 31), 2, NewDate(2024, 3, 31)},
		{"may 31 to june 30", NewDate(2024, 5, 31), 1, NewDate(2024, 6, 30)},
		{"crosses year boundary", NewDate(2024, 11, 30), 3, NewDate(2025, 2, 28)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, AddMonths(tc.start, tc.months))
		})
	}
}
