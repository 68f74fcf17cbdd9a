package closet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    *int64
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"0", PriceOf(0), false},
		{"39000", PriceOf(39000), false},
		{"39,000", PriceOf(39000), false},
		{"-1", nil, true},
		{"12.5", nil, true},
		{"abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    *YearMonth
		wantErr bool
	}{
		{"", nil, false},
		{"2024-03", &YearMonth{Year: 2024, Month: 3}, false},
		{" 1999-12 ", &YearMonth{Year: 1999, Month: 12}, false},
		{"2024-13", nil, true},
		{"2024-00", nil, true},
		{"2024-3", nil, true},
		{"24-03", nil, true},
		{"2024/03", nil, true},
		{"abcd-ef", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYearMonth(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputRoundTrip(t *testing.T) {
	assert.Empty(t, PriceInput(nil))
	assert.Empty(t, YearMonthInput(nil))

	p, err := ParsePrice(PriceInput(PriceOf(120000)))
	require.NoError(t, err)
	assert.Equal(t, int64(120000), *p)

	ym, err := ParseYearMonth(YearMonthInput(&YearMonth{Year: 2023, Month: 7}))
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2023, Month: 7}, *ym)
}
