package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthCodeForSortasi_Mapped(t *testing.T) {
	want := map[int]string{
		2: "AGU", 3: "SEP", 4: "OKT", 5: "NOV", 6: "DES", 7: "JAN",
		8: "FEB", 9: "MAR", 10: "APR", 11: "MEI", 12: "JUN",
	}
	for sortasi, code := range want {
		got, ok := MonthCodeForSortasi(sortasi)
		require.True(t, ok, "sortasi %d harus punya slot", sortasi)
		assert.Equal(t, code, got)
	}
}

func TestMonthCodeForSortasi_NoSlot(t *testing.T) {
	for _, sortasi := range []int{1, 0, -3, 13, 99} {
		got, ok := MonthCodeForSortasi(sortasi)
		assert.False(t, ok, "sortasi %d tidak boleh punya slot", sortasi)
		assert.Empty(t, got)
	}
}

func TestMonths_FixedOrder(t *testing.T) {
	require.Len(t, Months, 11)
	assert.Equal(t, "AGU", Months[0].Code)
	assert.Equal(t, "JUN", Months[10].Code)

	// sortasi naik monoton 2..12
	for i, mo := range Months {
		assert.Equal(t, i+2, mo.Sortasi)
	}
}

func TestSortasiFilter(t *testing.T) {
	got := SortasiFilter()
	require.Len(t, got, 11)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
	assert.NotContains(t, got, 1, "JUL tidak ikut difilter keluar")
}
