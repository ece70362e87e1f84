// file: internals/features/academic/calendar.go
//
// Kalender tahun ajaran: 11 bulan tetap AGU..JUN. Sortasi adalah kode urut
// bulan dari ledger eksternal (1=JUL .. 12=JUN); JUL valid di ledger tapi
// tidak punya slot di tampilan tahun ajaran dan selalu dibuang.
package academic

type Month struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Sortasi int    `json:"-"`
}

// Months urut tetap AGU..JUN (sortasi 2..12).
var Months = [11]Month{
	{Code: "AGU", Label: "Agustus", Sortasi: 2},
	{Code: "SEP", Label: "September", Sortasi: 3},
	{Code: "OKT", Label: "Oktober", Sortasi: 4},
	{Code: "NOV", Label: "November", Sortasi: 5},
	{Code: "DES", Label: "Desember", Sortasi: 6},
	{Code: "JAN", Label: "Januari", Sortasi: 7},
	{Code: "FEB", Label: "Februari", Sortasi: 8},
	{Code: "MAR", Label: "Maret", Sortasi: 9},
	{Code: "APR", Label: "April", Sortasi: 10},
	{Code: "MEI", Label: "Mei", Sortasi: 11},
	{Code: "JUN", Label: "Juni", Sortasi: 12},
}

var codeBySortasi = func() map[int]string {
	m := make(map[int]string, len(Months))
	for _, mo := range Months {
		m[mo.Sortasi] = mo.Code
	}
	return m
}()

// MonthCodeForSortasi memetakan sortasi ledger ke kode bulan tahun ajaran.
// Sortasi 1 (JUL) dan nilai di luar 2..12 tidak punya slot → ok=false.
func MonthCodeForSortasi(sortasi int) (string, bool) {
	code, ok := codeBySortasi[sortasi]
	return code, ok
}

// SortasiFilter mengembalikan himpunan sortasi yang punya slot ({2..12}),
// dipakai untuk filter query keluar.
func SortasiFilter() []int {
	out := make([]int, 0, len(Months))
	for _, mo := range Months {
		out = append(out, mo.Sortasi)
	}
	return out
}
