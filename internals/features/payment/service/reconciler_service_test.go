package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "mykahfi_backend/internals/features/payment/model"
)

func sortasi(v int16) *int16 { return &v }

func tgl(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestProjectMonths_EmptyLedger(t *testing.T) {
	got := ProjectMonths(nil)

	require.Len(t, got, 11)
	assert.Equal(t, "AGU", got[0].Code)
	assert.Equal(t, "JUN", got[10].Code)
	for _, p := range got {
		assert.False(t, p.Paid)
		assert.Nil(t, p.Transaction)
	}
}

func TestProjectMonths_SingleRow(t *testing.T) {
	rows := []model.TransactionModel{
		{Idtrx: 101, Nis: "123456", Nominal: 150000, Sortasi: sortasi(3), TglTrx: tgl("2025-09-05")},
	}

	got := ProjectMonths(rows)

	require.Len(t, got, 11)
	sep := got[1]
	require.Equal(t, "SEP", sep.Code)
	assert.True(t, sep.Paid)
	require.NotNil(t, sep.Transaction)
	assert.Equal(t, int64(101), sep.Transaction.Idtrx)
	assert.Equal(t, int64(150000), sep.Transaction.Nominal)

	// bulan lain tetap kosong
	for i, p := range got {
		if i == 1 {
			continue
		}
		assert.False(t, p.Paid, "bulan %s harus belum bayar", p.Code)
	}
}

func TestProjectMonths_FirstSeenWins(t *testing.T) {
	// Urutan fetch = tgl_trx DESC → baris pertama per bulan adalah yang terbaru.
	rows := []model.TransactionModel{
		{Idtrx: 202, Nis: "123456", Nominal: 175000, Sortasi: sortasi(5), TglTrx: tgl("2025-11-20")},
		{Idtrx: 201, Nis: "123456", Nominal: 150000, Sortasi: sortasi(5), TglTrx: tgl("2025-11-02")},
	}

	got := ProjectMonths(rows)

	nov := got[3]
	require.Equal(t, "NOV", nov.Code)
	require.True(t, nov.Paid)
	assert.Equal(t, int64(202), nov.Transaction.Idtrx, "pembayaran terbaru yang dipakai")
	assert.Equal(t, int64(175000), nov.Transaction.Nominal)
}

func TestProjectMonths_JulAndCorruptDropped(t *testing.T) {
	rows := []model.TransactionModel{
		{Idtrx: 301, Nominal: 100000, Sortasi: sortasi(1)},  // JUL: tidak punya slot
		{Idtrx: 302, Nominal: 100000, Sortasi: sortasi(13)}, // di luar rentang
		{Idtrx: 303, Nominal: 100000, Sortasi: nil},         // NULL
		{Idtrx: 304, Nominal: 100000, Sortasi: sortasi(2)},
	}

	got := ProjectMonths(rows)

	require.Len(t, got, 11)
	paid := 0
	for _, p := range got {
		if p.Paid {
			paid++
			assert.Equal(t, "AGU", p.Code)
			assert.Equal(t, int64(304), p.Transaction.Idtrx)
		}
	}
	assert.Equal(t, 1, paid, "hanya baris AGU yang ter-proyeksi")
}

func TestProjectMonths_FullYear(t *testing.T) {
	var rows []model.TransactionModel
	for s := int16(2); s <= 12; s++ {
		rows = append(rows, model.TransactionModel{Idtrx: int64(s), Nominal: 150000, Sortasi: sortasi(s)})
	}

	got := ProjectMonths(rows)

	require.Len(t, got, 11)
	for _, p := range got {
		assert.True(t, p.Paid, "bulan %s harus terbayar", p.Code)
		require.NotNil(t, p.Transaction)
	}
}
