package dto

import (
	"time"

	m "mykahfi_backend/internals/features/payment/model"
)

/* =============== RESPONSES =============== */

// Ringkasan transaksi yang ditampilkan per bulan (subset kolom ledger).
type TransactionSummary struct {
	Idtrx   int64      `json:"idtrx"`
	Nominal int64      `json:"nominal"`
	TglTrx  *time.Time `json:"tgl_trx,omitempty"`
	Jenjang *string    `json:"jenjang,omitempty"`
}

// MonthProjection: satu slot bulan tahun ajaran. Selalu 11 entri per siswa,
// urut AGU..JUN, paid=true hanya kalau ada baris ledger untuk bulan itu.
type MonthProjection struct {
	Code        string              `json:"code"`
	Label       string              `json:"label"`
	Paid        bool                `json:"paid"`
	Transaction *TransactionSummary `json:"transaction"`
}

/* =============== MAPPERS =============== */

func SummaryFromModel(x m.TransactionModel) *TransactionSummary {
	return &TransactionSummary{
		Idtrx:   x.Idtrx,
		Nominal: x.Nominal,
		TglTrx:  x.TglTrx,
		Jenjang: x.Jenjang,
	}
}
