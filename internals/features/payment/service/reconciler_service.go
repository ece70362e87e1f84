// file: internals/features/payment/service/reconciler_service.go
package service

import (
	"log"

	"gorm.io/gorm"

	"mykahfi_backend/internals/features/academic"
	dto "mykahfi_backend/internals/features/payment/dto"
	model "mykahfi_backend/internals/features/payment/model"
)

// Batas aman untuk query fallback langsung ke tabel ledger.
const fallbackFetchLimit = 250

// ReconcileMonths membangun proyeksi 11 bulan tahun ajaran untuk satu siswa.
//
// Jalur utama: function agregasi di DB (latest_transactions_per_month) yang
// sudah mengembalikan maksimal 1 baris per sortasi {2..12}. Kalau function
// belum ter-deploy atau gagal, itu degradasi yang diharapkan → fallback query
// langsung ke tabel transactions (desc tgl_trx, limit 250).
//
// Read-only; tidak pernah menulis apa pun.
func ReconcileMonths(db *gorm.DB, nis string) []dto.MonthProjection {
	rows, err := fetchLatestPerMonth(db, nis)
	if err != nil || len(rows) == 0 {
		if err != nil {
			log.Printf("[WARN] latest_transactions_per_month tidak tersedia, pakai fallback: %v", err)
		}
		rows, err = fetchFallback(db, nis)
		if err != nil {
			// Ledger tidak bisa dibaca → tampilkan semua bulan belum bayar,
			// jangan gagalkan dashboard. Lookup siswa yang fatal ada di caller.
			log.Printf("[ERROR] fallback query transactions gagal: %v", err)
			rows = nil
		}
	}

	return ProjectMonths(rows)
}

// fetchLatestPerMonth memanggil stored function agregasi di Postgres.
func fetchLatestPerMonth(db *gorm.DB, nis string) ([]model.TransactionModel, error) {
	var rows []model.TransactionModel
	err := db.
		Raw("SELECT * FROM latest_transactions_per_month(?)", nis).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// fetchFallback membaca langsung tabel ledger, difilter ke sortasi yang punya
// slot, urut tanggal bayar terbaru dulu.
func fetchFallback(db *gorm.DB, nis string) ([]model.TransactionModel, error) {
	var rows []model.TransactionModel
	err := db.
		Where("nis = ? AND sortasi IN ?", nis, academic.SortasiFilter()).
		Order("tgl_trx DESC").
		Limit(fallbackFetchLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectMonths memetakan baris ledger ke 11 slot bulan tetap.
//
// Baris datang urut tanggal bayar menurun, jadi baris pertama per kode bulan
// adalah pembayaran terakhir; sisanya (pembayaran ulang/koreksi) dibuang.
// Sortasi tanpa slot (JUL, NULL, nilai korup) dibuang diam-diam.
func ProjectMonths(rows []model.TransactionModel) []dto.MonthProjection {
	byCode := make(map[string]model.TransactionModel, len(academic.Months))
	for _, row := range rows {
		if row.Sortasi == nil {
			continue
		}
		code, ok := academic.MonthCodeForSortasi(int(*row.Sortasi))
		if !ok {
			continue
		}
		if _, exists := byCode[code]; exists {
			continue // first-seen = terbaru (ORDER BY tgl_trx DESC)
		}
		byCode[code] = row
	}

	out := make([]dto.MonthProjection, 0, len(academic.Months))
	for _, mo := range academic.Months {
		proj := dto.MonthProjection{Code: mo.Code, Label: mo.Label}
		if row, ok := byCode[mo.Code]; ok {
			proj.Paid = true
			proj.Transaction = dto.SummaryFromModel(row)
		}
		out = append(out, proj)
	}
	return out
}
