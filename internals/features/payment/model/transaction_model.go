package model

import (
	"time"
)

// TransactionModel memetakan tabel ledger pembayaran SPP (read-only dari sisi
// portal; baris ditulis sistem keuangan sekolah, bukan service ini).
type TransactionModel struct {
	Idtrx   int64      `gorm:"column:idtrx;primaryKey" json:"idtrx"`
	Idtag   *string    `gorm:"column:idtag;type:text" json:"idtag,omitempty"`
	Nis     string     `gorm:"column:nis;type:varchar(6);not null;index:idx_transactions_nis" json:"nis"`
	Bulan   *string    `gorm:"column:bulan;type:text" json:"bulan,omitempty"`
	Nominal int64      `gorm:"column:nominal;not null" json:"nominal"`
	TglTrx  *time.Time `gorm:"column:tgl_trx;type:date" json:"tgl_trx,omitempty"`
	Jenjang *string    `gorm:"column:jenjang;type:text" json:"jenjang,omitempty"`

	// Kode urut bulan dari sumber (1=JUL..12=JUN); bisa NULL untuk baris lama
	Sortasi *int16 `gorm:"column:sortasi;type:smallint" json:"sortasi,omitempty"`
}

func (TransactionModel) TableName() string { return "transactions" }
