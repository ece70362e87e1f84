package model

// KontakAdminModel memetakan tabel kontak_admin (nomor admin per unit,
// ditampilkan di dashboard).
type KontakAdminModel struct {
	Unit string `gorm:"column:unit;type:text;primaryKey" json:"unit"`
	Nohp string `gorm:"column:nohp;type:text" json:"nohp"`
}

func (KontakAdminModel) TableName() string { return "kontak_admin" }
