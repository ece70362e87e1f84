package model

import (
	"time"
)

// UserModel memetakan tabel users (akun wali murid, key = NIS 6 digit).
// msg_app adalah field pesan legacy satu kolom; sumber pesan utama sekarang
// tabel user_messages_web.
type UserModel struct {
	Nis       string `gorm:"column:nis;type:varchar(6);primaryKey" json:"nis"`
	Password  string `gorm:"column:password;type:text;not null" json:"-"`
	NamaSiswa string `gorm:"column:nama_siswa;type:text;not null" json:"nama_siswa"`
	Jenjang   string `gorm:"column:jenjang;type:text" json:"jenjang"`

	MsgApp *string `gorm:"column:msg_app;type:text" json:"msg_app,omitempty"`

	// Audit login (best-effort, diisi saat login sukses)
	LastLoginAt         *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	LastLoginDevice     *string    `gorm:"column:last_login_device;type:text" json:"last_login_device,omitempty"`
	LastLoginAppVersion *string    `gorm:"column:last_login_app_version;type:text" json:"last_login_app_version,omitempty"`
}

func (UserModel) TableName() string { return "users" }
