// file: internals/features/messages/service/message_resolver_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	model "mykahfi_backend/internals/features/messages/model"
	studentModel "mykahfi_backend/internals/features/students/model"
)

// Provenance sumber pesan — hanya untuk diagnostik/log, tidak pernah
// ditampilkan mentah ke wali murid.
const (
	SourcePrimary = "primary" // user_messages_web
	SourceLegacy  = "legacy"  // users.msg_app
	SourceNone    = "none"
)

// SQLSTATE undefined_table: tabel pesan utama belum ada di environment ini.
const sqlstateUndefinedTable = "42P01"

type ResolvedMessage struct {
	Text   string // "" = tidak ada pesan
	Source string
}

// ResolveLatestMessage mencari pesan sekolah terkini untuk satu siswa.
//
// Urutan: baris aktif terbaru di user_messages_web → fallback field legacy
// users.msg_app. Tabel utama yang belum ada (42P01) bukan kondisi fatal;
// user record yang tidak ketemu fatal, dibedakan dari "memang tidak ada pesan".
func ResolveLatestMessage(db *gorm.DB, nis string) (ResolvedMessage, error) {
	if text, ok := resolvePrimary(db, nis); ok {
		return ResolvedMessage{Text: text, Source: SourcePrimary}, nil
	}

	var user studentModel.UserModel
	if err := db.Select("msg_app").Where("nis = ?", nis).Take(&user).Error; err != nil {
		return ResolvedMessage{Source: SourceNone}, err
	}

	if user.MsgApp != nil {
		if text := strings.TrimSpace(*user.MsgApp); text != "" {
			return ResolvedMessage{Text: text, Source: SourceLegacy}, nil
		}
	}
	return ResolvedMessage{Source: SourceNone}, nil
}

func resolvePrimary(db *gorm.DB, nis string) (string, bool) {
	var row model.UserMessageModel
	err := db.
		Where("nis = ? AND is_active = ?", nis, true).
		Order("created_at DESC").
		Take(&row).Error
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Tidak ada baris aktif → lanjut ke legacy
		case IsUndefinedTable(err):
			log.Printf("[WARN] tabel user_messages_web belum ada, fallback ke users.msg_app")
		default:
			log.Printf("[WARN] query user_messages_web gagal, fallback ke users.msg_app: %v", err)
		}
		return "", false
	}

	text := strings.TrimSpace(row.MessageText)
	return text, text != ""
}

// IsUndefinedTable mendeteksi error Postgres "relation does not exist".
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlstateUndefinedTable
}
