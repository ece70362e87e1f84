package service

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "mykahfi_backend/internals/features/students/dto"
	model "mykahfi_backend/internals/features/students/model"
	helper "mykahfi_backend/internals/helpers"

	"mykahfi_backend/internals/configs"
)

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIS dan Password harus diisi.")
	}
	input.Nis = strings.TrimSpace(input.Nis)

	v := validator.New()
	if err := v.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIS dan Password harus diisi.")
	}

	var user model.UserModel
	if err := db.Where("nis = ?", input.Nis).Take(&user).Error; err != nil {
		// Pesan sama untuk NIS tak dikenal maupun password salah
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIS atau Password salah.")
	}

	if !VerifyPassword(input.Password, user.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIS atau Password salah.")
	}

	token, err := IssueSessionToken(user.Nis, user.NamaSiswa, user.Jenjang)
	if err != nil {
		log.Printf("[ERROR] gagal membuat token sesi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi gangguan. Silakan coba lagi.")
	}
	SetSessionCookie(c, token)

	// Audit login best-effort; kegagalan tidak membatalkan login
	recordLoginAudit(db, user.Nis, c.Get(fiber.HeaderUserAgent))

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Nis:       user.Nis,
		NamaSiswa: user.NamaSiswa,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(c *fiber.Ctx) error {
	ClearSessionCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func recordLoginAudit(db *gorm.DB, nis, userAgent string) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = "unknown"
	}
	if len(userAgent) > 200 {
		userAgent = userAgent[:200]
	}

	now := time.Now()
	err := db.Model(&model.UserModel{}).
		Where("nis = ?", nis).
		Updates(map[string]any{
			"last_login_at":          now,
			"last_login_device":      userAgent,
			"last_login_app_version": configs.AppVersion,
		}).Error
	if err != nil {
		log.Printf("[WARN] gagal update audit login nis=%s: %v", nis, err)
	}
}
