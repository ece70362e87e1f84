// internals/features/students/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"mykahfi_backend/internals/configs"
	authMiddleware "mykahfi_backend/internals/middlewares/auth"
)

// Masa berlaku sesi wali murid (sama dengan versi web lama: 7 hari).
const sessionTTL = 7 * 24 * time.Hour

// IssueSessionToken membuat JWT sesi (HMAC) berisi identitas siswa.
func IssueSessionToken(nis, namaSiswa, jenjang string) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        nis,
		"nama_siswa": namaSiswa,
		"jenjang":    jenjang,
		"iat":        now.Unix(),
		"exp":        now.Add(sessionTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// SetSessionCookie memasang cookie sesi HttpOnly.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.GetEnv("APP_ENV", "production") == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// ClearSessionCookie menghapus cookie sesi (logout).
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
