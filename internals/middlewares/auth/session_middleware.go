package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Nama cookie sesi (sama dengan versi web sebelumnya supaya sesi lama tetap jalan)
const SessionCookieName = "mykahfi_session"

// Locals keys yang di-hydrate oleh middleware ini
const (
	LocNIS        = "nis"
	LocNamaSiswa  = "nama_siswa"
	LocJenjang    = "jenjang"
)

type SessionJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie mykahfi_session jika tidak ada Bearer
}

// SessionJWT memverifikasi token sesi wali murid (HMAC) dari header
// Authorization atau cookie, lalu meng-hydrate nis/nama_siswa/jenjang ke Locals.
func SessionJWT(o SessionJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("SessionJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies(SessionCookieName))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid.")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid.")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid.")
		}

		nis := strClaim(claims, "sub")
		if nis == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid.")
		}

		c.Locals("jwt_claims", claims)
		c.Locals(LocNIS, nis)
		if v := strClaim(claims, "nama_siswa"); v != "" {
			c.Locals(LocNamaSiswa, v)
		}
		if v := strClaim(claims, "jenjang"); v != "" {
			c.Locals(LocJenjang, v)
		}

		return c.Next()
	}
}

// NISFromLocals mengambil nis dari Locals; "" jika tidak ada sesi.
func NISFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocNIS).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
