package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "mykahfi_backend/internals/helpers"
	authMiddleware "mykahfi_backend/internals/middlewares/auth"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// MarkRead menandai pesan terbaca.
// POST /api/messages/mark-read
// TODO: simpan status baca per (nis, hash) ke tabel sendiri; sekarang status
// baca masih dipegang client (localStorage), endpoint ini hanya meng-ack.
func (mc *MessageController) MarkRead(c *fiber.Ctx) error {
	sessionNis := authMiddleware.NISFromLocals(c)
	if sessionNis == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid.")
	}

	var input struct {
		Nis                 string `json:"nis"`
		LastReadMessageHash string `json:"last_read_message_hash"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap.")
	}
	if strings.TrimSpace(input.Nis) == "" || strings.TrimSpace(input.LastReadMessageHash) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap.")
	}
	if input.Nis != sessionNis {
		return helper.JsonError(c, fiber.StatusForbidden, "NIS tidak sesuai sesi.")
	}

	return helper.JsonOK(c, "Pesan ditandai terbaca", nil)
}
