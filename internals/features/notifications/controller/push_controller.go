package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "mykahfi_backend/internals/features/notifications/model"
	"mykahfi_backend/internals/features/notifications/repository"
	"mykahfi_backend/internals/features/notifications/service"
	helper "mykahfi_backend/internals/helpers"
	authMiddleware "mykahfi_backend/internals/middlewares/auth"
)

type PushController struct {
	DB     *gorm.DB
	Sender service.Sender
	Client *service.OneSignalClient // untuk SetExternalID
	Logs   repository.NotificationLogStore
}

func NewPushController(db *gorm.DB, client *service.OneSignalClient) *PushController {
	return &PushController{
		DB:     db,
		Sender: client,
		Client: client,
		Logs:   repository.NewNotificationLogStore(db),
	}
}

// TestPush mengirim notifikasi percobaan ke perangkat milik sesi.
// POST /api/push/test
func (pc *PushController) TestPush(c *fiber.Ctx) error {
	sessionNis := authMiddleware.NISFromLocals(c)
	if sessionNis == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid.")
	}

	var input struct {
		Nis string `json:"nis"`
	}
	_ = c.BodyParser(&input) // body opsional; default nis sesi
	nis := strings.TrimSpace(input.Nis)
	if nis == "" {
		nis = sessionNis
	}
	if nis != sessionNis {
		return helper.JsonError(c, fiber.StatusForbidden, "NIS tidak sesuai sesi.")
	}

	result := pc.Sender.Send(c.UserContext(), service.PushMessage{
		ExternalUserIDs: []string{nis},
		Title:           "Test Notifikasi",
		Body:            "Push OneSignal berhasil terhubung.",
		Data: map[string]string{
			"event_type": model.EventTest,
			"nis":        nis,
			"deeplink":   "/dashboard",
		},
	})

	pc.auditTest(nis, result)

	if !result.Success {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal mengirim test notifikasi: "+result.Error)
	}

	return helper.JsonOK(c, "Test notifikasi terkirim", fiber.Map{
		"notification_id": result.ID,
	})
}

// RegisterDevice meng-upsert perangkat ke user_devices_web lalu menautkan
// external_id di OneSignal (best-effort).
// POST /api/push/register-device
func (pc *PushController) RegisterDevice(c *fiber.Ctx) error {
	sessionNis := authMiddleware.NISFromLocals(c)
	if sessionNis == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid.")
	}

	var input struct {
		Nis                     string `json:"nis"`
		OneSignalSubscriptionID string `json:"onesignal_subscription_id"`
		Platform                string `json:"platform"`
		ExternalID              string `json:"external_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap.")
	}
	if input.Nis == "" || input.OneSignalSubscriptionID == "" || input.Platform == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap.")
	}
	if input.Nis != sessionNis {
		return helper.JsonError(c, fiber.StatusForbidden, "NIS tidak sesuai sesi.")
	}
	if !model.IsValidPlatform(input.Platform) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Platform tidak valid.")
	}

	externalID := input.ExternalID
	if externalID == "" {
		externalID = input.Nis
	}

	now := time.Now()
	device := model.UserDeviceModel{
		Nis:                     input.Nis,
		OneSignalSubscriptionID: input.OneSignalSubscriptionID,
		Platform:                input.Platform,
		ExternalID:              externalID,
		IsActive:                true,
		LastSeenAt:              &now,
	}
	err := pc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "onesignal_subscription_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nis", "external_id", "is_active", "last_seen_at", "updated_at",
		}),
	}).Create(&device).Error
	if err != nil {
		log.Printf("[ERROR] upsert user_devices_web gagal: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal mendaftarkan perangkat.")
	}

	if pc.Client != nil {
		if !pc.Client.SetExternalID(c.UserContext(), input.OneSignalSubscriptionID, externalID) {
			log.Printf("[WARN] SetExternalID gagal untuk subscription %s", maskSubscriptionID(input.OneSignalSubscriptionID))
		}
	}

	return helper.JsonOK(c, "Perangkat terdaftar", nil)
}

// ListDevices menampilkan perangkat milik sesi (untuk debug wali murid).
// GET /api/push/devices
func (pc *PushController) ListDevices(c *fiber.Ctx) error {
	sessionNis := authMiddleware.NISFromLocals(c)
	if sessionNis == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid.")
	}

	var devices []model.UserDeviceModel
	err := pc.DB.
		Where("nis = ?", sessionNis).
		Order("last_seen_at DESC").
		Find(&devices).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal memuat daftar perangkat.")
	}

	out := make([]fiber.Map, 0, len(devices))
	active := 0
	for _, d := range devices {
		if d.IsActive {
			active++
		}
		out = append(out, fiber.Map{
			"platform":               d.Platform,
			"is_active":              d.IsActive,
			"external_id":            d.ExternalID,
			"subscription_id_masked": maskSubscriptionID(d.OneSignalSubscriptionID),
			"last_seen_at":           d.LastSeenAt,
			"updated_at":             d.UpdatedAt,
			"created_at":             d.CreatedAt,
		})
	}

	return helper.JsonOK(c, "Daftar perangkat", fiber.Map{
		"nis":            sessionNis,
		"total_devices":  len(out),
		"active_devices": active,
		"devices":        out,
	})
}

func (pc *PushController) auditTest(nis string, result service.SendResult) {
	entry := &model.NotificationLogModel{
		Nis:       nis,
		EventType: model.EventTest,
		Provider:  service.ProviderOneSignal,
		Status:    model.StatusSent,
	}
	if result.Success {
		entry.ProviderMessageID = &result.ID
	} else {
		entry.Status = model.StatusFailed
		errMsg := result.Error
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		entry.ErrorMessage = &errMsg
	}
	if err := pc.Logs.Insert(entry); err != nil {
		log.Printf("[WARN] gagal tulis notification_logs (test): %v", err)
	}
}

// maskSubscriptionID menyisakan 4 karakter awal/akhir.
func maskSubscriptionID(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + "..." + value[len(value)-4:]
}
