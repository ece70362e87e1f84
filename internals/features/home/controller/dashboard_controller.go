// file: internals/features/home/controller/dashboard_controller.go
package controller

import (
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeDto "mykahfi_backend/internals/features/home/dto"
	homeModel "mykahfi_backend/internals/features/home/model"
	messageService "mykahfi_backend/internals/features/messages/service"
	paymentDto "mykahfi_backend/internals/features/payment/dto"
	paymentService "mykahfi_backend/internals/features/payment/service"
	studentDto "mykahfi_backend/internals/features/students/dto"
	studentModel "mykahfi_backend/internals/features/students/model"
	helper "mykahfi_backend/internals/helpers"
	authMiddleware "mykahfi_backend/internals/middlewares/auth"
)

// Cache-Control privat singkat: dashboard boleh basi beberapa puluh detik
// di sisi client, mengurangi hit ulang saat wali murid bolak-balik tab.
const dashboardCacheSeconds = 30

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Get menyusun tampilan dashboard: status SPP 11 bulan + pesan sekolah +
// kontak admin. Rekonsiliasi pembayaran dan resolusi pesan jalan paralel —
// tidak ada dependensi urutan di antara keduanya.
// GET /api/dashboard
func (dc *DashboardController) Get(c *fiber.Ctx) error {
	nis := authMiddleware.NISFromLocals(c)
	if nis == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid.")
	}

	// Lookup siswa: gagal di sini = gagal request (beda dengan ledger kosong)
	var student studentModel.UserModel
	if err := dc.DB.Where("nis = ?", nis).Take(&student).Error; err != nil {
		log.Printf("[ERROR] lookup siswa nis=%s gagal: %v", nis, err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal memuat data siswa.")
	}

	var (
		wg      sync.WaitGroup
		months  []paymentDto.MonthProjection
		message messageService.ResolvedMessage
		msgErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		months = paymentService.ReconcileMonths(dc.DB, nis)
	}()
	go func() {
		defer wg.Done()
		message, msgErr = messageService.ResolveLatestMessage(dc.DB, nis)
	}()
	wg.Wait()

	if msgErr != nil {
		log.Printf("[ERROR] resolve pesan nis=%s gagal: %v", nis, msgErr)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal memuat dashboard. Silakan coba lagi.")
	}
	if message.Source != messageService.SourceNone {
		log.Printf("[INFO] pesan nis=%s source=%s", nis, message.Source)
	}

	var contacts []homeModel.KontakAdminModel
	if err := dc.DB.Find(&contacts).Error; err != nil {
		log.Printf("[WARN] gagal memuat kontak_admin: %v", err)
		contacts = []homeModel.KontakAdminModel{}
	}

	resp := homeDto.DashboardResponse{
		Student: studentDto.StudentResponse{
			Nis:       student.Nis,
			NamaSiswa: student.NamaSiswa,
			Jenjang:   student.Jenjang,
		},
		Months:   months,
		Contacts: contacts,
	}
	if message.Text != "" {
		resp.Message = &homeDto.DashboardMessage{Text: message.Text, IsNew: true}
	}

	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("private, max-age=%d", dashboardCacheSeconds))
	return helper.JsonOK(c, "Dashboard dimuat", resp)
}
