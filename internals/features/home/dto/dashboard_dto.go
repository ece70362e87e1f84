package dto

import (
	homeModel "mykahfi_backend/internals/features/home/model"
	paymentDto "mykahfi_backend/internals/features/payment/dto"
	studentDto "mykahfi_backend/internals/features/students/dto"
)

// DashboardMessage: pesan sekolah yang tampil di dashboard. Provenance
// (primary/legacy) sengaja tidak ikut — itu detail internal untuk log.
type DashboardMessage struct {
	Text  string `json:"text"`
	IsNew bool   `json:"is_new"`
}

type DashboardResponse struct {
	Student  studentDto.StudentResponse   `json:"student"`
	Message  *DashboardMessage            `json:"message"`
	Months   []paymentDto.MonthProjection `json:"months"`
	Contacts []homeModel.KontakAdminModel `json:"contacts"`
}
