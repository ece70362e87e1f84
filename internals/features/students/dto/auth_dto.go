package dto

/* =============== REQUESTS =============== */

type LoginRequest struct {
	Nis      string `json:"nis" validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required"`
}

/* =============== RESPONSES =============== */

type LoginResponse struct {
	Nis       string `json:"nis"`
	NamaSiswa string `json:"nama_siswa"`
}

type StudentResponse struct {
	Nis       string `json:"nis"`
	NamaSiswa string `json:"nama_siswa"`
	Jenjang   string `json:"jenjang"`
}
