package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp150.000", FormatIDR(150000))
	assert.Equal(t, "Rp1.250.000", FormatIDR(1250000))
	assert.Equal(t, "Rp0", FormatIDR(0))
	assert.Equal(t, "Rp500", FormatIDR(500))
}

func TestBuildPaymentBody(t *testing.T) {
	assert.Equal(t,
		"Pembayaran SEP sebesar Rp150.000 sudah diterima.",
		BuildPaymentBody(150000, "SEP"))
	assert.Equal(t,
		"Pembayaran baru sebesar Rp150.000 sudah diterima.",
		BuildPaymentBody(150000, ""))
}
