// file: internals/features/notifications/service/webhook_envelope.go
//
// Normalisasi payload webhook change-capture (trigger DB → relay → kita).
// Bentuk kiriman tidak seragam antar konfigurasi trigger/relay: field event
// bisa langsung di top-level, di dalam envelope `payload`, atau di bawah
// `record`/`new_record`/`new`. Resolver di sini memilih kandidat pertama yang
// tidak kosong dengan urutan prioritas tetap supaya bisa diaudit dan dites.
package service

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// WebhookEnvelope: bentuk kanonik hasil normalisasi.
type WebhookEnvelope struct {
	EventType string // INSERT|UPDATE|DELETE|"" (unknown)
	Table     string
	Record    map[string]any
	OldRecord map[string]any
}

// NormalizeWebhookPayload mem-parse body (JSON atau teks) dan memilih record
// baru/lama sesuai prioritas. Body yang tidak bisa di-parse dianggap payload
// kosong — tidak pernah error.
func NormalizeWebhookPayload(raw []byte) WebhookEnvelope {
	top := parseLooseJSON(raw)
	envelope := asMap(top["payload"])

	record := firstNonEmpty(
		asMap(envelope["record"]),
		asMap(envelope["new_record"]),
		asMap(envelope["new"]),
		asMap(top["record"]),
		asMap(top["new_record"]),
		asMap(top["new"]),
		envelope,
		top,
	)
	oldRecord := firstNonEmpty(
		asMap(envelope["old_record"]),
		asMap(envelope["old"]),
		asMap(top["old_record"]),
		asMap(top["old"]),
	)

	return WebhookEnvelope{
		EventType: strings.ToUpper(firstText(top["type"], envelope["type"])),
		Table:     firstText(top["table"], envelope["table"]),
		Record:    record,
		OldRecord: oldRecord,
	}
}

func parseLooseJSON(raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var top map[string]any
	if err := sonic.Unmarshal(raw, &top); err != nil || top == nil {
		return map[string]any{}
	}
	return top
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// firstNonEmpty: kandidat pertama yang punya isi menang.
func firstNonEmpty(candidates ...map[string]any) map[string]any {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return map[string]any{}
}

func firstText(values ...any) string {
	for _, v := range values {
		if s := NormalizeText(v); s != "" {
			return s
		}
	}
	return ""
}

/* =============== FIELD ACCESSORS =============== */

// NormalizeText: nilai apa pun → string ter-trim ("" kalau bukan teks/angka).
func NormalizeText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON number; id numerik dikirim sebagai angka oleh sebagian relay
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

// NormalizeNumber: nilai apa pun → int64 (0 kalau tidak bisa dibaca).
func NormalizeNumber(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// TextField mengambil field string pertama yang terisi dari record.
func TextField(record map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := NormalizeText(record[k]); s != "" {
			return s
		}
	}
	return ""
}
