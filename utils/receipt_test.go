package utils

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"backend/repository"
)

func TestFormatReceipt(t *testing.T) {
	table := 4
	row := repository.BoardRow{
		ID:          "o1",
		TableNumber: &table,
		FinalTotal:  242,
		CreatedAt:   time.Date(2026, 8, 30, 19, 45, 0, 0, time.UTC),
		Lines: []repository.OrderLine{
			{ItemName: "Pad Thai", Qty: 2, TotalPrice: 200, Modifiers: []string{"Extra Spicy"}},
		},
	}

	got := FormatReceipt(row, 200, 32, 10, 0)

	for _, want := range []string{"Table 4", "Pad Thai", "x2", "+ Extra Spicy", "242.00", "32.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
}

// ชื่อเมนูภาษาไทยยาว ๆ โดนตัดแล้วต้องยังเป็น UTF-8 ที่ถูกต้อง
func TestFormatReceiptClipsOnRunes(t *testing.T) {
	row := repository.BoardRow{
		ID: "o3", FinalTotal: 78.65, CreatedAt: time.Now(),
		Lines: []repository.OrderLine{
			{ItemName: "ข้าวผัดกะเพราหมูกรอบไข่ดาวพิเศษเผ็ดมาก", Qty: 1, TotalPrice: 65},
		},
	}

	got := FormatReceipt(row, 65, 10.40, 3.25, 0)
	if !utf8.ValidString(got) {
		t.Errorf("receipt contains invalid UTF-8:\n%s", got)
	}
	want := string([]rune("ข้าวผัดกะเพราหมูกรอบไข่ดาวพิเศษเผ็ดมาก")[:20])
	if !strings.Contains(got, want) {
		t.Errorf("receipt missing clipped item name %q:\n%s", want, got)
	}
}

func TestFormatReceiptCounterSale(t *testing.T) {
	row := repository.BoardRow{
		ID: "o2", FinalTotal: 42.35, CreatedAt: time.Now(),
		Lines: []repository.OrderLine{{ItemName: "Thai Iced Tea", Qty: 1, TotalPrice: 35}},
	}

	got := FormatReceipt(row, 35, 5.60, 1.75, 0)
	if !strings.Contains(got, "Counter Sale") {
		t.Errorf("receipt missing Counter Sale header:\n%s", got)
	}
}
