package utils

import (
	"fmt"
	"strings"

	"backend/repository"
)

// FormatReceipt แปลง order เป็นใบเสร็จ text ธรรมดาสำหรับพิมพ์
// เป็น output ล้วน ๆ ไม่แตะ state อะไรทั้งนั้น
func FormatReceipt(row repository.BoardRow, total, tax, serviceCharge, discount float64) string {
	var b strings.Builder

	b.WriteString("================================\n")
	b.WriteString("        RECEIPT\n")
	if row.TableNumber != nil {
		fmt.Fprintf(&b, "        Table %d\n", *row.TableNumber)
	} else {
		b.WriteString("        Counter Sale\n")
	}
	fmt.Fprintf(&b, "  %s\n", row.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString("================================\n")

	for _, l := range row.Lines {
		fmt.Fprintf(&b, "%-20s x%-3d %8.2f\n", clip(l.ItemName, 20), l.Qty, l.TotalPrice)
		for _, m := range l.Modifiers {
			fmt.Fprintf(&b, "  + %s\n", m)
		}
	}

	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "%-14s %17.2f\n", "Subtotal", total)
	fmt.Fprintf(&b, "%-14s %17.2f\n", "Tax 16%", tax)
	fmt.Fprintf(&b, "%-14s %17.2f\n", "Service 5%", serviceCharge)
	if discount > 0 {
		fmt.Fprintf(&b, "%-14s %17.2f\n", "Discount", -discount)
	}
	fmt.Fprintf(&b, "%-14s %17.2f\n", "TOTAL", row.FinalTotal)
	b.WriteString("================================\n")

	return b.String()
}

// ตัดเป็น rune ไม่ใช่ byte — ชื่อเมนูภาษาไทยโดนหั่นกลางตัวอักษรไม่ได้
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
