package utils

import (
	"fmt"
	"strconv"
)

// FormatRupiah renders a whole-rupiah amount with Indonesian thousands
// separators, e.g. 50000 -> "Rp 50.000".
func FormatRupiah(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	if negative {
		return fmt.Sprintf("-Rp %s", out)
	}
	return fmt.Sprintf("Rp %s", out)
}
