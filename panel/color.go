package panel

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// PriceFieldName labels the fields appended by the price action.
	PriceFieldName = "💰 Preço"

	maxColor = 0xFFFFFF
)

// ParseColor reads a free-form color token ("#5865F2", "0x5865F2" or bare
// hex). Invalid tokens are surfaced to the user as-is.
func ParseColor(token string) (int, error) {
	t := strings.TrimSpace(token)
	t = strings.TrimPrefix(t, "#")
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
	}
	color, err := strconv.ParseUint(t, 16, 32)
	if err != nil || color > maxColor {
		return 0, fmt.Errorf("cor inválida: %q", token)
	}
	return int(color), nil
}

// FormatPrice renders a raw price input as currency text for a price field.
func FormatPrice(value string) string {
	return "R$ " + strings.TrimSpace(value)
}
