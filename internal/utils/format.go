// internal/utils/format.go
package utils

import "fmt"

// FormatDuration переводит секунды в строку "MM:SS:d", где d — десятые доли.
// Формат верхней панели: 83.45 сек -> "01:23:4".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(seconds)
	tenths := int(seconds*10) % 10
	return fmt.Sprintf("%02d:%02d:%d", whole/60, whole%60, tenths)
}
