package util

import (
	"strconv"
	"strings"
)

// Color is an ANSI foreground color code
type Color int

const (
	Gray    Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
)

// Colorize wraps s in ANSI escape codes, highlight switches to the
// background variant of the color
func Colorize(s string, color Color, highlight bool, bold ...bool) string {
	num := int(color)
	if highlight {
		num += 10
	}
	attrs := []string{strconv.Itoa(num)}
	if len(bold) > 0 && bold[0] {
		attrs = append(attrs, "1")
	}
	return "\x1b[" + strings.Join(attrs, ";") + "m" + s + "\x1b[0m"
}
