package image

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// suffixCollapse turns go-humanize's binary-multiple IEC suffixes ("KiB",
// "MiB", ...) into the compact two-letter form the images table uses
// ("KB", "MB", ...), and drops the space humanize inserts before the unit.
var suffixCollapse = strings.NewReplacer(
	" ", "",
	"KiB", "KB",
	"MiB", "MB",
	"GiB", "GB",
	"TiB", "TB",
	"PiB", "PB",
	"EiB", "EB",
)

// FormatSize renders a byte count the way `images` displays it: binary
// (1024) multiples, no space before the unit. Values under 10 of a unit
// carry one decimal place ("2.0KB", "2.5MB", "1.0GB"); values of 10 or more
// are rounded to a whole number ("15KB"), and counts under 1024 are plain
// bytes ("512B").
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return suffixCollapse.Replace(humanize.IBytes(uint64(n)))
}
