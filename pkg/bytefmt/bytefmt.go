package bytefmt

import "fmt"

// MB renders a byte count as megabytes with two decimals, e.g. "12.34 MB".
func MB(b uint64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/(1024*1024))
}
