package core

import "time"

// TimestampLayout renders local time with millisecond precision,
// e.g. "2024-01-15 14:30:52,123".
const TimestampLayout = "2006-01-02 15:04:05,000"

// FormatTimestamp renders t in local time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	var buf [len(TimestampLayout)]byte
	return string(AppendTimestamp(buf[:0], t))
}

// AppendTimestamp appends the rendered timestamp of t to dst.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	return t.Local().AppendFormat(dst, TimestampLayout)
}
