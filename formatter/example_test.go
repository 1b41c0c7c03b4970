package formatter_test

import (
	"fmt"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Timestamp: "2026-01-15 12:00:00,000",
		Level:     core.InfoLevel,
		Message:   "hello world",
	}

	fmt.Println(f.FormatString(entry))
	// Output:
	// 2026-01-15 12:00:00,000: hello world
}

func ExampleNewLineFormatter() {
	f := formatter.NewLineFormatter()

	out, _ := f.Format(&core.Entry{
		Timestamp: "2026-01-15 12:00:00,000",
		Message:   "x=5",
	})
	fmt.Printf("%q\n", out)
	// Output:
	// "2026-01-15 12:00:00,000: x=5\n"
}
