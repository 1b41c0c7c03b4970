package streamhandler_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

func ExampleNewStreamHandler() {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: os.Stdout})
	defer h.Close()

	_ = h.Handle(&core.Entry{Timestamp: "2026-01-15 12:00:00,000", Message: "ready"})
	// Output:
	// 2026-01-15 12:00:00,000: ready
}

func ExampleNewFileHandler() {
	h, err := streamhandler.NewFileHandler(streamhandler.StreamFileConfig{
		Filename: os.DevNull,
		Append:   true,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.Owned())
	h.Close()
	// Output:
	// true
}
