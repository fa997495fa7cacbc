package xlogger_test

import (
	"fmt"

	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogger"
)

func Example() {
	// Appender 是核心唯一的输出边界；这里直接打印
	logger, err := xlogger.New(func(level xlevel.Level, message string) error {
		fmt.Printf("[%s] %s\n", level, message)
		return nil
	})
	if err != nil {
		fmt.Println("new logger:", err)
		return
	}

	logger.Info("service started")
	logger.Warn("cache at %s capacity", "90%")

	// 提升阈值后低级别调用成为零开销 no-op
	if err := logger.SetLevel(xlevel.Error); err != nil {
		fmt.Println("set level:", err)
		return
	}
	logger.Info("not emitted")
	logger.Error("write failed: %s", map[string]any{"path": "/tmp/x", "retries": 3})

	// Output:
	// [INFO] service started
	// [WARN] cache at 90% capacity
	// [ERROR] write failed: {path = "/tmp/x", retries = 3}
}

func ExampleLogger_Log() {
	logger, _ := xlogger.New(func(level xlevel.Level, message string) error {
		fmt.Printf("%s %s\n", level, message)
		return nil
	}, xlogger.WithLevel(xlevel.Warn))

	levels := []xlevel.Level{xlevel.Debug, xlevel.Warn, xlevel.Fatal}
	for _, l := range levels {
		if err := logger.Log(l, "at %s", l.String()); err != nil {
			fmt.Println("log:", err)
		}
	}
	// Output:
	// WARN at WARN
	// FATAL at FATAL
}
