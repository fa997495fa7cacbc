package xlevel_test

import (
	"fmt"

	"github.com/omeyang/logkit/pkg/xlevel"
)

func ExampleParse() {
	level, err := xlevel.Parse(" Warning ")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println(level)
	// Output: WARN
}

func ExampleLevels() {
	for _, level := range xlevel.Levels() {
		fmt.Printf("%d %s\n", int(level), level)
	}
	// Output:
	// 0 DEBUG
	// 1 INFO
	// 2 WARN
	// 3 ERROR
	// 4 FATAL
}
