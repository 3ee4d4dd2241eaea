//go:build debug
// +build debug

package gazescreens

import (
	"fmt"
	"sync"
)

// With the debug tag logging is always on and the Debug var is ignored.
func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
