package buildinfo_test

import (
	"fmt"

	"github.com/InQaaaaGit/trunc_web/internal/buildinfo"
)

// ExampleDefaultInfo демонстрирует информацию о сборке без -ldflags
func ExampleDefaultInfo() {
	fmt.Println(buildinfo.DefaultInfo())

	// Output:
	// Version: N/A, Date: N/A, Commit: N/A
}

// ExampleNewInfo демонстрирует создание информации о сборке с заданными параметрами
func ExampleNewInfo() {
	info := buildinfo.NewInfo("v1.0.0", "2024-01-01", "")
	fmt.Printf("Version: %s\n", info.Version)
	fmt.Printf("Date: %s\n", info.Date)
	fmt.Printf("Commit: %s\n", info.Commit)

	// Output:
	// Version: v1.0.0
	// Date: 2024-01-01
	// Commit: N/A
}
