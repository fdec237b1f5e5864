package main

import (
	"fmt"
	"os"
	"strings"
)

// printCPUInfo writes the host CPU model and cache size to stderr so bench
// numbers can be compared across machines.
func printCPUInfo() {
	raw, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return
	}
	var (
		cores int
		model string
		cache string
	)
	for _, line := range strings.Split(string(raw), "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "model name":
			cores++
			model = strings.TrimSpace(val)
		case "cache size":
			cache = strings.TrimSpace(val)
		}
	}
	if cores > 0 {
		fmt.Fprintf(os.Stderr, "CPU:        %d * %s\n", cores, model)
	}
	if cache != "" {
		fmt.Fprintf(os.Stderr, "CPUCache:   %s\n", cache)
	}
}
