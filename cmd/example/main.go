package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/rpdg/wmutil"
)

func main() {
	fmt.Println("=== wmutil Library Example ===")

	// 1. Enumerate monitors
	monitors, err := wmutil.EnumerateMonitors()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Found %d monitors\n", len(monitors))
	for _, m := range monitors {
		sz := m.Size()
		fmt.Printf("   %s: %dx%d at (%d, %d), scale %.2f\n",
			m.DeviceName, sz.Width, sz.Height, m.Bounds.Left, m.Bounds.Top, m.ScaleFactor)
	}

	// 2. Primary monitor and point lookup
	primary, err := wmutil.GetPrimaryMonitor()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Primary monitor: %s\n", primary.DeviceName)

	if m, err := wmutil.GetMonitorFromPoint(primary.Bounds.Right+100, 0); err == nil {
		fmt.Printf("Monitor right of primary edge: %s\n", m.DeviceName)
	}

	// 3. Window lookup (open Notepad to see this resolve)
	if m, err := wmutil.FindWindowMonitor("Untitled - Notepad"); err == nil {
		fmt.Printf("Notepad is on %s\n", m.DeviceName)
	}

	// 4. Reassign the primary monitor. This rewrites the machine-wide display
	// configuration, so it only runs when explicitly requested.
	if len(os.Args) > 2 && os.Args[1] == "--set-primary" {
		device := os.Args[2]
		ok, err := wmutil.SetPrimaryMonitor(device)
		if errors.Is(err, wmutil.ErrMonitorNotFound) {
			log.Fatalf("no such monitor: %s", device)
		}
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			log.Println("the OS rejected the new configuration")
			return
		}
		fmt.Printf("%s is now the primary monitor\n", device)
	}

	fmt.Println("=== Done ===")
}
