package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rpdg/wmutil"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	app := &cli.App{
		Name:  "wmutil",
		Usage: "inspect and rearrange Windows display monitors",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list all attached monitors",
				Action: runList,
			},
			{
				Name:   "primary",
				Usage:  "show the current primary monitor",
				Action: runPrimary,
			},
			{
				Name:      "at",
				Usage:     "show the monitor containing a virtual-desktop point",
				ArgsUsage: "X Y",
				Action:    runAt,
			},
			{
				Name:  "window",
				Usage: "show the monitor a window lives on",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "exact window title", Required: true},
				},
				Action: runWindow,
			},
			{
				Name:      "set-primary",
				Usage:     "make a monitor the primary display",
				ArgsUsage: "DEVICE",
				Action: func(c *cli.Context) error {
					wmutil.SetLogger(log)
					return runSetPrimary(c)
				},
			},
			{
				Name:      "capture",
				Usage:     "capture a monitor to a PNG file",
				ArgsUsage: "DEVICE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "monitor.png", Usage: "output file"},
				},
				Action: runCapture,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("command failed", zap.Error(err))
	}
}

func runList(c *cli.Context) error {
	monitors, err := wmutil.EnumerateMonitors()
	if err != nil {
		return err
	}
	for _, m := range monitors {
		printMonitor(m)
	}
	return nil
}

func runPrimary(c *cli.Context) error {
	m, err := wmutil.GetPrimaryMonitor()
	if err != nil {
		return err
	}
	printMonitor(m)
	return nil
}

func runAt(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: wmutil at X Y", 2)
	}
	x, err := strconv.ParseInt(c.Args().Get(0), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid X: %w", err)
	}
	y, err := strconv.ParseInt(c.Args().Get(1), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid Y: %w", err)
	}

	m, err := wmutil.GetMonitorFromPoint(int32(x), int32(y))
	if err != nil {
		return err
	}
	printMonitor(m)
	return nil
}

func runWindow(c *cli.Context) error {
	m, err := wmutil.FindWindowMonitor(c.String("title"))
	if err != nil {
		return err
	}
	printMonitor(m)
	return nil
}

func runSetPrimary(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(`usage: wmutil set-primary \\.\DISPLAYn`, 2)
	}

	ok, err := wmutil.SetPrimaryMonitor(c.Args().First())
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit("the OS rejected the new display configuration", 1)
	}
	return nil
}

func runCapture(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(`usage: wmutil capture \\.\DISPLAYn`, 2)
	}
	device := c.Args().First()

	monitors, err := wmutil.EnumerateMonitors()
	if err != nil {
		return err
	}
	for _, m := range monitors {
		if m.DeviceName != device {
			continue
		}
		img, err := m.Capture()
		if err != nil {
			return err
		}
		f, err := os.Create(c.String("out"))
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	}
	return fmt.Errorf("%w: %s", wmutil.ErrMonitorNotFound, device)
}

func printMonitor(m wmutil.Monitor) {
	primary := ""
	if m.Primary {
		primary = "  [primary]"
	}
	sz := m.Size()
	fmt.Printf("%-14s %dx%d at (%d, %d)  scale %.2f", m.DeviceName, sz.Width, sz.Height, m.Bounds.Left, m.Bounds.Top, m.ScaleFactor)
	if rate, ok := m.RefreshRateMillihertz(); ok {
		fmt.Printf("  %.3f Hz", float64(rate)/1000)
	}
	fmt.Println(primary)
}
