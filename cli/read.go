package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"
	"github.com/menlinux/uart-tools/uarthal"
)

type ReadCmd struct {
	Device string
	Raw    bool
	Watch  bool
}

func (r *ReadCmd) Run(c *Context) error {
	if r.Watch {
		return r.watch(c)
	}

	mode, err := c.hal.ReadMode()
	if err == uarthal.ErrorUnknownMode {
		fmt.Printf("Device: %s, Unknown mode\n", r.Device)
		return nil
	}
	if err != nil {
		return err
	}

	if r.Raw {
		fmt.Printf("%d\n", int(mode))
	} else {
		fmt.Printf("Device: %s, Mode(%d): %s\n", r.Device, int(mode), mode)
	}
	return nil
}

// watch re-reads the mode every 200ms until interrupted, marking a change
// since the previous iteration in red.
func (r *ReadCmd) watch(c *Context) error {
	red := color.New(color.FgRed)

	var last uarthal.Mode
	first := true
	for {
		startTime := time.Now()

		mode, err := c.hal.ReadMode()
		if err != nil && err != uarthal.ErrorUnknownMode {
			return err
		}

		screen.Clear()
		screen.MoveTopLeft()

		if err == uarthal.ErrorUnknownMode {
			fmt.Printf("Device: %s, Unknown mode\n", r.Device)
			mode = 0
		} else if !first && mode != last {
			red.Printf("Device: %s, Mode(%d): %s\n", r.Device, int(mode), mode)
		} else {
			fmt.Printf("Device: %s, Mode(%d): %s\n", r.Device, int(mode), mode)
		}

		last = mode
		first = false

		d := time.Now().Sub(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}
}
