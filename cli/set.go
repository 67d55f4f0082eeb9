package main

import (
	"fmt"

	"github.com/menlinux/uart-tools/uarthal"
)

type SetCmd struct {
	Device string
	Mode   int
}

func (s *SetCmd) Run(c *Context) error {
	mode := uarthal.Mode(s.Mode)

	if err := c.hal.SetMode(mode); err != nil {
		return err
	}

	fmt.Printf("Set %s to %s.\n", s.Device, mode)
	return nil
}
