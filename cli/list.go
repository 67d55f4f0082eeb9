package main

import (
	"fmt"

	"github.com/menlinux/uart-tools/uarthal"
)

func listPorts() {
	fmt.Printf("Port  | ACR\n")
	for _, p := range uarthal.PortList() {
		fmt.Printf("0x%03x | 0x%03x\n", p, p+uarthal.ACROffset)
	}
}
