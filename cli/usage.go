package main

import (
	"fmt"

	"github.com/fatih/color"
)

const version = 1

func usage() {
	heading := color.New(color.FgHiBlue)

	heading.Println("========================================================")
	heading.Println("uartmode: switch between UART modes")
	fmt.Println()
	fmt.Println("- for legacy UART interfaces in box PCs, FPGA-controlled")
	fmt.Println()
	fmt.Printf("Version: %d\n", version)
	heading.Println("========================================================")
	fmt.Println()
	fmt.Println("Usage: uartmode -d <device> [-m <mode>] [-r] [-x]")
	fmt.Println("      -d <device> : tty device, e.g., /dev/ttyS0")
	fmt.Println("      -m <mode>   : Set one of the following modes")
	fmt.Println("            <1> - RS232")
	fmt.Println("            <2> - RS422/RS485 half duplex")
	fmt.Println("            <3> - RS422/RS485 full duplex")
	fmt.Println()
	fmt.Println("      -r  : Read current settings from device")
	fmt.Println("      -x  : Read in raw format (return mode number only)")
	fmt.Println("      -w  : Keep reading, refresh the screen on changes")
	fmt.Println("      -l  : List the supported legacy UART ports")
	fmt.Println()
	fmt.Println("      --port <hex>    : Override the I/O base address")
	fmt.Println("      --log-level <n> : Higher values give more output")
	heading.Println("========================================================")
	fmt.Println()
}
