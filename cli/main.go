package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/menlinux/uart-tools/goport"
	"github.com/menlinux/uart-tools/gotty"
	"github.com/menlinux/uart-tools/uarthal"
)

type Context struct {
	hal *uarthal.HAL
}

var CLI struct {
	Device   string `optional short:"d" help:"Serial device node, e.g. /dev/ttyS0."`
	Mode     int    `optional short:"m" help:"Set mode: 1=RS232, 2=RS422/RS485 half duplex, 3=RS422/RS485 full duplex."`
	Read     bool   `optional short:"r" help:"Read the current mode from the device."`
	Raw      bool   `optional short:"x" help:"Raw read output, mode number only."`
	Watch    bool   `optional short:"w" help:"Keep re-reading the mode, refreshing the screen."`
	List     bool   `optional short:"l" help:"List the supported legacy UART ports."`
	Port     int    `optional type:"hex" help:"I/O base address to use instead of querying the driver."`
	LogLevel int    `optional help:"Higher values give more output."`
	Version  bool   `optional help:"Print the tool version."`
}

func validateArgs() error {
	if CLI.Device == "" {
		return errors.New("a device must be given with -d")
	}
	if CLI.Raw && !CLI.Read {
		return errors.New("-x is only valid together with -r")
	}
	if CLI.Mode != 0 && CLI.Read {
		return errors.New("-m and -r cannot be combined")
	}
	if CLI.Mode == 0 && !CLI.Read {
		return errors.New("nothing to do, give -m or -r")
	}
	if CLI.Watch && !CLI.Read {
		return errors.New("-w is only valid together with -r")
	}
	if CLI.Watch && CLI.Raw {
		return errors.New("-w and -x cannot be combined")
	}
	return nil
}

func run() int {
	/* IO port privilege comes first, before anything is opened */
	pio, err := goport.OpenPort()
	if err != nil {
		fmt.Println("Cannot get access to IO Ports:", err)
		return 255
	}
	defer pio.Close()

	port := uint32(CLI.Port)
	if port == 0 {
		dev, err := gotty.OpenSerial(CLI.Device)
		if err != nil {
			fmt.Println("Cannot open tty port:", err)
			return 255
		}
		defer dev.Close()

		port, err = dev.BasePort()
		if err != nil {
			fmt.Println("Cannot read serial info from device:", err)
			return 255
		}
	}

	hal, err := uarthal.New(pio, uarthal.HALConfig{
		Port: port,

		LogFunc: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Printf("HAL(%d): %s\n", level, str)
		},
	})
	if err != nil {
		fmt.Println(err)
		return 255
	}

	c := &Context{hal: hal}

	var cmd interface{ Run(*Context) error }
	if CLI.Read {
		cmd = &ReadCmd{Device: CLI.Device, Raw: CLI.Raw, Watch: CLI.Watch}
	} else {
		cmd = &SetCmd{Device: CLI.Device, Mode: CLI.Mode}
	}

	if err := cmd.Run(c); err != nil {
		fmt.Println(err)
		return 255
	}
	return 0
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("uartmode"),
		kong.NamedMapper("hex", hexMapper{}))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if _, err := k.Parse(os.Args[1:]); err != nil {
		fmt.Println(err)
		usage()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("uartmode version %d\n", version)
		return
	}

	if CLI.List {
		listPorts()
		return
	}

	if err := validateArgs(); err != nil {
		fmt.Println(err)
		usage()
		os.Exit(255)
	}

	os.Exit(run())
}
