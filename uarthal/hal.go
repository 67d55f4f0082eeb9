package uarthal

import (
	"fmt"

	"github.com/menlinux/uart-tools/goport"
)

// HAL drives the mode selection logic of one FPGA-controlled legacy UART.
// All register access goes through the supplied PortIO backend.
type HAL struct {
	io   goport.PortIO
	port uint32

	config HALConfig
}

type LogFunc func(level int, format string, param ...interface{})

type HALConfig struct {
	// Port is the UART I/O base address reported by the serial driver.
	Port uint32

	LogFunc LogFunc
}

func New(io goport.PortIO, config HALConfig) (*HAL, error) {
	if !ValidatePort(config.Port) {
		return nil, ErrorInvalidPort
	}

	h := &HAL{
		io:     io,
		port:   config.Port,
		config: config,
	}

	h.log(1, "Using UART at 0x%03x, ACR at 0x%03x", h.port, h.acrAddr())

	return h, nil
}

func (h *HAL) log(level int, format string, param ...interface{}) {
	if h.config.LogFunc != nil {
		h.config.LogFunc(level, format, param...)
	}
}

func (h *HAL) acrAddr() uint16 {
	return uint16(h.port) + ACROffset
}

func (h *HAL) String() string {
	return fmt.Sprintf("UART@0x%03x", h.port)
}
