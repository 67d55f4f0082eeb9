package uarthal

import "errors"

var (
	ErrorInvalidPort = errors.New("Port is not a valid UART port")
	ErrorInvalidMode = errors.New("Unknown Mode")
	ErrorUnknownMode = errors.New("Unknown mode")
)
