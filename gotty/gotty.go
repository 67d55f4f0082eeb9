package gotty

// SerialDevice is an open serial character device. BasePort reports the I/O
// base address the driver assigned to the UART behind it.
type SerialDevice interface {
	BasePort() (uint32, error)
	Close() error
}

func OpenSerial(path string) (SerialDevice, error) {
	return openSerialInternal(path)
}
