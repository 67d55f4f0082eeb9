package goport

// PortIO provides byte-granular access to legacy I/O port space. Addresses
// are absolute port numbers, not offsets.
type PortIO interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, value byte) error
	Close() error
}

func OpenPort() (PortIO, error) {
	return openPortInternal()
}
