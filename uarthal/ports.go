package uarthal

// ACROffset is the distance from a UART's base address to its Additional
// Control Register, the FPGA register selecting the electrical mode.
const ACROffset = 0x07

/* FPGA legacy UART ports found in the supported box PCs */
var uartPorts = [...]uint32{0x3f8, 0x2f8, 0x3e8, 0x2e8, 0x220}

// ValidatePort reports whether port is one of the known legacy UART base
// addresses. Exact match only, no range checks.
func ValidatePort(port uint32) bool {
	for _, p := range uartPorts {
		if p == port {
			return true
		}
	}
	return false
}

// PortList returns the known legacy UART base addresses.
func PortList() []uint32 {
	list := make([]uint32, len(uartPorts))
	copy(list, uartPorts[:])
	return list
}
