package uarthal

type Mode int

const (
	ModeRS232 Mode = 1
	ModeHDX   Mode = 2
	ModeFDX   Mode = 3
)

/* ACR bit patterns for the three electrical modes */
const (
	acrModeSE  byte = 0x01 /* single ended (RS232) */
	acrModeFDX byte = 0x05 /* differential, full duplex */
	acrModeHDX byte = 0x0f /* differential, half duplex, no echo */
)

func (m Mode) String() string {
	switch m {
	case ModeRS232:
		return "RS232"
	case ModeHDX:
		return "RS422/RS485 half duplex"
	case ModeFDX:
		return "RS422/RS485 full duplex"
	}
	return "invalid"
}

// SetMode writes the ACR pattern for the requested mode. The write is not
// verified by reading back.
func (h *HAL) SetMode(mode Mode) error {
	var value byte

	switch mode {
	case ModeRS232:
		value = acrModeSE
	case ModeHDX:
		value = acrModeHDX
	case ModeFDX:
		value = acrModeFDX
	default:
		return ErrorInvalidMode
	}

	h.log(1, "ACR@0x%03x <= 0x%02x", h.acrAddr(), value)

	return h.io.WriteByte(h.acrAddr(), value)
}

// ReadMode reads the ACR and classifies the low 4 bits. The checks run in
// the order SE, FDX, HDX: the patterns form a subset chain under bitwise OR
// (0x01 within 0x05 within 0x0f), so the most specific pattern must be
// tested first or it would be swallowed by a later one.
func (h *HAL) ReadMode() (Mode, error) {
	value, err := h.io.ReadByte(h.acrAddr())
	if err != nil {
		return 0, err
	}

	value &= 0x0f

	h.log(1, "ACR@0x%03x = 0x%02x", h.acrAddr(), value)

	switch {
	case value|acrModeSE == acrModeSE:
		return ModeRS232, nil
	case value|acrModeFDX == acrModeFDX:
		return ModeFDX, nil
	case value|acrModeHDX == acrModeHDX:
		return ModeHDX, nil
	}

	return 0, ErrorUnknownMode
}
