package uarthal_test

import (
	"testing"

	"github.com/menlinux/uart-tools/uarthal"
	"github.com/stretchr/testify/require"
)

func TestValidatePortAcceptsKnownPorts(t *testing.T) {
	for _, port := range []uint32{0x3f8, 0x2f8, 0x3e8, 0x2e8, 0x220} {
		require.True(t, uarthal.ValidatePort(port), "port 0x%03x", port)
	}
}

func TestValidatePortRejectsUnknownPorts(t *testing.T) {
	for _, port := range []uint32{0, 0x3f7, 0x3f9, 0x221, 0x2e9, 0x1000, 0xffffffff} {
		require.False(t, uarthal.ValidatePort(port), "port 0x%03x", port)
	}
}

func TestPortListIsACopy(t *testing.T) {
	list := uarthal.PortList()
	require.Len(t, list, 5)

	list[0] = 0xdead
	require.Equal(t, uint32(0x3f8), uarthal.PortList()[0])
	require.True(t, uarthal.ValidatePort(0x3f8))
}
