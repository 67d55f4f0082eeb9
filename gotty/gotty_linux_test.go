// +build linux,amd64

package gotty

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// The kernel writes the full serial_struct through TIOCGSERIAL, so the Go
// mirror must match the C layout byte for byte.
func TestSerialInfoLayout(t *testing.T) {
	var info serialInfo

	require.Equal(t, uintptr(72), unsafe.Sizeof(info))
	require.Equal(t, uintptr(8), unsafe.Offsetof(info.Port))
}
