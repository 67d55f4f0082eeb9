// +build linux

package gotty

import (
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

type ttyRaw struct {
	dev *os.File
}

func openSerialInternal(path string) (SerialDevice, error) {
	dev, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &ttyRaw{
		dev: dev,
	}, nil
}

/* Layout of struct serial_struct from <linux/serial.h>. The ioctl fills the
 * whole struct, so all fields are declared even though only Port is used. */
type serialInfo struct {
	Type          int32
	Line          int32
	Port          uint32
	Irq           int32
	Flags         int32
	XmitFifoSize  int32
	CustomDivisor int32
	BaudBase      int32
	CloseDelay    uint16
	IOType        int8
	ReservedChar  [1]int8
	Hub6          int32
	ClosingWait   uint16
	ClosingWait2  uint16
	IomemBase     uintptr
	IomemRegShift uint16
	PortHigh      uint32
	IomapBase     uint64
}

func (t *ttyRaw) BasePort() (uint32, error) {
	var info serialInfo

	_, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(t.dev.Fd()),
		uintptr(unix.TIOCGSERIAL),
		uintptr(unsafe.Pointer(&info)),
	)

	runtime.KeepAlive(t.dev)

	if errno != 0 {
		return 0, os.NewSyscallError("TIOCGSERIAL", errno)
	}

	return info.Port, nil
}

func (t *ttyRaw) Close() error {
	return t.dev.Close()
}
