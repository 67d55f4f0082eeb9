// +build linux,386 linux,amd64

package goport

import (
	"os"

	"golang.org/x/sys/unix"
)

type portRaw struct {
	dev *os.File
}

func openPortInternal() (PortIO, error) {
	/* iopl(3) is the gate the FPGA tooling has always used: it fails for
	 * non-root callers before any register can be touched */
	if err := unix.Iopl(3); err != nil {
		return nil, os.NewSyscallError("iopl", err)
	}

	dev, err := os.OpenFile("/dev/port", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &portRaw{
		dev: dev,
	}, nil
}

func (p *portRaw) ReadByte(addr uint16) (byte, error) {
	var buf [1]byte
	if _, err := p.dev.ReadAt(buf[:], int64(addr)); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (p *portRaw) WriteByte(addr uint16, value byte) error {
	buf := [1]byte{value}
	_, err := p.dev.WriteAt(buf[:], int64(addr))
	return err
}

func (p *portRaw) Close() error {
	return p.dev.Close()
}
