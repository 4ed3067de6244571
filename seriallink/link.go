package seriallink

import (
	"errors"
	"fmt"
	"io"

	"github.com/jacobsa/go-serial/serial"

	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

var (
	// ErrDeviceUnavailable is returned when the serial device cannot be
	// opened or configured.
	ErrDeviceUnavailable = errors.New("serial device unavailable")
	// ErrIOFailure wraps read errors on an open device.
	ErrIOFailure = errors.New("serial read failed")
)

// Link is an open serial line delivering angle samples.
type Link struct {
	name   string
	port   io.ReadWriteCloser
	buf    []byte
	parser *Parser
}

// Open configures the device for raw 8N1 at opts.Baud without flow control.
// Reads block until at least one byte is available.
func Open(opts options.SerialOptions) (*Link, error) {
	if err := checkDevice(opts.Device); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	port, err := serial.Open(serial.OpenOptions{
		PortName:              opts.Device,
		BaudRate:              uint(opts.Baud),
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		MinimumReadSize:       1,
		InterCharacterTimeout: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDeviceUnavailable, opts.Device, err)
	}
	return New(port, opts), nil
}

// New wraps an already open stream.
func New(port io.ReadWriteCloser, opts options.SerialOptions) *Link {
	size := opts.ReadBuffer
	if size <= 0 {
		size = 256
	}
	return &Link{
		name:   opts.Device,
		port:   port,
		buf:    make([]byte, size),
		parser: NewParser(opts.ReassembleLines, size),
	}
}

func (l *Link) Name() string {
	return l.name
}

// ReadSample performs one blocking read and overwrites *s with the sample it
// carries. It reports false, leaving *s untouched, when the read returned no
// bytes or no complete sample.
func (l *Link) ReadSample(s *orientation.Sample) (bool, error) {
	n, err := l.port.Read(l.buf)
	updated := false
	if n > 0 {
		if sample, ok := l.parser.Feed(l.buf[:n]); ok {
			*s = sample
			updated = true
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return updated, fmt.Errorf("%w: %s: %v", ErrIOFailure, l.name, err)
	}
	return updated, nil
}

func (l *Link) Close() error {
	return l.port.Close()
}
