//go:build !linux

package seriallink

// checkDevice is left to serial.Open on platforms without a stat check.
func checkDevice(path string) error {
	return nil
}
