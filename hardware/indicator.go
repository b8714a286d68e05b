package hardware

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spindle-cli/spindle/filesystem"
)

// gpioRoot is the sysfs GPIO mount point. A variable so tests can point it at a
// scratch directory.
var gpioRoot = "/sys/class/gpio"

// SysfsIndicator drives a status lamp through the kernel's sysfs GPIO interface.
type SysfsIndicator struct {
	pin int
}

// OpenSysfsIndicator exports the pin and configures it as an output, initially low.
func OpenSysfsIndicator(pin int) (*SysfsIndicator, error) {
	ind := &SysfsIndicator{pin: pin}

	// Re-exporting an already exported pin fails; treat that as already ours.
	if err := write(filepath.Join(gpioRoot, "export"), strconv.Itoa(pin)); err != nil {
		if exported, _ := filesystem.API().DirExists(ind.dir()); !exported {
			return nil, fmt.Errorf("export gpio pin %d: %w", pin, err)
		}
	}

	if err := write(filepath.Join(ind.dir(), "direction"), "out"); err != nil {
		return nil, fmt.Errorf("configure gpio pin %d: %w", pin, err)
	}

	if err := ind.Set(false); err != nil {
		return nil, err
	}
	return ind, nil
}

func (s *SysfsIndicator) dir() string {
	return filepath.Join(gpioRoot, fmt.Sprintf("gpio%d", s.pin))
}

// Set drives the lamp high while audio is sounding and low otherwise.
func (s *SysfsIndicator) Set(sounding bool) error {
	value := "0"
	if sounding {
		value = "1"
	}

	if err := write(filepath.Join(s.dir(), "value"), value); err != nil {
		return fmt.Errorf("set gpio pin %d: %w", s.pin, err)
	}
	return nil
}

// Close turns the lamp off and releases the pin.
func (s *SysfsIndicator) Close() error {
	_ = s.Set(false)
	return write(filepath.Join(gpioRoot, "unexport"), strconv.Itoa(s.pin))
}

func write(path, value string) error {
	return filesystem.API().WriteFile(path, []byte(value), 0644)
}
