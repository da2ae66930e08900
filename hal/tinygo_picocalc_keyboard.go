//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdFIFO byte   = 0x09
)

// Raw event types in the keyboard MCU's FIFO.
const (
	picoCalcPress   byte = 0x01
	picoCalcRelease byte = 0x03
)

var picoCalcSpecial = map[byte]KeyCode{
	0x08: KeyBackspace,
	0xB1: KeyEscape,
	0xB4: KeyLeft,
	0xB5: KeyUp,
	0xB6: KeyDown,
	0xB7: KeyRight,
	'\r': KeyEnter,
	'\n': KeyEnter,
}

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	// Prefer I2C1 (PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		err := bus.Configure(machine.I2CConfig{
			SCL:       machine.GP7,
			SDA:       machine.GP6,
			Frequency: 100_000,
		})
		if err != nil {
			continue
		}

		k := &i2cKeyboard{i2c: bus, write: [1]byte{picoCalcKbdFIFO}}
		// The keyboard MCU can be slow to answer right after power-up.
		for i := 0; i < 50; i++ {
			if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
				return k, nil
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
	return nil, errors.New("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	kind, key := k.read[0], k.read[1]
	if key == 0 || (kind != picoCalcPress && kind != picoCalcRelease) {
		return KeyEvent{}, false
	}
	press := kind == picoCalcPress

	if code, ok := picoCalcSpecial[key]; ok {
		return KeyEvent{Code: code, Press: press}, true
	}
	if key < 0x20 || key >= 0x7F {
		// Modifiers and function keys.
		return KeyEvent{}, false
	}
	return KeyEvent{Press: press, Rune: rune(key)}, true
}
