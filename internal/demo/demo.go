package demo

import (
	"github.com/zeebo/bitfield/field"
	"github.com/zeebo/bitfield/register"
	"github.com/zeebo/errs"
)

// Device drives the peripheral over a register bus. Every method goes to the
// bus, nothing is cached between calls.
type Device struct {
	bus register.Bus[uint32]
}

// New returns a Device on bus.
func New(bus register.Bus[uint32]) *Device {
	return &Device{bus: bus}
}

// Configure enables the peripheral with the given mode and clock divisor in
// a single store.
func (d *Device) Configure(mode Mode, divisor uint16) error {
	return register.Update(d.bus, CtrlRegister{}, func(c *Ctrl) {
		field.Apply(c,
			field.Set(CtrlEnable{}, true),
			field.Set(CtrlMode{}, mode),
			field.Set(CtrlDivisor{}, divisor),
		)
	})
}

// Disable clears the enable bit, leaving the rest of the configuration.
func (d *Device) Disable() error {
	return register.Update(d.bus, CtrlRegister{}, func(c *Ctrl) {
		c.SetEnable(false)
	})
}

// Ctrl loads the control register.
func (d *Device) Ctrl() (Ctrl, error) {
	return register.Cache[uint32, Ctrl](d.bus, CtrlRegister{})
}

// Status loads the status register.
func (d *Device) Status() (Status, error) {
	return register.Cache[uint32, Status](d.bus, StatusRegister{})
}

// Mode returns the configured mode. It fails if the register holds the
// reserved encoding instead of panicking the way Ctrl.Mode does.
func (d *Device) Mode() (Mode, error) {
	c, err := d.Ctrl()
	if err != nil {
		return 0, err
	}
	return field.TryRead[Ctrl, Mode](&c, CtrlMode{})
}

// Ready reports whether the peripheral is enabled, ready and free of errors.
func (d *Device) Ready() (bool, error) {
	c, err := d.Ctrl()
	if err != nil {
		return false, err
	}
	s, err := d.Status()
	if err != nil {
		return false, err
	}

	var enabled, ready, overrun bool
	field.Output(field.Output(&c, CtrlEnable{}, &enabled), CtrlReady{}, &ready)
	field.Output(&s, StatusOverrun{}, &overrun)

	if overrun || s.Errors() != 0 {
		return false, errs.New("device faulted: overrun=%v errors=%d", overrun, s.Errors())
	}
	return enabled && ready, nil
}
