package system

import "github.com/milk9111/platformer/component"

// StaminaDrain spends stamina on every jump and refills some on landing.
type StaminaDrain struct {
	Stamina        *component.Stamina
	JumpCost       float64
	DoubleJumpCost float64
	LandingRestore float64
}

// Attach subscribes the drain to events under name.
func (d *StaminaDrain) Attach(events *Events, name string) {
	if d == nil || events == nil {
		return
	}
	events.Subscribe(name, d.Handle)
}

func (d *StaminaDrain) Handle(evt Event) {
	if d == nil || d.Stamina == nil {
		return
	}
	switch evt.Kind {
	case EventJumped:
		d.Stamina.Spend(d.JumpCost)
	case EventDoubleJumped:
		d.Stamina.Spend(d.DoubleJumpCost)
	case EventGroundedChanged:
		if evt.Value {
			d.Stamina.Restore(d.LandingRestore)
		}
	}
}
