package clicker

import (
	"github.com/go-vgo/robotgo"

	"github.com/penwyp/autotap/models"
)

// Injector issues one simulated press of the given mouse button at the
// current pointer position
type Injector interface {
	Click(button models.MouseButton) error
}

// RobotgoInjector injects clicks through the OS input layer via robotgo
type RobotgoInjector struct{}

// NewRobotgoInjector creates the production injector
func NewRobotgoInjector() *RobotgoInjector {
	return &RobotgoInjector{}
}

// Click presses and releases the button once
func (i *RobotgoInjector) Click(button models.MouseButton) error {
	robotgo.Click(button.InjectorName(), false)
	return nil
}
