// ABOUTME: dialog is the overlay base: a Control with a lifecycle, a host and one mounted layer
// ABOUTME: The layer is mounted on first show and unmounted exactly once by Dispose

package widget

import (
	"errors"
	"fmt"

	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/lifecycle"
)

// Lifecycle events, re-exported for widget users.
const (
	EventShowing = lifecycle.EventShowing
	EventShown   = lifecycle.EventShown
	EventHiding  = lifecycle.EventHiding
	EventHidden  = lifecycle.EventHidden
)

// ErrDisposed is returned when a disposed widget is asked to mount again.
var ErrDisposed = errors.New("widget: disposed")

type dialog struct {
	*Control

	host     host.Host
	layer    *host.Layer
	life     *lifecycle.Controller
	mounted  bool
	disposed bool

	// set by the concrete widget
	apply  func()
	remove func()
}

func newDialog(h host.Host, component, layerID string, opts ...lifecycle.Option) *dialog {
	d := &dialog{
		Control: newControl(component),
		host:    h,
		layer:   host.NewLayer(layerID, nil),
	}
	opts = append([]lifecycle.Option{lifecycle.WithScheduler(h)}, opts...)
	d.life = lifecycle.New(d.em, lifecycle.Hooks{
		Init:   d.mount,
		Apply:  func() { d.apply() },
		Remove: func() { d.remove() },
	}, opts...)
	return d
}

func (d *dialog) mount() error {
	if d.disposed {
		return fmt.Errorf("mount %s: %w", d.layer.ID(), ErrDisposed)
	}
	if d.mounted {
		return nil
	}
	if err := d.host.Mount(d.layer); err != nil {
		return fmt.Errorf("mount %s: %w", d.layer.ID(), err)
	}
	d.mounted = true
	return nil
}

// Show requests the showing transition. It reports false after Dispose.
func (d *dialog) Show() bool {
	if d.disposed {
		return false
	}
	return d.life.RequestShow()
}

// Hide requests the hiding transition.
func (d *dialog) Hide() bool {
	if d.disposed {
		return false
	}
	return d.life.RequestHide()
}

// IsShown reports whether the widget is on screen.
func (d *dialog) IsShown() bool { return d.life.IsShown() }

// State returns the lifecycle state.
func (d *dialog) State() lifecycle.State { return d.life.State() }

// Layer returns the widget's overlay layer.
func (d *dialog) Layer() *host.Layer { return d.layer }

// Disposed reports whether Dispose has run.
func (d *dialog) Disposed() bool { return d.disposed }

// Dispose hides the widget without asking listeners, unmounts its layer
// and forgets initialization. Later calls do nothing.
func (d *dialog) Dispose() error {
	if d.disposed {
		return nil
	}
	d.disposed = true
	d.life.ForceHide()
	d.life.Reset()
	if !d.mounted {
		return nil
	}
	d.mounted = false
	if err := d.host.Unmount(d.layer); err != nil {
		return fmt.Errorf("dispose %s: %w", d.layer.ID(), err)
	}
	return nil
}
