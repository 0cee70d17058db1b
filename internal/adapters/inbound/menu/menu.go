// Package menu drives an interactive session through numbered menus.
package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/partsdesk/partsdesk/internal/domain"
)

// Menu is the interactive surface over one session.
type Menu struct {
	sess *application.Session
	p    *prompter
	out  io.Writer
}

func New(sess *application.Session, in io.Reader, out io.Writer) *Menu {
	return &Menu{sess: sess, p: newPrompter(in, out), out: out}
}

type entry struct {
	label string
	run   func() error
}

// Run shows the main menu until the user picks exit-and-save, returning
// nil, or input ends, returning ErrAborted.
func (m *Menu) Run() error {
	return m.loop("Main menu", "Exit and save", []entry{
		{"Products", m.products},
		{"Sales", m.sales},
		{"Customers", m.customers},
		{"Payments", m.payments},
		{"Shipments", m.shipments},
		{"Statistics", m.statistics},
	})
}

// loop repeats a menu until its last option is picked. A failed action is
// reported and the menu shown again; only ErrAborted leaves the loop.
func (m *Menu) loop(title, back string, entries []entry) error {
	options := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		options = append(options, e.label)
	}
	options = append(options, back)

	for {
		i, err := m.p.choose(title, options)
		if err != nil {
			return err
		}
		if i == len(entries) {
			return nil
		}
		if err := entries[i].run(); err != nil {
			if errors.Is(err, ErrAborted) {
				return err
			}
			m.fail(err)
		}
	}
}

// attempt runs op until it succeeds or fails for a reason a new answer
// cannot fix.
func (m *Menu) attempt(op func() error) error {
	for {
		err := op()
		if err == nil || !domain.Recoverable(err) {
			return err
		}
		m.fail(err)
	}
}

func (m *Menu) fail(err error) {
	fmt.Fprint(m.out, tui.RenderError(err))
}

func (m *Menu) ok(format string, args ...any) {
	fmt.Fprint(m.out, tui.RenderSuccess(fmt.Sprintf(format, args...)))
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) statistics() error {
	m.print(tui.RenderStatistics(m.sess.Stats.Compute()))
	return nil
}
