package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrAborted is returned when input ends before the user chose to exit.
var ErrAborted = errors.New("input closed before exit")

// prompter reads one answer per line. Every numeric prompt re-asks until
// the answer is in range; only the end of input stops it.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "  %s: ", label)
	s, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if s == "" {
			return "", ErrAborted
		}
	}
	return strings.TrimSpace(s), nil
}

func (p *prompter) warn(msg string) {
	fmt.Fprint(p.out, tui.RenderError(errors.New(msg)))
}

// text asks until the answer is not blank.
func (p *prompter) text(label string) (string, error) {
	return p.valid(label, func(s string) error {
		if s == "" {
			return &domain.ValidationError{Field: strings.ToLower(label), Reason: "must not be empty"}
		}
		return nil
	})
}

// valid asks until check accepts the answer. Errors that a new answer
// cannot fix are returned.
func (p *prompter) valid(label string, check func(string) error) (string, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return "", err
		}
		err = check(s)
		if err == nil {
			return s, nil
		}
		if !domain.Recoverable(err) {
			return "", err
		}
		p.warn(err.Error())
	}
}

// number asks for an integer in [lo, hi].
func (p *prompter) number(label string, lo, hi int) (int, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		if hi == math.MaxInt {
			p.warn(fmt.Sprintf("enter a whole number of at least %d", lo))
		} else {
			p.warn(fmt.Sprintf("enter a number between %d and %d", lo, hi))
		}
	}
}

// choose shows options numbered from 1 and returns the 0-based index picked.
func (p *prompter) choose(title string, options []string) (int, error) {
	fmt.Fprint(p.out, tui.RenderMenu(title, options))
	n, err := p.number("Option", 1, len(options))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// amount asks for a non-negative decimal.
func (p *prompter) amount(label string) (decimal.Decimal, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := domain.ParseAmount(s)
		if err == nil && !d.IsNegative() {
			return d, nil
		}
		p.warn("enter a non-negative amount, e.g. 12.50")
	}
}

// day asks for a YYYY-MM-DD date.
func (p *prompter) day(label string) (time.Time, error) {
	for {
		s, err := p.line(label + " (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, err
		}
		t, err := domain.ParseDay(s)
		if err == nil {
			return t, nil
		}
		p.warn(err.Error())
	}
}

// confirm asks a yes/no question.
func (p *prompter) confirm(label string) (bool, error) {
	for {
		s, err := p.line(label + " (y/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes", "s", "si", "sí":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.warn("answer y or n")
	}
}
