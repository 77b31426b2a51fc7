package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"czone-store/internal/logger"
	"czone-store/internal/storefront"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const clearSequence = "\033[H\033[2J"

// Shell is the interactive menu front end. It owns the terminal; the
// storefront owns the state.
type Shell struct {
	store  *storefront.Store
	in     *bufio.Scanner
	out    io.Writer
	clear  bool
	pause  bool
	colors palette
}

type Option func(*Shell)

// WithClearScreen toggles clearing the terminal before each menu.
func WithClearScreen(on bool) Option {
	return func(s *Shell) { s.clear = on }
}

// WithPause toggles the "Press Enter to continue..." stop after each action.
func WithPause(on bool) Option {
	return func(s *Shell) { s.pause = on }
}

func WithColor(on bool) Option {
	return func(s *Shell) { s.colors = newPalette(on) }
}

func New(store *storefront.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		clear:  true,
		pause:  true,
		colors: newPalette(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the main menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	err := s.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		logger.FromCtx(ctx).Info("input closed, leaving shell")
		return nil
	}
	return err
}

// readLine returns io.EOF once input is exhausted.
func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.readLine()
}

// askInt re-prompts until the answer parses as an integer.
func (s *Shell) askInt(prompt, invalid string) (int, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		s.fail(invalid)
	}
}

// askOptionalInt returns nil for a blank answer.
func (s *Shell) askOptionalInt(prompt, invalid string) (*int, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil {
			return &n, nil
		}
		s.fail(invalid)
	}
}

func (s *Shell) askDecimal(prompt, invalid string) (decimal.Decimal, error) {
	for {
		d, err := s.askOptionalDecimal(prompt, invalid)
		if err != nil {
			return decimal.Zero, err
		}
		if d != nil {
			return *d, nil
		}
		s.fail(invalid)
	}
}

func (s *Shell) askOptionalDecimal(prompt, invalid string) (*decimal.Decimal, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}
		if d, convErr := decimal.NewFromString(line); convErr == nil {
			return &d, nil
		}
		s.fail(invalid)
	}
}

// askYesNo loops until the answer is yes or no.
func (s *Shell) askYesNo(prompt string) (bool, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		s.fail("Invalid input. Please enter 'yes' or 'no'.")
	}
}

func (s *Shell) waitForEnter() error {
	if !s.pause {
		return nil
	}
	_, err := s.ask("Press Enter to continue...")
	return err
}

func (s *Shell) clearScreen() {
	if s.clear {
		fmt.Fprint(s.out, clearSequence)
	}
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) fail(msg string) {
	fmt.Fprintln(s.out, s.colors.failure.Sprint(msg))
}

// show prints a view result as is, or its failure in red.
func (s *Shell) show(res storefront.Result) {
	if res.OK() {
		s.println(res.Message)
		return
	}
	s.fail(res.Message)
}

// report prints an action result colored by status.
func (s *Shell) report(ctx context.Context, res storefront.Result) {
	switch res.Status {
	case storefront.StatusOK:
		fmt.Fprintln(s.out, s.colors.success.Sprint(res.Message))
	case storefront.StatusNotice:
		fmt.Fprintln(s.out, s.colors.notice.Sprint(res.Message))
	default:
		logger.FromCtx(ctx).Debug("action rejected",
			zap.String("status", string(res.Status)),
			zap.String("message", res.Message),
		)
		s.fail(res.Message)
	}
}

type palette struct {
	title    *color.Color
	main     *color.Color
	customer *color.Color
	admin    *color.Color
	success  *color.Color
	notice   *color.Color
	failure  *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		title:    color.New(color.FgBlue),
		main:     color.New(color.FgCyan),
		customer: color.New(color.FgYellow),
		admin:    color.New(color.FgMagenta),
		success:  color.New(color.FgGreen),
		notice:   color.New(color.FgYellow),
		failure:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.title, p.main, p.customer, p.admin, p.success, p.notice, p.failure} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
