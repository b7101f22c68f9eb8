// Package terminal is the interactive front end: it shows the menu, reads raw
// lines, hands parsed values to a registration attempt and prints the outcome.
// It owns the input stream; nothing below it reads from it.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"contabanco/internal/account/models"
	"contabanco/internal/account/service"
	"contabanco/pkg/platform/sentinel"
)

const menu = `
[1] Register account
[2] Log in
[3] Exit
-> `

// Registrar starts registration attempts.
type Registrar interface {
	Begin(ctx context.Context) *service.Registration
}

// Shell runs the menu loop over one input and one output stream.
type Shell struct {
	in        *bufio.Reader
	out       io.Writer
	registrar Registrar
	logger    *slog.Logger
	currency  string
	prompts   map[models.Field]fieldPrompt
}

type Option func(*Shell)

func WithLogger(logger *slog.Logger) Option {
	return func(sh *Shell) {
		sh.logger = logger
	}
}

// WithCurrency sets the symbol shown next to balances.
func WithCurrency(symbol string) Option {
	return func(sh *Shell) {
		sh.currency = symbol
	}
}

func New(in io.Reader, out io.Writer, registrar Registrar, opts ...Option) *Shell {
	sh := &Shell{
		in:        bufio.NewReader(in),
		out:       out,
		registrar: registrar,
		logger:    slog.New(slog.DiscardHandler),
		currency:  "R$",
	}
	for _, opt := range opts {
		opt(sh)
	}
	sh.prompts = prompts(sh.currency)
	return sh
}

// Run shows the menu until the user exits or the input ends. Registration
// outcomes, good or bad, always lead back to the menu.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		line, err := sh.readLine(ctx, menu)
		if errors.Is(err, sentinel.ErrInputClosed) {
			sh.println("")
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "1":
			err = sh.register(ctx)
		case "2":
			sh.println("Log in is not available yet.")
		case "3":
			return nil
		default:
			sh.println("Invalid option.\nEnter only the number of the desired option.")
		}
		if errors.Is(err, sentinel.ErrInputClosed) {
			sh.println("")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) register(ctx context.Context) error {
	r := sh.registrar.Begin(ctx)

	for r.State() == service.StatePrompting {
		field := r.Current()
		p := sh.prompts[field]
		line, err := sh.readLine(ctx, p.label)
		if err != nil {
			return err
		}
		raw, err := p.parse(line)
		if err != nil {
			sh.println("Invalid input. " + p.hint)
			continue
		}
		res, err := r.Submit(ctx, field, raw)
		if err != nil {
			return fmt.Errorf("submit %s: %w", field, err)
		}
		if !res.Accepted {
			sh.println("Invalid input: " + res.Reason + ". Try again.")
		}
	}

	snap, err := r.Finalize(ctx)
	if service.IsConstructionInconsistency(err) {
		sh.logger.ErrorContext(ctx, "registration failed after field validation",
			"attempt_id", r.ID().String(), "error", err)
		sh.println("UNEXPECTED ERROR: the account could not be registered. Please try again.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("finalize: %w", err)
	}

	if err := writeReceipt(sh.out, snap, sh.currency); err != nil {
		return err
	}
	_, err = sh.readLine(ctx, "")
	return err
}

// readLine prints prompt and returns the next input line without its line
// ending. Lines have no length limit. A final line without a newline is still
// returned; ErrInputClosed follows it.
func (sh *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(sh.out, prompt)
	}
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", sentinel.ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *Shell) println(s string) {
	fmt.Fprintln(sh.out, s)
}
