// Package console runs the operator menu on top of a store.Store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	applog "storedesk/internal/log"
	"storedesk/internal/store"
	"storedesk/internal/validate"
)

type Console struct {
	st    *store.Store
	in    *bufio.Reader
	out   io.Writer
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

func New(st *store.Store, in io.Reader, out io.Writer) *Console {
	return &Console{st: st, in: bufio.NewReader(in), out: out, lines: make(chan readResult, 1)}
}

type action struct {
	key   string
	label string
	run   func(c *Console, ctx context.Context) error
}

// actions is the menu in display order; "0" is handled by Run.
var actions = []action{
	{"1", "Додати товар", (*Console).addProduct},
	{"2", "Додати клієнта", (*Console).addCustomer},
	{"3", "Створити замовлення", (*Console).createOrder},
	{"4", "Сумарний обсяг продажів", (*Console).totalSales},
	{"5", "Кількість замовлень на клієнта", (*Console).ordersPerCustomer},
	{"6", "Cередній чек замовлення", (*Console).averageOrderValue},
	{"7", "Найпопулярніша категорія", (*Console).mostPopularCategory},
	{"8", "Кількість товарів по категоріях", (*Console).productsPerCategory},
	{"9", "Збільшити ціни на смартфони на 10%", (*Console).raiseSmartphonePrices},
	{"10", "Зберегти зміни в базі", (*Console).commit},
}

// Run shows the menu until the operator picks 0 or input ends. Bad numeric
// input and storage failures end the session with an error.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()

		choice, err := c.readLine(ctx, "Виберіть опцію: ")
		if errors.Is(err, io.EOF) {
			applog.Info("session.eof", nil)
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			c.println("Вихід з програми.")
			return nil
		}
		a, ok := lookup(choice)
		if !ok {
			c.println("Невірний вибір. Спробуйте ще раз.")
			continue
		}
		if err := a.run(c, ctx); err != nil {
			applog.Error("menu.action", err, map[string]any{"choice": choice})
			return err
		}
	}
}

func lookup(choice string) (action, bool) {
	for _, a := range actions {
		if a.key == choice {
			return a, true
		}
	}
	return action{}, false
}

func (c *Console) printMenu() {
	c.println("\nМеню:")
	for _, a := range actions {
		c.println(a.key + ". " + a.label)
	}
	c.println("0. Вихід")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// readLine prints prompt and returns one line without its terminator.
// io.EOF is returned only when the input is exhausted before any text.
// A cancelled ctx abandons the pending read; the session ends with it.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	go func() {
		line, err := c.in.ReadString('\n')
		c.lines <- readResult{line: line, err: err}
	}()

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-c.lines:
	}
	if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
		return "", r.err
	}
	return validate.Line(r.line), nil
}

// ask is readLine inside an action, where running out of input is an error.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	s, err := c.readLine(ctx, prompt)
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
	}
	return s, err
}

func (c *Console) askInt(ctx context.Context, prompt string) (int64, error) {
	s, err := c.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return validate.Int(s)
}

func (c *Console) askFloat(ctx context.Context, prompt string) (float64, error) {
	s, err := c.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return validate.Float(s)
}
