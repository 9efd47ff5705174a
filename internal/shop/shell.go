// Package shop is the interactive terminal storefront. Every command turns
// into cart actions; the shell itself keeps no state.
package shop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/auth"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/cart"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/notify"
)

const prompt = "> "

const helpText = `Commands:
  login <name>     sign in
  logout           sign out
  tab <category>   switch category
  search [text]    filter the current category (no text clears)
  menu             show the current category
  add <id>         add an item to the cart
  remove <id>      remove every entry of an item
  cart             show the cart
  order            place the order
  help             show this help
  quit             leave`

type Shell struct {
	store    *cart.Store
	catalog  *catalog.Catalog
	identity auth.Provider
	out      io.Writer
}

func New(cat *catalog.Catalog, submitter cart.Submitter, identity auth.Provider, out io.Writer) *Shell {
	initial := cart.State{ActiveTab: cat.DefaultCategory()}
	return &Shell{
		store:    cart.NewStore(initial, submitter, notify.NewWriterNotifier(out)),
		catalog:  cat,
		identity: identity,
		out:      out,
	}
}

// Store exposes the underlying state container.
func (s *Shell) Store() *cart.Store {
	return s.store
}

// Run reads commands from in until EOF, quit or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.printf("%s\n", cart.Render(s.store.State(), s.catalog).Welcome)
	s.renderMenu()

	scanner := bufio.NewScanner(in)
	for {
		s.printf("%s", prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if s.Exec(ctx, scanner.Text()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		s.printf("%s\n", helpText)
	case "login":
		s.login(ctx, arg)
	case "logout":
		if err := s.identity.SignOut(ctx); err != nil {
			s.printf("sign out failed: %v\n", err)
			return false
		}
		s.store.SignOut()
		s.printf("%s\n", cart.SignInPrompt)
	case "tab":
		if !s.catalog.HasCategory(arg) {
			s.printf("Unknown category %q. Categories: %s\n", arg, strings.Join(s.catalog.CategoryNames(), ", "))
			return false
		}
		s.store.Dispatch(cart.SetTab{Category: arg})
		s.renderMenu()
	case "search":
		s.store.Dispatch(cart.SetQuery{Query: arg})
		s.renderMenu()
	case "menu", "ls":
		s.renderMenu()
	case "add":
		s.add(arg)
	case "remove", "rm":
		id, err := strconv.Atoi(arg)
		if err != nil {
			s.printf("usage: remove <id>\n")
			return false
		}
		s.store.Remove(id)
	case "cart":
		s.renderCart()
	case "order":
		s.order(ctx)
	default:
		s.printf("unknown command %q, try help\n", cmd)
	}
	return false
}

func (s *Shell) login(ctx context.Context, name string) {
	session, err := s.identity.SignIn(ctx, name)
	if err != nil {
		s.printf("sign in failed: %v\n", err)
		return
	}
	st := s.store.SignIn(session)
	s.printf("%s\n", cart.Render(st, s.catalog).Welcome)
}

func (s *Shell) add(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		s.printf("usage: add <id>\n")
		return
	}
	if !cart.Render(s.store.State(), s.catalog).CanAdd {
		s.printf("%s\n", cart.SignInPrompt)
		return
	}
	item, ok := s.catalog.Lookup(id)
	if !ok {
		s.printf("no menu item with id %d\n", id)
		return
	}
	s.store.Add(item)
}

func (s *Shell) order(ctx context.Context) {
	v := cart.Render(s.store.State(), s.catalog)
	if v.CanAdd && !v.CanOrder {
		s.printf("%s\n", v.CartLine)
		return
	}
	conf, err := s.store.PlaceOrder(ctx)
	switch {
	case errors.Is(err, cart.ErrNotSignedIn), errors.Is(err, cart.ErrOrderFailed):
		return
	case err != nil:
		s.printf("%v\n", err)
		return
	}
	s.printf("Order %s at %s\n", conf.OrderID, conf.Timestamp)
	s.printf("%s\n", cart.Render(s.store.State(), s.catalog).StatusLine)
}

func (s *Shell) renderMenu() {
	v := cart.Render(s.store.State(), s.catalog)

	tabs := make([]string, len(v.Categories))
	for i, name := range v.Categories {
		if name == v.ActiveTab {
			name = "[" + name + "]"
		}
		tabs[i] = name
	}
	s.printf("%s\n", strings.Join(tabs, "  "))
	if v.Query != "" {
		s.printf("search: %q\n", v.Query)
	}
	if len(v.Items) == 0 {
		s.printf("No items found\n")
		return
	}
	s.table(v.Items)
}

func (s *Shell) renderCart() {
	v := cart.Render(s.store.State(), s.catalog)
	if len(v.Cart) > 0 {
		s.table(v.Cart)
	}
	s.printf("%s\n", v.CartLine)
	if v.StatusLine != "" {
		s.printf("%s\n", v.StatusLine)
	}
}

func (s *Shell) table(items []models.MenuItem) {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tRATING")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t₹%g\t★ %.1f\n", item.ID, item.Name, item.Price, item.Rating)
	}
	tw.Flush()
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
