package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zstore/storefront/internal/cart"
	"github.com/zstore/storefront/internal/config"
	"github.com/zstore/storefront/internal/discount"
	"github.com/zstore/storefront/internal/events"
	"github.com/zstore/storefront/internal/inventory"
	"github.com/zstore/storefront/internal/obs"
	"github.com/zstore/storefront/internal/pricing"
	"github.com/zstore/storefront/internal/receipt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)

	catalog, err := discount.Load(cfg.DiscountsPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("load discount catalog")
	}

	inv := inventory.SeedDefault()
	logger.Info().Int("products", len(inv.AllProducts())).Msg("inventory seeded")

	bus := &events.Bus{Notifiers: []events.Notifier{obs.MetricsNotifier()}}

	store := &storefront{
		cfg:     cfg,
		logger:  logger,
		inv:     inv,
		cart:    cart.New(pricing.NewEngine(), catalog, inv),
		builder: receipt.NewBuilder(cfg.StoreName),
		bus:     bus,
		out:     os.Stdout,
	}
	store.run(bufio.NewScanner(os.Stdin))
}

type storefront struct {
	cfg     *config.Config
	logger  zerolog.Logger
	inv     *inventory.Inventory
	cart    *cart.Cart
	builder *receipt.Builder
	bus     *events.Bus
	out     *os.File
}

func (s *storefront) run(in *bufio.Scanner) {
	fmt.Fprintf(s.out, "Welcome to %s\n", s.cfg.StoreName)
	s.help()
	for {
		fmt.Fprint(s.out, "> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "list":
			s.list(fields[1:])
		case "add":
			s.add(fields[1:])
		case "option":
			s.option(fields[1:])
		case "remove":
			s.remove(fields[1:])
		case "code":
			s.applyCode(fields[1:])
		case "clearcodes":
			s.cart.ClearDiscounts()
			fmt.Fprintln(s.out, "discounts cleared")
		case "cart":
			s.showCart()
		case "checkout":
			s.checkout()
		case "clear":
			s.cart.Clear()
			fmt.Fprintln(s.out, "cart cleared")
		case "help":
			s.help()
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(s.out, "unknown command %q (try 'help')\n", fields[0])
		}
	}
}

func (s *storefront) help() {
	fmt.Fprint(s.out, `commands:
  list [category]          show products
  option <upc> <cat> <val> select a product option
  add <upc> [qty]          add a product to the cart
  remove <upc>             remove a product from the cart
  code <promo>             apply a promo code
  clearcodes               remove all discounts
  cart                     show cart totals
  checkout                 print and save the receipt
  clear                    empty the cart
  quit
`)
}

func (s *storefront) list(args []string) {
	products := s.inv.AllProducts()
	if len(args) > 0 {
		products = s.inv.ProductsByCategory(args[0])
	}
	engine := pricing.NewEngine()
	for _, p := range products {
		fmt.Fprintf(s.out, "[%s] %-22s %-12s %8s  stock %d\n",
			p.UPC, p.Name, p.Category, pricing.FormatUSD(engine.MarkedUpPrice(p.BasePrice)), p.Stock)
	}
}

func (s *storefront) option(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "usage: option <upc> <category> <value>")
		return
	}
	p, err := s.inv.ProductByUPC(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	p.SetSelectedOption(args[1], strings.Join(args[2:], " "))
	fmt.Fprintf(s.out, "%s: %s\n", p.Name, p.SelectedOptionsLabel())
}

func (s *storefront) add(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: add <upc> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(s.out, "quantity must be a number")
			return
		}
		qty = n
	}
	if err := s.cart.AddProduct(args[0], qty); err != nil {
		s.logger.Warn().Err(err).Str("upc", args[0]).Int("qty", qty).Msg("add to cart")
		fmt.Fprintln(s.out, err)
		return
	}
	_, _ = s.bus.Emit(context.Background(), events.TopicItemAdded, map[string]any{"upc": args[0], "qty": qty})
	fmt.Fprintf(s.out, "added %d x %s (%d items in cart)\n", qty, args[0], s.cart.ItemCount())
}

func (s *storefront) remove(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: remove <upc>")
		return
	}
	s.cart.RemoveProduct(args[0])
	_, _ = s.bus.Emit(context.Background(), events.TopicItemRemoved, map[string]any{"upc": args[0]})
	fmt.Fprintf(s.out, "removed %s\n", args[0])
}

func (s *storefront) applyCode(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "usage: code <promo>")
		return
	}
	if err := s.cart.ApplyDiscountCode(args[0]); err != nil {
		s.logger.Warn().Err(err).Str("code", args[0]).Msg("apply discount code")
		fmt.Fprintln(s.out, "invalid or expired promo code")
		return
	}
	_, _ = s.bus.Emit(context.Background(), events.TopicDiscountApplied, map[string]any{"code": args[0]})
	fmt.Fprintf(s.out, "applied %s\n", args[0])
}

func (s *storefront) showCart() {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "cart is empty")
		return
	}
	for _, l := range lines {
		label := l.OptionsLabel
		if label == "" {
			label = "standard"
		}
		fmt.Fprintf(s.out, "%s (%s) x %d: %s\n", l.Name, label, l.Quantity, pricing.FormatUSD(l.DiscountedSubtotal()))
	}
	codes := "None"
	if applied := s.cart.AppliedCodes(); len(applied) > 0 {
		codes = strings.Join(applied, ", ")
	}
	fmt.Fprintf(s.out, "Discounts Applied: %s\n", codes)
	fmt.Fprintf(s.out, "Subtotal: %s\n", pricing.FormatUSD(s.cart.Subtotal()))
	fmt.Fprintf(s.out, "Tax: %s\n", pricing.FormatUSD(s.cart.TotalTax()))
	fmt.Fprintf(s.out, "Total Discount: %s\n", pricing.FormatUSD(s.cart.TotalDiscountAmount()))
	fmt.Fprintf(s.out, "Total: %s\n", pricing.FormatUSD(s.cart.TotalAfterDiscounts()))
}

func (s *storefront) checkout() {
	if s.cart.ItemCount() == 0 {
		fmt.Fprintln(s.out, "cart is empty")
		return
	}
	tx := s.builder.Checkout(s.cart)
	fmt.Fprint(s.out, s.builder.Render(tx))

	path, err := s.builder.Save(tx, s.cfg.ReceiptsDir)
	if err != nil {
		s.logger.Error().Err(err).Msg("save receipt")
	} else {
		fmt.Fprintf(s.out, "receipt saved to %s\n", path)
	}
	_, _ = s.bus.Emit(context.Background(), events.TopicCheckout, map[string]any{
		"transaction_id": tx.ID,
		"total":          tx.Total,
	})
	s.logger.Info().Str("transaction_id", tx.ID).Float64("total", tx.Total).Msg("checkout completed")

	s.cart.Clear()
	s.cart.ClearDiscounts()
}
