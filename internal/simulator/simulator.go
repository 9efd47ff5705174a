// Package simulator drives fake students through the storefront against a
// running order endpoint and records every confirmation.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/auth"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/cart"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/factories"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/notify"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

// favouriteBias is how often a student browses their favourite tab.
const favouriteBias = 0.7

type Simulator struct {
	Config    models.SimulateConfig
	Catalog   *catalog.Catalog
	Submitter cart.Submitter
	Output    OutputDestination
	Progress  io.Writer
	Rng       *rand.Rand

	logger   *logger.Logger
	identity auth.Provider
}

func NewSimulator(cfg models.SimulateConfig, cat *catalog.Catalog, submitter cart.Submitter, output OutputDestination, log *logger.Logger) *Simulator {
	return &Simulator{
		Config:    cfg,
		Catalog:   cat,
		Submitter: submitter,
		Output:    output,
		Progress:  io.Discard,
		Rng:       rand.New(rand.NewSource(cfg.Seed)),
		logger:    log,
		identity:  auth.NewLocalProvider(),
	}
}

// Run places Config.Orders orders, one student at a time. The output is not
// closed.
func (s *Simulator) Run(ctx context.Context) (Summary, error) {
	if s.Config.Students <= 0 {
		return Summary{}, errors.New("simulate.students must be positive")
	}
	students := factories.NewStudentFactory(s.Config.Seed).
		CreateStudents(s.Config.Students, s.Catalog.CategoryNames(), s.Config.MaxItems)

	summary := Summary{Revenue: decimal.Zero, Students: len(students)}
	bar := progressbar.NewOptions(s.Config.Orders,
		progressbar.OptionSetWriter(s.Progress),
		progressbar.OptionSetDescription("placing orders"),
		progressbar.OptionShowCount(),
	)

	for i := 0; i < s.Config.Orders; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		student := students[s.Rng.Intn(len(students))]

		rec, total, err := s.order(ctx, student)
		switch {
		case errors.Is(err, errNothingToOrder):
			summary.Skipped++
		case err != nil:
			summary.Failed++
			s.logger.Error("simulated_order_failed", "", "Simulated order failed", err, map[string]any{
				"student": student.Name,
			})
		default:
			summary.Placed++
			summary.Revenue = summary.Revenue.Add(total)
			if err := s.Output.Write(rec); err != nil {
				return summary, err
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	s.logger.Info("simulation_finished", "", "Simulation finished", map[string]any{
		"placed":  summary.Placed,
		"failed":  summary.Failed,
		"skipped": summary.Skipped,
		"revenue": summary.Revenue.StringFixed(2),
	})
	return summary, nil
}

var errNothingToOrder = errors.New("cart is empty")

// order signs the student in, fills a fresh cart by browsing and submits it.
func (s *Simulator) order(ctx context.Context, student factories.Student) (ConfirmationRecord, decimal.Decimal, error) {
	session, err := s.identity.SignIn(ctx, student.Name)
	if err != nil {
		return ConfirmationRecord{}, decimal.Zero, err
	}
	defer s.identity.SignOut(ctx)

	store := cart.NewStore(cart.State{ActiveTab: s.Catalog.DefaultCategory()}, s.Submitter, notify.Discard{})
	store.SignIn(session)
	s.browse(store, student)

	view := cart.Render(store.State(), s.Catalog)
	if !view.CanOrder {
		return ConfirmationRecord{}, decimal.Zero, errNothingToOrder
	}

	start := time.Now()
	conf, err := store.PlaceOrder(ctx)
	if err != nil {
		return ConfirmationRecord{}, decimal.Zero, err
	}
	return newRecord(conf, view.Total, time.Since(start).Milliseconds()), view.Total, nil
}

func (s *Simulator) browse(store *cart.Store, student factories.Student) {
	categories := s.Catalog.CategoryNames()
	picks := 1 + s.Rng.Intn(max(student.MaxItems, 1))

	for i := 0; i < picks; i++ {
		tab := student.Favourite
		if tab == "" || s.Rng.Float64() >= favouriteBias {
			tab = categories[s.Rng.Intn(len(categories))]
		}
		store.Dispatch(cart.SetTab{Category: tab})

		if s.Rng.Float64() < student.SearchRatio {
			store.Dispatch(cart.SetQuery{Query: s.searchTerm(tab)})
		}
		items := cart.Render(store.State(), s.Catalog).Items
		if len(items) > 0 {
			store.Add(items[s.Rng.Intn(len(items))])
		}
		store.Dispatch(cart.SetQuery{})
	}
}

// searchTerm is a short prefix of a random item name in the tab, typed in a
// random case.
func (s *Simulator) searchTerm(tab string) string {
	items, err := s.Catalog.Items(tab)
	if err != nil || len(items) == 0 {
		return ""
	}
	name := items[s.Rng.Intn(len(items))].Name
	term := name[:min(3, len(name))]
	if s.Rng.Intn(2) == 0 {
		return strings.ToUpper(term)
	}
	return strings.ToLower(term)
}

func (s Summary) String() string {
	return fmt.Sprintf("students=%d placed=%d failed=%d skipped=%d revenue=%s",
		s.Students, s.Placed, s.Failed, s.Skipped, s.Revenue.StringFixed(2))
}
