package processing

import (
	"fmt"
	"log/slog"
	"retail_orders/domain"
	"retail_orders/util"
	"time"

	"github.com/shopspring/decimal"
)

// OrderProcessor reports an order's total and broadcasts the processed status
type OrderProcessor struct {
	sink   Sink
	format func(decimal.Decimal) string
	logger *slog.Logger
}

// Option configures an OrderProcessor
type Option func(*OrderProcessor)

// WithCurrencyFormatter overrides how the total is rendered
func WithCurrencyFormatter(f func(decimal.Decimal) string) Option {
	return func(p *OrderProcessor) {
		if f != nil {
			p.format = f
		}
	}
}

// WithLogger sets the logger used for debug records
func WithLogger(l *slog.Logger) Option {
	return func(p *OrderProcessor) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewOrderProcessor constructs an OrderProcessor reporting to sink
func NewOrderProcessor(sink Sink, opts ...Option) *OrderProcessor {
	p := &OrderProcessor{
		sink:   sink,
		format: util.CurrencyFormatter(util.DefaultCurrencySymbol),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessOrder reports the order number and total cost, then changes the
// order status to domain.StatusProcessed. Listener errors are returned as is.
func (p *OrderProcessor) ProcessOrder(order *domain.Order) error {
	if order == nil {
		return domain.NewInvalidArgumentError("order", "cannot be nil", nil)
	}
	start := time.Now()
	total := order.TotalCost()

	if err := p.sink.Report(fmt.Sprintf("Processing order #%d...", order.Number())); err != nil {
		return fmt.Errorf("report order %d: %w", order.Number(), err)
	}
	if err := p.sink.Report("Total cost: " + p.format(total)); err != nil {
		return fmt.Errorf("report order %d: %w", order.Number(), err)
	}

	if err := order.ChangeOrderStatus(domain.StatusProcessed); err != nil {
		p.logger.Debug("status broadcast failed", "order_number", order.Number(), "error", err)
		return err
	}

	p.logger.Debug("order processed",
		"order_number", order.Number(),
		"products", len(order.Products()),
		"total", total.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
