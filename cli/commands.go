// Package cli provides the Cobra-based CLI for orders.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"retail_orders/domain"
	"retail_orders/processing"
	"retail_orders/store"
	"retail_orders/util"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "orders",
		Short: "Build and process retail orders from a product catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			slog.SetDefault(slog.New(
				slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: parseLevel(viper.GetString("log-level"))}),
			))

			// IMPORTANT: allow tests and the shell to reuse an existing catalog
			if productCatalog != nil {
				return nil
			}

			var err error
			productCatalog, err = store.NewCatalog(
				context.Background(),
				viper.GetString("catalog"),
				viper.GetString("catalog-file"),
			)
			return err
		},
	}

	productCatalog domain.ProductCatalog

	// destination of the slog handler set up in PersistentPreRunE
	logOutput io.Writer = os.Stderr

	// process flags
	pOrderNumber int
	pItems       []string
	pAudit       bool
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func formatMoney(d decimal.Decimal) string {
	symbol := viper.GetString("currency-symbol")
	if symbol == "" {
		symbol = util.DefaultCurrencySymbol
	}
	return util.FormatCurrency(symbol, d)
}

func parseOptionalDecimal(cmd *cobra.Command, flag, value string) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(flag) {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, domain.NewInvalidArgumentError(flag, "not a decimal", value)
	}
	return &d, nil
}

// resetCommandFlags restores every subcommand's own flags to their defaults.
// Root persistent flags keep the values given when the shell was started.
func resetCommandFlags() {
	persistent := rootCmd.PersistentFlags()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if persistent.Lookup(f.Name) == f {
				return
			}
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("orders> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				resetCommandFlags()
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("catalog", "memory", "catalog source: memory|file")
	rootCmd.PersistentFlags().String("catalog-file", "data/catalog.json", "catalog file path (JSON array or NDJSON)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("currency-symbol", util.DefaultCurrencySymbol, "currency symbol for reported amounts")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("currency-symbol", rootCmd.PersistentFlags().Lookup("currency-symbol"))
	viper.SetEnvPrefix("ORDERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// list
	var lCategory, lMin, lMax, lSort, lOrder, lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.ListFilter{SortBy: lSort, Order: lOrder}
			if lCategory != "" {
				c, err := domain.ParseCategory(lCategory)
				if err != nil {
					return err
				}
				filter.Category = c
			}
			var err error
			if filter.MinPrice, err = parseOptionalDecimal(cmd, "min-price", lMin); err != nil {
				return err
			}
			if filter.MaxPrice, err = parseOptionalDecimal(cmd, "max-price", lMax); err != nil {
				return err
			}

			out, err := productCatalog.List(context.Background(), filter)
			if err != nil {
				return err
			}
			if lOutput == "json" {
				records := make([]store.ProductRecord, 0, len(out))
				for _, p := range out {
					records = append(records, store.RecordOf(p))
				}
				printJSON(records)
				return nil
			}
			for _, p := range out {
				fmt.Printf("%s | %s | %s | %s\n",
					p.Category(), p.Name(), formatMoney(p.Price()), formatMoney(p.CalculateCost()))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lCategory, "category", "", "category: book|electronics|clothing")
	listCmd.Flags().StringVar(&lMin, "min-price", "", "min price")
	listCmd.Flags().StringVar(&lMax, "max-price", "", "max price")
	listCmd.Flags().StringVar(&lSort, "sort-by", "", "sort field: name|price")
	listCmd.Flags().StringVar(&lOrder, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get product by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := productCatalog.Get(context.Background(), args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(store.RecordOf(p))
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// discount
	var percent string
	discountCmd := &cobra.Command{
		Use:   "discount <name>",
		Short: "Show a product's price after a percentage discount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := decimal.NewFromString(percent)
			if err != nil {
				return domain.NewInvalidArgumentError("percent", "not a decimal", percent)
			}
			p, err := productCatalog.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s (%s%% off %s)\n",
				p.Name(), formatMoney(p.CalculateDiscount(pct)), pct.String(), formatMoney(p.Price()))
			return nil
		},
	}
	discountCmd.Flags().StringVar(&percent, "percent", "0", "discount percentage")
	rootCmd.AddCommand(discountCmd)

	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import products from JSON or NDJSON into the session catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}
			products, err := store.LoadProducts(importFile)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				return errors.New("empty file")
			}
			if err := productCatalog.BulkImport(context.Background(), products); err != nil {
				return err
			}
			slog.Info("products imported", "file", importFile, "count", len(products))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// process
	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Build an order from catalog products and process it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			runID := util.GenerateUUID()

			var products []domain.Product
			if len(pItems) == 0 {
				all, err := productCatalog.List(ctx, domain.ListFilter{})
				if err != nil {
					return err
				}
				products = all
			}
			for _, name := range pItems {
				p, err := productCatalog.Get(ctx, name)
				if err != nil {
					return err
				}
				products = append(products, p)
			}

			order := domain.NewOrder(pOrderNumber)
			for _, p := range products {
				order.AddProduct(p)
			}

			console := processing.NewWriterSink(os.Stdout)
			order.RegisterStatusListener(processing.NewNotificationService(console).SendNotification)
			if pAudit {
				audit := processing.NewNotificationService(processing.NewLogSink(
					slog.Default().With("run_id", runID, "order_number", order.Number()),
				))
				order.RegisterStatusListener(audit.SendNotification)
			}

			processor := processing.NewOrderProcessor(console,
				processing.WithCurrencyFormatter(formatMoney),
				processing.WithLogger(slog.Default().With("run_id", runID)),
			)

			start := time.Now()
			if err := processor.ProcessOrder(order); err != nil {
				slog.Error("process failed", "run_id", runID, "order_number", order.Number(), "error", err)
				return err
			}
			slog.Info("order processed",
				"run_id", runID,
				"order_number", order.Number(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		},
	}
	processCmd.Flags().IntVar(&pOrderNumber, "order", 1, "order number")
	processCmd.Flags().StringArrayVar(&pItems, "item", nil, "catalog product name to add (repeatable); all products when omitted")
	processCmd.Flags().BoolVar(&pAudit, "audit", false, "also log the status change")
	rootCmd.AddCommand(processCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
