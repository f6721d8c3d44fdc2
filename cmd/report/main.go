package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"go-apre/internal/catalog"
	"go-apre/internal/config"
	"go-apre/internal/logger"
	"go-apre/internal/view"

	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.Build(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	cat, err := catalog.NewCatalog(cfg)
	if err != nil {
		zlog.Fatal("Failed to load catalog", zap.Error(err))
	}

	r := &reporter{
		baseURL: cfg.APIBaseURL,
		fetcher: view.NewHTTPFetcher(nil),
		catalog: cat,
		log:     zlog,
		out:     os.Stdout,
	}
	if err := r.run(context.Background(), os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
}

type reporter struct {
	baseURL string
	fetcher view.Fetcher
	catalog *catalog.Catalog
	log     *zap.Logger
	out     io.Writer
}

// run drives one report view for the selected dimension and prints what the
// view would display.
func (r *reporter) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(r.out)
	kind := fs.String("report", "year", "report to show: year, month, product, region or regions")
	value := fs.String("value", "", "dimension value (year, month number, product or region)")
	timeout := fs.Duration("timeout", 0, "request timeout, 0 waits for the transport")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	switch *kind {
	case "year":
		v := view.NewChannelRatingByYearView(r.baseURL, r.fetcher, r.catalog, r.log)
		v.Submit(ctx, parseYear(*value))
		state := v.Snapshot()
		return r.printChart(state.Message, "CHANNEL", "RATING AVG", state.Data)
	case "month":
		v := view.NewChannelRatingByMonthView(r.baseURL, r.fetcher, r.log)
		v.Submit(ctx, *value)
		state := v.Snapshot()
		return r.printTable(state.Message, []string{"CHANNEL", "RATING AVG"}, len(state.Data), func(i int) []string {
			return []string{state.Data[i].Channel, formatNumber(state.Data[i].RatingAvg)}
		})
	case "product":
		v := view.NewSalesByProductView(r.baseURL, r.fetcher, r.log)
		v.Submit(ctx, *value)
		state := v.Snapshot()
		return r.printTable(state.Message, []string{"SALESPERSON", "TOTAL SALES", "PRODUCT"}, len(state.Data), func(i int) []string {
			row := state.Data[i]
			return []string{row.Salesperson, formatNumber(row.TotalSales), row.Product}
		})
	case "region":
		v := view.NewSalesByRegionView(r.baseURL, r.fetcher, r.log)
		v.Submit(ctx, *value)
		state := v.Snapshot()
		return r.printChart(state.Message, "SALESPERSON", "TOTAL SALES", state.Data)
	case "regions":
		v := view.NewSalesByRegionView(r.baseURL, r.fetcher, r.log)
		if err := v.LoadRegions(ctx); err != nil {
			fmt.Fprintln(r.out, v.Snapshot().Message)
			return nil
		}
		for _, region := range v.Regions() {
			fmt.Fprintln(r.out, region)
		}
		return nil
	default:
		fmt.Fprintf(r.out, "unknown report %q\n", *kind)
		fs.Usage()
		return errUsage
	}
}

func parseYear(value string) *int {
	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &year
}

func (r *reporter) printChart(message, labelHeader, valueHeader string, chart view.ChartProjection) error {
	return r.printTable(message, []string{labelHeader, valueHeader}, chart.Len(), func(i int) []string {
		return []string{chart.Labels[i], formatNumber(chart.Values[i])}
	})
}

func (r *reporter) printTable(message string, header []string, n int, row func(i int) []string) error {
	if message != "" {
		_, err := fmt.Fprintln(r.out, message)
		return err
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	printRow(w, header)
	for i := 0; i < n; i++ {
		printRow(w, row(i))
	}
	return w.Flush()
}

func printRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
