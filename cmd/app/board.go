package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"flowerdelivery/internal/adapters/out/apiclient"
	"flowerdelivery/internal/adapters/out/tui"
	"flowerdelivery/internal/core/application/board"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/clock"

	"github.com/spf13/cobra"
)

// Alerts shown to the operator when a request fails.
const (
	alertLoadDeliveries = "배송 목록을 불러오는 중 오류가 발생했습니다."
	alertAdvanceStatus  = "상태 변경 중 오류가 발생했습니다."
	alertLoadContacts   = "연락처를 불러오는 중 오류가 발생했습니다. 샘플 연락처를 표시합니다."
)

type boardAPI interface {
	ListDeliveries(ctx context.Context) ([]queries.DeliveryView, error)
	AdvanceStatus(ctx context.Context, id string, expected *delivery.Status) (queries.DeliveryView, error)
	ListContacts(ctx context.Context, search string) ([]queries.ContactView, error)
	TodaySummary(ctx context.Context) (queries.TodaySummaryQueryResponse, error)
}

type boardOptions struct {
	tab          delivery.View
	onlyPickedUp bool
	advance      string
	expected     *delivery.Status
	showContacts bool
	search       string
	today        string
}

func newBoardCmd(load configLoader) *cobra.Command {
	var (
		tab          string
		onlyPickedUp bool
		advance      string
		expect       string
		showContacts bool
		search       string
		baseURL      string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the delivery board of a running server",
		Long:  "Loads the deliveries and contacts from the API, optionally advances one delivery, and prints the board.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, ok := delivery.ParseView(tab)
			if !ok {
				return fmt.Errorf("--tab must be all, in-progress or settled, got %q", tab)
			}
			opts := boardOptions{
				tab:          view,
				onlyPickedUp: onlyPickedUp,
				advance:      advance,
				showContacts: showContacts,
				search:       search,
			}
			if expect != "" {
				s, err := delivery.ParseStatus(expect)
				if err != nil {
					return err
				}
				opts.expected = &s
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = cfg.APIBaseURL
			}
			clk, err := clock.LoadZoned(cfg.TimeZone)
			if err != nil {
				return err
			}
			opts.today = kernel.DatePrefix(clk.Now())

			client := apiclient.New(baseURL, nil)
			return runBoard(cmd.Context(), client, opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), newLogger(cfg))
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "all", "all, in-progress or settled")
	cmd.Flags().BoolVar(&onlyPickedUp, "picked-up", false, "show only picked up deliveries")
	cmd.Flags().StringVar(&advance, "advance", "", "order number to move to its next status")
	cmd.Flags().StringVar(&expect, "expect", "", "status the advanced delivery must reach, e.g. PICKED_UP")
	cmd.Flags().BoolVar(&showContacts, "contacts", false, "list the address book below the board")
	cmd.Flags().StringVar(&search, "search", "", "contact search text")
	cmd.Flags().StringVar(&baseURL, "api", "", "API base URL, overrides API_BASE_URL")
	return cmd
}

// runBoard drives the board state through the API calls and prints it.
// A failed delivery load stops the command. A failed advance is reported and
// the board is still printed. Contacts fall back to the bundled samples and
// today's summary falls back to the loaded deliveries.
func runBoard(ctx context.Context, api boardAPI, opts boardOptions, out, errOut io.Writer, logger *slog.Logger) error {
	s := board.State{Tab: opts.tab}
	if opts.onlyPickedUp {
		s = board.Reduce(s, board.PickedUpFilterToggled{})
	}

	deliveries, err := api.ListDeliveries(ctx)
	if err != nil {
		logger.Error("load deliveries", "error", err)
		fmt.Fprintln(errOut, alertLoadDeliveries)
		return err
	}
	s = board.Reduce(s, board.DeliveriesLoaded{Deliveries: deliveries})

	contacts, err := api.ListContacts(ctx, opts.search)
	if err != nil {
		logger.Warn("load contacts", "error", err)
		fmt.Fprintln(errOut, alertLoadContacts)
		if contacts, err = apiclient.SampleContacts(opts.search); err != nil {
			return err
		}
	}
	s = board.Reduce(s, board.ContactsLoaded{Contacts: contacts})

	if opts.advance != "" {
		advanced, err := api.AdvanceStatus(ctx, opts.advance, opts.expected)
		if err != nil {
			logger.Error("advance status", "id", opts.advance, "error", err)
			fmt.Fprintln(errOut, alertAdvanceStatus)
			s = board.Reduce(s, board.RequestFailed{Err: err})
		} else {
			s = board.Reduce(s, board.StatusAdvanced{Delivery: advanced})
		}
	}

	summary, err := api.TodaySummary(ctx)
	if err != nil {
		logger.Warn("load today summary", "error", err)
		summary = board.Today(s, opts.today)
	}

	fmt.Fprint(out, tui.RenderBoard(s, summary))
	if opts.showContacts {
		fmt.Fprintln(out)
		fmt.Fprint(out, tui.RenderContacts(s.Contacts))
	}
	return nil
}
