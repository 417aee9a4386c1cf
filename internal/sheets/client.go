package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"golang.org/x/time/rate"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/gadotour/gado-stats/pkg/config"
)

// Client is the live Google Sheets implementation of Store. It is built by
// the composition root and injected wherever workbook access is needed; there
// is no package-level instance.
//
// Every call passes through a rate limiter (the Sheets API read quota is
// tight) and a circuit breaker so a dead workbook fails fast instead of
// stalling every request.
type Client struct {
	spreadsheetID string
	svc           *sheetsapi.Service
	limiter       *rate.Limiter
	breaker       *gobreaker.CircuitBreaker
	logger        *logrus.Logger
}

// NewClient authenticates with the service-account credentials from config.
func NewClient(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if !cfg.HasSheetsCredentials() {
		return nil, fmt.Errorf("google sheets credentials not configured")
	}

	conf := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets service: %w", err)
	}

	threshold := cfg.CircuitBreakerThreshold
	if threshold <= 0 {
		threshold = 5
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "sheets-client",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("Sheets client circuit breaker state changed")
		},
	})

	rps := cfg.SheetsRateLimit
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		spreadsheetID: cfg.SpreadsheetID,
		svc:           svc,
		limiter:       rate.NewLimiter(rate.Limit(rps), 1),
		breaker:       breaker,
		logger:        logger,
	}, nil
}

func (c *Client) ReadRange(ctx context.Context, readRange string) ([][]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &StoreError{Op: "read", Range: readRange, Err: err}
	}

	resp, err := c.breaker.Execute(func() (interface{}, error) {
		return c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	})
	if err != nil {
		return nil, &StoreError{Op: "read", Range: readRange, Err: err}
	}

	values := resp.(*sheetsapi.ValueRange).Values
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, 0, len(raw))
		for _, v := range raw {
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) Append(ctx context.Context, rng string, rows [][]string) (AppendResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return AppendResult{}, &StoreError{Op: "append", Range: rng, Err: err}
	}

	vr := &sheetsapi.ValueRange{Values: toInterfaceRows(rows)}
	resp, err := c.breaker.Execute(func() (interface{}, error) {
		return c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
	})
	if err != nil {
		return AppendResult{}, &StoreError{Op: "append", Range: rng, Err: err}
	}

	appendResp := resp.(*sheetsapi.AppendValuesResponse)
	result := AppendResult{}
	if appendResp.Updates != nil {
		result.UpdatedRows = int(appendResp.Updates.UpdatedRows)
		result.StartRow, result.EndRow = parseRowSpan(appendResp.Updates.UpdatedRange)
	}
	return result, nil
}

func (c *Client) Update(ctx context.Context, rng string, rows [][]string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &StoreError{Op: "update", Range: rng, Err: err}
	}

	vr := &sheetsapi.ValueRange{Values: toInterfaceRows(rows)}
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
	})
	if err != nil {
		return &StoreError{Op: "update", Range: rng, Err: err}
	}
	return nil
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}

var rowSpanRe = regexp.MustCompile(`![A-Z]+(\d+)(?::[A-Z]+(\d+))?$`)

// parseRowSpan extracts the 1-based row numbers from an updated range like
// "stats_hole!A12:W23".
func parseRowSpan(updatedRange string) (int, int) {
	m := rowSpanRe.FindStringSubmatch(updatedRange)
	if m == nil {
		return 0, 0
	}
	start, _ := strconv.Atoi(m[1])
	end := start
	if m[2] != "" {
		end, _ = strconv.Atoi(m[2])
	}
	return start, end
}
