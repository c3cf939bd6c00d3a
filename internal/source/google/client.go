// Package google reads movements from a Google Sheets tab.
package google

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"contabilidad/internal/core"
	applog "contabilidad/internal/log"
	"contabilidad/internal/source"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultSheetName is used when no movements sheet is configured.
const DefaultSheetName = "Movimientos"

// Config selects the spreadsheet and the service account used to read it.
// CredentialsJSON wins over CredentialsFile; with neither set,
// GOOGLE_APPLICATION_CREDENTIALS is consulted.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// Client is a read-only movement source backed by one sheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
	logger        *applog.Logger
}

var _ source.Source = (*Client)(nil)

// New creates a Sheets client authenticated with a service account.
func New(ctx context.Context, cfg Config, logger *applog.Logger) (*Client, error) {
	id := strings.TrimSpace(cfg.SpreadsheetID)
	if id == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	sheet := strings.TrimSpace(cfg.SheetName)
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentSheets)

	creds, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Creating Google Sheets service",
		"credentials_size", len(creds),
		"scope", gsheet.SpreadsheetsReadonlyScope)

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope),
		goption.WithHTTPClient(newHTTPClient()))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: id, sheet: sheet, logger: logger}, nil
}

func loadCredentials(cfg Config) ([]byte, error) {
	inline := strings.TrimSpace(cfg.CredentialsJSON)
	file := strings.TrimSpace(cfg.CredentialsFile)
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	switch {
	case inline != "":
		return []byte(inline), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
}

// newHTTPClient pools connections to the Sheets API and bounds every call.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: transport, Timeout: 60 * time.Second}
}

func (c *Client) readRange() string {
	return fmt.Sprintf("%s!A:E", c.sheet)
}

// ListMovements reads the whole sheet. Rows that do not describe a valid
// movement are skipped and logged.
func (c *Client) ListMovements(ctx context.Context) ([]core.Movement, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := c.readRange()
	start := time.Now()
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		c.logger.ErrorContext(ctx, "Sheets read failed",
			applog.FieldOperation, applog.OpList,
			applog.FieldSheetsRange, rng,
			applog.FieldErrorType, applog.ErrorTypeUpstream,
			applog.FieldError, err)
		return nil, fmt.Errorf("read movements: %w", err)
	}

	items, skipped, err := parseMovements(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rng, err)
	}
	for _, rerr := range skipped {
		c.logger.WarnContext(ctx, "Skipping movement row",
			applog.FieldOperation, applog.OpParse,
			applog.FieldSheetsRange, rng,
			"row", rerr.Row,
			applog.FieldError, rerr.Err)
	}
	c.logger.DebugContext(ctx, "Movements read",
		applog.FieldOperation, applog.OpList,
		applog.FieldSheetsRange, rng,
		applog.FieldCount, len(items),
		applog.FieldDuration, time.Since(start).Milliseconds())
	return items, nil
}

// FindMovement lists the sheet and picks the movement with id.
func (c *Client) FindMovement(ctx context.Context, id int64) (core.Movement, error) {
	items, err := c.ListMovements(ctx)
	if err != nil {
		return core.Movement{}, err
	}
	return source.Find(items, id)
}
