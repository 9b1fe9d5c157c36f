package server

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/workspacekit/workspace-mcp/internal/calendar"
	"github.com/workspacekit/workspace-mcp/internal/docs"
	"github.com/workspacekit/workspace-mcp/internal/drive"
	"github.com/workspacekit/workspace-mcp/internal/gmail"
	"github.com/workspacekit/workspace-mcp/internal/google"
	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
	"github.com/workspacekit/workspace-mcp/internal/meet"
	"github.com/workspacekit/workspace-mcp/internal/sheets"
)

// Workspace service family names accepted by Config.Services.
const (
	ServiceCalendar = "calendar"
	ServiceDocs     = "docs"
	ServiceDrive    = "drive"
	ServiceGmail    = "gmail"
	ServiceMeet     = "meet"
	ServiceSheets   = "sheets"
)

// AllServices lists every service family in registration order.
var AllServices = []string{
	ServiceCalendar,
	ServiceDocs,
	ServiceDrive,
	ServiceGmail,
	ServiceMeet,
	ServiceSheets,
}

// Config describes what a ServerContext should hold.
type Config struct {
	// Services is the set of service families to enable. Empty enables
	// all of them.
	Services []string

	// ReadOnly suppresses registration of mutating tools.
	ReadOnly bool

	// DriveFolderID parents artifacts created by the Docs and Sheets
	// clients. Empty means the Drive root.
	DriveFolderID string

	// Metrics and AuditLogger may be nil when instrumentation is
	// disabled.
	Metrics     *instrumentation.Metrics
	AuditLogger *instrumentation.AuditLogger
}

// ServerContext holds the fully constructed service clients for one server
// run. It is built exactly once before the transport starts and is
// read-only afterwards; tool handlers only ever call accessors.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	calendarClient *calendar.Client
	docsClient     *docs.Client
	driveClient    *drive.Client
	gmailClient    *gmail.Client
	meetClient     *meet.Client
	sheetsClient   *sheets.Client

	services      []string
	readOnly      bool
	driveFolderID string

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext resolves credentials per enabled service family and
// constructs every client up front. A resolver failure for any enabled
// family aborts construction; no partially usable context is returned.
func NewServerContext(ctx context.Context, factory *google.ServiceFactory, cfg Config) (*ServerContext, error) {
	services := cfg.Services
	if len(services) == 0 {
		services = AllServices
	}
	if err := ValidateServices(services); err != nil {
		return nil, err
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		services:      services,
		readOnly:      cfg.ReadOnly,
		driveFolderID: cfg.DriveFolderID,
		metrics:       cfg.Metrics,
		auditLogger:   cfg.AuditLogger,
	}

	for _, service := range services {
		if err := sc.buildClient(shutdownCtx, factory, service); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize %s: %w", service, err)
		}
	}

	return sc, nil
}

func (sc *ServerContext) buildClient(ctx context.Context, factory *google.ServiceFactory, service string) error {
	switch service {
	case ServiceCalendar:
		opts, err := factory.ClientOptions(ctx, google.CalendarScopes)
		if err != nil {
			return err
		}
		sc.calendarClient, err = calendar.NewClient(ctx, opts...)
		return err

	case ServiceDocs:
		opts, err := factory.ClientOptions(ctx, google.DocsScopes)
		if err != nil {
			return err
		}
		sc.docsClient, err = docs.NewClient(ctx, sc.driveFolderID, opts...)
		return err

	case ServiceDrive:
		opts, err := factory.ClientOptions(ctx, google.DriveScopes)
		if err != nil {
			return err
		}
		sc.driveClient, err = drive.NewClient(ctx, opts...)
		return err

	case ServiceGmail:
		opts, err := factory.ClientOptions(ctx, google.GmailScopes)
		if err != nil {
			return err
		}
		sc.gmailClient, err = gmail.NewClient(ctx, opts...)
		return err

	case ServiceMeet:
		opts, err := factory.ClientOptions(ctx, google.MeetScopes)
		if err != nil {
			return err
		}
		sc.meetClient, err = meet.NewClient(ctx, opts...)
		return err

	case ServiceSheets:
		opts, err := factory.ClientOptions(ctx, google.SheetsScopes)
		if err != nil {
			return err
		}
		sc.sheetsClient, err = sheets.NewClient(ctx, sc.driveFolderID, opts...)
		return err
	}

	return fmt.Errorf("unknown service %q", service)
}

// ValidateServices checks that every name is a known service family.
func ValidateServices(services []string) error {
	known := make(map[string]bool, len(AllServices))
	for _, s := range AllServices {
		known[s] = true
	}

	var invalid []string
	for _, s := range services {
		if !known[s] {
			invalid = append(invalid, s)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("unknown services: %s (valid: %s)",
			strings.Join(invalid, ", "), strings.Join(AllServices, ", "))
	}

	return nil
}

// Context returns the server's lifetime context, cancelled on Shutdown.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Services returns the enabled service families.
func (sc *ServerContext) Services() []string {
	return sc.services
}

// HasService reports whether a service family is enabled.
func (sc *ServerContext) HasService(service string) bool {
	for _, s := range sc.services {
		if s == service {
			return true
		}
	}
	return false
}

// ReadOnly reports whether mutating tools are suppressed.
func (sc *ServerContext) ReadOnly() bool {
	return sc.readOnly
}

// DriveFolderID returns the folder scoping created artifacts, or empty.
func (sc *ServerContext) DriveFolderID() string {
	return sc.driveFolderID
}

// CalendarClient returns the Calendar client, or nil if the family is
// disabled.
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.calendarClient
}

// DocsClient returns the Docs client, or nil if the family is disabled.
func (sc *ServerContext) DocsClient() *docs.Client {
	return sc.docsClient
}

// DriveClient returns the Drive client, or nil if the family is disabled.
func (sc *ServerContext) DriveClient() *drive.Client {
	return sc.driveClient
}

// GmailClient returns the Gmail client, or nil if the family is disabled.
func (sc *ServerContext) GmailClient() *gmail.Client {
	return sc.gmailClient
}

// MeetClient returns the Meet client, or nil if the family is disabled.
func (sc *ServerContext) MeetClient() *meet.Client {
	return sc.meetClient
}

// SheetsClient returns the Sheets client, or nil if the family is
// disabled.
func (sc *ServerContext) SheetsClient() *sheets.Client {
	return sc.sheetsClient
}

// Metrics returns the metrics recorder, or nil when instrumentation is
// disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil when audit logging is
// disabled.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	return sc.auditLogger
}

// IsShutdown reports whether Shutdown has been called.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the server context. Safe to call more than once.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
