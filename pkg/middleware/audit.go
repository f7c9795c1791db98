package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-backend/pkg/logger"
)

// AuditAction represents the type of action being audited
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

// Gin context keys handlers use to annotate the audit entry
const (
	ContextKeyAuditOrgSlug    = "audit_org_slug"
	ContextKeyAuditResourceID = "audit_resource_id"
)

// AuditEntry represents a single audit log row
type AuditEntry struct {
	ID           string
	OrgSlug      string
	Action       AuditAction
	ResourceType string
	ResourceID   string
	Method       string
	Path         string
	StatusCode   int
	RequestID    string
	IPAddress    string
	CreatedAt    time.Time
}

// AuditConfig holds configuration for the audit middleware
type AuditConfig struct {
	// DB is the connection pool audit rows are written to
	DB *pgxpool.Pool
	// BufferSize is the size of the async buffer (default 1000)
	BufferSize int
	// FlushInterval is how often the buffer is flushed (default 5s)
	FlushInterval time.Duration
	// BatchSize is the max rows per insert batch (default 100)
	BatchSize int
}

// DefaultAuditConfig returns default configuration
func DefaultAuditConfig(db *pgxpool.Pool) *AuditConfig {
	return &AuditConfig{
		DB:            db,
		BufferSize:    1000,
		FlushInterval: 5 * time.Second,
		BatchSize:     100,
	}
}

// AuditLogger buffers audit entries and writes them asynchronously so
// mutations never block on the audit table
type AuditLogger struct {
	config    *AuditConfig
	buffer    chan *AuditEntry
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	// test mode collects entries instead of writing to the DB
	testMode    bool
	testMu      sync.Mutex
	testEntries []*AuditEntry
}

// NewAuditLogger creates a new audit logger and starts its worker
func NewAuditLogger(config *AuditConfig) *AuditLogger {
	if config.BufferSize <= 0 {
		config.BufferSize = 1000
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 5 * time.Second
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}

	ctx, cancel := context.WithCancel(context.Background())

	al := &AuditLogger{
		config: config,
		buffer: make(chan *AuditEntry, config.BufferSize),
		ctx:    ctx,
		cancel: cancel,
	}

	al.wg.Add(1)
	go al.worker()

	return al
}

// NewTestAuditLogger creates an audit logger that collects entries in memory
func NewTestAuditLogger() *AuditLogger {
	al := NewAuditLogger(&AuditConfig{FlushInterval: 10 * time.Millisecond})
	al.testMode = true
	return al
}

// Log adds an entry to the buffer without blocking; entries are dropped
// when the buffer is full
func (al *AuditLogger) Log(entry *AuditEntry) {
	select {
	case al.buffer <- entry:
	default:
	}
}

// TestEntries returns entries collected in test mode
func (al *AuditLogger) TestEntries() []*AuditEntry {
	al.testMu.Lock()
	defer al.testMu.Unlock()
	out := make([]*AuditEntry, len(al.testEntries))
	copy(out, al.testEntries)
	return out
}

// Close flushes remaining entries and stops the worker
func (al *AuditLogger) Close() {
	al.closeOnce.Do(func() {
		al.cancel()
		al.wg.Wait()
	})
}

func (al *AuditLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.config.FlushInterval)
	defer ticker.Stop()

	batch := make([]*AuditEntry, 0, al.config.BatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-al.buffer:
			batch = append(batch, entry)
			if len(batch) >= al.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.ctx.Done():
			// drain what is left before exiting
			for {
				select {
				case entry := <-al.buffer:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AuditLogger) write(batch []*AuditEntry) {
	if al.testMode {
		al.testMu.Lock()
		al.testEntries = append(al.testEntries, batch...)
		al.testMu.Unlock()
		return
	}
	if al.config.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO audit_logs (id, org_slug, action, resource_type, resource_id,
			method, path, status_code, request_id, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, e := range batch {
		if _, err := al.config.DB.Exec(ctx, query,
			e.ID, e.OrgSlug, string(e.Action), e.ResourceType, e.ResourceID,
			e.Method, e.Path, e.StatusCode, e.RequestID, e.IPAddress, e.CreatedAt,
		); err != nil {
			logger.Error("failed to write audit entry", zap.Error(err))
			return
		}
	}
}

// Audit records successful mutations. Reads are skipped; handlers may set
// ContextKeyAuditOrgSlug and ContextKeyAuditResourceID to enrich the entry.
func Audit(al *AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status >= 400 {
			return
		}

		action := AuditActionCreate
		if method == "PUT" || method == "PATCH" {
			action = AuditActionUpdate
		}

		al.Log(&AuditEntry{
			ID:           uuid.New().String(),
			OrgSlug:      c.GetString(ContextKeyAuditOrgSlug),
			Action:       action,
			ResourceType: resourceTypeFromPath(c.FullPath()),
			ResourceID:   c.GetString(ContextKeyAuditResourceID),
			Method:       method,
			Path:         c.Request.URL.Path,
			StatusCode:   status,
			RequestID:    c.GetString("request_id"),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now(),
		})
	}
}

// resourceTypeFromPath extracts the resource segment from a route like
// /api/v1/projects/:id
func resourceTypeFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !strings.HasPrefix(parts[i], ":") {
			return parts[i]
		}
	}
	return ""
}
