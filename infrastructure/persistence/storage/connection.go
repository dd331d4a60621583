// Package storage owns the process-wide connection to the configured backend.
// A Connection is built once at start-up and handed to every table; it opens
// lazily on first use and remembers the outcome for the life of the process.
package storage

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "survey-backend/pkg/errors"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendDynamoDB   Backend = "dynamodb"
	BackendRelational Backend = "relational"
	BackendMemory     Backend = "memory"
)

// ParseBackend validates a configured backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendDynamoDB, BackendRelational, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", s)
	}
}

// State of a Connection.
type State int32

const (
	StatePending State = iota
	StateReady
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "pending"
	}
}

// DynamoDBAPI is the part of the DynamoDB client the stores and the
// provisioner use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// OpenTimeout bounds the one attempt a Connection makes to reach its backend.
const OpenTimeout = 15 * time.Second

// handles is what an opener produces.
type handles struct {
	dynamo DynamoDBAPI
	db     *gorm.DB
}

type opener func(ctx context.Context) (handles, error)

// Connection is the lazily opened handle to one backend.
type Connection struct {
	backend Backend
	logger  *zap.Logger
	open    opener

	once  sync.Once
	state atomic.Int32
	err   error
	h     handles

	mu        sync.Mutex
	listeners []func(error)
}

// NewConnection prepares a connection; nothing is dialled until first use.
func NewConnection(opts Options, logger *zap.Logger) *Connection {
	c := &Connection{backend: opts.Backend, logger: logger}
	switch opts.Backend {
	case BackendDynamoDB:
		c.open = dynamoOpener(opts, logger)
	case BackendRelational:
		c.open = relationalOpener(opts)
	default:
		c.open = func(context.Context) (handles, error) { return handles{}, nil }
	}
	return c
}

// NewDynamoDBConnection wraps an already built client.
func NewDynamoDBConnection(client DynamoDBAPI, logger *zap.Logger) *Connection {
	return &Connection{
		backend: BackendDynamoDB,
		logger:  logger,
		open:    func(context.Context) (handles, error) { return handles{dynamo: client}, nil },
	}
}

// NewRelationalConnection wraps an already opened gorm handle.
func NewRelationalConnection(db *gorm.DB, logger *zap.Logger) *Connection {
	return &Connection{
		backend: BackendRelational,
		logger:  logger,
		open:    func(context.Context) (handles, error) { return handles{db: db}, nil },
	}
}

// NewMemoryConnection is always ready.
func NewMemoryConnection(logger *zap.Logger) *Connection {
	return NewConnection(Options{Backend: BackendMemory}, logger)
}

// NewUnavailableConnection is permanently unavailable with cause.
func NewUnavailableConnection(backend Backend, cause error, logger *zap.Logger) *Connection {
	return &Connection{
		backend: backend,
		logger:  logger,
		open:    func(context.Context) (handles, error) { return handles{}, cause },
	}
}

// Backend reports which backend this connection serves.
func (c *Connection) Backend() Backend { return c.backend }

// State reports the connection state without opening it.
func (c *Connection) State() State { return State(c.state.Load()) }

// OnUnavailable registers fn to run once if opening fails.
func (c *Connection) OnUnavailable(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Open connects on the first call; later calls return the memoised outcome.
// A failed open leaves the connection unavailable for the process lifetime.
// The attempt keeps ctx's values but ignores its cancellation, and is bounded
// by OpenTimeout instead.
func (c *Connection) Open(ctx context.Context) error {
	c.once.Do(func() {
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), OpenTimeout)
		defer cancel()

		h, err := c.open(openCtx)
		if err != nil {
			c.err = apperrors.NewStoreUnavailableError(string(c.backend), err)
			c.state.Store(int32(StateUnavailable))
			c.logger.Error("Storage backend unavailable",
				zap.String("backend", string(c.backend)),
				zap.Error(err),
			)
			c.notify(err)
			return
		}
		c.h = h
		c.state.Store(int32(StateReady))
		c.logger.Info("Storage backend connected", zap.String("backend", string(c.backend)))
	})
	return c.err
}

func (c *Connection) notify(err error) {
	c.mu.Lock()
	listeners := append([]func(error){}, c.listeners...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(err)
	}
}

// DynamoDB opens the connection and returns the client.
func (c *Connection) DynamoDB(ctx context.Context) (DynamoDBAPI, error) {
	if err := c.Open(ctx); err != nil {
		return nil, err
	}
	if c.h.dynamo == nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("backend %s has no DynamoDB client", c.backend))
	}
	return c.h.dynamo, nil
}

// DB opens the connection and returns the gorm handle.
func (c *Connection) DB(ctx context.Context) (*gorm.DB, error) {
	if err := c.Open(ctx); err != nil {
		return nil, err
	}
	if c.h.db == nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("backend %s has no SQL handle", c.backend))
	}
	return c.h.db.WithContext(ctx), nil
}

// Check implements ports.HealthChecker.
func (c *Connection) Check(ctx context.Context) error {
	return c.Open(ctx)
}

// Close releases the SQL pool, if any.
func (c *Connection) Close() error {
	if c.h.db == nil {
		return nil
	}
	sqlDB, err := c.h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
