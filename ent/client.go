// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/verbly-app/verbly/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/deliverable"
	"github.com/verbly-app/verbly/ent/generationevent"
	"github.com/verbly-app/verbly/ent/levelprogress"
	"github.com/verbly-app/verbly/ent/performancerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Deliverable is the client for interacting with the Deliverable builders.
	Deliverable *DeliverableClient
	// GenerationEvent is the client for interacting with the GenerationEvent builders.
	GenerationEvent *GenerationEventClient
	// LevelProgress is the client for interacting with the LevelProgress builders.
	LevelProgress *LevelProgressClient
	// PerformanceRecord is the client for interacting with the PerformanceRecord builders.
	PerformanceRecord *PerformanceRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Deliverable = NewDeliverableClient(c.config)
	c.GenerationEvent = NewGenerationEventClient(c.config)
	c.LevelProgress = NewLevelProgressClient(c.config)
	c.PerformanceRecord = NewPerformanceRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Deliverable:       NewDeliverableClient(cfg),
		GenerationEvent:   NewGenerationEventClient(cfg),
		LevelProgress:     NewLevelProgressClient(cfg),
		PerformanceRecord: NewPerformanceRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Deliverable:       NewDeliverableClient(cfg),
		GenerationEvent:   NewGenerationEventClient(cfg),
		LevelProgress:     NewLevelProgressClient(cfg),
		PerformanceRecord: NewPerformanceRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Deliverable.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Deliverable.Use(hooks...)
	c.GenerationEvent.Use(hooks...)
	c.LevelProgress.Use(hooks...)
	c.PerformanceRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Deliverable.Intercept(interceptors...)
	c.GenerationEvent.Intercept(interceptors...)
	c.LevelProgress.Intercept(interceptors...)
	c.PerformanceRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeliverableMutation:
		return c.Deliverable.mutate(ctx, m)
	case *GenerationEventMutation:
		return c.GenerationEvent.mutate(ctx, m)
	case *LevelProgressMutation:
		return c.LevelProgress.mutate(ctx, m)
	case *PerformanceRecordMutation:
		return c.PerformanceRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeliverableClient is a client for the Deliverable schema.
type DeliverableClient struct {
	config
}

// NewDeliverableClient returns a client for the Deliverable from the given config.
func NewDeliverableClient(c config) *DeliverableClient {
	return &DeliverableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliverable.Hooks(f(g(h())))`.
func (c *DeliverableClient) Use(hooks ...Hook) {
	c.hooks.Deliverable = append(c.hooks.Deliverable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliverable.Intercept(f(g(h())))`.
func (c *DeliverableClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deliverable = append(c.inters.Deliverable, interceptors...)
}

// Create returns a builder for creating a Deliverable entity.
func (c *DeliverableClient) Create() *DeliverableCreate {
	mutation := newDeliverableMutation(c.config, OpCreate)
	return &DeliverableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deliverable entities.
func (c *DeliverableClient) CreateBulk(builders ...*DeliverableCreate) *DeliverableCreateBulk {
	return &DeliverableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliverableClient) MapCreateBulk(slice any, setFunc func(*DeliverableCreate, int)) *DeliverableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliverableCreateBulk{err: fmt.Errorf("calling to DeliverableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliverableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliverableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deliverable.
func (c *DeliverableClient) Update() *DeliverableUpdate {
	mutation := newDeliverableMutation(c.config, OpUpdate)
	return &DeliverableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliverableClient) UpdateOne(_m *Deliverable) *DeliverableUpdateOne {
	mutation := newDeliverableMutation(c.config, OpUpdateOne, withDeliverable(_m))
	return &DeliverableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliverableClient) UpdateOneID(id string) *DeliverableUpdateOne {
	mutation := newDeliverableMutation(c.config, OpUpdateOne, withDeliverableID(id))
	return &DeliverableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deliverable.
func (c *DeliverableClient) Delete() *DeliverableDelete {
	mutation := newDeliverableMutation(c.config, OpDelete)
	return &DeliverableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliverableClient) DeleteOne(_m *Deliverable) *DeliverableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliverableClient) DeleteOneID(id string) *DeliverableDeleteOne {
	builder := c.Delete().Where(deliverable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliverableDeleteOne{builder}
}

// Query returns a query builder for Deliverable.
func (c *DeliverableClient) Query() *DeliverableQuery {
	return &DeliverableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliverable},
		inters: c.Interceptors(),
	}
}

// Get returns a Deliverable entity by its id.
func (c *DeliverableClient) Get(ctx context.Context, id string) (*Deliverable, error) {
	return c.Query().Where(deliverable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliverableClient) GetX(ctx context.Context, id string) *Deliverable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeliverableClient) Hooks() []Hook {
	return c.hooks.Deliverable
}

// Interceptors returns the client interceptors.
func (c *DeliverableClient) Interceptors() []Interceptor {
	return c.inters.Deliverable
}

func (c *DeliverableClient) mutate(ctx context.Context, m *DeliverableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliverableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliverableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliverableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliverableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Deliverable mutation op: %q", m.Op())
	}
}

// GenerationEventClient is a client for the GenerationEvent schema.
type GenerationEventClient struct {
	config
}

// NewGenerationEventClient returns a client for the GenerationEvent from the given config.
func NewGenerationEventClient(c config) *GenerationEventClient {
	return &GenerationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationevent.Hooks(f(g(h())))`.
func (c *GenerationEventClient) Use(hooks ...Hook) {
	c.hooks.GenerationEvent = append(c.hooks.GenerationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationevent.Intercept(f(g(h())))`.
func (c *GenerationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationEvent = append(c.inters.GenerationEvent, interceptors...)
}

// Create returns a builder for creating a GenerationEvent entity.
func (c *GenerationEventClient) Create() *GenerationEventCreate {
	mutation := newGenerationEventMutation(c.config, OpCreate)
	return &GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationEvent entities.
func (c *GenerationEventClient) CreateBulk(builders ...*GenerationEventCreate) *GenerationEventCreateBulk {
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationEventClient) MapCreateBulk(slice any, setFunc func(*GenerationEventCreate, int)) *GenerationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationEventCreateBulk{err: fmt.Errorf("calling to GenerationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationEvent.
func (c *GenerationEventClient) Update() *GenerationEventUpdate {
	mutation := newGenerationEventMutation(c.config, OpUpdate)
	return &GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationEventClient) UpdateOne(_m *GenerationEvent) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEvent(_m))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationEventClient) UpdateOneID(id int) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEventID(id))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationEvent.
func (c *GenerationEventClient) Delete() *GenerationEventDelete {
	mutation := newGenerationEventMutation(c.config, OpDelete)
	return &GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationEventClient) DeleteOne(_m *GenerationEvent) *GenerationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationEventClient) DeleteOneID(id int) *GenerationEventDeleteOne {
	builder := c.Delete().Where(generationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationEventDeleteOne{builder}
}

// Query returns a query builder for GenerationEvent.
func (c *GenerationEventClient) Query() *GenerationEventQuery {
	return &GenerationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationEvent entity by its id.
func (c *GenerationEventClient) Get(ctx context.Context, id int) (*GenerationEvent, error) {
	return c.Query().Where(generationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationEventClient) GetX(ctx context.Context, id int) *GenerationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationEventClient) Hooks() []Hook {
	return c.hooks.GenerationEvent
}

// Interceptors returns the client interceptors.
func (c *GenerationEventClient) Interceptors() []Interceptor {
	return c.inters.GenerationEvent
}

func (c *GenerationEventClient) mutate(ctx context.Context, m *GenerationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationEvent mutation op: %q", m.Op())
	}
}

// LevelProgressClient is a client for the LevelProgress schema.
type LevelProgressClient struct {
	config
}

// NewLevelProgressClient returns a client for the LevelProgress from the given config.
func NewLevelProgressClient(c config) *LevelProgressClient {
	return &LevelProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `levelprogress.Hooks(f(g(h())))`.
func (c *LevelProgressClient) Use(hooks ...Hook) {
	c.hooks.LevelProgress = append(c.hooks.LevelProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `levelprogress.Intercept(f(g(h())))`.
func (c *LevelProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LevelProgress = append(c.inters.LevelProgress, interceptors...)
}

// Create returns a builder for creating a LevelProgress entity.
func (c *LevelProgressClient) Create() *LevelProgressCreate {
	mutation := newLevelProgressMutation(c.config, OpCreate)
	return &LevelProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LevelProgress entities.
func (c *LevelProgressClient) CreateBulk(builders ...*LevelProgressCreate) *LevelProgressCreateBulk {
	return &LevelProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LevelProgressClient) MapCreateBulk(slice any, setFunc func(*LevelProgressCreate, int)) *LevelProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LevelProgressCreateBulk{err: fmt.Errorf("calling to LevelProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LevelProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LevelProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LevelProgress.
func (c *LevelProgressClient) Update() *LevelProgressUpdate {
	mutation := newLevelProgressMutation(c.config, OpUpdate)
	return &LevelProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LevelProgressClient) UpdateOne(_m *LevelProgress) *LevelProgressUpdateOne {
	mutation := newLevelProgressMutation(c.config, OpUpdateOne, withLevelProgress(_m))
	return &LevelProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LevelProgressClient) UpdateOneID(id int) *LevelProgressUpdateOne {
	mutation := newLevelProgressMutation(c.config, OpUpdateOne, withLevelProgressID(id))
	return &LevelProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LevelProgress.
func (c *LevelProgressClient) Delete() *LevelProgressDelete {
	mutation := newLevelProgressMutation(c.config, OpDelete)
	return &LevelProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LevelProgressClient) DeleteOne(_m *LevelProgress) *LevelProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LevelProgressClient) DeleteOneID(id int) *LevelProgressDeleteOne {
	builder := c.Delete().Where(levelprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LevelProgressDeleteOne{builder}
}

// Query returns a query builder for LevelProgress.
func (c *LevelProgressClient) Query() *LevelProgressQuery {
	return &LevelProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLevelProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LevelProgress entity by its id.
func (c *LevelProgressClient) Get(ctx context.Context, id int) (*LevelProgress, error) {
	return c.Query().Where(levelprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LevelProgressClient) GetX(ctx context.Context, id int) *LevelProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LevelProgressClient) Hooks() []Hook {
	return c.hooks.LevelProgress
}

// Interceptors returns the client interceptors.
func (c *LevelProgressClient) Interceptors() []Interceptor {
	return c.inters.LevelProgress
}

func (c *LevelProgressClient) mutate(ctx context.Context, m *LevelProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LevelProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LevelProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LevelProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LevelProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LevelProgress mutation op: %q", m.Op())
	}
}

// PerformanceRecordClient is a client for the PerformanceRecord schema.
type PerformanceRecordClient struct {
	config
}

// NewPerformanceRecordClient returns a client for the PerformanceRecord from the given config.
func NewPerformanceRecordClient(c config) *PerformanceRecordClient {
	return &PerformanceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancerecord.Hooks(f(g(h())))`.
func (c *PerformanceRecordClient) Use(hooks ...Hook) {
	c.hooks.PerformanceRecord = append(c.hooks.PerformanceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancerecord.Intercept(f(g(h())))`.
func (c *PerformanceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceRecord = append(c.inters.PerformanceRecord, interceptors...)
}

// Create returns a builder for creating a PerformanceRecord entity.
func (c *PerformanceRecordClient) Create() *PerformanceRecordCreate {
	mutation := newPerformanceRecordMutation(c.config, OpCreate)
	return &PerformanceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceRecord entities.
func (c *PerformanceRecordClient) CreateBulk(builders ...*PerformanceRecordCreate) *PerformanceRecordCreateBulk {
	return &PerformanceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceRecordClient) MapCreateBulk(slice any, setFunc func(*PerformanceRecordCreate, int)) *PerformanceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceRecordCreateBulk{err: fmt.Errorf("calling to PerformanceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceRecord.
func (c *PerformanceRecordClient) Update() *PerformanceRecordUpdate {
	mutation := newPerformanceRecordMutation(c.config, OpUpdate)
	return &PerformanceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceRecordClient) UpdateOne(_m *PerformanceRecord) *PerformanceRecordUpdateOne {
	mutation := newPerformanceRecordMutation(c.config, OpUpdateOne, withPerformanceRecord(_m))
	return &PerformanceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceRecordClient) UpdateOneID(id int) *PerformanceRecordUpdateOne {
	mutation := newPerformanceRecordMutation(c.config, OpUpdateOne, withPerformanceRecordID(id))
	return &PerformanceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceRecord.
func (c *PerformanceRecordClient) Delete() *PerformanceRecordDelete {
	mutation := newPerformanceRecordMutation(c.config, OpDelete)
	return &PerformanceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceRecordClient) DeleteOne(_m *PerformanceRecord) *PerformanceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceRecordClient) DeleteOneID(id int) *PerformanceRecordDeleteOne {
	builder := c.Delete().Where(performancerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceRecordDeleteOne{builder}
}

// Query returns a query builder for PerformanceRecord.
func (c *PerformanceRecordClient) Query() *PerformanceRecordQuery {
	return &PerformanceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceRecord entity by its id.
func (c *PerformanceRecordClient) Get(ctx context.Context, id int) (*PerformanceRecord, error) {
	return c.Query().Where(performancerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceRecordClient) GetX(ctx context.Context, id int) *PerformanceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceRecordClient) Hooks() []Hook {
	return c.hooks.PerformanceRecord
}

// Interceptors returns the client interceptors.
func (c *PerformanceRecordClient) Interceptors() []Interceptor {
	return c.inters.PerformanceRecord
}

func (c *PerformanceRecordClient) mutate(ctx context.Context, m *PerformanceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Deliverable, GenerationEvent, LevelProgress, PerformanceRecord []ent.Hook
	}
	inters struct {
		Deliverable, GenerationEvent, LevelProgress, PerformanceRecord []ent.Interceptor
	}
)
