// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/wisehub-ai/wisehub/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
	"github.com/wisehub-ai/wisehub/ent/auditlog"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
	"github.com/wisehub-ai/wisehub/ent/conversationstate"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
	"github.com/wisehub-ai/wisehub/ent/conversationturn"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
	"github.com/wisehub-ai/wisehub/ent/department"
	"github.com/wisehub-ai/wisehub/ent/featureflag"
	"github.com/wisehub-ai/wisehub/ent/goal"
	"github.com/wisehub-ai/wisehub/ent/insight"
	"github.com/wisehub-ai/wisehub/ent/knowledgechunk"
	"github.com/wisehub-ai/wisehub/ent/person"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
	"github.com/wisehub-ai/wisehub/ent/task"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
	"github.com/wisehub-ai/wisehub/ent/user"
	"github.com/wisehub-ai/wisehub/ent/userpreference"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Announcement is the client for interacting with the Announcement builders.
	Announcement *AnnouncementClient
	// AnnouncementExecution is the client for interacting with the AnnouncementExecution builders.
	AnnouncementExecution *AnnouncementExecutionClient
	// AnnouncementPattern is the client for interacting with the AnnouncementPattern builders.
	AnnouncementPattern *AnnouncementPatternClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// CeoTeaching is the client for interacting with the CeoTeaching builders.
	CeoTeaching *CeoTeachingClient
	// ConversationState is the client for interacting with the ConversationState builders.
	ConversationState *ConversationStateClient
	// ConversationSummary is the client for interacting with the ConversationSummary builders.
	ConversationSummary *ConversationSummaryClient
	// ConversationTurn is the client for interacting with the ConversationTurn builders.
	ConversationTurn *ConversationTurnClient
	// DecisionLog is the client for interacting with the DecisionLog builders.
	DecisionLog *DecisionLogClient
	// Department is the client for interacting with the Department builders.
	Department *DepartmentClient
	// FeatureFlag is the client for interacting with the FeatureFlag builders.
	FeatureFlag *FeatureFlagClient
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// Insight is the client for interacting with the Insight builders.
	Insight *InsightClient
	// KnowledgeChunk is the client for interacting with the KnowledgeChunk builders.
	KnowledgeChunk *KnowledgeChunkClient
	// Person is the client for interacting with the Person builders.
	Person *PersonClient
	// ScheduledJob is the client for interacting with the ScheduledJob builders.
	ScheduledJob *ScheduledJobClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TenantConfig is the client for interacting with the TenantConfig builders.
	TenantConfig *TenantConfigClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserPreference is the client for interacting with the UserPreference builders.
	UserPreference *UserPreferenceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Announcement = NewAnnouncementClient(c.config)
	c.AnnouncementExecution = NewAnnouncementExecutionClient(c.config)
	c.AnnouncementPattern = NewAnnouncementPatternClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.CeoTeaching = NewCeoTeachingClient(c.config)
	c.ConversationState = NewConversationStateClient(c.config)
	c.ConversationSummary = NewConversationSummaryClient(c.config)
	c.ConversationTurn = NewConversationTurnClient(c.config)
	c.DecisionLog = NewDecisionLogClient(c.config)
	c.Department = NewDepartmentClient(c.config)
	c.FeatureFlag = NewFeatureFlagClient(c.config)
	c.Goal = NewGoalClient(c.config)
	c.Insight = NewInsightClient(c.config)
	c.KnowledgeChunk = NewKnowledgeChunkClient(c.config)
	c.Person = NewPersonClient(c.config)
	c.ScheduledJob = NewScheduledJobClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TenantConfig = NewTenantConfigClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserPreference = NewUserPreferenceClient(c.config)
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
		ctx:                   ctx,
		config:                cfg,
		Announcement:          NewAnnouncementClient(cfg),
		AnnouncementExecution: NewAnnouncementExecutionClient(cfg),
		AnnouncementPattern:   NewAnnouncementPatternClient(cfg),
		AuditLog:              NewAuditLogClient(cfg),
		CeoTeaching:           NewCeoTeachingClient(cfg),
		ConversationState:     NewConversationStateClient(cfg),
		ConversationSummary:   NewConversationSummaryClient(cfg),
		ConversationTurn:      NewConversationTurnClient(cfg),
		DecisionLog:           NewDecisionLogClient(cfg),
		Department:            NewDepartmentClient(cfg),
		FeatureFlag:           NewFeatureFlagClient(cfg),
		Goal:                  NewGoalClient(cfg),
		Insight:               NewInsightClient(cfg),
		KnowledgeChunk:        NewKnowledgeChunkClient(cfg),
		Person:                NewPersonClient(cfg),
		ScheduledJob:          NewScheduledJobClient(cfg),
		Task:                  NewTaskClient(cfg),
		TenantConfig:          NewTenantConfigClient(cfg),
		User:                  NewUserClient(cfg),
		UserPreference:        NewUserPreferenceClient(cfg),
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
		ctx:                   ctx,
		config:                cfg,
		Announcement:          NewAnnouncementClient(cfg),
		AnnouncementExecution: NewAnnouncementExecutionClient(cfg),
		AnnouncementPattern:   NewAnnouncementPatternClient(cfg),
		AuditLog:              NewAuditLogClient(cfg),
		CeoTeaching:           NewCeoTeachingClient(cfg),
		ConversationState:     NewConversationStateClient(cfg),
		ConversationSummary:   NewConversationSummaryClient(cfg),
		ConversationTurn:      NewConversationTurnClient(cfg),
		DecisionLog:           NewDecisionLogClient(cfg),
		Department:            NewDepartmentClient(cfg),
		FeatureFlag:           NewFeatureFlagClient(cfg),
		Goal:                  NewGoalClient(cfg),
		Insight:               NewInsightClient(cfg),
		KnowledgeChunk:        NewKnowledgeChunkClient(cfg),
		Person:                NewPersonClient(cfg),
		ScheduledJob:          NewScheduledJobClient(cfg),
		Task:                  NewTaskClient(cfg),
		TenantConfig:          NewTenantConfigClient(cfg),
		User:                  NewUserClient(cfg),
		UserPreference:        NewUserPreferenceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Announcement.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Announcement, c.AnnouncementExecution, c.AnnouncementPattern, c.AuditLog,
		c.CeoTeaching, c.ConversationState, c.ConversationSummary, c.ConversationTurn,
		c.DecisionLog, c.Department, c.FeatureFlag, c.Goal, c.Insight,
		c.KnowledgeChunk, c.Person, c.ScheduledJob, c.Task, c.TenantConfig, c.User,
		c.UserPreference,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Announcement, c.AnnouncementExecution, c.AnnouncementPattern, c.AuditLog,
		c.CeoTeaching, c.ConversationState, c.ConversationSummary, c.ConversationTurn,
		c.DecisionLog, c.Department, c.FeatureFlag, c.Goal, c.Insight,
		c.KnowledgeChunk, c.Person, c.ScheduledJob, c.Task, c.TenantConfig, c.User,
		c.UserPreference,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnnouncementMutation:
		return c.Announcement.mutate(ctx, m)
	case *AnnouncementExecutionMutation:
		return c.AnnouncementExecution.mutate(ctx, m)
	case *AnnouncementPatternMutation:
		return c.AnnouncementPattern.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *CeoTeachingMutation:
		return c.CeoTeaching.mutate(ctx, m)
	case *ConversationStateMutation:
		return c.ConversationState.mutate(ctx, m)
	case *ConversationSummaryMutation:
		return c.ConversationSummary.mutate(ctx, m)
	case *ConversationTurnMutation:
		return c.ConversationTurn.mutate(ctx, m)
	case *DecisionLogMutation:
		return c.DecisionLog.mutate(ctx, m)
	case *DepartmentMutation:
		return c.Department.mutate(ctx, m)
	case *FeatureFlagMutation:
		return c.FeatureFlag.mutate(ctx, m)
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *InsightMutation:
		return c.Insight.mutate(ctx, m)
	case *KnowledgeChunkMutation:
		return c.KnowledgeChunk.mutate(ctx, m)
	case *PersonMutation:
		return c.Person.mutate(ctx, m)
	case *ScheduledJobMutation:
		return c.ScheduledJob.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TenantConfigMutation:
		return c.TenantConfig.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserPreferenceMutation:
		return c.UserPreference.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnnouncementClient is a client for the Announcement schema.
type AnnouncementClient struct {
	config
}

// NewAnnouncementClient returns a client for the Announcement from the given config.
func NewAnnouncementClient(c config) *AnnouncementClient {
	return &AnnouncementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `announcement.Hooks(f(g(h())))`.
func (c *AnnouncementClient) Use(hooks ...Hook) {
	c.hooks.Announcement = append(c.hooks.Announcement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `announcement.Intercept(f(g(h())))`.
func (c *AnnouncementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Announcement = append(c.inters.Announcement, interceptors...)
}

// Create returns a builder for creating a Announcement entity.
func (c *AnnouncementClient) Create() *AnnouncementCreate {
	mutation := newAnnouncementMutation(c.config, OpCreate)
	return &AnnouncementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Announcement entities.
func (c *AnnouncementClient) CreateBulk(builders ...*AnnouncementCreate) *AnnouncementCreateBulk {
	return &AnnouncementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnouncementClient) MapCreateBulk(slice any, setFunc func(*AnnouncementCreate, int)) *AnnouncementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnouncementCreateBulk{err: fmt.Errorf("calling to AnnouncementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnouncementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnouncementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Announcement.
func (c *AnnouncementClient) Update() *AnnouncementUpdate {
	mutation := newAnnouncementMutation(c.config, OpUpdate)
	return &AnnouncementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnouncementClient) UpdateOne(_m *Announcement) *AnnouncementUpdateOne {
	mutation := newAnnouncementMutation(c.config, OpUpdateOne, withAnnouncement(_m))
	return &AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnouncementClient) UpdateOneID(id string) *AnnouncementUpdateOne {
	mutation := newAnnouncementMutation(c.config, OpUpdateOne, withAnnouncementID(id))
	return &AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Announcement.
func (c *AnnouncementClient) Delete() *AnnouncementDelete {
	mutation := newAnnouncementMutation(c.config, OpDelete)
	return &AnnouncementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnouncementClient) DeleteOne(_m *Announcement) *AnnouncementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnouncementClient) DeleteOneID(id string) *AnnouncementDeleteOne {
	builder := c.Delete().Where(announcement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnouncementDeleteOne{builder}
}

// Query returns a query builder for Announcement.
func (c *AnnouncementClient) Query() *AnnouncementQuery {
	return &AnnouncementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnouncement},
		inters: c.Interceptors(),
	}
}

// Get returns a Announcement entity by its id.
func (c *AnnouncementClient) Get(ctx context.Context, id string) (*Announcement, error) {
	return c.Query().Where(announcement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnouncementClient) GetX(ctx context.Context, id string) *Announcement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a Announcement.
func (c *AnnouncementClient) QueryExecutions(_m *Announcement) *AnnouncementExecutionQuery {
	query := (&AnnouncementExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcement.Table, announcement.FieldID, id),
			sqlgraph.To(announcementexecution.Table, announcementexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, announcement.ExecutionsTable, announcement.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnnouncementClient) Hooks() []Hook {
	return c.hooks.Announcement
}

// Interceptors returns the client interceptors.
func (c *AnnouncementClient) Interceptors() []Interceptor {
	return c.inters.Announcement
}

func (c *AnnouncementClient) mutate(ctx context.Context, m *AnnouncementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnouncementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnouncementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnouncementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Announcement mutation op: %q", m.Op())
	}
}

// AnnouncementExecutionClient is a client for the AnnouncementExecution schema.
type AnnouncementExecutionClient struct {
	config
}

// NewAnnouncementExecutionClient returns a client for the AnnouncementExecution from the given config.
func NewAnnouncementExecutionClient(c config) *AnnouncementExecutionClient {
	return &AnnouncementExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `announcementexecution.Hooks(f(g(h())))`.
func (c *AnnouncementExecutionClient) Use(hooks ...Hook) {
	c.hooks.AnnouncementExecution = append(c.hooks.AnnouncementExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `announcementexecution.Intercept(f(g(h())))`.
func (c *AnnouncementExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnnouncementExecution = append(c.inters.AnnouncementExecution, interceptors...)
}

// Create returns a builder for creating a AnnouncementExecution entity.
func (c *AnnouncementExecutionClient) Create() *AnnouncementExecutionCreate {
	mutation := newAnnouncementExecutionMutation(c.config, OpCreate)
	return &AnnouncementExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnnouncementExecution entities.
func (c *AnnouncementExecutionClient) CreateBulk(builders ...*AnnouncementExecutionCreate) *AnnouncementExecutionCreateBulk {
	return &AnnouncementExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnouncementExecutionClient) MapCreateBulk(slice any, setFunc func(*AnnouncementExecutionCreate, int)) *AnnouncementExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnouncementExecutionCreateBulk{err: fmt.Errorf("calling to AnnouncementExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnouncementExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnouncementExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnnouncementExecution.
func (c *AnnouncementExecutionClient) Update() *AnnouncementExecutionUpdate {
	mutation := newAnnouncementExecutionMutation(c.config, OpUpdate)
	return &AnnouncementExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnouncementExecutionClient) UpdateOne(_m *AnnouncementExecution) *AnnouncementExecutionUpdateOne {
	mutation := newAnnouncementExecutionMutation(c.config, OpUpdateOne, withAnnouncementExecution(_m))
	return &AnnouncementExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnouncementExecutionClient) UpdateOneID(id string) *AnnouncementExecutionUpdateOne {
	mutation := newAnnouncementExecutionMutation(c.config, OpUpdateOne, withAnnouncementExecutionID(id))
	return &AnnouncementExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnnouncementExecution.
func (c *AnnouncementExecutionClient) Delete() *AnnouncementExecutionDelete {
	mutation := newAnnouncementExecutionMutation(c.config, OpDelete)
	return &AnnouncementExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnouncementExecutionClient) DeleteOne(_m *AnnouncementExecution) *AnnouncementExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnouncementExecutionClient) DeleteOneID(id string) *AnnouncementExecutionDeleteOne {
	builder := c.Delete().Where(announcementexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnouncementExecutionDeleteOne{builder}
}

// Query returns a query builder for AnnouncementExecution.
func (c *AnnouncementExecutionClient) Query() *AnnouncementExecutionQuery {
	return &AnnouncementExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnouncementExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AnnouncementExecution entity by its id.
func (c *AnnouncementExecutionClient) Get(ctx context.Context, id string) (*AnnouncementExecution, error) {
	return c.Query().Where(announcementexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnouncementExecutionClient) GetX(ctx context.Context, id string) *AnnouncementExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnnouncement queries the announcement edge of a AnnouncementExecution.
func (c *AnnouncementExecutionClient) QueryAnnouncement(_m *AnnouncementExecution) *AnnouncementQuery {
	query := (&AnnouncementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcementexecution.Table, announcementexecution.FieldID, id),
			sqlgraph.To(announcement.Table, announcement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, announcementexecution.AnnouncementTable, announcementexecution.AnnouncementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnnouncementExecutionClient) Hooks() []Hook {
	return c.hooks.AnnouncementExecution
}

// Interceptors returns the client interceptors.
func (c *AnnouncementExecutionClient) Interceptors() []Interceptor {
	return c.inters.AnnouncementExecution
}

func (c *AnnouncementExecutionClient) mutate(ctx context.Context, m *AnnouncementExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnouncementExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnouncementExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnouncementExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnouncementExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnnouncementExecution mutation op: %q", m.Op())
	}
}

// AnnouncementPatternClient is a client for the AnnouncementPattern schema.
type AnnouncementPatternClient struct {
	config
}

// NewAnnouncementPatternClient returns a client for the AnnouncementPattern from the given config.
func NewAnnouncementPatternClient(c config) *AnnouncementPatternClient {
	return &AnnouncementPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `announcementpattern.Hooks(f(g(h())))`.
func (c *AnnouncementPatternClient) Use(hooks ...Hook) {
	c.hooks.AnnouncementPattern = append(c.hooks.AnnouncementPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `announcementpattern.Intercept(f(g(h())))`.
func (c *AnnouncementPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnnouncementPattern = append(c.inters.AnnouncementPattern, interceptors...)
}

// Create returns a builder for creating a AnnouncementPattern entity.
func (c *AnnouncementPatternClient) Create() *AnnouncementPatternCreate {
	mutation := newAnnouncementPatternMutation(c.config, OpCreate)
	return &AnnouncementPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnnouncementPattern entities.
func (c *AnnouncementPatternClient) CreateBulk(builders ...*AnnouncementPatternCreate) *AnnouncementPatternCreateBulk {
	return &AnnouncementPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnouncementPatternClient) MapCreateBulk(slice any, setFunc func(*AnnouncementPatternCreate, int)) *AnnouncementPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnouncementPatternCreateBulk{err: fmt.Errorf("calling to AnnouncementPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnouncementPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnouncementPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnnouncementPattern.
func (c *AnnouncementPatternClient) Update() *AnnouncementPatternUpdate {
	mutation := newAnnouncementPatternMutation(c.config, OpUpdate)
	return &AnnouncementPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnouncementPatternClient) UpdateOne(_m *AnnouncementPattern) *AnnouncementPatternUpdateOne {
	mutation := newAnnouncementPatternMutation(c.config, OpUpdateOne, withAnnouncementPattern(_m))
	return &AnnouncementPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnouncementPatternClient) UpdateOneID(id string) *AnnouncementPatternUpdateOne {
	mutation := newAnnouncementPatternMutation(c.config, OpUpdateOne, withAnnouncementPatternID(id))
	return &AnnouncementPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnnouncementPattern.
func (c *AnnouncementPatternClient) Delete() *AnnouncementPatternDelete {
	mutation := newAnnouncementPatternMutation(c.config, OpDelete)
	return &AnnouncementPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnouncementPatternClient) DeleteOne(_m *AnnouncementPattern) *AnnouncementPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnouncementPatternClient) DeleteOneID(id string) *AnnouncementPatternDeleteOne {
	builder := c.Delete().Where(announcementpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnouncementPatternDeleteOne{builder}
}

// Query returns a query builder for AnnouncementPattern.
func (c *AnnouncementPatternClient) Query() *AnnouncementPatternQuery {
	return &AnnouncementPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnouncementPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a AnnouncementPattern entity by its id.
func (c *AnnouncementPatternClient) Get(ctx context.Context, id string) (*AnnouncementPattern, error) {
	return c.Query().Where(announcementpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnouncementPatternClient) GetX(ctx context.Context, id string) *AnnouncementPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnnouncementPatternClient) Hooks() []Hook {
	return c.hooks.AnnouncementPattern
}

// Interceptors returns the client interceptors.
func (c *AnnouncementPatternClient) Interceptors() []Interceptor {
	return c.inters.AnnouncementPattern
}

func (c *AnnouncementPatternClient) mutate(ctx context.Context, m *AnnouncementPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnouncementPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnouncementPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnouncementPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnouncementPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnnouncementPattern mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// CeoTeachingClient is a client for the CeoTeaching schema.
type CeoTeachingClient struct {
	config
}

// NewCeoTeachingClient returns a client for the CeoTeaching from the given config.
func NewCeoTeachingClient(c config) *CeoTeachingClient {
	return &CeoTeachingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ceoteaching.Hooks(f(g(h())))`.
func (c *CeoTeachingClient) Use(hooks ...Hook) {
	c.hooks.CeoTeaching = append(c.hooks.CeoTeaching, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ceoteaching.Intercept(f(g(h())))`.
func (c *CeoTeachingClient) Intercept(interceptors ...Interceptor) {
	c.inters.CeoTeaching = append(c.inters.CeoTeaching, interceptors...)
}

// Create returns a builder for creating a CeoTeaching entity.
func (c *CeoTeachingClient) Create() *CeoTeachingCreate {
	mutation := newCeoTeachingMutation(c.config, OpCreate)
	return &CeoTeachingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CeoTeaching entities.
func (c *CeoTeachingClient) CreateBulk(builders ...*CeoTeachingCreate) *CeoTeachingCreateBulk {
	return &CeoTeachingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CeoTeachingClient) MapCreateBulk(slice any, setFunc func(*CeoTeachingCreate, int)) *CeoTeachingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CeoTeachingCreateBulk{err: fmt.Errorf("calling to CeoTeachingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CeoTeachingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CeoTeachingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CeoTeaching.
func (c *CeoTeachingClient) Update() *CeoTeachingUpdate {
	mutation := newCeoTeachingMutation(c.config, OpUpdate)
	return &CeoTeachingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CeoTeachingClient) UpdateOne(_m *CeoTeaching) *CeoTeachingUpdateOne {
	mutation := newCeoTeachingMutation(c.config, OpUpdateOne, withCeoTeaching(_m))
	return &CeoTeachingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CeoTeachingClient) UpdateOneID(id string) *CeoTeachingUpdateOne {
	mutation := newCeoTeachingMutation(c.config, OpUpdateOne, withCeoTeachingID(id))
	return &CeoTeachingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CeoTeaching.
func (c *CeoTeachingClient) Delete() *CeoTeachingDelete {
	mutation := newCeoTeachingMutation(c.config, OpDelete)
	return &CeoTeachingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CeoTeachingClient) DeleteOne(_m *CeoTeaching) *CeoTeachingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CeoTeachingClient) DeleteOneID(id string) *CeoTeachingDeleteOne {
	builder := c.Delete().Where(ceoteaching.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CeoTeachingDeleteOne{builder}
}

// Query returns a query builder for CeoTeaching.
func (c *CeoTeachingClient) Query() *CeoTeachingQuery {
	return &CeoTeachingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCeoTeaching},
		inters: c.Interceptors(),
	}
}

// Get returns a CeoTeaching entity by its id.
func (c *CeoTeachingClient) Get(ctx context.Context, id string) (*CeoTeaching, error) {
	return c.Query().Where(ceoteaching.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CeoTeachingClient) GetX(ctx context.Context, id string) *CeoTeaching {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CeoTeachingClient) Hooks() []Hook {
	return c.hooks.CeoTeaching
}

// Interceptors returns the client interceptors.
func (c *CeoTeachingClient) Interceptors() []Interceptor {
	return c.inters.CeoTeaching
}

func (c *CeoTeachingClient) mutate(ctx context.Context, m *CeoTeachingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CeoTeachingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CeoTeachingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CeoTeachingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CeoTeachingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CeoTeaching mutation op: %q", m.Op())
	}
}

// ConversationStateClient is a client for the ConversationState schema.
type ConversationStateClient struct {
	config
}

// NewConversationStateClient returns a client for the ConversationState from the given config.
func NewConversationStateClient(c config) *ConversationStateClient {
	return &ConversationStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationstate.Hooks(f(g(h())))`.
func (c *ConversationStateClient) Use(hooks ...Hook) {
	c.hooks.ConversationState = append(c.hooks.ConversationState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationstate.Intercept(f(g(h())))`.
func (c *ConversationStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationState = append(c.inters.ConversationState, interceptors...)
}

// Create returns a builder for creating a ConversationState entity.
func (c *ConversationStateClient) Create() *ConversationStateCreate {
	mutation := newConversationStateMutation(c.config, OpCreate)
	return &ConversationStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationState entities.
func (c *ConversationStateClient) CreateBulk(builders ...*ConversationStateCreate) *ConversationStateCreateBulk {
	return &ConversationStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationStateClient) MapCreateBulk(slice any, setFunc func(*ConversationStateCreate, int)) *ConversationStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationStateCreateBulk{err: fmt.Errorf("calling to ConversationStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationState.
func (c *ConversationStateClient) Update() *ConversationStateUpdate {
	mutation := newConversationStateMutation(c.config, OpUpdate)
	return &ConversationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationStateClient) UpdateOne(_m *ConversationState) *ConversationStateUpdateOne {
	mutation := newConversationStateMutation(c.config, OpUpdateOne, withConversationState(_m))
	return &ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationStateClient) UpdateOneID(id string) *ConversationStateUpdateOne {
	mutation := newConversationStateMutation(c.config, OpUpdateOne, withConversationStateID(id))
	return &ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationState.
func (c *ConversationStateClient) Delete() *ConversationStateDelete {
	mutation := newConversationStateMutation(c.config, OpDelete)
	return &ConversationStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationStateClient) DeleteOne(_m *ConversationState) *ConversationStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationStateClient) DeleteOneID(id string) *ConversationStateDeleteOne {
	builder := c.Delete().Where(conversationstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationStateDeleteOne{builder}
}

// Query returns a query builder for ConversationState.
func (c *ConversationStateClient) Query() *ConversationStateQuery {
	return &ConversationStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationState},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationState entity by its id.
func (c *ConversationStateClient) Get(ctx context.Context, id string) (*ConversationState, error) {
	return c.Query().Where(conversationstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationStateClient) GetX(ctx context.Context, id string) *ConversationState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationStateClient) Hooks() []Hook {
	return c.hooks.ConversationState
}

// Interceptors returns the client interceptors.
func (c *ConversationStateClient) Interceptors() []Interceptor {
	return c.inters.ConversationState
}

func (c *ConversationStateClient) mutate(ctx context.Context, m *ConversationStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationState mutation op: %q", m.Op())
	}
}

// ConversationSummaryClient is a client for the ConversationSummary schema.
type ConversationSummaryClient struct {
	config
}

// NewConversationSummaryClient returns a client for the ConversationSummary from the given config.
func NewConversationSummaryClient(c config) *ConversationSummaryClient {
	return &ConversationSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationsummary.Hooks(f(g(h())))`.
func (c *ConversationSummaryClient) Use(hooks ...Hook) {
	c.hooks.ConversationSummary = append(c.hooks.ConversationSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationsummary.Intercept(f(g(h())))`.
func (c *ConversationSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationSummary = append(c.inters.ConversationSummary, interceptors...)
}

// Create returns a builder for creating a ConversationSummary entity.
func (c *ConversationSummaryClient) Create() *ConversationSummaryCreate {
	mutation := newConversationSummaryMutation(c.config, OpCreate)
	return &ConversationSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationSummary entities.
func (c *ConversationSummaryClient) CreateBulk(builders ...*ConversationSummaryCreate) *ConversationSummaryCreateBulk {
	return &ConversationSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationSummaryClient) MapCreateBulk(slice any, setFunc func(*ConversationSummaryCreate, int)) *ConversationSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationSummaryCreateBulk{err: fmt.Errorf("calling to ConversationSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationSummary.
func (c *ConversationSummaryClient) Update() *ConversationSummaryUpdate {
	mutation := newConversationSummaryMutation(c.config, OpUpdate)
	return &ConversationSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationSummaryClient) UpdateOne(_m *ConversationSummary) *ConversationSummaryUpdateOne {
	mutation := newConversationSummaryMutation(c.config, OpUpdateOne, withConversationSummary(_m))
	return &ConversationSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationSummaryClient) UpdateOneID(id string) *ConversationSummaryUpdateOne {
	mutation := newConversationSummaryMutation(c.config, OpUpdateOne, withConversationSummaryID(id))
	return &ConversationSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationSummary.
func (c *ConversationSummaryClient) Delete() *ConversationSummaryDelete {
	mutation := newConversationSummaryMutation(c.config, OpDelete)
	return &ConversationSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationSummaryClient) DeleteOne(_m *ConversationSummary) *ConversationSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationSummaryClient) DeleteOneID(id string) *ConversationSummaryDeleteOne {
	builder := c.Delete().Where(conversationsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationSummaryDeleteOne{builder}
}

// Query returns a query builder for ConversationSummary.
func (c *ConversationSummaryClient) Query() *ConversationSummaryQuery {
	return &ConversationSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationSummary entity by its id.
func (c *ConversationSummaryClient) Get(ctx context.Context, id string) (*ConversationSummary, error) {
	return c.Query().Where(conversationsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationSummaryClient) GetX(ctx context.Context, id string) *ConversationSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationSummaryClient) Hooks() []Hook {
	return c.hooks.ConversationSummary
}

// Interceptors returns the client interceptors.
func (c *ConversationSummaryClient) Interceptors() []Interceptor {
	return c.inters.ConversationSummary
}

func (c *ConversationSummaryClient) mutate(ctx context.Context, m *ConversationSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationSummary mutation op: %q", m.Op())
	}
}

// ConversationTurnClient is a client for the ConversationTurn schema.
type ConversationTurnClient struct {
	config
}

// NewConversationTurnClient returns a client for the ConversationTurn from the given config.
func NewConversationTurnClient(c config) *ConversationTurnClient {
	return &ConversationTurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationturn.Hooks(f(g(h())))`.
func (c *ConversationTurnClient) Use(hooks ...Hook) {
	c.hooks.ConversationTurn = append(c.hooks.ConversationTurn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationturn.Intercept(f(g(h())))`.
func (c *ConversationTurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationTurn = append(c.inters.ConversationTurn, interceptors...)
}

// Create returns a builder for creating a ConversationTurn entity.
func (c *ConversationTurnClient) Create() *ConversationTurnCreate {
	mutation := newConversationTurnMutation(c.config, OpCreate)
	return &ConversationTurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationTurn entities.
func (c *ConversationTurnClient) CreateBulk(builders ...*ConversationTurnCreate) *ConversationTurnCreateBulk {
	return &ConversationTurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationTurnClient) MapCreateBulk(slice any, setFunc func(*ConversationTurnCreate, int)) *ConversationTurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationTurnCreateBulk{err: fmt.Errorf("calling to ConversationTurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationTurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationTurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationTurn.
func (c *ConversationTurnClient) Update() *ConversationTurnUpdate {
	mutation := newConversationTurnMutation(c.config, OpUpdate)
	return &ConversationTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationTurnClient) UpdateOne(_m *ConversationTurn) *ConversationTurnUpdateOne {
	mutation := newConversationTurnMutation(c.config, OpUpdateOne, withConversationTurn(_m))
	return &ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationTurnClient) UpdateOneID(id string) *ConversationTurnUpdateOne {
	mutation := newConversationTurnMutation(c.config, OpUpdateOne, withConversationTurnID(id))
	return &ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationTurn.
func (c *ConversationTurnClient) Delete() *ConversationTurnDelete {
	mutation := newConversationTurnMutation(c.config, OpDelete)
	return &ConversationTurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationTurnClient) DeleteOne(_m *ConversationTurn) *ConversationTurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationTurnClient) DeleteOneID(id string) *ConversationTurnDeleteOne {
	builder := c.Delete().Where(conversationturn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationTurnDeleteOne{builder}
}

// Query returns a query builder for ConversationTurn.
func (c *ConversationTurnClient) Query() *ConversationTurnQuery {
	return &ConversationTurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationTurn entity by its id.
func (c *ConversationTurnClient) Get(ctx context.Context, id string) (*ConversationTurn, error) {
	return c.Query().Where(conversationturn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationTurnClient) GetX(ctx context.Context, id string) *ConversationTurn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationTurnClient) Hooks() []Hook {
	return c.hooks.ConversationTurn
}

// Interceptors returns the client interceptors.
func (c *ConversationTurnClient) Interceptors() []Interceptor {
	return c.inters.ConversationTurn
}

func (c *ConversationTurnClient) mutate(ctx context.Context, m *ConversationTurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationTurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationTurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationTurn mutation op: %q", m.Op())
	}
}

// DecisionLogClient is a client for the DecisionLog schema.
type DecisionLogClient struct {
	config
}

// NewDecisionLogClient returns a client for the DecisionLog from the given config.
func NewDecisionLogClient(c config) *DecisionLogClient {
	return &DecisionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionlog.Hooks(f(g(h())))`.
func (c *DecisionLogClient) Use(hooks ...Hook) {
	c.hooks.DecisionLog = append(c.hooks.DecisionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionlog.Intercept(f(g(h())))`.
func (c *DecisionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionLog = append(c.inters.DecisionLog, interceptors...)
}

// Create returns a builder for creating a DecisionLog entity.
func (c *DecisionLogClient) Create() *DecisionLogCreate {
	mutation := newDecisionLogMutation(c.config, OpCreate)
	return &DecisionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionLog entities.
func (c *DecisionLogClient) CreateBulk(builders ...*DecisionLogCreate) *DecisionLogCreateBulk {
	return &DecisionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionLogClient) MapCreateBulk(slice any, setFunc func(*DecisionLogCreate, int)) *DecisionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionLogCreateBulk{err: fmt.Errorf("calling to DecisionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionLog.
func (c *DecisionLogClient) Update() *DecisionLogUpdate {
	mutation := newDecisionLogMutation(c.config, OpUpdate)
	return &DecisionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionLogClient) UpdateOne(_m *DecisionLog) *DecisionLogUpdateOne {
	mutation := newDecisionLogMutation(c.config, OpUpdateOne, withDecisionLog(_m))
	return &DecisionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionLogClient) UpdateOneID(id string) *DecisionLogUpdateOne {
	mutation := newDecisionLogMutation(c.config, OpUpdateOne, withDecisionLogID(id))
	return &DecisionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionLog.
func (c *DecisionLogClient) Delete() *DecisionLogDelete {
	mutation := newDecisionLogMutation(c.config, OpDelete)
	return &DecisionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionLogClient) DeleteOne(_m *DecisionLog) *DecisionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionLogClient) DeleteOneID(id string) *DecisionLogDeleteOne {
	builder := c.Delete().Where(decisionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionLogDeleteOne{builder}
}

// Query returns a query builder for DecisionLog.
func (c *DecisionLogClient) Query() *DecisionLogQuery {
	return &DecisionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionLog entity by its id.
func (c *DecisionLogClient) Get(ctx context.Context, id string) (*DecisionLog, error) {
	return c.Query().Where(decisionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionLogClient) GetX(ctx context.Context, id string) *DecisionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DecisionLogClient) Hooks() []Hook {
	return c.hooks.DecisionLog
}

// Interceptors returns the client interceptors.
func (c *DecisionLogClient) Interceptors() []Interceptor {
	return c.inters.DecisionLog
}

func (c *DecisionLogClient) mutate(ctx context.Context, m *DecisionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionLog mutation op: %q", m.Op())
	}
}

// DepartmentClient is a client for the Department schema.
type DepartmentClient struct {
	config
}

// NewDepartmentClient returns a client for the Department from the given config.
func NewDepartmentClient(c config) *DepartmentClient {
	return &DepartmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `department.Hooks(f(g(h())))`.
func (c *DepartmentClient) Use(hooks ...Hook) {
	c.hooks.Department = append(c.hooks.Department, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `department.Intercept(f(g(h())))`.
func (c *DepartmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Department = append(c.inters.Department, interceptors...)
}

// Create returns a builder for creating a Department entity.
func (c *DepartmentClient) Create() *DepartmentCreate {
	mutation := newDepartmentMutation(c.config, OpCreate)
	return &DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Department entities.
func (c *DepartmentClient) CreateBulk(builders ...*DepartmentCreate) *DepartmentCreateBulk {
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DepartmentClient) MapCreateBulk(slice any, setFunc func(*DepartmentCreate, int)) *DepartmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DepartmentCreateBulk{err: fmt.Errorf("calling to DepartmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DepartmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Department.
func (c *DepartmentClient) Update() *DepartmentUpdate {
	mutation := newDepartmentMutation(c.config, OpUpdate)
	return &DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DepartmentClient) UpdateOne(_m *Department) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartment(_m))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DepartmentClient) UpdateOneID(id string) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartmentID(id))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Department.
func (c *DepartmentClient) Delete() *DepartmentDelete {
	mutation := newDepartmentMutation(c.config, OpDelete)
	return &DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DepartmentClient) DeleteOne(_m *Department) *DepartmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DepartmentClient) DeleteOneID(id string) *DepartmentDeleteOne {
	builder := c.Delete().Where(department.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DepartmentDeleteOne{builder}
}

// Query returns a query builder for Department.
func (c *DepartmentClient) Query() *DepartmentQuery {
	return &DepartmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDepartment},
		inters: c.Interceptors(),
	}
}

// Get returns a Department entity by its id.
func (c *DepartmentClient) Get(ctx context.Context, id string) (*Department, error) {
	return c.Query().Where(department.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DepartmentClient) GetX(ctx context.Context, id string) *Department {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DepartmentClient) Hooks() []Hook {
	return c.hooks.Department
}

// Interceptors returns the client interceptors.
func (c *DepartmentClient) Interceptors() []Interceptor {
	return c.inters.Department
}

func (c *DepartmentClient) mutate(ctx context.Context, m *DepartmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Department mutation op: %q", m.Op())
	}
}

// FeatureFlagClient is a client for the FeatureFlag schema.
type FeatureFlagClient struct {
	config
}

// NewFeatureFlagClient returns a client for the FeatureFlag from the given config.
func NewFeatureFlagClient(c config) *FeatureFlagClient {
	return &FeatureFlagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `featureflag.Hooks(f(g(h())))`.
func (c *FeatureFlagClient) Use(hooks ...Hook) {
	c.hooks.FeatureFlag = append(c.hooks.FeatureFlag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `featureflag.Intercept(f(g(h())))`.
func (c *FeatureFlagClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeatureFlag = append(c.inters.FeatureFlag, interceptors...)
}

// Create returns a builder for creating a FeatureFlag entity.
func (c *FeatureFlagClient) Create() *FeatureFlagCreate {
	mutation := newFeatureFlagMutation(c.config, OpCreate)
	return &FeatureFlagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeatureFlag entities.
func (c *FeatureFlagClient) CreateBulk(builders ...*FeatureFlagCreate) *FeatureFlagCreateBulk {
	return &FeatureFlagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeatureFlagClient) MapCreateBulk(slice any, setFunc func(*FeatureFlagCreate, int)) *FeatureFlagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeatureFlagCreateBulk{err: fmt.Errorf("calling to FeatureFlagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeatureFlagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeatureFlagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeatureFlag.
func (c *FeatureFlagClient) Update() *FeatureFlagUpdate {
	mutation := newFeatureFlagMutation(c.config, OpUpdate)
	return &FeatureFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeatureFlagClient) UpdateOne(_m *FeatureFlag) *FeatureFlagUpdateOne {
	mutation := newFeatureFlagMutation(c.config, OpUpdateOne, withFeatureFlag(_m))
	return &FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeatureFlagClient) UpdateOneID(id string) *FeatureFlagUpdateOne {
	mutation := newFeatureFlagMutation(c.config, OpUpdateOne, withFeatureFlagID(id))
	return &FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeatureFlag.
func (c *FeatureFlagClient) Delete() *FeatureFlagDelete {
	mutation := newFeatureFlagMutation(c.config, OpDelete)
	return &FeatureFlagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeatureFlagClient) DeleteOne(_m *FeatureFlag) *FeatureFlagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeatureFlagClient) DeleteOneID(id string) *FeatureFlagDeleteOne {
	builder := c.Delete().Where(featureflag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeatureFlagDeleteOne{builder}
}

// Query returns a query builder for FeatureFlag.
func (c *FeatureFlagClient) Query() *FeatureFlagQuery {
	return &FeatureFlagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeatureFlag},
		inters: c.Interceptors(),
	}
}

// Get returns a FeatureFlag entity by its id.
func (c *FeatureFlagClient) Get(ctx context.Context, id string) (*FeatureFlag, error) {
	return c.Query().Where(featureflag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeatureFlagClient) GetX(ctx context.Context, id string) *FeatureFlag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeatureFlagClient) Hooks() []Hook {
	return c.hooks.FeatureFlag
}

// Interceptors returns the client interceptors.
func (c *FeatureFlagClient) Interceptors() []Interceptor {
	return c.inters.FeatureFlag
}

func (c *FeatureFlagClient) mutate(ctx context.Context, m *FeatureFlagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeatureFlagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeatureFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeatureFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeatureFlagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeatureFlag mutation op: %q", m.Op())
	}
}

// GoalClient is a client for the Goal schema.
type GoalClient struct {
	config
}

// NewGoalClient returns a client for the Goal from the given config.
func NewGoalClient(c config) *GoalClient {
	return &GoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goal.Hooks(f(g(h())))`.
func (c *GoalClient) Use(hooks ...Hook) {
	c.hooks.Goal = append(c.hooks.Goal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goal.Intercept(f(g(h())))`.
func (c *GoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Goal = append(c.inters.Goal, interceptors...)
}

// Create returns a builder for creating a Goal entity.
func (c *GoalClient) Create() *GoalCreate {
	mutation := newGoalMutation(c.config, OpCreate)
	return &GoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Goal entities.
func (c *GoalClient) CreateBulk(builders ...*GoalCreate) *GoalCreateBulk {
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalClient) MapCreateBulk(slice any, setFunc func(*GoalCreate, int)) *GoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalCreateBulk{err: fmt.Errorf("calling to GoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Goal.
func (c *GoalClient) Update() *GoalUpdate {
	mutation := newGoalMutation(c.config, OpUpdate)
	return &GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalClient) UpdateOne(_m *Goal) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoal(_m))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalClient) UpdateOneID(id string) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoalID(id))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Goal.
func (c *GoalClient) Delete() *GoalDelete {
	mutation := newGoalMutation(c.config, OpDelete)
	return &GoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalClient) DeleteOne(_m *Goal) *GoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalClient) DeleteOneID(id string) *GoalDeleteOne {
	builder := c.Delete().Where(goal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalDeleteOne{builder}
}

// Query returns a query builder for Goal.
func (c *GoalClient) Query() *GoalQuery {
	return &GoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a Goal entity by its id.
func (c *GoalClient) Get(ctx context.Context, id string) (*Goal, error) {
	return c.Query().Where(goal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalClient) GetX(ctx context.Context, id string) *Goal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GoalClient) Hooks() []Hook {
	return c.hooks.Goal
}

// Interceptors returns the client interceptors.
func (c *GoalClient) Interceptors() []Interceptor {
	return c.inters.Goal
}

func (c *GoalClient) mutate(ctx context.Context, m *GoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Goal mutation op: %q", m.Op())
	}
}

// InsightClient is a client for the Insight schema.
type InsightClient struct {
	config
}

// NewInsightClient returns a client for the Insight from the given config.
func NewInsightClient(c config) *InsightClient {
	return &InsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insight.Hooks(f(g(h())))`.
func (c *InsightClient) Use(hooks ...Hook) {
	c.hooks.Insight = append(c.hooks.Insight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insight.Intercept(f(g(h())))`.
func (c *InsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insight = append(c.inters.Insight, interceptors...)
}

// Create returns a builder for creating a Insight entity.
func (c *InsightClient) Create() *InsightCreate {
	mutation := newInsightMutation(c.config, OpCreate)
	return &InsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insight entities.
func (c *InsightClient) CreateBulk(builders ...*InsightCreate) *InsightCreateBulk {
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightClient) MapCreateBulk(slice any, setFunc func(*InsightCreate, int)) *InsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightCreateBulk{err: fmt.Errorf("calling to InsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insight.
func (c *InsightClient) Update() *InsightUpdate {
	mutation := newInsightMutation(c.config, OpUpdate)
	return &InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightClient) UpdateOne(_m *Insight) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsight(_m))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightClient) UpdateOneID(id string) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsightID(id))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insight.
func (c *InsightClient) Delete() *InsightDelete {
	mutation := newInsightMutation(c.config, OpDelete)
	return &InsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightClient) DeleteOne(_m *Insight) *InsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightClient) DeleteOneID(id string) *InsightDeleteOne {
	builder := c.Delete().Where(insight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightDeleteOne{builder}
}

// Query returns a query builder for Insight.
func (c *InsightClient) Query() *InsightQuery {
	return &InsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a Insight entity by its id.
func (c *InsightClient) Get(ctx context.Context, id string) (*Insight, error) {
	return c.Query().Where(insight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightClient) GetX(ctx context.Context, id string) *Insight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InsightClient) Hooks() []Hook {
	return c.hooks.Insight
}

// Interceptors returns the client interceptors.
func (c *InsightClient) Interceptors() []Interceptor {
	return c.inters.Insight
}

func (c *InsightClient) mutate(ctx context.Context, m *InsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insight mutation op: %q", m.Op())
	}
}

// KnowledgeChunkClient is a client for the KnowledgeChunk schema.
type KnowledgeChunkClient struct {
	config
}

// NewKnowledgeChunkClient returns a client for the KnowledgeChunk from the given config.
func NewKnowledgeChunkClient(c config) *KnowledgeChunkClient {
	return &KnowledgeChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgechunk.Hooks(f(g(h())))`.
func (c *KnowledgeChunkClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeChunk = append(c.hooks.KnowledgeChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgechunk.Intercept(f(g(h())))`.
func (c *KnowledgeChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeChunk = append(c.inters.KnowledgeChunk, interceptors...)
}

// Create returns a builder for creating a KnowledgeChunk entity.
func (c *KnowledgeChunkClient) Create() *KnowledgeChunkCreate {
	mutation := newKnowledgeChunkMutation(c.config, OpCreate)
	return &KnowledgeChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeChunk entities.
func (c *KnowledgeChunkClient) CreateBulk(builders ...*KnowledgeChunkCreate) *KnowledgeChunkCreateBulk {
	return &KnowledgeChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeChunkClient) MapCreateBulk(slice any, setFunc func(*KnowledgeChunkCreate, int)) *KnowledgeChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeChunkCreateBulk{err: fmt.Errorf("calling to KnowledgeChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Update() *KnowledgeChunkUpdate {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdate)
	return &KnowledgeChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeChunkClient) UpdateOne(_m *KnowledgeChunk) *KnowledgeChunkUpdateOne {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdateOne, withKnowledgeChunk(_m))
	return &KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeChunkClient) UpdateOneID(id string) *KnowledgeChunkUpdateOne {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdateOne, withKnowledgeChunkID(id))
	return &KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Delete() *KnowledgeChunkDelete {
	mutation := newKnowledgeChunkMutation(c.config, OpDelete)
	return &KnowledgeChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeChunkClient) DeleteOne(_m *KnowledgeChunk) *KnowledgeChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeChunkClient) DeleteOneID(id string) *KnowledgeChunkDeleteOne {
	builder := c.Delete().Where(knowledgechunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeChunkDeleteOne{builder}
}

// Query returns a query builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Query() *KnowledgeChunkQuery {
	return &KnowledgeChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeChunk entity by its id.
func (c *KnowledgeChunkClient) Get(ctx context.Context, id string) (*KnowledgeChunk, error) {
	return c.Query().Where(knowledgechunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeChunkClient) GetX(ctx context.Context, id string) *KnowledgeChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KnowledgeChunkClient) Hooks() []Hook {
	return c.hooks.KnowledgeChunk
}

// Interceptors returns the client interceptors.
func (c *KnowledgeChunkClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeChunk
}

func (c *KnowledgeChunkClient) mutate(ctx context.Context, m *KnowledgeChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeChunk mutation op: %q", m.Op())
	}
}

// PersonClient is a client for the Person schema.
type PersonClient struct {
	config
}

// NewPersonClient returns a client for the Person from the given config.
func NewPersonClient(c config) *PersonClient {
	return &PersonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `person.Hooks(f(g(h())))`.
func (c *PersonClient) Use(hooks ...Hook) {
	c.hooks.Person = append(c.hooks.Person, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `person.Intercept(f(g(h())))`.
func (c *PersonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Person = append(c.inters.Person, interceptors...)
}

// Create returns a builder for creating a Person entity.
func (c *PersonClient) Create() *PersonCreate {
	mutation := newPersonMutation(c.config, OpCreate)
	return &PersonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Person entities.
func (c *PersonClient) CreateBulk(builders ...*PersonCreate) *PersonCreateBulk {
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonClient) MapCreateBulk(slice any, setFunc func(*PersonCreate, int)) *PersonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonCreateBulk{err: fmt.Errorf("calling to PersonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Person.
func (c *PersonClient) Update() *PersonUpdate {
	mutation := newPersonMutation(c.config, OpUpdate)
	return &PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonClient) UpdateOne(_m *Person) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPerson(_m))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonClient) UpdateOneID(id string) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPersonID(id))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Person.
func (c *PersonClient) Delete() *PersonDelete {
	mutation := newPersonMutation(c.config, OpDelete)
	return &PersonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonClient) DeleteOne(_m *Person) *PersonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonClient) DeleteOneID(id string) *PersonDeleteOne {
	builder := c.Delete().Where(person.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonDeleteOne{builder}
}

// Query returns a query builder for Person.
func (c *PersonClient) Query() *PersonQuery {
	return &PersonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerson},
		inters: c.Interceptors(),
	}
}

// Get returns a Person entity by its id.
func (c *PersonClient) Get(ctx context.Context, id string) (*Person, error) {
	return c.Query().Where(person.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonClient) GetX(ctx context.Context, id string) *Person {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonClient) Hooks() []Hook {
	return c.hooks.Person
}

// Interceptors returns the client interceptors.
func (c *PersonClient) Interceptors() []Interceptor {
	return c.inters.Person
}

func (c *PersonClient) mutate(ctx context.Context, m *PersonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Person mutation op: %q", m.Op())
	}
}

// ScheduledJobClient is a client for the ScheduledJob schema.
type ScheduledJobClient struct {
	config
}

// NewScheduledJobClient returns a client for the ScheduledJob from the given config.
func NewScheduledJobClient(c config) *ScheduledJobClient {
	return &ScheduledJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledjob.Hooks(f(g(h())))`.
func (c *ScheduledJobClient) Use(hooks ...Hook) {
	c.hooks.ScheduledJob = append(c.hooks.ScheduledJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledjob.Intercept(f(g(h())))`.
func (c *ScheduledJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledJob = append(c.inters.ScheduledJob, interceptors...)
}

// Create returns a builder for creating a ScheduledJob entity.
func (c *ScheduledJobClient) Create() *ScheduledJobCreate {
	mutation := newScheduledJobMutation(c.config, OpCreate)
	return &ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledJob entities.
func (c *ScheduledJobClient) CreateBulk(builders ...*ScheduledJobCreate) *ScheduledJobCreateBulk {
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledJobClient) MapCreateBulk(slice any, setFunc func(*ScheduledJobCreate, int)) *ScheduledJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledJobCreateBulk{err: fmt.Errorf("calling to ScheduledJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledJob.
func (c *ScheduledJobClient) Update() *ScheduledJobUpdate {
	mutation := newScheduledJobMutation(c.config, OpUpdate)
	return &ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledJobClient) UpdateOne(_m *ScheduledJob) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJob(_m))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledJobClient) UpdateOneID(id string) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJobID(id))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledJob.
func (c *ScheduledJobClient) Delete() *ScheduledJobDelete {
	mutation := newScheduledJobMutation(c.config, OpDelete)
	return &ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledJobClient) DeleteOne(_m *ScheduledJob) *ScheduledJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledJobClient) DeleteOneID(id string) *ScheduledJobDeleteOne {
	builder := c.Delete().Where(scheduledjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledJobDeleteOne{builder}
}

// Query returns a query builder for ScheduledJob.
func (c *ScheduledJobClient) Query() *ScheduledJobQuery {
	return &ScheduledJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledJob entity by its id.
func (c *ScheduledJobClient) Get(ctx context.Context, id string) (*ScheduledJob, error) {
	return c.Query().Where(scheduledjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledJobClient) GetX(ctx context.Context, id string) *ScheduledJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledJobClient) Hooks() []Hook {
	return c.hooks.ScheduledJob
}

// Interceptors returns the client interceptors.
func (c *ScheduledJobClient) Interceptors() []Interceptor {
	return c.inters.ScheduledJob
}

func (c *ScheduledJobClient) mutate(ctx context.Context, m *ScheduledJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledJob mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TenantConfigClient is a client for the TenantConfig schema.
type TenantConfigClient struct {
	config
}

// NewTenantConfigClient returns a client for the TenantConfig from the given config.
func NewTenantConfigClient(c config) *TenantConfigClient {
	return &TenantConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantconfig.Hooks(f(g(h())))`.
func (c *TenantConfigClient) Use(hooks ...Hook) {
	c.hooks.TenantConfig = append(c.hooks.TenantConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantconfig.Intercept(f(g(h())))`.
func (c *TenantConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantConfig = append(c.inters.TenantConfig, interceptors...)
}

// Create returns a builder for creating a TenantConfig entity.
func (c *TenantConfigClient) Create() *TenantConfigCreate {
	mutation := newTenantConfigMutation(c.config, OpCreate)
	return &TenantConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantConfig entities.
func (c *TenantConfigClient) CreateBulk(builders ...*TenantConfigCreate) *TenantConfigCreateBulk {
	return &TenantConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantConfigClient) MapCreateBulk(slice any, setFunc func(*TenantConfigCreate, int)) *TenantConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantConfigCreateBulk{err: fmt.Errorf("calling to TenantConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantConfig.
func (c *TenantConfigClient) Update() *TenantConfigUpdate {
	mutation := newTenantConfigMutation(c.config, OpUpdate)
	return &TenantConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantConfigClient) UpdateOne(_m *TenantConfig) *TenantConfigUpdateOne {
	mutation := newTenantConfigMutation(c.config, OpUpdateOne, withTenantConfig(_m))
	return &TenantConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantConfigClient) UpdateOneID(id string) *TenantConfigUpdateOne {
	mutation := newTenantConfigMutation(c.config, OpUpdateOne, withTenantConfigID(id))
	return &TenantConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantConfig.
func (c *TenantConfigClient) Delete() *TenantConfigDelete {
	mutation := newTenantConfigMutation(c.config, OpDelete)
	return &TenantConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantConfigClient) DeleteOne(_m *TenantConfig) *TenantConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantConfigClient) DeleteOneID(id string) *TenantConfigDeleteOne {
	builder := c.Delete().Where(tenantconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantConfigDeleteOne{builder}
}

// Query returns a query builder for TenantConfig.
func (c *TenantConfigClient) Query() *TenantConfigQuery {
	return &TenantConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantConfig entity by its id.
func (c *TenantConfigClient) Get(ctx context.Context, id string) (*TenantConfig, error) {
	return c.Query().Where(tenantconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantConfigClient) GetX(ctx context.Context, id string) *TenantConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantConfigClient) Hooks() []Hook {
	return c.hooks.TenantConfig
}

// Interceptors returns the client interceptors.
func (c *TenantConfigClient) Interceptors() []Interceptor {
	return c.inters.TenantConfig
}

func (c *TenantConfigClient) mutate(ctx context.Context, m *TenantConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantConfig mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserPreferenceClient is a client for the UserPreference schema.
type UserPreferenceClient struct {
	config
}

// NewUserPreferenceClient returns a client for the UserPreference from the given config.
func NewUserPreferenceClient(c config) *UserPreferenceClient {
	return &UserPreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userpreference.Hooks(f(g(h())))`.
func (c *UserPreferenceClient) Use(hooks ...Hook) {
	c.hooks.UserPreference = append(c.hooks.UserPreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userpreference.Intercept(f(g(h())))`.
func (c *UserPreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserPreference = append(c.inters.UserPreference, interceptors...)
}

// Create returns a builder for creating a UserPreference entity.
func (c *UserPreferenceClient) Create() *UserPreferenceCreate {
	mutation := newUserPreferenceMutation(c.config, OpCreate)
	return &UserPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserPreference entities.
func (c *UserPreferenceClient) CreateBulk(builders ...*UserPreferenceCreate) *UserPreferenceCreateBulk {
	return &UserPreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserPreferenceClient) MapCreateBulk(slice any, setFunc func(*UserPreferenceCreate, int)) *UserPreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserPreferenceCreateBulk{err: fmt.Errorf("calling to UserPreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserPreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserPreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserPreference.
func (c *UserPreferenceClient) Update() *UserPreferenceUpdate {
	mutation := newUserPreferenceMutation(c.config, OpUpdate)
	return &UserPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserPreferenceClient) UpdateOne(_m *UserPreference) *UserPreferenceUpdateOne {
	mutation := newUserPreferenceMutation(c.config, OpUpdateOne, withUserPreference(_m))
	return &UserPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserPreferenceClient) UpdateOneID(id string) *UserPreferenceUpdateOne {
	mutation := newUserPreferenceMutation(c.config, OpUpdateOne, withUserPreferenceID(id))
	return &UserPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserPreference.
func (c *UserPreferenceClient) Delete() *UserPreferenceDelete {
	mutation := newUserPreferenceMutation(c.config, OpDelete)
	return &UserPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserPreferenceClient) DeleteOne(_m *UserPreference) *UserPreferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserPreferenceClient) DeleteOneID(id string) *UserPreferenceDeleteOne {
	builder := c.Delete().Where(userpreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserPreferenceDeleteOne{builder}
}

// Query returns a query builder for UserPreference.
func (c *UserPreferenceClient) Query() *UserPreferenceQuery {
	return &UserPreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserPreference},
		inters: c.Interceptors(),
	}
}

// Get returns a UserPreference entity by its id.
func (c *UserPreferenceClient) Get(ctx context.Context, id string) (*UserPreference, error) {
	return c.Query().Where(userpreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserPreferenceClient) GetX(ctx context.Context, id string) *UserPreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserPreferenceClient) Hooks() []Hook {
	return c.hooks.UserPreference
}

// Interceptors returns the client interceptors.
func (c *UserPreferenceClient) Interceptors() []Interceptor {
	return c.inters.UserPreference
}

func (c *UserPreferenceClient) mutate(ctx context.Context, m *UserPreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserPreference mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Announcement, AnnouncementExecution, AnnouncementPattern, AuditLog, CeoTeaching,
		ConversationState, ConversationSummary, ConversationTurn, DecisionLog,
		Department, FeatureFlag, Goal, Insight, KnowledgeChunk, Person, ScheduledJob,
		Task, TenantConfig, User, UserPreference []ent.Hook
	}
	inters struct {
		Announcement, AnnouncementExecution, AnnouncementPattern, AuditLog, CeoTeaching,
		ConversationState, ConversationSummary, ConversationTurn, DecisionLog,
		Department, FeatureFlag, Goal, Insight, KnowledgeChunk, Person, ScheduledJob,
		Task, TenantConfig, User, UserPreference []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
