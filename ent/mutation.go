// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/wisehub-ai/wisehub/ent/predicate"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
	"github.com/wisehub-ai/wisehub/ent/task"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
	"github.com/wisehub-ai/wisehub/ent/user"
	"github.com/wisehub-ai/wisehub/ent/userpreference"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnnouncement          = "Announcement"
	TypeAnnouncementExecution = "AnnouncementExecution"
	TypeAnnouncementPattern   = "AnnouncementPattern"
	TypeAuditLog              = "AuditLog"
	TypeCeoTeaching           = "CeoTeaching"
	TypeConversationState     = "ConversationState"
	TypeConversationSummary   = "ConversationSummary"
	TypeConversationTurn      = "ConversationTurn"
	TypeDecisionLog           = "DecisionLog"
	TypeDepartment            = "Department"
	TypeFeatureFlag           = "FeatureFlag"
	TypeGoal                  = "Goal"
	TypeInsight               = "Insight"
	TypeKnowledgeChunk        = "KnowledgeChunk"
	TypePerson                = "Person"
	TypeScheduledJob          = "ScheduledJob"
	TypeTask                  = "Task"
	TypeTenantConfig          = "TenantConfig"
	TypeUser                  = "User"
	TypeUserPreference        = "UserPreference"
)

// AnnouncementMutation represents an operation that mutates the Announcement nodes in the graph.
type AnnouncementMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	title                   *string
	message_body            *string
	target_room_id          *string
	create_tasks            *bool
	task_include_ids        *[]string
	appendtask_include_ids  []string
	task_exclude_ids        *[]string
	appendtask_exclude_ids  []string
	schedule_type           *announcement.ScheduleType
	scheduled_at            *time.Time
	cron_expression         *string
	timezone                *string
	skip_holiday            *bool
	skip_weekend            *bool
	task_deadline           *time.Time
	status                  *announcement.Status
	requester_account_id    *string
	source_room_id          *string
	confirmation_message_id *string
	next_execution_at       *time.Time
	last_execution_at       *time.Time
	execution_count         *int
	addexecution_count      *int
	max_executions          *int
	addmax_executions       *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	executions              map[string]struct{}
	removedexecutions       map[string]struct{}
	clearedexecutions       bool
	done                    bool
	oldValue                func(context.Context) (*Announcement, error)
	predicates              []predicate.Announcement
}

var _ ent.Mutation = (*AnnouncementMutation)(nil)

// announcementOption allows management of the mutation configuration using functional options.
type announcementOption func(*AnnouncementMutation)

// newAnnouncementMutation creates new mutation for the Announcement entity.
func newAnnouncementMutation(c config, op Op, opts ...announcementOption) *AnnouncementMutation {
	m := &AnnouncementMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnouncement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnouncementID sets the ID field of the mutation.
func withAnnouncementID(id string) announcementOption {
	return func(m *AnnouncementMutation) {
		var (
			err   error
			once  sync.Once
			value *Announcement
		)
		m.oldValue = func(ctx context.Context) (*Announcement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Announcement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnouncement sets the old Announcement of the mutation.
func withAnnouncement(node *Announcement) announcementOption {
	return func(m *AnnouncementMutation) {
		m.oldValue = func(context.Context) (*Announcement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnouncementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnouncementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Announcement entities.
func (m *AnnouncementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnouncementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnouncementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Announcement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AnnouncementMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AnnouncementMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AnnouncementMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetTitle sets the "title" field.
func (m *AnnouncementMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AnnouncementMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *AnnouncementMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[announcement.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *AnnouncementMutation) TitleCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *AnnouncementMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, announcement.FieldTitle)
}

// SetMessageBody sets the "message_body" field.
func (m *AnnouncementMutation) SetMessageBody(s string) {
	m.message_body = &s
}

// MessageBody returns the value of the "message_body" field in the mutation.
func (m *AnnouncementMutation) MessageBody() (r string, exists bool) {
	v := m.message_body
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageBody returns the old "message_body" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldMessageBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageBody: %w", err)
	}
	return oldValue.MessageBody, nil
}

// ResetMessageBody resets all changes to the "message_body" field.
func (m *AnnouncementMutation) ResetMessageBody() {
	m.message_body = nil
}

// SetTargetRoomID sets the "target_room_id" field.
func (m *AnnouncementMutation) SetTargetRoomID(s string) {
	m.target_room_id = &s
}

// TargetRoomID returns the value of the "target_room_id" field in the mutation.
func (m *AnnouncementMutation) TargetRoomID() (r string, exists bool) {
	v := m.target_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetRoomID returns the old "target_room_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTargetRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetRoomID: %w", err)
	}
	return oldValue.TargetRoomID, nil
}

// ClearTargetRoomID clears the value of the "target_room_id" field.
func (m *AnnouncementMutation) ClearTargetRoomID() {
	m.target_room_id = nil
	m.clearedFields[announcement.FieldTargetRoomID] = struct{}{}
}

// TargetRoomIDCleared returns if the "target_room_id" field was cleared in this mutation.
func (m *AnnouncementMutation) TargetRoomIDCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTargetRoomID]
	return ok
}

// ResetTargetRoomID resets all changes to the "target_room_id" field.
func (m *AnnouncementMutation) ResetTargetRoomID() {
	m.target_room_id = nil
	delete(m.clearedFields, announcement.FieldTargetRoomID)
}

// SetCreateTasks sets the "create_tasks" field.
func (m *AnnouncementMutation) SetCreateTasks(b bool) {
	m.create_tasks = &b
}

// CreateTasks returns the value of the "create_tasks" field in the mutation.
func (m *AnnouncementMutation) CreateTasks() (r bool, exists bool) {
	v := m.create_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTasks returns the old "create_tasks" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldCreateTasks(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTasks: %w", err)
	}
	return oldValue.CreateTasks, nil
}

// ResetCreateTasks resets all changes to the "create_tasks" field.
func (m *AnnouncementMutation) ResetCreateTasks() {
	m.create_tasks = nil
}

// SetTaskIncludeIds sets the "task_include_ids" field.
func (m *AnnouncementMutation) SetTaskIncludeIds(s []string) {
	m.task_include_ids = &s
	m.appendtask_include_ids = nil
}

// TaskIncludeIds returns the value of the "task_include_ids" field in the mutation.
func (m *AnnouncementMutation) TaskIncludeIds() (r []string, exists bool) {
	v := m.task_include_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskIncludeIds returns the old "task_include_ids" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTaskIncludeIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskIncludeIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskIncludeIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskIncludeIds: %w", err)
	}
	return oldValue.TaskIncludeIds, nil
}

// AppendTaskIncludeIds adds s to the "task_include_ids" field.
func (m *AnnouncementMutation) AppendTaskIncludeIds(s []string) {
	m.appendtask_include_ids = append(m.appendtask_include_ids, s...)
}

// AppendedTaskIncludeIds returns the list of values that were appended to the "task_include_ids" field in this mutation.
func (m *AnnouncementMutation) AppendedTaskIncludeIds() ([]string, bool) {
	if len(m.appendtask_include_ids) == 0 {
		return nil, false
	}
	return m.appendtask_include_ids, true
}

// ClearTaskIncludeIds clears the value of the "task_include_ids" field.
func (m *AnnouncementMutation) ClearTaskIncludeIds() {
	m.task_include_ids = nil
	m.appendtask_include_ids = nil
	m.clearedFields[announcement.FieldTaskIncludeIds] = struct{}{}
}

// TaskIncludeIdsCleared returns if the "task_include_ids" field was cleared in this mutation.
func (m *AnnouncementMutation) TaskIncludeIdsCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTaskIncludeIds]
	return ok
}

// ResetTaskIncludeIds resets all changes to the "task_include_ids" field.
func (m *AnnouncementMutation) ResetTaskIncludeIds() {
	m.task_include_ids = nil
	m.appendtask_include_ids = nil
	delete(m.clearedFields, announcement.FieldTaskIncludeIds)
}

// SetTaskExcludeIds sets the "task_exclude_ids" field.
func (m *AnnouncementMutation) SetTaskExcludeIds(s []string) {
	m.task_exclude_ids = &s
	m.appendtask_exclude_ids = nil
}

// TaskExcludeIds returns the value of the "task_exclude_ids" field in the mutation.
func (m *AnnouncementMutation) TaskExcludeIds() (r []string, exists bool) {
	v := m.task_exclude_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskExcludeIds returns the old "task_exclude_ids" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTaskExcludeIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskExcludeIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskExcludeIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskExcludeIds: %w", err)
	}
	return oldValue.TaskExcludeIds, nil
}

// AppendTaskExcludeIds adds s to the "task_exclude_ids" field.
func (m *AnnouncementMutation) AppendTaskExcludeIds(s []string) {
	m.appendtask_exclude_ids = append(m.appendtask_exclude_ids, s...)
}

// AppendedTaskExcludeIds returns the list of values that were appended to the "task_exclude_ids" field in this mutation.
func (m *AnnouncementMutation) AppendedTaskExcludeIds() ([]string, bool) {
	if len(m.appendtask_exclude_ids) == 0 {
		return nil, false
	}
	return m.appendtask_exclude_ids, true
}

// ClearTaskExcludeIds clears the value of the "task_exclude_ids" field.
func (m *AnnouncementMutation) ClearTaskExcludeIds() {
	m.task_exclude_ids = nil
	m.appendtask_exclude_ids = nil
	m.clearedFields[announcement.FieldTaskExcludeIds] = struct{}{}
}

// TaskExcludeIdsCleared returns if the "task_exclude_ids" field was cleared in this mutation.
func (m *AnnouncementMutation) TaskExcludeIdsCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTaskExcludeIds]
	return ok
}

// ResetTaskExcludeIds resets all changes to the "task_exclude_ids" field.
func (m *AnnouncementMutation) ResetTaskExcludeIds() {
	m.task_exclude_ids = nil
	m.appendtask_exclude_ids = nil
	delete(m.clearedFields, announcement.FieldTaskExcludeIds)
}

// SetScheduleType sets the "schedule_type" field.
func (m *AnnouncementMutation) SetScheduleType(at announcement.ScheduleType) {
	m.schedule_type = &at
}

// ScheduleType returns the value of the "schedule_type" field in the mutation.
func (m *AnnouncementMutation) ScheduleType() (r announcement.ScheduleType, exists bool) {
	v := m.schedule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleType returns the old "schedule_type" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldScheduleType(ctx context.Context) (v announcement.ScheduleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleType: %w", err)
	}
	return oldValue.ScheduleType, nil
}

// ResetScheduleType resets all changes to the "schedule_type" field.
func (m *AnnouncementMutation) ResetScheduleType() {
	m.schedule_type = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *AnnouncementMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *AnnouncementMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *AnnouncementMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[announcement.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *AnnouncementMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[announcement.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *AnnouncementMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, announcement.FieldScheduledAt)
}

// SetCronExpression sets the "cron_expression" field.
func (m *AnnouncementMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *AnnouncementMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldCronExpression(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (m *AnnouncementMutation) ClearCronExpression() {
	m.cron_expression = nil
	m.clearedFields[announcement.FieldCronExpression] = struct{}{}
}

// CronExpressionCleared returns if the "cron_expression" field was cleared in this mutation.
func (m *AnnouncementMutation) CronExpressionCleared() bool {
	_, ok := m.clearedFields[announcement.FieldCronExpression]
	return ok
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *AnnouncementMutation) ResetCronExpression() {
	m.cron_expression = nil
	delete(m.clearedFields, announcement.FieldCronExpression)
}

// SetTimezone sets the "timezone" field.
func (m *AnnouncementMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *AnnouncementMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *AnnouncementMutation) ResetTimezone() {
	m.timezone = nil
}

// SetSkipHoliday sets the "skip_holiday" field.
func (m *AnnouncementMutation) SetSkipHoliday(b bool) {
	m.skip_holiday = &b
}

// SkipHoliday returns the value of the "skip_holiday" field in the mutation.
func (m *AnnouncementMutation) SkipHoliday() (r bool, exists bool) {
	v := m.skip_holiday
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipHoliday returns the old "skip_holiday" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldSkipHoliday(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipHoliday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipHoliday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipHoliday: %w", err)
	}
	return oldValue.SkipHoliday, nil
}

// ResetSkipHoliday resets all changes to the "skip_holiday" field.
func (m *AnnouncementMutation) ResetSkipHoliday() {
	m.skip_holiday = nil
}

// SetSkipWeekend sets the "skip_weekend" field.
func (m *AnnouncementMutation) SetSkipWeekend(b bool) {
	m.skip_weekend = &b
}

// SkipWeekend returns the value of the "skip_weekend" field in the mutation.
func (m *AnnouncementMutation) SkipWeekend() (r bool, exists bool) {
	v := m.skip_weekend
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipWeekend returns the old "skip_weekend" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldSkipWeekend(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipWeekend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipWeekend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipWeekend: %w", err)
	}
	return oldValue.SkipWeekend, nil
}

// ResetSkipWeekend resets all changes to the "skip_weekend" field.
func (m *AnnouncementMutation) ResetSkipWeekend() {
	m.skip_weekend = nil
}

// SetTaskDeadline sets the "task_deadline" field.
func (m *AnnouncementMutation) SetTaskDeadline(t time.Time) {
	m.task_deadline = &t
}

// TaskDeadline returns the value of the "task_deadline" field in the mutation.
func (m *AnnouncementMutation) TaskDeadline() (r time.Time, exists bool) {
	v := m.task_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDeadline returns the old "task_deadline" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTaskDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDeadline: %w", err)
	}
	return oldValue.TaskDeadline, nil
}

// ClearTaskDeadline clears the value of the "task_deadline" field.
func (m *AnnouncementMutation) ClearTaskDeadline() {
	m.task_deadline = nil
	m.clearedFields[announcement.FieldTaskDeadline] = struct{}{}
}

// TaskDeadlineCleared returns if the "task_deadline" field was cleared in this mutation.
func (m *AnnouncementMutation) TaskDeadlineCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTaskDeadline]
	return ok
}

// ResetTaskDeadline resets all changes to the "task_deadline" field.
func (m *AnnouncementMutation) ResetTaskDeadline() {
	m.task_deadline = nil
	delete(m.clearedFields, announcement.FieldTaskDeadline)
}

// SetStatus sets the "status" field.
func (m *AnnouncementMutation) SetStatus(a announcement.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnnouncementMutation) Status() (r announcement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldStatus(ctx context.Context) (v announcement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnnouncementMutation) ResetStatus() {
	m.status = nil
}

// SetRequesterAccountID sets the "requester_account_id" field.
func (m *AnnouncementMutation) SetRequesterAccountID(s string) {
	m.requester_account_id = &s
}

// RequesterAccountID returns the value of the "requester_account_id" field in the mutation.
func (m *AnnouncementMutation) RequesterAccountID() (r string, exists bool) {
	v := m.requester_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterAccountID returns the old "requester_account_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldRequesterAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterAccountID: %w", err)
	}
	return oldValue.RequesterAccountID, nil
}

// ResetRequesterAccountID resets all changes to the "requester_account_id" field.
func (m *AnnouncementMutation) ResetRequesterAccountID() {
	m.requester_account_id = nil
}

// SetSourceRoomID sets the "source_room_id" field.
func (m *AnnouncementMutation) SetSourceRoomID(s string) {
	m.source_room_id = &s
}

// SourceRoomID returns the value of the "source_room_id" field in the mutation.
func (m *AnnouncementMutation) SourceRoomID() (r string, exists bool) {
	v := m.source_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRoomID returns the old "source_room_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldSourceRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRoomID: %w", err)
	}
	return oldValue.SourceRoomID, nil
}

// ResetSourceRoomID resets all changes to the "source_room_id" field.
func (m *AnnouncementMutation) ResetSourceRoomID() {
	m.source_room_id = nil
}

// SetConfirmationMessageID sets the "confirmation_message_id" field.
func (m *AnnouncementMutation) SetConfirmationMessageID(s string) {
	m.confirmation_message_id = &s
}

// ConfirmationMessageID returns the value of the "confirmation_message_id" field in the mutation.
func (m *AnnouncementMutation) ConfirmationMessageID() (r string, exists bool) {
	v := m.confirmation_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationMessageID returns the old "confirmation_message_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldConfirmationMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationMessageID: %w", err)
	}
	return oldValue.ConfirmationMessageID, nil
}

// ClearConfirmationMessageID clears the value of the "confirmation_message_id" field.
func (m *AnnouncementMutation) ClearConfirmationMessageID() {
	m.confirmation_message_id = nil
	m.clearedFields[announcement.FieldConfirmationMessageID] = struct{}{}
}

// ConfirmationMessageIDCleared returns if the "confirmation_message_id" field was cleared in this mutation.
func (m *AnnouncementMutation) ConfirmationMessageIDCleared() bool {
	_, ok := m.clearedFields[announcement.FieldConfirmationMessageID]
	return ok
}

// ResetConfirmationMessageID resets all changes to the "confirmation_message_id" field.
func (m *AnnouncementMutation) ResetConfirmationMessageID() {
	m.confirmation_message_id = nil
	delete(m.clearedFields, announcement.FieldConfirmationMessageID)
}

// SetNextExecutionAt sets the "next_execution_at" field.
func (m *AnnouncementMutation) SetNextExecutionAt(t time.Time) {
	m.next_execution_at = &t
}

// NextExecutionAt returns the value of the "next_execution_at" field in the mutation.
func (m *AnnouncementMutation) NextExecutionAt() (r time.Time, exists bool) {
	v := m.next_execution_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextExecutionAt returns the old "next_execution_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldNextExecutionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextExecutionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextExecutionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextExecutionAt: %w", err)
	}
	return oldValue.NextExecutionAt, nil
}

// ClearNextExecutionAt clears the value of the "next_execution_at" field.
func (m *AnnouncementMutation) ClearNextExecutionAt() {
	m.next_execution_at = nil
	m.clearedFields[announcement.FieldNextExecutionAt] = struct{}{}
}

// NextExecutionAtCleared returns if the "next_execution_at" field was cleared in this mutation.
func (m *AnnouncementMutation) NextExecutionAtCleared() bool {
	_, ok := m.clearedFields[announcement.FieldNextExecutionAt]
	return ok
}

// ResetNextExecutionAt resets all changes to the "next_execution_at" field.
func (m *AnnouncementMutation) ResetNextExecutionAt() {
	m.next_execution_at = nil
	delete(m.clearedFields, announcement.FieldNextExecutionAt)
}

// SetLastExecutionAt sets the "last_execution_at" field.
func (m *AnnouncementMutation) SetLastExecutionAt(t time.Time) {
	m.last_execution_at = &t
}

// LastExecutionAt returns the value of the "last_execution_at" field in the mutation.
func (m *AnnouncementMutation) LastExecutionAt() (r time.Time, exists bool) {
	v := m.last_execution_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExecutionAt returns the old "last_execution_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldLastExecutionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExecutionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExecutionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExecutionAt: %w", err)
	}
	return oldValue.LastExecutionAt, nil
}

// ClearLastExecutionAt clears the value of the "last_execution_at" field.
func (m *AnnouncementMutation) ClearLastExecutionAt() {
	m.last_execution_at = nil
	m.clearedFields[announcement.FieldLastExecutionAt] = struct{}{}
}

// LastExecutionAtCleared returns if the "last_execution_at" field was cleared in this mutation.
func (m *AnnouncementMutation) LastExecutionAtCleared() bool {
	_, ok := m.clearedFields[announcement.FieldLastExecutionAt]
	return ok
}

// ResetLastExecutionAt resets all changes to the "last_execution_at" field.
func (m *AnnouncementMutation) ResetLastExecutionAt() {
	m.last_execution_at = nil
	delete(m.clearedFields, announcement.FieldLastExecutionAt)
}

// SetExecutionCount sets the "execution_count" field.
func (m *AnnouncementMutation) SetExecutionCount(i int) {
	m.execution_count = &i
	m.addexecution_count = nil
}

// ExecutionCount returns the value of the "execution_count" field in the mutation.
func (m *AnnouncementMutation) ExecutionCount() (r int, exists bool) {
	v := m.execution_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionCount returns the old "execution_count" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldExecutionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionCount: %w", err)
	}
	return oldValue.ExecutionCount, nil
}

// AddExecutionCount adds i to the "execution_count" field.
func (m *AnnouncementMutation) AddExecutionCount(i int) {
	if m.addexecution_count != nil {
		*m.addexecution_count += i
	} else {
		m.addexecution_count = &i
	}
}

// AddedExecutionCount returns the value that was added to the "execution_count" field in this mutation.
func (m *AnnouncementMutation) AddedExecutionCount() (r int, exists bool) {
	v := m.addexecution_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionCount resets all changes to the "execution_count" field.
func (m *AnnouncementMutation) ResetExecutionCount() {
	m.execution_count = nil
	m.addexecution_count = nil
}

// SetMaxExecutions sets the "max_executions" field.
func (m *AnnouncementMutation) SetMaxExecutions(i int) {
	m.max_executions = &i
	m.addmax_executions = nil
}

// MaxExecutions returns the value of the "max_executions" field in the mutation.
func (m *AnnouncementMutation) MaxExecutions() (r int, exists bool) {
	v := m.max_executions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxExecutions returns the old "max_executions" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldMaxExecutions(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxExecutions: %w", err)
	}
	return oldValue.MaxExecutions, nil
}

// AddMaxExecutions adds i to the "max_executions" field.
func (m *AnnouncementMutation) AddMaxExecutions(i int) {
	if m.addmax_executions != nil {
		*m.addmax_executions += i
	} else {
		m.addmax_executions = &i
	}
}

// AddedMaxExecutions returns the value that was added to the "max_executions" field in this mutation.
func (m *AnnouncementMutation) AddedMaxExecutions() (r int, exists bool) {
	v := m.addmax_executions
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxExecutions clears the value of the "max_executions" field.
func (m *AnnouncementMutation) ClearMaxExecutions() {
	m.max_executions = nil
	m.addmax_executions = nil
	m.clearedFields[announcement.FieldMaxExecutions] = struct{}{}
}

// MaxExecutionsCleared returns if the "max_executions" field was cleared in this mutation.
func (m *AnnouncementMutation) MaxExecutionsCleared() bool {
	_, ok := m.clearedFields[announcement.FieldMaxExecutions]
	return ok
}

// ResetMaxExecutions resets all changes to the "max_executions" field.
func (m *AnnouncementMutation) ResetMaxExecutions() {
	m.max_executions = nil
	m.addmax_executions = nil
	delete(m.clearedFields, announcement.FieldMaxExecutions)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnnouncementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnnouncementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnnouncementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnnouncementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnnouncementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnnouncementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExecutionIDs adds the "executions" edge to the AnnouncementExecution entity by ids.
func (m *AnnouncementMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the AnnouncementExecution entity.
func (m *AnnouncementMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the AnnouncementExecution entity was cleared.
func (m *AnnouncementMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the AnnouncementExecution entity by IDs.
func (m *AnnouncementMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the AnnouncementExecution entity.
func (m *AnnouncementMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *AnnouncementMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *AnnouncementMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the AnnouncementMutation builder.
func (m *AnnouncementMutation) Where(ps ...predicate.Announcement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnouncementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnouncementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Announcement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnouncementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnouncementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Announcement).
func (m *AnnouncementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnouncementMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.tenant_id != nil {
		fields = append(fields, announcement.FieldTenantID)
	}
	if m.title != nil {
		fields = append(fields, announcement.FieldTitle)
	}
	if m.message_body != nil {
		fields = append(fields, announcement.FieldMessageBody)
	}
	if m.target_room_id != nil {
		fields = append(fields, announcement.FieldTargetRoomID)
	}
	if m.create_tasks != nil {
		fields = append(fields, announcement.FieldCreateTasks)
	}
	if m.task_include_ids != nil {
		fields = append(fields, announcement.FieldTaskIncludeIds)
	}
	if m.task_exclude_ids != nil {
		fields = append(fields, announcement.FieldTaskExcludeIds)
	}
	if m.schedule_type != nil {
		fields = append(fields, announcement.FieldScheduleType)
	}
	if m.scheduled_at != nil {
		fields = append(fields, announcement.FieldScheduledAt)
	}
	if m.cron_expression != nil {
		fields = append(fields, announcement.FieldCronExpression)
	}
	if m.timezone != nil {
		fields = append(fields, announcement.FieldTimezone)
	}
	if m.skip_holiday != nil {
		fields = append(fields, announcement.FieldSkipHoliday)
	}
	if m.skip_weekend != nil {
		fields = append(fields, announcement.FieldSkipWeekend)
	}
	if m.task_deadline != nil {
		fields = append(fields, announcement.FieldTaskDeadline)
	}
	if m.status != nil {
		fields = append(fields, announcement.FieldStatus)
	}
	if m.requester_account_id != nil {
		fields = append(fields, announcement.FieldRequesterAccountID)
	}
	if m.source_room_id != nil {
		fields = append(fields, announcement.FieldSourceRoomID)
	}
	if m.confirmation_message_id != nil {
		fields = append(fields, announcement.FieldConfirmationMessageID)
	}
	if m.next_execution_at != nil {
		fields = append(fields, announcement.FieldNextExecutionAt)
	}
	if m.last_execution_at != nil {
		fields = append(fields, announcement.FieldLastExecutionAt)
	}
	if m.execution_count != nil {
		fields = append(fields, announcement.FieldExecutionCount)
	}
	if m.max_executions != nil {
		fields = append(fields, announcement.FieldMaxExecutions)
	}
	if m.created_at != nil {
		fields = append(fields, announcement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, announcement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnouncementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case announcement.FieldTenantID:
		return m.TenantID()
	case announcement.FieldTitle:
		return m.Title()
	case announcement.FieldMessageBody:
		return m.MessageBody()
	case announcement.FieldTargetRoomID:
		return m.TargetRoomID()
	case announcement.FieldCreateTasks:
		return m.CreateTasks()
	case announcement.FieldTaskIncludeIds:
		return m.TaskIncludeIds()
	case announcement.FieldTaskExcludeIds:
		return m.TaskExcludeIds()
	case announcement.FieldScheduleType:
		return m.ScheduleType()
	case announcement.FieldScheduledAt:
		return m.ScheduledAt()
	case announcement.FieldCronExpression:
		return m.CronExpression()
	case announcement.FieldTimezone:
		return m.Timezone()
	case announcement.FieldSkipHoliday:
		return m.SkipHoliday()
	case announcement.FieldSkipWeekend:
		return m.SkipWeekend()
	case announcement.FieldTaskDeadline:
		return m.TaskDeadline()
	case announcement.FieldStatus:
		return m.Status()
	case announcement.FieldRequesterAccountID:
		return m.RequesterAccountID()
	case announcement.FieldSourceRoomID:
		return m.SourceRoomID()
	case announcement.FieldConfirmationMessageID:
		return m.ConfirmationMessageID()
	case announcement.FieldNextExecutionAt:
		return m.NextExecutionAt()
	case announcement.FieldLastExecutionAt:
		return m.LastExecutionAt()
	case announcement.FieldExecutionCount:
		return m.ExecutionCount()
	case announcement.FieldMaxExecutions:
		return m.MaxExecutions()
	case announcement.FieldCreatedAt:
		return m.CreatedAt()
	case announcement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnouncementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case announcement.FieldTenantID:
		return m.OldTenantID(ctx)
	case announcement.FieldTitle:
		return m.OldTitle(ctx)
	case announcement.FieldMessageBody:
		return m.OldMessageBody(ctx)
	case announcement.FieldTargetRoomID:
		return m.OldTargetRoomID(ctx)
	case announcement.FieldCreateTasks:
		return m.OldCreateTasks(ctx)
	case announcement.FieldTaskIncludeIds:
		return m.OldTaskIncludeIds(ctx)
	case announcement.FieldTaskExcludeIds:
		return m.OldTaskExcludeIds(ctx)
	case announcement.FieldScheduleType:
		return m.OldScheduleType(ctx)
	case announcement.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case announcement.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case announcement.FieldTimezone:
		return m.OldTimezone(ctx)
	case announcement.FieldSkipHoliday:
		return m.OldSkipHoliday(ctx)
	case announcement.FieldSkipWeekend:
		return m.OldSkipWeekend(ctx)
	case announcement.FieldTaskDeadline:
		return m.OldTaskDeadline(ctx)
	case announcement.FieldStatus:
		return m.OldStatus(ctx)
	case announcement.FieldRequesterAccountID:
		return m.OldRequesterAccountID(ctx)
	case announcement.FieldSourceRoomID:
		return m.OldSourceRoomID(ctx)
	case announcement.FieldConfirmationMessageID:
		return m.OldConfirmationMessageID(ctx)
	case announcement.FieldNextExecutionAt:
		return m.OldNextExecutionAt(ctx)
	case announcement.FieldLastExecutionAt:
		return m.OldLastExecutionAt(ctx)
	case announcement.FieldExecutionCount:
		return m.OldExecutionCount(ctx)
	case announcement.FieldMaxExecutions:
		return m.OldMaxExecutions(ctx)
	case announcement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case announcement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Announcement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case announcement.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case announcement.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case announcement.FieldMessageBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageBody(v)
		return nil
	case announcement.FieldTargetRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetRoomID(v)
		return nil
	case announcement.FieldCreateTasks:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTasks(v)
		return nil
	case announcement.FieldTaskIncludeIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskIncludeIds(v)
		return nil
	case announcement.FieldTaskExcludeIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskExcludeIds(v)
		return nil
	case announcement.FieldScheduleType:
		v, ok := value.(announcement.ScheduleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleType(v)
		return nil
	case announcement.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case announcement.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case announcement.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case announcement.FieldSkipHoliday:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipHoliday(v)
		return nil
	case announcement.FieldSkipWeekend:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipWeekend(v)
		return nil
	case announcement.FieldTaskDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDeadline(v)
		return nil
	case announcement.FieldStatus:
		v, ok := value.(announcement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case announcement.FieldRequesterAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterAccountID(v)
		return nil
	case announcement.FieldSourceRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRoomID(v)
		return nil
	case announcement.FieldConfirmationMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationMessageID(v)
		return nil
	case announcement.FieldNextExecutionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextExecutionAt(v)
		return nil
	case announcement.FieldLastExecutionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExecutionAt(v)
		return nil
	case announcement.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionCount(v)
		return nil
	case announcement.FieldMaxExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxExecutions(v)
		return nil
	case announcement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case announcement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Announcement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnouncementMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_count != nil {
		fields = append(fields, announcement.FieldExecutionCount)
	}
	if m.addmax_executions != nil {
		fields = append(fields, announcement.FieldMaxExecutions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnouncementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case announcement.FieldExecutionCount:
		return m.AddedExecutionCount()
	case announcement.FieldMaxExecutions:
		return m.AddedMaxExecutions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case announcement.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionCount(v)
		return nil
	case announcement.FieldMaxExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxExecutions(v)
		return nil
	}
	return fmt.Errorf("unknown Announcement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnouncementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(announcement.FieldTitle) {
		fields = append(fields, announcement.FieldTitle)
	}
	if m.FieldCleared(announcement.FieldTargetRoomID) {
		fields = append(fields, announcement.FieldTargetRoomID)
	}
	if m.FieldCleared(announcement.FieldTaskIncludeIds) {
		fields = append(fields, announcement.FieldTaskIncludeIds)
	}
	if m.FieldCleared(announcement.FieldTaskExcludeIds) {
		fields = append(fields, announcement.FieldTaskExcludeIds)
	}
	if m.FieldCleared(announcement.FieldScheduledAt) {
		fields = append(fields, announcement.FieldScheduledAt)
	}
	if m.FieldCleared(announcement.FieldCronExpression) {
		fields = append(fields, announcement.FieldCronExpression)
	}
	if m.FieldCleared(announcement.FieldTaskDeadline) {
		fields = append(fields, announcement.FieldTaskDeadline)
	}
	if m.FieldCleared(announcement.FieldConfirmationMessageID) {
		fields = append(fields, announcement.FieldConfirmationMessageID)
	}
	if m.FieldCleared(announcement.FieldNextExecutionAt) {
		fields = append(fields, announcement.FieldNextExecutionAt)
	}
	if m.FieldCleared(announcement.FieldLastExecutionAt) {
		fields = append(fields, announcement.FieldLastExecutionAt)
	}
	if m.FieldCleared(announcement.FieldMaxExecutions) {
		fields = append(fields, announcement.FieldMaxExecutions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnouncementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnouncementMutation) ClearField(name string) error {
	switch name {
	case announcement.FieldTitle:
		m.ClearTitle()
		return nil
	case announcement.FieldTargetRoomID:
		m.ClearTargetRoomID()
		return nil
	case announcement.FieldTaskIncludeIds:
		m.ClearTaskIncludeIds()
		return nil
	case announcement.FieldTaskExcludeIds:
		m.ClearTaskExcludeIds()
		return nil
	case announcement.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case announcement.FieldCronExpression:
		m.ClearCronExpression()
		return nil
	case announcement.FieldTaskDeadline:
		m.ClearTaskDeadline()
		return nil
	case announcement.FieldConfirmationMessageID:
		m.ClearConfirmationMessageID()
		return nil
	case announcement.FieldNextExecutionAt:
		m.ClearNextExecutionAt()
		return nil
	case announcement.FieldLastExecutionAt:
		m.ClearLastExecutionAt()
		return nil
	case announcement.FieldMaxExecutions:
		m.ClearMaxExecutions()
		return nil
	}
	return fmt.Errorf("unknown Announcement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnouncementMutation) ResetField(name string) error {
	switch name {
	case announcement.FieldTenantID:
		m.ResetTenantID()
		return nil
	case announcement.FieldTitle:
		m.ResetTitle()
		return nil
	case announcement.FieldMessageBody:
		m.ResetMessageBody()
		return nil
	case announcement.FieldTargetRoomID:
		m.ResetTargetRoomID()
		return nil
	case announcement.FieldCreateTasks:
		m.ResetCreateTasks()
		return nil
	case announcement.FieldTaskIncludeIds:
		m.ResetTaskIncludeIds()
		return nil
	case announcement.FieldTaskExcludeIds:
		m.ResetTaskExcludeIds()
		return nil
	case announcement.FieldScheduleType:
		m.ResetScheduleType()
		return nil
	case announcement.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case announcement.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case announcement.FieldTimezone:
		m.ResetTimezone()
		return nil
	case announcement.FieldSkipHoliday:
		m.ResetSkipHoliday()
		return nil
	case announcement.FieldSkipWeekend:
		m.ResetSkipWeekend()
		return nil
	case announcement.FieldTaskDeadline:
		m.ResetTaskDeadline()
		return nil
	case announcement.FieldStatus:
		m.ResetStatus()
		return nil
	case announcement.FieldRequesterAccountID:
		m.ResetRequesterAccountID()
		return nil
	case announcement.FieldSourceRoomID:
		m.ResetSourceRoomID()
		return nil
	case announcement.FieldConfirmationMessageID:
		m.ResetConfirmationMessageID()
		return nil
	case announcement.FieldNextExecutionAt:
		m.ResetNextExecutionAt()
		return nil
	case announcement.FieldLastExecutionAt:
		m.ResetLastExecutionAt()
		return nil
	case announcement.FieldExecutionCount:
		m.ResetExecutionCount()
		return nil
	case announcement.FieldMaxExecutions:
		m.ResetMaxExecutions()
		return nil
	case announcement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case announcement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Announcement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnouncementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.executions != nil {
		edges = append(edges, announcement.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnouncementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case announcement.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnouncementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedexecutions != nil {
		edges = append(edges, announcement.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnouncementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case announcement.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnouncementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecutions {
		edges = append(edges, announcement.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnouncementMutation) EdgeCleared(name string) bool {
	switch name {
	case announcement.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnouncementMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Announcement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnouncementMutation) ResetEdge(name string) error {
	switch name {
	case announcement.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Announcement edge %s", name)
}

// AnnouncementExecutionMutation represents an operation that mutates the AnnouncementExecution nodes in the graph.
type AnnouncementExecutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	execution_number       *int
	addexecution_number    *int
	message_sent           *bool
	sent_message_id        *string
	tasks_created          *int
	addtasks_created       *int
	tasks_failed           *int
	addtasks_failed        *int
	members_snapshot       *[]string
	appendmembers_snapshot []string
	status                 *announcementexecution.Status
	skip_reason            *string
	error_message          *string
	started_at             *time.Time
	finished_at            *time.Time
	clearedFields          map[string]struct{}
	announcement           *string
	clearedannouncement    bool
	done                   bool
	oldValue               func(context.Context) (*AnnouncementExecution, error)
	predicates             []predicate.AnnouncementExecution
}

var _ ent.Mutation = (*AnnouncementExecutionMutation)(nil)

// announcementexecutionOption allows management of the mutation configuration using functional options.
type announcementexecutionOption func(*AnnouncementExecutionMutation)

// newAnnouncementExecutionMutation creates new mutation for the AnnouncementExecution entity.
func newAnnouncementExecutionMutation(c config, op Op, opts ...announcementexecutionOption) *AnnouncementExecutionMutation {
	m := &AnnouncementExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnouncementExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnouncementExecutionID sets the ID field of the mutation.
func withAnnouncementExecutionID(id string) announcementexecutionOption {
	return func(m *AnnouncementExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnnouncementExecution
		)
		m.oldValue = func(ctx context.Context) (*AnnouncementExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnnouncementExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnouncementExecution sets the old AnnouncementExecution of the mutation.
func withAnnouncementExecution(node *AnnouncementExecution) announcementexecutionOption {
	return func(m *AnnouncementExecutionMutation) {
		m.oldValue = func(context.Context) (*AnnouncementExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnouncementExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnouncementExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnnouncementExecution entities.
func (m *AnnouncementExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnouncementExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnouncementExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnnouncementExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AnnouncementExecutionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AnnouncementExecutionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AnnouncementExecutionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAnnouncementID sets the "announcement_id" field.
func (m *AnnouncementExecutionMutation) SetAnnouncementID(s string) {
	m.announcement = &s
}

// AnnouncementID returns the value of the "announcement_id" field in the mutation.
func (m *AnnouncementExecutionMutation) AnnouncementID() (r string, exists bool) {
	v := m.announcement
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnouncementID returns the old "announcement_id" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldAnnouncementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnouncementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnouncementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnouncementID: %w", err)
	}
	return oldValue.AnnouncementID, nil
}

// ResetAnnouncementID resets all changes to the "announcement_id" field.
func (m *AnnouncementExecutionMutation) ResetAnnouncementID() {
	m.announcement = nil
}

// SetExecutionNumber sets the "execution_number" field.
func (m *AnnouncementExecutionMutation) SetExecutionNumber(i int) {
	m.execution_number = &i
	m.addexecution_number = nil
}

// ExecutionNumber returns the value of the "execution_number" field in the mutation.
func (m *AnnouncementExecutionMutation) ExecutionNumber() (r int, exists bool) {
	v := m.execution_number
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionNumber returns the old "execution_number" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldExecutionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionNumber: %w", err)
	}
	return oldValue.ExecutionNumber, nil
}

// AddExecutionNumber adds i to the "execution_number" field.
func (m *AnnouncementExecutionMutation) AddExecutionNumber(i int) {
	if m.addexecution_number != nil {
		*m.addexecution_number += i
	} else {
		m.addexecution_number = &i
	}
}

// AddedExecutionNumber returns the value that was added to the "execution_number" field in this mutation.
func (m *AnnouncementExecutionMutation) AddedExecutionNumber() (r int, exists bool) {
	v := m.addexecution_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionNumber resets all changes to the "execution_number" field.
func (m *AnnouncementExecutionMutation) ResetExecutionNumber() {
	m.execution_number = nil
	m.addexecution_number = nil
}

// SetMessageSent sets the "message_sent" field.
func (m *AnnouncementExecutionMutation) SetMessageSent(b bool) {
	m.message_sent = &b
}

// MessageSent returns the value of the "message_sent" field in the mutation.
func (m *AnnouncementExecutionMutation) MessageSent() (r bool, exists bool) {
	v := m.message_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageSent returns the old "message_sent" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldMessageSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageSent: %w", err)
	}
	return oldValue.MessageSent, nil
}

// ResetMessageSent resets all changes to the "message_sent" field.
func (m *AnnouncementExecutionMutation) ResetMessageSent() {
	m.message_sent = nil
}

// SetSentMessageID sets the "sent_message_id" field.
func (m *AnnouncementExecutionMutation) SetSentMessageID(s string) {
	m.sent_message_id = &s
}

// SentMessageID returns the value of the "sent_message_id" field in the mutation.
func (m *AnnouncementExecutionMutation) SentMessageID() (r string, exists bool) {
	v := m.sent_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSentMessageID returns the old "sent_message_id" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldSentMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentMessageID: %w", err)
	}
	return oldValue.SentMessageID, nil
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (m *AnnouncementExecutionMutation) ClearSentMessageID() {
	m.sent_message_id = nil
	m.clearedFields[announcementexecution.FieldSentMessageID] = struct{}{}
}

// SentMessageIDCleared returns if the "sent_message_id" field was cleared in this mutation.
func (m *AnnouncementExecutionMutation) SentMessageIDCleared() bool {
	_, ok := m.clearedFields[announcementexecution.FieldSentMessageID]
	return ok
}

// ResetSentMessageID resets all changes to the "sent_message_id" field.
func (m *AnnouncementExecutionMutation) ResetSentMessageID() {
	m.sent_message_id = nil
	delete(m.clearedFields, announcementexecution.FieldSentMessageID)
}

// SetTasksCreated sets the "tasks_created" field.
func (m *AnnouncementExecutionMutation) SetTasksCreated(i int) {
	m.tasks_created = &i
	m.addtasks_created = nil
}

// TasksCreated returns the value of the "tasks_created" field in the mutation.
func (m *AnnouncementExecutionMutation) TasksCreated() (r int, exists bool) {
	v := m.tasks_created
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCreated returns the old "tasks_created" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldTasksCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCreated: %w", err)
	}
	return oldValue.TasksCreated, nil
}

// AddTasksCreated adds i to the "tasks_created" field.
func (m *AnnouncementExecutionMutation) AddTasksCreated(i int) {
	if m.addtasks_created != nil {
		*m.addtasks_created += i
	} else {
		m.addtasks_created = &i
	}
}

// AddedTasksCreated returns the value that was added to the "tasks_created" field in this mutation.
func (m *AnnouncementExecutionMutation) AddedTasksCreated() (r int, exists bool) {
	v := m.addtasks_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCreated resets all changes to the "tasks_created" field.
func (m *AnnouncementExecutionMutation) ResetTasksCreated() {
	m.tasks_created = nil
	m.addtasks_created = nil
}

// SetTasksFailed sets the "tasks_failed" field.
func (m *AnnouncementExecutionMutation) SetTasksFailed(i int) {
	m.tasks_failed = &i
	m.addtasks_failed = nil
}

// TasksFailed returns the value of the "tasks_failed" field in the mutation.
func (m *AnnouncementExecutionMutation) TasksFailed() (r int, exists bool) {
	v := m.tasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksFailed returns the old "tasks_failed" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldTasksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksFailed: %w", err)
	}
	return oldValue.TasksFailed, nil
}

// AddTasksFailed adds i to the "tasks_failed" field.
func (m *AnnouncementExecutionMutation) AddTasksFailed(i int) {
	if m.addtasks_failed != nil {
		*m.addtasks_failed += i
	} else {
		m.addtasks_failed = &i
	}
}

// AddedTasksFailed returns the value that was added to the "tasks_failed" field in this mutation.
func (m *AnnouncementExecutionMutation) AddedTasksFailed() (r int, exists bool) {
	v := m.addtasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksFailed resets all changes to the "tasks_failed" field.
func (m *AnnouncementExecutionMutation) ResetTasksFailed() {
	m.tasks_failed = nil
	m.addtasks_failed = nil
}

// SetMembersSnapshot sets the "members_snapshot" field.
func (m *AnnouncementExecutionMutation) SetMembersSnapshot(s []string) {
	m.members_snapshot = &s
	m.appendmembers_snapshot = nil
}

// MembersSnapshot returns the value of the "members_snapshot" field in the mutation.
func (m *AnnouncementExecutionMutation) MembersSnapshot() (r []string, exists bool) {
	v := m.members_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldMembersSnapshot returns the old "members_snapshot" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldMembersSnapshot(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembersSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembersSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembersSnapshot: %w", err)
	}
	return oldValue.MembersSnapshot, nil
}

// AppendMembersSnapshot adds s to the "members_snapshot" field.
func (m *AnnouncementExecutionMutation) AppendMembersSnapshot(s []string) {
	m.appendmembers_snapshot = append(m.appendmembers_snapshot, s...)
}

// AppendedMembersSnapshot returns the list of values that were appended to the "members_snapshot" field in this mutation.
func (m *AnnouncementExecutionMutation) AppendedMembersSnapshot() ([]string, bool) {
	if len(m.appendmembers_snapshot) == 0 {
		return nil, false
	}
	return m.appendmembers_snapshot, true
}

// ClearMembersSnapshot clears the value of the "members_snapshot" field.
func (m *AnnouncementExecutionMutation) ClearMembersSnapshot() {
	m.members_snapshot = nil
	m.appendmembers_snapshot = nil
	m.clearedFields[announcementexecution.FieldMembersSnapshot] = struct{}{}
}

// MembersSnapshotCleared returns if the "members_snapshot" field was cleared in this mutation.
func (m *AnnouncementExecutionMutation) MembersSnapshotCleared() bool {
	_, ok := m.clearedFields[announcementexecution.FieldMembersSnapshot]
	return ok
}

// ResetMembersSnapshot resets all changes to the "members_snapshot" field.
func (m *AnnouncementExecutionMutation) ResetMembersSnapshot() {
	m.members_snapshot = nil
	m.appendmembers_snapshot = nil
	delete(m.clearedFields, announcementexecution.FieldMembersSnapshot)
}

// SetStatus sets the "status" field.
func (m *AnnouncementExecutionMutation) SetStatus(a announcementexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnnouncementExecutionMutation) Status() (r announcementexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldStatus(ctx context.Context) (v announcementexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnnouncementExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *AnnouncementExecutionMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *AnnouncementExecutionMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldSkipReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *AnnouncementExecutionMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[announcementexecution.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *AnnouncementExecutionMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[announcementexecution.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *AnnouncementExecutionMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, announcementexecution.FieldSkipReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnnouncementExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnnouncementExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnnouncementExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[announcementexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnnouncementExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[announcementexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnnouncementExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, announcementexecution.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AnnouncementExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnnouncementExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnnouncementExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *AnnouncementExecutionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AnnouncementExecutionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AnnouncementExecution entity.
// If the AnnouncementExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementExecutionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AnnouncementExecutionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[announcementexecution.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AnnouncementExecutionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[announcementexecution.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AnnouncementExecutionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, announcementexecution.FieldFinishedAt)
}

// ClearAnnouncement clears the "announcement" edge to the Announcement entity.
func (m *AnnouncementExecutionMutation) ClearAnnouncement() {
	m.clearedannouncement = true
	m.clearedFields[announcementexecution.FieldAnnouncementID] = struct{}{}
}

// AnnouncementCleared reports if the "announcement" edge to the Announcement entity was cleared.
func (m *AnnouncementExecutionMutation) AnnouncementCleared() bool {
	return m.clearedannouncement
}

// AnnouncementIDs returns the "announcement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnnouncementID instead. It exists only for internal usage by the builders.
func (m *AnnouncementExecutionMutation) AnnouncementIDs() (ids []string) {
	if id := m.announcement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnnouncement resets all changes to the "announcement" edge.
func (m *AnnouncementExecutionMutation) ResetAnnouncement() {
	m.announcement = nil
	m.clearedannouncement = false
}

// Where appends a list predicates to the AnnouncementExecutionMutation builder.
func (m *AnnouncementExecutionMutation) Where(ps ...predicate.AnnouncementExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnouncementExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnouncementExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnnouncementExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnouncementExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnouncementExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnnouncementExecution).
func (m *AnnouncementExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnouncementExecutionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, announcementexecution.FieldTenantID)
	}
	if m.announcement != nil {
		fields = append(fields, announcementexecution.FieldAnnouncementID)
	}
	if m.execution_number != nil {
		fields = append(fields, announcementexecution.FieldExecutionNumber)
	}
	if m.message_sent != nil {
		fields = append(fields, announcementexecution.FieldMessageSent)
	}
	if m.sent_message_id != nil {
		fields = append(fields, announcementexecution.FieldSentMessageID)
	}
	if m.tasks_created != nil {
		fields = append(fields, announcementexecution.FieldTasksCreated)
	}
	if m.tasks_failed != nil {
		fields = append(fields, announcementexecution.FieldTasksFailed)
	}
	if m.members_snapshot != nil {
		fields = append(fields, announcementexecution.FieldMembersSnapshot)
	}
	if m.status != nil {
		fields = append(fields, announcementexecution.FieldStatus)
	}
	if m.skip_reason != nil {
		fields = append(fields, announcementexecution.FieldSkipReason)
	}
	if m.error_message != nil {
		fields = append(fields, announcementexecution.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, announcementexecution.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, announcementexecution.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnouncementExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case announcementexecution.FieldTenantID:
		return m.TenantID()
	case announcementexecution.FieldAnnouncementID:
		return m.AnnouncementID()
	case announcementexecution.FieldExecutionNumber:
		return m.ExecutionNumber()
	case announcementexecution.FieldMessageSent:
		return m.MessageSent()
	case announcementexecution.FieldSentMessageID:
		return m.SentMessageID()
	case announcementexecution.FieldTasksCreated:
		return m.TasksCreated()
	case announcementexecution.FieldTasksFailed:
		return m.TasksFailed()
	case announcementexecution.FieldMembersSnapshot:
		return m.MembersSnapshot()
	case announcementexecution.FieldStatus:
		return m.Status()
	case announcementexecution.FieldSkipReason:
		return m.SkipReason()
	case announcementexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case announcementexecution.FieldStartedAt:
		return m.StartedAt()
	case announcementexecution.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnouncementExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case announcementexecution.FieldTenantID:
		return m.OldTenantID(ctx)
	case announcementexecution.FieldAnnouncementID:
		return m.OldAnnouncementID(ctx)
	case announcementexecution.FieldExecutionNumber:
		return m.OldExecutionNumber(ctx)
	case announcementexecution.FieldMessageSent:
		return m.OldMessageSent(ctx)
	case announcementexecution.FieldSentMessageID:
		return m.OldSentMessageID(ctx)
	case announcementexecution.FieldTasksCreated:
		return m.OldTasksCreated(ctx)
	case announcementexecution.FieldTasksFailed:
		return m.OldTasksFailed(ctx)
	case announcementexecution.FieldMembersSnapshot:
		return m.OldMembersSnapshot(ctx)
	case announcementexecution.FieldStatus:
		return m.OldStatus(ctx)
	case announcementexecution.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case announcementexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case announcementexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case announcementexecution.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnnouncementExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case announcementexecution.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case announcementexecution.FieldAnnouncementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnouncementID(v)
		return nil
	case announcementexecution.FieldExecutionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionNumber(v)
		return nil
	case announcementexecution.FieldMessageSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageSent(v)
		return nil
	case announcementexecution.FieldSentMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentMessageID(v)
		return nil
	case announcementexecution.FieldTasksCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCreated(v)
		return nil
	case announcementexecution.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksFailed(v)
		return nil
	case announcementexecution.FieldMembersSnapshot:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembersSnapshot(v)
		return nil
	case announcementexecution.FieldStatus:
		v, ok := value.(announcementexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case announcementexecution.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case announcementexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case announcementexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case announcementexecution.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnouncementExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_number != nil {
		fields = append(fields, announcementexecution.FieldExecutionNumber)
	}
	if m.addtasks_created != nil {
		fields = append(fields, announcementexecution.FieldTasksCreated)
	}
	if m.addtasks_failed != nil {
		fields = append(fields, announcementexecution.FieldTasksFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnouncementExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case announcementexecution.FieldExecutionNumber:
		return m.AddedExecutionNumber()
	case announcementexecution.FieldTasksCreated:
		return m.AddedTasksCreated()
	case announcementexecution.FieldTasksFailed:
		return m.AddedTasksFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case announcementexecution.FieldExecutionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionNumber(v)
		return nil
	case announcementexecution.FieldTasksCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCreated(v)
		return nil
	case announcementexecution.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksFailed(v)
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnouncementExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(announcementexecution.FieldSentMessageID) {
		fields = append(fields, announcementexecution.FieldSentMessageID)
	}
	if m.FieldCleared(announcementexecution.FieldMembersSnapshot) {
		fields = append(fields, announcementexecution.FieldMembersSnapshot)
	}
	if m.FieldCleared(announcementexecution.FieldSkipReason) {
		fields = append(fields, announcementexecution.FieldSkipReason)
	}
	if m.FieldCleared(announcementexecution.FieldErrorMessage) {
		fields = append(fields, announcementexecution.FieldErrorMessage)
	}
	if m.FieldCleared(announcementexecution.FieldFinishedAt) {
		fields = append(fields, announcementexecution.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnouncementExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnouncementExecutionMutation) ClearField(name string) error {
	switch name {
	case announcementexecution.FieldSentMessageID:
		m.ClearSentMessageID()
		return nil
	case announcementexecution.FieldMembersSnapshot:
		m.ClearMembersSnapshot()
		return nil
	case announcementexecution.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case announcementexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case announcementexecution.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnouncementExecutionMutation) ResetField(name string) error {
	switch name {
	case announcementexecution.FieldTenantID:
		m.ResetTenantID()
		return nil
	case announcementexecution.FieldAnnouncementID:
		m.ResetAnnouncementID()
		return nil
	case announcementexecution.FieldExecutionNumber:
		m.ResetExecutionNumber()
		return nil
	case announcementexecution.FieldMessageSent:
		m.ResetMessageSent()
		return nil
	case announcementexecution.FieldSentMessageID:
		m.ResetSentMessageID()
		return nil
	case announcementexecution.FieldTasksCreated:
		m.ResetTasksCreated()
		return nil
	case announcementexecution.FieldTasksFailed:
		m.ResetTasksFailed()
		return nil
	case announcementexecution.FieldMembersSnapshot:
		m.ResetMembersSnapshot()
		return nil
	case announcementexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case announcementexecution.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case announcementexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case announcementexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case announcementexecution.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnouncementExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.announcement != nil {
		edges = append(edges, announcementexecution.EdgeAnnouncement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnouncementExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case announcementexecution.EdgeAnnouncement:
		if id := m.announcement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnouncementExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnouncementExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnouncementExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedannouncement {
		edges = append(edges, announcementexecution.EdgeAnnouncement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnouncementExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case announcementexecution.EdgeAnnouncement:
		return m.clearedannouncement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnouncementExecutionMutation) ClearEdge(name string) error {
	switch name {
	case announcementexecution.EdgeAnnouncement:
		m.ClearAnnouncement()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnouncementExecutionMutation) ResetEdge(name string) error {
	switch name {
	case announcementexecution.EdgeAnnouncement:
		m.ResetAnnouncement()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementExecution edge %s", name)
}

// AnnouncementPatternMutation represents an operation that mutates the AnnouncementPattern nodes in the graph.
type AnnouncementPatternMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	normalized_request  *string
	request_hash        *string
	occurrence_count    *int
	addoccurrence_count *int
	requester_ids       *[]string
	appendrequester_ids []string
	status              *announcementpattern.Status
	first_seen_at       *time.Time
	last_seen_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AnnouncementPattern, error)
	predicates          []predicate.AnnouncementPattern
}

var _ ent.Mutation = (*AnnouncementPatternMutation)(nil)

// announcementpatternOption allows management of the mutation configuration using functional options.
type announcementpatternOption func(*AnnouncementPatternMutation)

// newAnnouncementPatternMutation creates new mutation for the AnnouncementPattern entity.
func newAnnouncementPatternMutation(c config, op Op, opts ...announcementpatternOption) *AnnouncementPatternMutation {
	m := &AnnouncementPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnouncementPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnouncementPatternID sets the ID field of the mutation.
func withAnnouncementPatternID(id string) announcementpatternOption {
	return func(m *AnnouncementPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *AnnouncementPattern
		)
		m.oldValue = func(ctx context.Context) (*AnnouncementPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnnouncementPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnouncementPattern sets the old AnnouncementPattern of the mutation.
func withAnnouncementPattern(node *AnnouncementPattern) announcementpatternOption {
	return func(m *AnnouncementPatternMutation) {
		m.oldValue = func(context.Context) (*AnnouncementPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnouncementPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnouncementPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnnouncementPattern entities.
func (m *AnnouncementPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnouncementPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnouncementPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnnouncementPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AnnouncementPatternMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AnnouncementPatternMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AnnouncementPatternMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetNormalizedRequest sets the "normalized_request" field.
func (m *AnnouncementPatternMutation) SetNormalizedRequest(s string) {
	m.normalized_request = &s
}

// NormalizedRequest returns the value of the "normalized_request" field in the mutation.
func (m *AnnouncementPatternMutation) NormalizedRequest() (r string, exists bool) {
	v := m.normalized_request
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedRequest returns the old "normalized_request" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldNormalizedRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedRequest: %w", err)
	}
	return oldValue.NormalizedRequest, nil
}

// ResetNormalizedRequest resets all changes to the "normalized_request" field.
func (m *AnnouncementPatternMutation) ResetNormalizedRequest() {
	m.normalized_request = nil
}

// SetRequestHash sets the "request_hash" field.
func (m *AnnouncementPatternMutation) SetRequestHash(s string) {
	m.request_hash = &s
}

// RequestHash returns the value of the "request_hash" field in the mutation.
func (m *AnnouncementPatternMutation) RequestHash() (r string, exists bool) {
	v := m.request_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestHash returns the old "request_hash" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldRequestHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestHash: %w", err)
	}
	return oldValue.RequestHash, nil
}

// ResetRequestHash resets all changes to the "request_hash" field.
func (m *AnnouncementPatternMutation) ResetRequestHash() {
	m.request_hash = nil
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *AnnouncementPatternMutation) SetOccurrenceCount(i int) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *AnnouncementPatternMutation) OccurrenceCount() (r int, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldOccurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *AnnouncementPatternMutation) AddOccurrenceCount(i int) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *AnnouncementPatternMutation) AddedOccurrenceCount() (r int, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *AnnouncementPatternMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetRequesterIds sets the "requester_ids" field.
func (m *AnnouncementPatternMutation) SetRequesterIds(s []string) {
	m.requester_ids = &s
	m.appendrequester_ids = nil
}

// RequesterIds returns the value of the "requester_ids" field in the mutation.
func (m *AnnouncementPatternMutation) RequesterIds() (r []string, exists bool) {
	v := m.requester_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterIds returns the old "requester_ids" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldRequesterIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterIds: %w", err)
	}
	return oldValue.RequesterIds, nil
}

// AppendRequesterIds adds s to the "requester_ids" field.
func (m *AnnouncementPatternMutation) AppendRequesterIds(s []string) {
	m.appendrequester_ids = append(m.appendrequester_ids, s...)
}

// AppendedRequesterIds returns the list of values that were appended to the "requester_ids" field in this mutation.
func (m *AnnouncementPatternMutation) AppendedRequesterIds() ([]string, bool) {
	if len(m.appendrequester_ids) == 0 {
		return nil, false
	}
	return m.appendrequester_ids, true
}

// ClearRequesterIds clears the value of the "requester_ids" field.
func (m *AnnouncementPatternMutation) ClearRequesterIds() {
	m.requester_ids = nil
	m.appendrequester_ids = nil
	m.clearedFields[announcementpattern.FieldRequesterIds] = struct{}{}
}

// RequesterIdsCleared returns if the "requester_ids" field was cleared in this mutation.
func (m *AnnouncementPatternMutation) RequesterIdsCleared() bool {
	_, ok := m.clearedFields[announcementpattern.FieldRequesterIds]
	return ok
}

// ResetRequesterIds resets all changes to the "requester_ids" field.
func (m *AnnouncementPatternMutation) ResetRequesterIds() {
	m.requester_ids = nil
	m.appendrequester_ids = nil
	delete(m.clearedFields, announcementpattern.FieldRequesterIds)
}

// SetStatus sets the "status" field.
func (m *AnnouncementPatternMutation) SetStatus(a announcementpattern.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnnouncementPatternMutation) Status() (r announcementpattern.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldStatus(ctx context.Context) (v announcementpattern.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnnouncementPatternMutation) ResetStatus() {
	m.status = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *AnnouncementPatternMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *AnnouncementPatternMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *AnnouncementPatternMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AnnouncementPatternMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AnnouncementPatternMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the AnnouncementPattern entity.
// If the AnnouncementPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementPatternMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AnnouncementPatternMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// Where appends a list predicates to the AnnouncementPatternMutation builder.
func (m *AnnouncementPatternMutation) Where(ps ...predicate.AnnouncementPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnouncementPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnouncementPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnnouncementPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnouncementPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnouncementPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnnouncementPattern).
func (m *AnnouncementPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnouncementPatternMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, announcementpattern.FieldTenantID)
	}
	if m.normalized_request != nil {
		fields = append(fields, announcementpattern.FieldNormalizedRequest)
	}
	if m.request_hash != nil {
		fields = append(fields, announcementpattern.FieldRequestHash)
	}
	if m.occurrence_count != nil {
		fields = append(fields, announcementpattern.FieldOccurrenceCount)
	}
	if m.requester_ids != nil {
		fields = append(fields, announcementpattern.FieldRequesterIds)
	}
	if m.status != nil {
		fields = append(fields, announcementpattern.FieldStatus)
	}
	if m.first_seen_at != nil {
		fields = append(fields, announcementpattern.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, announcementpattern.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnouncementPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case announcementpattern.FieldTenantID:
		return m.TenantID()
	case announcementpattern.FieldNormalizedRequest:
		return m.NormalizedRequest()
	case announcementpattern.FieldRequestHash:
		return m.RequestHash()
	case announcementpattern.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case announcementpattern.FieldRequesterIds:
		return m.RequesterIds()
	case announcementpattern.FieldStatus:
		return m.Status()
	case announcementpattern.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case announcementpattern.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnouncementPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case announcementpattern.FieldTenantID:
		return m.OldTenantID(ctx)
	case announcementpattern.FieldNormalizedRequest:
		return m.OldNormalizedRequest(ctx)
	case announcementpattern.FieldRequestHash:
		return m.OldRequestHash(ctx)
	case announcementpattern.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case announcementpattern.FieldRequesterIds:
		return m.OldRequesterIds(ctx)
	case announcementpattern.FieldStatus:
		return m.OldStatus(ctx)
	case announcementpattern.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case announcementpattern.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnnouncementPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case announcementpattern.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case announcementpattern.FieldNormalizedRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedRequest(v)
		return nil
	case announcementpattern.FieldRequestHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestHash(v)
		return nil
	case announcementpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case announcementpattern.FieldRequesterIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterIds(v)
		return nil
	case announcementpattern.FieldStatus:
		v, ok := value.(announcementpattern.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case announcementpattern.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case announcementpattern.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnnouncementPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnouncementPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrence_count != nil {
		fields = append(fields, announcementpattern.FieldOccurrenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnouncementPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case announcementpattern.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case announcementpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown AnnouncementPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnouncementPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(announcementpattern.FieldRequesterIds) {
		fields = append(fields, announcementpattern.FieldRequesterIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnouncementPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnouncementPatternMutation) ClearField(name string) error {
	switch name {
	case announcementpattern.FieldRequesterIds:
		m.ClearRequesterIds()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnouncementPatternMutation) ResetField(name string) error {
	switch name {
	case announcementpattern.FieldTenantID:
		m.ResetTenantID()
		return nil
	case announcementpattern.FieldNormalizedRequest:
		m.ResetNormalizedRequest()
		return nil
	case announcementpattern.FieldRequestHash:
		m.ResetRequestHash()
		return nil
	case announcementpattern.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case announcementpattern.FieldRequesterIds:
		m.ResetRequesterIds()
		return nil
	case announcementpattern.FieldStatus:
		m.ResetStatus()
		return nil
	case announcementpattern.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case announcementpattern.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnouncementPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnouncementPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnouncementPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnouncementPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnouncementPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnouncementPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnouncementPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnnouncementPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnouncementPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnnouncementPattern edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	actor          *string
	action         *string
	resource_type  *string
	resource_id    *string
	classification *auditlog.Classification
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditLog, error)
	predicates     []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetClassification sets the "classification" field.
func (m *AuditLogMutation) SetClassification(a auditlog.Classification) {
	m.classification = &a
}

// Classification returns the value of the "classification" field in the mutation.
func (m *AuditLogMutation) Classification() (r auditlog.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldClassification(ctx context.Context) (v auditlog.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *AuditLogMutation) ResetClassification() {
	m.classification = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, auditlog.FieldTenantID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.classification != nil {
		fields = append(fields, auditlog.FieldClassification)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldTenantID:
		return m.TenantID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldClassification:
		return m.Classification()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldClassification:
		return m.OldClassification(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldClassification:
		v, ok := value.(auditlog.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldClassification:
		m.ResetClassification()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CeoTeachingMutation represents an operation that mutates the CeoTeaching nodes in the graph.
type CeoTeachingMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	ceo_user_id       *string
	statement         *string
	reasoning         *string
	context           *string
	category          *ceoteaching.Category
	priority          *int
	addpriority       *int
	is_active         *bool
	usage_count       *int
	addusage_count    *int
	validation_status *ceoteaching.ValidationStatus
	supersedes_id     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CeoTeaching, error)
	predicates        []predicate.CeoTeaching
}

var _ ent.Mutation = (*CeoTeachingMutation)(nil)

// ceoteachingOption allows management of the mutation configuration using functional options.
type ceoteachingOption func(*CeoTeachingMutation)

// newCeoTeachingMutation creates new mutation for the CeoTeaching entity.
func newCeoTeachingMutation(c config, op Op, opts ...ceoteachingOption) *CeoTeachingMutation {
	m := &CeoTeachingMutation{
		config:        c,
		op:            op,
		typ:           TypeCeoTeaching,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCeoTeachingID sets the ID field of the mutation.
func withCeoTeachingID(id string) ceoteachingOption {
	return func(m *CeoTeachingMutation) {
		var (
			err   error
			once  sync.Once
			value *CeoTeaching
		)
		m.oldValue = func(ctx context.Context) (*CeoTeaching, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CeoTeaching.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCeoTeaching sets the old CeoTeaching of the mutation.
func withCeoTeaching(node *CeoTeaching) ceoteachingOption {
	return func(m *CeoTeachingMutation) {
		m.oldValue = func(context.Context) (*CeoTeaching, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CeoTeachingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CeoTeachingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CeoTeaching entities.
func (m *CeoTeachingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CeoTeachingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CeoTeachingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CeoTeaching.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CeoTeachingMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CeoTeachingMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CeoTeachingMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCeoUserID sets the "ceo_user_id" field.
func (m *CeoTeachingMutation) SetCeoUserID(s string) {
	m.ceo_user_id = &s
}

// CeoUserID returns the value of the "ceo_user_id" field in the mutation.
func (m *CeoTeachingMutation) CeoUserID() (r string, exists bool) {
	v := m.ceo_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCeoUserID returns the old "ceo_user_id" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldCeoUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCeoUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCeoUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCeoUserID: %w", err)
	}
	return oldValue.CeoUserID, nil
}

// ResetCeoUserID resets all changes to the "ceo_user_id" field.
func (m *CeoTeachingMutation) ResetCeoUserID() {
	m.ceo_user_id = nil
}

// SetStatement sets the "statement" field.
func (m *CeoTeachingMutation) SetStatement(s string) {
	m.statement = &s
}

// Statement returns the value of the "statement" field in the mutation.
func (m *CeoTeachingMutation) Statement() (r string, exists bool) {
	v := m.statement
	if v == nil {
		return
	}
	return *v, true
}

// OldStatement returns the old "statement" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldStatement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatement: %w", err)
	}
	return oldValue.Statement, nil
}

// ResetStatement resets all changes to the "statement" field.
func (m *CeoTeachingMutation) ResetStatement() {
	m.statement = nil
}

// SetReasoning sets the "reasoning" field.
func (m *CeoTeachingMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *CeoTeachingMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *CeoTeachingMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[ceoteaching.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *CeoTeachingMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[ceoteaching.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *CeoTeachingMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, ceoteaching.FieldReasoning)
}

// SetContext sets the "context" field.
func (m *CeoTeachingMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *CeoTeachingMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *CeoTeachingMutation) ClearContext() {
	m.context = nil
	m.clearedFields[ceoteaching.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *CeoTeachingMutation) ContextCleared() bool {
	_, ok := m.clearedFields[ceoteaching.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *CeoTeachingMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, ceoteaching.FieldContext)
}

// SetCategory sets the "category" field.
func (m *CeoTeachingMutation) SetCategory(c ceoteaching.Category) {
	m.category = &c
}

// Category returns the value of the "category" field in the mutation.
func (m *CeoTeachingMutation) Category() (r ceoteaching.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldCategory(ctx context.Context) (v ceoteaching.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CeoTeachingMutation) ResetCategory() {
	m.category = nil
}

// SetPriority sets the "priority" field.
func (m *CeoTeachingMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *CeoTeachingMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *CeoTeachingMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *CeoTeachingMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *CeoTeachingMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetIsActive sets the "is_active" field.
func (m *CeoTeachingMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *CeoTeachingMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *CeoTeachingMutation) ResetIsActive() {
	m.is_active = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *CeoTeachingMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *CeoTeachingMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *CeoTeachingMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *CeoTeachingMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *CeoTeachingMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *CeoTeachingMutation) SetValidationStatus(cs ceoteaching.ValidationStatus) {
	m.validation_status = &cs
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *CeoTeachingMutation) ValidationStatus() (r ceoteaching.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldValidationStatus(ctx context.Context) (v ceoteaching.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *CeoTeachingMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetSupersedesID sets the "supersedes_id" field.
func (m *CeoTeachingMutation) SetSupersedesID(s string) {
	m.supersedes_id = &s
}

// SupersedesID returns the value of the "supersedes_id" field in the mutation.
func (m *CeoTeachingMutation) SupersedesID() (r string, exists bool) {
	v := m.supersedes_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersedesID returns the old "supersedes_id" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldSupersedesID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersedesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersedesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersedesID: %w", err)
	}
	return oldValue.SupersedesID, nil
}

// ClearSupersedesID clears the value of the "supersedes_id" field.
func (m *CeoTeachingMutation) ClearSupersedesID() {
	m.supersedes_id = nil
	m.clearedFields[ceoteaching.FieldSupersedesID] = struct{}{}
}

// SupersedesIDCleared returns if the "supersedes_id" field was cleared in this mutation.
func (m *CeoTeachingMutation) SupersedesIDCleared() bool {
	_, ok := m.clearedFields[ceoteaching.FieldSupersedesID]
	return ok
}

// ResetSupersedesID resets all changes to the "supersedes_id" field.
func (m *CeoTeachingMutation) ResetSupersedesID() {
	m.supersedes_id = nil
	delete(m.clearedFields, ceoteaching.FieldSupersedesID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CeoTeachingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CeoTeachingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CeoTeachingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CeoTeachingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CeoTeachingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CeoTeaching entity.
// If the CeoTeaching object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CeoTeachingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CeoTeachingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CeoTeachingMutation builder.
func (m *CeoTeachingMutation) Where(ps ...predicate.CeoTeaching) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CeoTeachingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CeoTeachingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CeoTeaching, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CeoTeachingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CeoTeachingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CeoTeaching).
func (m *CeoTeachingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CeoTeachingMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, ceoteaching.FieldTenantID)
	}
	if m.ceo_user_id != nil {
		fields = append(fields, ceoteaching.FieldCeoUserID)
	}
	if m.statement != nil {
		fields = append(fields, ceoteaching.FieldStatement)
	}
	if m.reasoning != nil {
		fields = append(fields, ceoteaching.FieldReasoning)
	}
	if m.context != nil {
		fields = append(fields, ceoteaching.FieldContext)
	}
	if m.category != nil {
		fields = append(fields, ceoteaching.FieldCategory)
	}
	if m.priority != nil {
		fields = append(fields, ceoteaching.FieldPriority)
	}
	if m.is_active != nil {
		fields = append(fields, ceoteaching.FieldIsActive)
	}
	if m.usage_count != nil {
		fields = append(fields, ceoteaching.FieldUsageCount)
	}
	if m.validation_status != nil {
		fields = append(fields, ceoteaching.FieldValidationStatus)
	}
	if m.supersedes_id != nil {
		fields = append(fields, ceoteaching.FieldSupersedesID)
	}
	if m.created_at != nil {
		fields = append(fields, ceoteaching.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ceoteaching.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CeoTeachingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ceoteaching.FieldTenantID:
		return m.TenantID()
	case ceoteaching.FieldCeoUserID:
		return m.CeoUserID()
	case ceoteaching.FieldStatement:
		return m.Statement()
	case ceoteaching.FieldReasoning:
		return m.Reasoning()
	case ceoteaching.FieldContext:
		return m.Context()
	case ceoteaching.FieldCategory:
		return m.Category()
	case ceoteaching.FieldPriority:
		return m.Priority()
	case ceoteaching.FieldIsActive:
		return m.IsActive()
	case ceoteaching.FieldUsageCount:
		return m.UsageCount()
	case ceoteaching.FieldValidationStatus:
		return m.ValidationStatus()
	case ceoteaching.FieldSupersedesID:
		return m.SupersedesID()
	case ceoteaching.FieldCreatedAt:
		return m.CreatedAt()
	case ceoteaching.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CeoTeachingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ceoteaching.FieldTenantID:
		return m.OldTenantID(ctx)
	case ceoteaching.FieldCeoUserID:
		return m.OldCeoUserID(ctx)
	case ceoteaching.FieldStatement:
		return m.OldStatement(ctx)
	case ceoteaching.FieldReasoning:
		return m.OldReasoning(ctx)
	case ceoteaching.FieldContext:
		return m.OldContext(ctx)
	case ceoteaching.FieldCategory:
		return m.OldCategory(ctx)
	case ceoteaching.FieldPriority:
		return m.OldPriority(ctx)
	case ceoteaching.FieldIsActive:
		return m.OldIsActive(ctx)
	case ceoteaching.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case ceoteaching.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case ceoteaching.FieldSupersedesID:
		return m.OldSupersedesID(ctx)
	case ceoteaching.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ceoteaching.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CeoTeaching field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CeoTeachingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ceoteaching.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case ceoteaching.FieldCeoUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCeoUserID(v)
		return nil
	case ceoteaching.FieldStatement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatement(v)
		return nil
	case ceoteaching.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case ceoteaching.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case ceoteaching.FieldCategory:
		v, ok := value.(ceoteaching.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case ceoteaching.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ceoteaching.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case ceoteaching.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case ceoteaching.FieldValidationStatus:
		v, ok := value.(ceoteaching.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case ceoteaching.FieldSupersedesID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersedesID(v)
		return nil
	case ceoteaching.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ceoteaching.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CeoTeaching field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CeoTeachingMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, ceoteaching.FieldPriority)
	}
	if m.addusage_count != nil {
		fields = append(fields, ceoteaching.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CeoTeachingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ceoteaching.FieldPriority:
		return m.AddedPriority()
	case ceoteaching.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CeoTeachingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ceoteaching.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case ceoteaching.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown CeoTeaching numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CeoTeachingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ceoteaching.FieldReasoning) {
		fields = append(fields, ceoteaching.FieldReasoning)
	}
	if m.FieldCleared(ceoteaching.FieldContext) {
		fields = append(fields, ceoteaching.FieldContext)
	}
	if m.FieldCleared(ceoteaching.FieldSupersedesID) {
		fields = append(fields, ceoteaching.FieldSupersedesID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CeoTeachingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CeoTeachingMutation) ClearField(name string) error {
	switch name {
	case ceoteaching.FieldReasoning:
		m.ClearReasoning()
		return nil
	case ceoteaching.FieldContext:
		m.ClearContext()
		return nil
	case ceoteaching.FieldSupersedesID:
		m.ClearSupersedesID()
		return nil
	}
	return fmt.Errorf("unknown CeoTeaching nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CeoTeachingMutation) ResetField(name string) error {
	switch name {
	case ceoteaching.FieldTenantID:
		m.ResetTenantID()
		return nil
	case ceoteaching.FieldCeoUserID:
		m.ResetCeoUserID()
		return nil
	case ceoteaching.FieldStatement:
		m.ResetStatement()
		return nil
	case ceoteaching.FieldReasoning:
		m.ResetReasoning()
		return nil
	case ceoteaching.FieldContext:
		m.ResetContext()
		return nil
	case ceoteaching.FieldCategory:
		m.ResetCategory()
		return nil
	case ceoteaching.FieldPriority:
		m.ResetPriority()
		return nil
	case ceoteaching.FieldIsActive:
		m.ResetIsActive()
		return nil
	case ceoteaching.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case ceoteaching.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case ceoteaching.FieldSupersedesID:
		m.ResetSupersedesID()
		return nil
	case ceoteaching.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ceoteaching.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CeoTeaching field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CeoTeachingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CeoTeachingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CeoTeachingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CeoTeachingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CeoTeachingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CeoTeachingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CeoTeachingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CeoTeaching unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CeoTeachingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CeoTeaching edge %s", name)
}

// ConversationStateMutation represents an operation that mutates the ConversationState nodes in the graph.
type ConversationStateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	room_id        *string
	user_id        *string
	state_type     *conversationstate.StateType
	step           *string
	data           *map[string]interface{}
	reference_type *string
	reference_id   *string
	expires_at     *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ConversationState, error)
	predicates     []predicate.ConversationState
}

var _ ent.Mutation = (*ConversationStateMutation)(nil)

// conversationstateOption allows management of the mutation configuration using functional options.
type conversationstateOption func(*ConversationStateMutation)

// newConversationStateMutation creates new mutation for the ConversationState entity.
func newConversationStateMutation(c config, op Op, opts ...conversationstateOption) *ConversationStateMutation {
	m := &ConversationStateMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationStateID sets the ID field of the mutation.
func withConversationStateID(id string) conversationstateOption {
	return func(m *ConversationStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationState
		)
		m.oldValue = func(ctx context.Context) (*ConversationState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationState sets the old ConversationState of the mutation.
func withConversationState(node *ConversationState) conversationstateOption {
	return func(m *ConversationStateMutation) {
		m.oldValue = func(context.Context) (*ConversationState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationState entities.
func (m *ConversationStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationStateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationStateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationStateMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *ConversationStateMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ConversationStateMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ConversationStateMutation) ResetRoomID() {
	m.room_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ConversationStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetStateType sets the "state_type" field.
func (m *ConversationStateMutation) SetStateType(ct conversationstate.StateType) {
	m.state_type = &ct
}

// StateType returns the value of the "state_type" field in the mutation.
func (m *ConversationStateMutation) StateType() (r conversationstate.StateType, exists bool) {
	v := m.state_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStateType returns the old "state_type" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldStateType(ctx context.Context) (v conversationstate.StateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateType: %w", err)
	}
	return oldValue.StateType, nil
}

// ResetStateType resets all changes to the "state_type" field.
func (m *ConversationStateMutation) ResetStateType() {
	m.state_type = nil
}

// SetStep sets the "step" field.
func (m *ConversationStateMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *ConversationStateMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ClearStep clears the value of the "step" field.
func (m *ConversationStateMutation) ClearStep() {
	m.step = nil
	m.clearedFields[conversationstate.FieldStep] = struct{}{}
}

// StepCleared returns if the "step" field was cleared in this mutation.
func (m *ConversationStateMutation) StepCleared() bool {
	_, ok := m.clearedFields[conversationstate.FieldStep]
	return ok
}

// ResetStep resets all changes to the "step" field.
func (m *ConversationStateMutation) ResetStep() {
	m.step = nil
	delete(m.clearedFields, conversationstate.FieldStep)
}

// SetData sets the "data" field.
func (m *ConversationStateMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ConversationStateMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ConversationStateMutation) ClearData() {
	m.data = nil
	m.clearedFields[conversationstate.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ConversationStateMutation) DataCleared() bool {
	_, ok := m.clearedFields[conversationstate.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ConversationStateMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, conversationstate.FieldData)
}

// SetReferenceType sets the "reference_type" field.
func (m *ConversationStateMutation) SetReferenceType(s string) {
	m.reference_type = &s
}

// ReferenceType returns the value of the "reference_type" field in the mutation.
func (m *ConversationStateMutation) ReferenceType() (r string, exists bool) {
	v := m.reference_type
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceType returns the old "reference_type" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldReferenceType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceType: %w", err)
	}
	return oldValue.ReferenceType, nil
}

// ClearReferenceType clears the value of the "reference_type" field.
func (m *ConversationStateMutation) ClearReferenceType() {
	m.reference_type = nil
	m.clearedFields[conversationstate.FieldReferenceType] = struct{}{}
}

// ReferenceTypeCleared returns if the "reference_type" field was cleared in this mutation.
func (m *ConversationStateMutation) ReferenceTypeCleared() bool {
	_, ok := m.clearedFields[conversationstate.FieldReferenceType]
	return ok
}

// ResetReferenceType resets all changes to the "reference_type" field.
func (m *ConversationStateMutation) ResetReferenceType() {
	m.reference_type = nil
	delete(m.clearedFields, conversationstate.FieldReferenceType)
}

// SetReferenceID sets the "reference_id" field.
func (m *ConversationStateMutation) SetReferenceID(s string) {
	m.reference_id = &s
}

// ReferenceID returns the value of the "reference_id" field in the mutation.
func (m *ConversationStateMutation) ReferenceID() (r string, exists bool) {
	v := m.reference_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceID returns the old "reference_id" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldReferenceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceID: %w", err)
	}
	return oldValue.ReferenceID, nil
}

// ClearReferenceID clears the value of the "reference_id" field.
func (m *ConversationStateMutation) ClearReferenceID() {
	m.reference_id = nil
	m.clearedFields[conversationstate.FieldReferenceID] = struct{}{}
}

// ReferenceIDCleared returns if the "reference_id" field was cleared in this mutation.
func (m *ConversationStateMutation) ReferenceIDCleared() bool {
	_, ok := m.clearedFields[conversationstate.FieldReferenceID]
	return ok
}

// ResetReferenceID resets all changes to the "reference_id" field.
func (m *ConversationStateMutation) ResetReferenceID() {
	m.reference_id = nil
	delete(m.clearedFields, conversationstate.FieldReferenceID)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ConversationStateMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ConversationStateMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ConversationStateMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversationState entity.
// If the ConversationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConversationStateMutation builder.
func (m *ConversationStateMutation) Where(ps ...predicate.ConversationState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationState).
func (m *ConversationStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, conversationstate.FieldTenantID)
	}
	if m.room_id != nil {
		fields = append(fields, conversationstate.FieldRoomID)
	}
	if m.user_id != nil {
		fields = append(fields, conversationstate.FieldUserID)
	}
	if m.state_type != nil {
		fields = append(fields, conversationstate.FieldStateType)
	}
	if m.step != nil {
		fields = append(fields, conversationstate.FieldStep)
	}
	if m.data != nil {
		fields = append(fields, conversationstate.FieldData)
	}
	if m.reference_type != nil {
		fields = append(fields, conversationstate.FieldReferenceType)
	}
	if m.reference_id != nil {
		fields = append(fields, conversationstate.FieldReferenceID)
	}
	if m.expires_at != nil {
		fields = append(fields, conversationstate.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, conversationstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversationstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationstate.FieldTenantID:
		return m.TenantID()
	case conversationstate.FieldRoomID:
		return m.RoomID()
	case conversationstate.FieldUserID:
		return m.UserID()
	case conversationstate.FieldStateType:
		return m.StateType()
	case conversationstate.FieldStep:
		return m.Step()
	case conversationstate.FieldData:
		return m.Data()
	case conversationstate.FieldReferenceType:
		return m.ReferenceType()
	case conversationstate.FieldReferenceID:
		return m.ReferenceID()
	case conversationstate.FieldExpiresAt:
		return m.ExpiresAt()
	case conversationstate.FieldCreatedAt:
		return m.CreatedAt()
	case conversationstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationstate.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversationstate.FieldRoomID:
		return m.OldRoomID(ctx)
	case conversationstate.FieldUserID:
		return m.OldUserID(ctx)
	case conversationstate.FieldStateType:
		return m.OldStateType(ctx)
	case conversationstate.FieldStep:
		return m.OldStep(ctx)
	case conversationstate.FieldData:
		return m.OldData(ctx)
	case conversationstate.FieldReferenceType:
		return m.OldReferenceType(ctx)
	case conversationstate.FieldReferenceID:
		return m.OldReferenceID(ctx)
	case conversationstate.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case conversationstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversationstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationstate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversationstate.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case conversationstate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversationstate.FieldStateType:
		v, ok := value.(conversationstate.StateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateType(v)
		return nil
	case conversationstate.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case conversationstate.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case conversationstate.FieldReferenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceType(v)
		return nil
	case conversationstate.FieldReferenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceID(v)
		return nil
	case conversationstate.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case conversationstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversationstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationstate.FieldStep) {
		fields = append(fields, conversationstate.FieldStep)
	}
	if m.FieldCleared(conversationstate.FieldData) {
		fields = append(fields, conversationstate.FieldData)
	}
	if m.FieldCleared(conversationstate.FieldReferenceType) {
		fields = append(fields, conversationstate.FieldReferenceType)
	}
	if m.FieldCleared(conversationstate.FieldReferenceID) {
		fields = append(fields, conversationstate.FieldReferenceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationStateMutation) ClearField(name string) error {
	switch name {
	case conversationstate.FieldStep:
		m.ClearStep()
		return nil
	case conversationstate.FieldData:
		m.ClearData()
		return nil
	case conversationstate.FieldReferenceType:
		m.ClearReferenceType()
		return nil
	case conversationstate.FieldReferenceID:
		m.ClearReferenceID()
		return nil
	}
	return fmt.Errorf("unknown ConversationState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationStateMutation) ResetField(name string) error {
	switch name {
	case conversationstate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversationstate.FieldRoomID:
		m.ResetRoomID()
		return nil
	case conversationstate.FieldUserID:
		m.ResetUserID()
		return nil
	case conversationstate.FieldStateType:
		m.ResetStateType()
		return nil
	case conversationstate.FieldStep:
		m.ResetStep()
		return nil
	case conversationstate.FieldData:
		m.ResetData()
		return nil
	case conversationstate.FieldReferenceType:
		m.ResetReferenceType()
		return nil
	case conversationstate.FieldReferenceID:
		m.ResetReferenceID()
		return nil
	case conversationstate.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case conversationstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversationstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConversationState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConversationState edge %s", name)
}

// ConversationSummaryMutation represents an operation that mutates the ConversationSummary nodes in the graph.
type ConversationSummaryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	room_id          *string
	user_id          *string
	summary          *string
	turns_covered    *int
	addturns_covered *int
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ConversationSummary, error)
	predicates       []predicate.ConversationSummary
}

var _ ent.Mutation = (*ConversationSummaryMutation)(nil)

// conversationsummaryOption allows management of the mutation configuration using functional options.
type conversationsummaryOption func(*ConversationSummaryMutation)

// newConversationSummaryMutation creates new mutation for the ConversationSummary entity.
func newConversationSummaryMutation(c config, op Op, opts ...conversationsummaryOption) *ConversationSummaryMutation {
	m := &ConversationSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationSummaryID sets the ID field of the mutation.
func withConversationSummaryID(id string) conversationsummaryOption {
	return func(m *ConversationSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationSummary
		)
		m.oldValue = func(ctx context.Context) (*ConversationSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationSummary sets the old ConversationSummary of the mutation.
func withConversationSummary(node *ConversationSummary) conversationsummaryOption {
	return func(m *ConversationSummaryMutation) {
		m.oldValue = func(context.Context) (*ConversationSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationSummary entities.
func (m *ConversationSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationSummaryMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationSummaryMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationSummaryMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *ConversationSummaryMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ConversationSummaryMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ConversationSummaryMutation) ResetRoomID() {
	m.room_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ConversationSummaryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationSummaryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationSummaryMutation) ResetUserID() {
	m.user_id = nil
}

// SetSummary sets the "summary" field.
func (m *ConversationSummaryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ConversationSummaryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ConversationSummaryMutation) ResetSummary() {
	m.summary = nil
}

// SetTurnsCovered sets the "turns_covered" field.
func (m *ConversationSummaryMutation) SetTurnsCovered(i int) {
	m.turns_covered = &i
	m.addturns_covered = nil
}

// TurnsCovered returns the value of the "turns_covered" field in the mutation.
func (m *ConversationSummaryMutation) TurnsCovered() (r int, exists bool) {
	v := m.turns_covered
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnsCovered returns the old "turns_covered" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldTurnsCovered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnsCovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnsCovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnsCovered: %w", err)
	}
	return oldValue.TurnsCovered, nil
}

// AddTurnsCovered adds i to the "turns_covered" field.
func (m *ConversationSummaryMutation) AddTurnsCovered(i int) {
	if m.addturns_covered != nil {
		*m.addturns_covered += i
	} else {
		m.addturns_covered = &i
	}
}

// AddedTurnsCovered returns the value that was added to the "turns_covered" field in this mutation.
func (m *ConversationSummaryMutation) AddedTurnsCovered() (r int, exists bool) {
	v := m.addturns_covered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnsCovered resets all changes to the "turns_covered" field.
func (m *ConversationSummaryMutation) ResetTurnsCovered() {
	m.turns_covered = nil
	m.addturns_covered = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversationSummary entity.
// If the ConversationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConversationSummaryMutation builder.
func (m *ConversationSummaryMutation) Where(ps ...predicate.ConversationSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationSummary).
func (m *ConversationSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationSummaryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, conversationsummary.FieldTenantID)
	}
	if m.room_id != nil {
		fields = append(fields, conversationsummary.FieldRoomID)
	}
	if m.user_id != nil {
		fields = append(fields, conversationsummary.FieldUserID)
	}
	if m.summary != nil {
		fields = append(fields, conversationsummary.FieldSummary)
	}
	if m.turns_covered != nil {
		fields = append(fields, conversationsummary.FieldTurnsCovered)
	}
	if m.updated_at != nil {
		fields = append(fields, conversationsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationsummary.FieldTenantID:
		return m.TenantID()
	case conversationsummary.FieldRoomID:
		return m.RoomID()
	case conversationsummary.FieldUserID:
		return m.UserID()
	case conversationsummary.FieldSummary:
		return m.Summary()
	case conversationsummary.FieldTurnsCovered:
		return m.TurnsCovered()
	case conversationsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationsummary.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversationsummary.FieldRoomID:
		return m.OldRoomID(ctx)
	case conversationsummary.FieldUserID:
		return m.OldUserID(ctx)
	case conversationsummary.FieldSummary:
		return m.OldSummary(ctx)
	case conversationsummary.FieldTurnsCovered:
		return m.OldTurnsCovered(ctx)
	case conversationsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationsummary.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversationsummary.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case conversationsummary.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversationsummary.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case conversationsummary.FieldTurnsCovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnsCovered(v)
		return nil
	case conversationsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addturns_covered != nil {
		fields = append(fields, conversationsummary.FieldTurnsCovered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationsummary.FieldTurnsCovered:
		return m.AddedTurnsCovered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationsummary.FieldTurnsCovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnsCovered(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConversationSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationSummaryMutation) ResetField(name string) error {
	switch name {
	case conversationsummary.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversationsummary.FieldRoomID:
		m.ResetRoomID()
		return nil
	case conversationsummary.FieldUserID:
		m.ResetUserID()
		return nil
	case conversationsummary.FieldSummary:
		m.ResetSummary()
		return nil
	case conversationsummary.FieldTurnsCovered:
		m.ResetTurnsCovered()
		return nil
	case conversationsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConversationSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConversationSummary edge %s", name)
}

// ConversationTurnMutation represents an operation that mutates the ConversationTurn nodes in the graph.
type ConversationTurnMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	room_id       *string
	user_id       *string
	role          *conversationturn.Role
	content       *string
	summarized    *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ConversationTurn, error)
	predicates    []predicate.ConversationTurn
}

var _ ent.Mutation = (*ConversationTurnMutation)(nil)

// conversationturnOption allows management of the mutation configuration using functional options.
type conversationturnOption func(*ConversationTurnMutation)

// newConversationTurnMutation creates new mutation for the ConversationTurn entity.
func newConversationTurnMutation(c config, op Op, opts ...conversationturnOption) *ConversationTurnMutation {
	m := &ConversationTurnMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationTurnID sets the ID field of the mutation.
func withConversationTurnID(id string) conversationturnOption {
	return func(m *ConversationTurnMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationTurn
		)
		m.oldValue = func(ctx context.Context) (*ConversationTurn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationTurn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationTurn sets the old ConversationTurn of the mutation.
func withConversationTurn(node *ConversationTurn) conversationturnOption {
	return func(m *ConversationTurnMutation) {
		m.oldValue = func(context.Context) (*ConversationTurn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationTurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationTurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationTurn entities.
func (m *ConversationTurnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationTurnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationTurnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationTurn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationTurnMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationTurnMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationTurnMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *ConversationTurnMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ConversationTurnMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ConversationTurnMutation) ResetRoomID() {
	m.room_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ConversationTurnMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationTurnMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationTurnMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *ConversationTurnMutation) SetRole(c conversationturn.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConversationTurnMutation) Role() (r conversationturn.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldRole(ctx context.Context) (v conversationturn.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConversationTurnMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ConversationTurnMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ConversationTurnMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ConversationTurnMutation) ResetContent() {
	m.content = nil
}

// SetSummarized sets the "summarized" field.
func (m *ConversationTurnMutation) SetSummarized(b bool) {
	m.summarized = &b
}

// Summarized returns the value of the "summarized" field in the mutation.
func (m *ConversationTurnMutation) Summarized() (r bool, exists bool) {
	v := m.summarized
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarized returns the old "summarized" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldSummarized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarized: %w", err)
	}
	return oldValue.Summarized, nil
}

// ResetSummarized resets all changes to the "summarized" field.
func (m *ConversationTurnMutation) ResetSummarized() {
	m.summarized = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationTurnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationTurnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationTurnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ConversationTurnMutation builder.
func (m *ConversationTurnMutation) Where(ps ...predicate.ConversationTurn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationTurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationTurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationTurn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationTurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationTurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationTurn).
func (m *ConversationTurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationTurnMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, conversationturn.FieldTenantID)
	}
	if m.room_id != nil {
		fields = append(fields, conversationturn.FieldRoomID)
	}
	if m.user_id != nil {
		fields = append(fields, conversationturn.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, conversationturn.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, conversationturn.FieldContent)
	}
	if m.summarized != nil {
		fields = append(fields, conversationturn.FieldSummarized)
	}
	if m.created_at != nil {
		fields = append(fields, conversationturn.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationTurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationturn.FieldTenantID:
		return m.TenantID()
	case conversationturn.FieldRoomID:
		return m.RoomID()
	case conversationturn.FieldUserID:
		return m.UserID()
	case conversationturn.FieldRole:
		return m.Role()
	case conversationturn.FieldContent:
		return m.Content()
	case conversationturn.FieldSummarized:
		return m.Summarized()
	case conversationturn.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationTurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationturn.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversationturn.FieldRoomID:
		return m.OldRoomID(ctx)
	case conversationturn.FieldUserID:
		return m.OldUserID(ctx)
	case conversationturn.FieldRole:
		return m.OldRole(ctx)
	case conversationturn.FieldContent:
		return m.OldContent(ctx)
	case conversationturn.FieldSummarized:
		return m.OldSummarized(ctx)
	case conversationturn.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationTurn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationTurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationturn.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversationturn.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case conversationturn.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversationturn.FieldRole:
		v, ok := value.(conversationturn.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case conversationturn.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case conversationturn.FieldSummarized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarized(v)
		return nil
	case conversationturn.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationTurnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationTurnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationTurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationTurn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationTurnMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationTurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationTurnMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConversationTurn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationTurnMutation) ResetField(name string) error {
	switch name {
	case conversationturn.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversationturn.FieldRoomID:
		m.ResetRoomID()
		return nil
	case conversationturn.FieldUserID:
		m.ResetUserID()
		return nil
	case conversationturn.FieldRole:
		m.ResetRole()
		return nil
	case conversationturn.FieldContent:
		m.ResetContent()
		return nil
	case conversationturn.FieldSummarized:
		m.ResetSummarized()
		return nil
	case conversationturn.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationTurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationTurnMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationTurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationTurnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationTurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationTurnMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationTurnMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConversationTurn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationTurnMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConversationTurn edge %s", name)
}

// DecisionLogMutation represents an operation that mutates the DecisionLog nodes in the graph.
type DecisionLogMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	user_id                 *string
	room_id                 *string
	message_excerpt         *string
	intent                  *string
	capability_key          *string
	parameters              *map[string]interface{}
	confidence              *float64
	addconfidence           *float64
	intent_confidence       *float64
	addintent_confidence    *float64
	parameter_confidence    *float64
	addparameter_confidence *float64
	guardrail_action        *string
	policy_reason           *string
	success                 *bool
	error_code              *string
	tokens_in               *int
	addtokens_in            *int
	tokens_out              *int
	addtokens_out           *int
	model_id                *string
	timings_ms              *map[string]int64
	confirmation_needed     *bool
	confirmation_question   *string
	confirmation_resolution *string
	warnings                *[]string
	appendwarnings          []string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DecisionLog, error)
	predicates              []predicate.DecisionLog
}

var _ ent.Mutation = (*DecisionLogMutation)(nil)

// decisionlogOption allows management of the mutation configuration using functional options.
type decisionlogOption func(*DecisionLogMutation)

// newDecisionLogMutation creates new mutation for the DecisionLog entity.
func newDecisionLogMutation(c config, op Op, opts ...decisionlogOption) *DecisionLogMutation {
	m := &DecisionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeDecisionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionLogID sets the ID field of the mutation.
func withDecisionLogID(id string) decisionlogOption {
	return func(m *DecisionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *DecisionLog
		)
		m.oldValue = func(ctx context.Context) (*DecisionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DecisionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecisionLog sets the old DecisionLog of the mutation.
func withDecisionLog(node *DecisionLog) decisionlogOption {
	return func(m *DecisionLogMutation) {
		m.oldValue = func(context.Context) (*DecisionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DecisionLog entities.
func (m *DecisionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DecisionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DecisionLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DecisionLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DecisionLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *DecisionLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DecisionLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DecisionLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *DecisionLogMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *DecisionLogMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *DecisionLogMutation) ResetRoomID() {
	m.room_id = nil
}

// SetMessageExcerpt sets the "message_excerpt" field.
func (m *DecisionLogMutation) SetMessageExcerpt(s string) {
	m.message_excerpt = &s
}

// MessageExcerpt returns the value of the "message_excerpt" field in the mutation.
func (m *DecisionLogMutation) MessageExcerpt() (r string, exists bool) {
	v := m.message_excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageExcerpt returns the old "message_excerpt" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldMessageExcerpt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageExcerpt: %w", err)
	}
	return oldValue.MessageExcerpt, nil
}

// ResetMessageExcerpt resets all changes to the "message_excerpt" field.
func (m *DecisionLogMutation) ResetMessageExcerpt() {
	m.message_excerpt = nil
}

// SetIntent sets the "intent" field.
func (m *DecisionLogMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *DecisionLogMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *DecisionLogMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[decisionlog.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *DecisionLogMutation) IntentCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *DecisionLogMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, decisionlog.FieldIntent)
}

// SetCapabilityKey sets the "capability_key" field.
func (m *DecisionLogMutation) SetCapabilityKey(s string) {
	m.capability_key = &s
}

// CapabilityKey returns the value of the "capability_key" field in the mutation.
func (m *DecisionLogMutation) CapabilityKey() (r string, exists bool) {
	v := m.capability_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilityKey returns the old "capability_key" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldCapabilityKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilityKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilityKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilityKey: %w", err)
	}
	return oldValue.CapabilityKey, nil
}

// ClearCapabilityKey clears the value of the "capability_key" field.
func (m *DecisionLogMutation) ClearCapabilityKey() {
	m.capability_key = nil
	m.clearedFields[decisionlog.FieldCapabilityKey] = struct{}{}
}

// CapabilityKeyCleared returns if the "capability_key" field was cleared in this mutation.
func (m *DecisionLogMutation) CapabilityKeyCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldCapabilityKey]
	return ok
}

// ResetCapabilityKey resets all changes to the "capability_key" field.
func (m *DecisionLogMutation) ResetCapabilityKey() {
	m.capability_key = nil
	delete(m.clearedFields, decisionlog.FieldCapabilityKey)
}

// SetParameters sets the "parameters" field.
func (m *DecisionLogMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *DecisionLogMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *DecisionLogMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[decisionlog.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *DecisionLogMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *DecisionLogMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, decisionlog.FieldParameters)
}

// SetConfidence sets the "confidence" field.
func (m *DecisionLogMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DecisionLogMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DecisionLogMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DecisionLogMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DecisionLogMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetIntentConfidence sets the "intent_confidence" field.
func (m *DecisionLogMutation) SetIntentConfidence(f float64) {
	m.intent_confidence = &f
	m.addintent_confidence = nil
}

// IntentConfidence returns the value of the "intent_confidence" field in the mutation.
func (m *DecisionLogMutation) IntentConfidence() (r float64, exists bool) {
	v := m.intent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentConfidence returns the old "intent_confidence" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldIntentConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentConfidence: %w", err)
	}
	return oldValue.IntentConfidence, nil
}

// AddIntentConfidence adds f to the "intent_confidence" field.
func (m *DecisionLogMutation) AddIntentConfidence(f float64) {
	if m.addintent_confidence != nil {
		*m.addintent_confidence += f
	} else {
		m.addintent_confidence = &f
	}
}

// AddedIntentConfidence returns the value that was added to the "intent_confidence" field in this mutation.
func (m *DecisionLogMutation) AddedIntentConfidence() (r float64, exists bool) {
	v := m.addintent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntentConfidence resets all changes to the "intent_confidence" field.
func (m *DecisionLogMutation) ResetIntentConfidence() {
	m.intent_confidence = nil
	m.addintent_confidence = nil
}

// SetParameterConfidence sets the "parameter_confidence" field.
func (m *DecisionLogMutation) SetParameterConfidence(f float64) {
	m.parameter_confidence = &f
	m.addparameter_confidence = nil
}

// ParameterConfidence returns the value of the "parameter_confidence" field in the mutation.
func (m *DecisionLogMutation) ParameterConfidence() (r float64, exists bool) {
	v := m.parameter_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterConfidence returns the old "parameter_confidence" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldParameterConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterConfidence: %w", err)
	}
	return oldValue.ParameterConfidence, nil
}

// AddParameterConfidence adds f to the "parameter_confidence" field.
func (m *DecisionLogMutation) AddParameterConfidence(f float64) {
	if m.addparameter_confidence != nil {
		*m.addparameter_confidence += f
	} else {
		m.addparameter_confidence = &f
	}
}

// AddedParameterConfidence returns the value that was added to the "parameter_confidence" field in this mutation.
func (m *DecisionLogMutation) AddedParameterConfidence() (r float64, exists bool) {
	v := m.addparameter_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetParameterConfidence resets all changes to the "parameter_confidence" field.
func (m *DecisionLogMutation) ResetParameterConfidence() {
	m.parameter_confidence = nil
	m.addparameter_confidence = nil
}

// SetGuardrailAction sets the "guardrail_action" field.
func (m *DecisionLogMutation) SetGuardrailAction(s string) {
	m.guardrail_action = &s
}

// GuardrailAction returns the value of the "guardrail_action" field in the mutation.
func (m *DecisionLogMutation) GuardrailAction() (r string, exists bool) {
	v := m.guardrail_action
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardrailAction returns the old "guardrail_action" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldGuardrailAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardrailAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardrailAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardrailAction: %w", err)
	}
	return oldValue.GuardrailAction, nil
}

// ClearGuardrailAction clears the value of the "guardrail_action" field.
func (m *DecisionLogMutation) ClearGuardrailAction() {
	m.guardrail_action = nil
	m.clearedFields[decisionlog.FieldGuardrailAction] = struct{}{}
}

// GuardrailActionCleared returns if the "guardrail_action" field was cleared in this mutation.
func (m *DecisionLogMutation) GuardrailActionCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldGuardrailAction]
	return ok
}

// ResetGuardrailAction resets all changes to the "guardrail_action" field.
func (m *DecisionLogMutation) ResetGuardrailAction() {
	m.guardrail_action = nil
	delete(m.clearedFields, decisionlog.FieldGuardrailAction)
}

// SetPolicyReason sets the "policy_reason" field.
func (m *DecisionLogMutation) SetPolicyReason(s string) {
	m.policy_reason = &s
}

// PolicyReason returns the value of the "policy_reason" field in the mutation.
func (m *DecisionLogMutation) PolicyReason() (r string, exists bool) {
	v := m.policy_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyReason returns the old "policy_reason" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldPolicyReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyReason: %w", err)
	}
	return oldValue.PolicyReason, nil
}

// ClearPolicyReason clears the value of the "policy_reason" field.
func (m *DecisionLogMutation) ClearPolicyReason() {
	m.policy_reason = nil
	m.clearedFields[decisionlog.FieldPolicyReason] = struct{}{}
}

// PolicyReasonCleared returns if the "policy_reason" field was cleared in this mutation.
func (m *DecisionLogMutation) PolicyReasonCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldPolicyReason]
	return ok
}

// ResetPolicyReason resets all changes to the "policy_reason" field.
func (m *DecisionLogMutation) ResetPolicyReason() {
	m.policy_reason = nil
	delete(m.clearedFields, decisionlog.FieldPolicyReason)
}

// SetSuccess sets the "success" field.
func (m *DecisionLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *DecisionLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *DecisionLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorCode sets the "error_code" field.
func (m *DecisionLogMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *DecisionLogMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *DecisionLogMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[decisionlog.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *DecisionLogMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *DecisionLogMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, decisionlog.FieldErrorCode)
}

// SetTokensIn sets the "tokens_in" field.
func (m *DecisionLogMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *DecisionLogMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *DecisionLogMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *DecisionLogMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *DecisionLogMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *DecisionLogMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *DecisionLogMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *DecisionLogMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *DecisionLogMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *DecisionLogMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetModelID sets the "model_id" field.
func (m *DecisionLogMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *DecisionLogMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *DecisionLogMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[decisionlog.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *DecisionLogMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *DecisionLogMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, decisionlog.FieldModelID)
}

// SetTimingsMs sets the "timings_ms" field.
func (m *DecisionLogMutation) SetTimingsMs(value map[string]int64) {
	m.timings_ms = &value
}

// TimingsMs returns the value of the "timings_ms" field in the mutation.
func (m *DecisionLogMutation) TimingsMs() (r map[string]int64, exists bool) {
	v := m.timings_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimingsMs returns the old "timings_ms" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldTimingsMs(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimingsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimingsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimingsMs: %w", err)
	}
	return oldValue.TimingsMs, nil
}

// ClearTimingsMs clears the value of the "timings_ms" field.
func (m *DecisionLogMutation) ClearTimingsMs() {
	m.timings_ms = nil
	m.clearedFields[decisionlog.FieldTimingsMs] = struct{}{}
}

// TimingsMsCleared returns if the "timings_ms" field was cleared in this mutation.
func (m *DecisionLogMutation) TimingsMsCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldTimingsMs]
	return ok
}

// ResetTimingsMs resets all changes to the "timings_ms" field.
func (m *DecisionLogMutation) ResetTimingsMs() {
	m.timings_ms = nil
	delete(m.clearedFields, decisionlog.FieldTimingsMs)
}

// SetConfirmationNeeded sets the "confirmation_needed" field.
func (m *DecisionLogMutation) SetConfirmationNeeded(b bool) {
	m.confirmation_needed = &b
}

// ConfirmationNeeded returns the value of the "confirmation_needed" field in the mutation.
func (m *DecisionLogMutation) ConfirmationNeeded() (r bool, exists bool) {
	v := m.confirmation_needed
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationNeeded returns the old "confirmation_needed" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldConfirmationNeeded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationNeeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationNeeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationNeeded: %w", err)
	}
	return oldValue.ConfirmationNeeded, nil
}

// ResetConfirmationNeeded resets all changes to the "confirmation_needed" field.
func (m *DecisionLogMutation) ResetConfirmationNeeded() {
	m.confirmation_needed = nil
}

// SetConfirmationQuestion sets the "confirmation_question" field.
func (m *DecisionLogMutation) SetConfirmationQuestion(s string) {
	m.confirmation_question = &s
}

// ConfirmationQuestion returns the value of the "confirmation_question" field in the mutation.
func (m *DecisionLogMutation) ConfirmationQuestion() (r string, exists bool) {
	v := m.confirmation_question
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationQuestion returns the old "confirmation_question" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldConfirmationQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationQuestion: %w", err)
	}
	return oldValue.ConfirmationQuestion, nil
}

// ClearConfirmationQuestion clears the value of the "confirmation_question" field.
func (m *DecisionLogMutation) ClearConfirmationQuestion() {
	m.confirmation_question = nil
	m.clearedFields[decisionlog.FieldConfirmationQuestion] = struct{}{}
}

// ConfirmationQuestionCleared returns if the "confirmation_question" field was cleared in this mutation.
func (m *DecisionLogMutation) ConfirmationQuestionCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldConfirmationQuestion]
	return ok
}

// ResetConfirmationQuestion resets all changes to the "confirmation_question" field.
func (m *DecisionLogMutation) ResetConfirmationQuestion() {
	m.confirmation_question = nil
	delete(m.clearedFields, decisionlog.FieldConfirmationQuestion)
}

// SetConfirmationResolution sets the "confirmation_resolution" field.
func (m *DecisionLogMutation) SetConfirmationResolution(s string) {
	m.confirmation_resolution = &s
}

// ConfirmationResolution returns the value of the "confirmation_resolution" field in the mutation.
func (m *DecisionLogMutation) ConfirmationResolution() (r string, exists bool) {
	v := m.confirmation_resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationResolution returns the old "confirmation_resolution" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldConfirmationResolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationResolution: %w", err)
	}
	return oldValue.ConfirmationResolution, nil
}

// ClearConfirmationResolution clears the value of the "confirmation_resolution" field.
func (m *DecisionLogMutation) ClearConfirmationResolution() {
	m.confirmation_resolution = nil
	m.clearedFields[decisionlog.FieldConfirmationResolution] = struct{}{}
}

// ConfirmationResolutionCleared returns if the "confirmation_resolution" field was cleared in this mutation.
func (m *DecisionLogMutation) ConfirmationResolutionCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldConfirmationResolution]
	return ok
}

// ResetConfirmationResolution resets all changes to the "confirmation_resolution" field.
func (m *DecisionLogMutation) ResetConfirmationResolution() {
	m.confirmation_resolution = nil
	delete(m.clearedFields, decisionlog.FieldConfirmationResolution)
}

// SetWarnings sets the "warnings" field.
func (m *DecisionLogMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *DecisionLogMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *DecisionLogMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *DecisionLogMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *DecisionLogMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[decisionlog.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *DecisionLogMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[decisionlog.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *DecisionLogMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, decisionlog.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *DecisionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DecisionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DecisionLog entity.
// If the DecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DecisionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DecisionLogMutation builder.
func (m *DecisionLogMutation) Where(ps ...predicate.DecisionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DecisionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DecisionLog).
func (m *DecisionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionLogMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.tenant_id != nil {
		fields = append(fields, decisionlog.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, decisionlog.FieldUserID)
	}
	if m.room_id != nil {
		fields = append(fields, decisionlog.FieldRoomID)
	}
	if m.message_excerpt != nil {
		fields = append(fields, decisionlog.FieldMessageExcerpt)
	}
	if m.intent != nil {
		fields = append(fields, decisionlog.FieldIntent)
	}
	if m.capability_key != nil {
		fields = append(fields, decisionlog.FieldCapabilityKey)
	}
	if m.parameters != nil {
		fields = append(fields, decisionlog.FieldParameters)
	}
	if m.confidence != nil {
		fields = append(fields, decisionlog.FieldConfidence)
	}
	if m.intent_confidence != nil {
		fields = append(fields, decisionlog.FieldIntentConfidence)
	}
	if m.parameter_confidence != nil {
		fields = append(fields, decisionlog.FieldParameterConfidence)
	}
	if m.guardrail_action != nil {
		fields = append(fields, decisionlog.FieldGuardrailAction)
	}
	if m.policy_reason != nil {
		fields = append(fields, decisionlog.FieldPolicyReason)
	}
	if m.success != nil {
		fields = append(fields, decisionlog.FieldSuccess)
	}
	if m.error_code != nil {
		fields = append(fields, decisionlog.FieldErrorCode)
	}
	if m.tokens_in != nil {
		fields = append(fields, decisionlog.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, decisionlog.FieldTokensOut)
	}
	if m.model_id != nil {
		fields = append(fields, decisionlog.FieldModelID)
	}
	if m.timings_ms != nil {
		fields = append(fields, decisionlog.FieldTimingsMs)
	}
	if m.confirmation_needed != nil {
		fields = append(fields, decisionlog.FieldConfirmationNeeded)
	}
	if m.confirmation_question != nil {
		fields = append(fields, decisionlog.FieldConfirmationQuestion)
	}
	if m.confirmation_resolution != nil {
		fields = append(fields, decisionlog.FieldConfirmationResolution)
	}
	if m.warnings != nil {
		fields = append(fields, decisionlog.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, decisionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decisionlog.FieldTenantID:
		return m.TenantID()
	case decisionlog.FieldUserID:
		return m.UserID()
	case decisionlog.FieldRoomID:
		return m.RoomID()
	case decisionlog.FieldMessageExcerpt:
		return m.MessageExcerpt()
	case decisionlog.FieldIntent:
		return m.Intent()
	case decisionlog.FieldCapabilityKey:
		return m.CapabilityKey()
	case decisionlog.FieldParameters:
		return m.Parameters()
	case decisionlog.FieldConfidence:
		return m.Confidence()
	case decisionlog.FieldIntentConfidence:
		return m.IntentConfidence()
	case decisionlog.FieldParameterConfidence:
		return m.ParameterConfidence()
	case decisionlog.FieldGuardrailAction:
		return m.GuardrailAction()
	case decisionlog.FieldPolicyReason:
		return m.PolicyReason()
	case decisionlog.FieldSuccess:
		return m.Success()
	case decisionlog.FieldErrorCode:
		return m.ErrorCode()
	case decisionlog.FieldTokensIn:
		return m.TokensIn()
	case decisionlog.FieldTokensOut:
		return m.TokensOut()
	case decisionlog.FieldModelID:
		return m.ModelID()
	case decisionlog.FieldTimingsMs:
		return m.TimingsMs()
	case decisionlog.FieldConfirmationNeeded:
		return m.ConfirmationNeeded()
	case decisionlog.FieldConfirmationQuestion:
		return m.ConfirmationQuestion()
	case decisionlog.FieldConfirmationResolution:
		return m.ConfirmationResolution()
	case decisionlog.FieldWarnings:
		return m.Warnings()
	case decisionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decisionlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case decisionlog.FieldUserID:
		return m.OldUserID(ctx)
	case decisionlog.FieldRoomID:
		return m.OldRoomID(ctx)
	case decisionlog.FieldMessageExcerpt:
		return m.OldMessageExcerpt(ctx)
	case decisionlog.FieldIntent:
		return m.OldIntent(ctx)
	case decisionlog.FieldCapabilityKey:
		return m.OldCapabilityKey(ctx)
	case decisionlog.FieldParameters:
		return m.OldParameters(ctx)
	case decisionlog.FieldConfidence:
		return m.OldConfidence(ctx)
	case decisionlog.FieldIntentConfidence:
		return m.OldIntentConfidence(ctx)
	case decisionlog.FieldParameterConfidence:
		return m.OldParameterConfidence(ctx)
	case decisionlog.FieldGuardrailAction:
		return m.OldGuardrailAction(ctx)
	case decisionlog.FieldPolicyReason:
		return m.OldPolicyReason(ctx)
	case decisionlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case decisionlog.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case decisionlog.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case decisionlog.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case decisionlog.FieldModelID:
		return m.OldModelID(ctx)
	case decisionlog.FieldTimingsMs:
		return m.OldTimingsMs(ctx)
	case decisionlog.FieldConfirmationNeeded:
		return m.OldConfirmationNeeded(ctx)
	case decisionlog.FieldConfirmationQuestion:
		return m.OldConfirmationQuestion(ctx)
	case decisionlog.FieldConfirmationResolution:
		return m.OldConfirmationResolution(ctx)
	case decisionlog.FieldWarnings:
		return m.OldWarnings(ctx)
	case decisionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DecisionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decisionlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case decisionlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case decisionlog.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case decisionlog.FieldMessageExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageExcerpt(v)
		return nil
	case decisionlog.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case decisionlog.FieldCapabilityKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilityKey(v)
		return nil
	case decisionlog.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case decisionlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case decisionlog.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentConfidence(v)
		return nil
	case decisionlog.FieldParameterConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterConfidence(v)
		return nil
	case decisionlog.FieldGuardrailAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardrailAction(v)
		return nil
	case decisionlog.FieldPolicyReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyReason(v)
		return nil
	case decisionlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case decisionlog.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case decisionlog.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case decisionlog.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case decisionlog.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case decisionlog.FieldTimingsMs:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimingsMs(v)
		return nil
	case decisionlog.FieldConfirmationNeeded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationNeeded(v)
		return nil
	case decisionlog.FieldConfirmationQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationQuestion(v)
		return nil
	case decisionlog.FieldConfirmationResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationResolution(v)
		return nil
	case decisionlog.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case decisionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionLogMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, decisionlog.FieldConfidence)
	}
	if m.addintent_confidence != nil {
		fields = append(fields, decisionlog.FieldIntentConfidence)
	}
	if m.addparameter_confidence != nil {
		fields = append(fields, decisionlog.FieldParameterConfidence)
	}
	if m.addtokens_in != nil {
		fields = append(fields, decisionlog.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, decisionlog.FieldTokensOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decisionlog.FieldConfidence:
		return m.AddedConfidence()
	case decisionlog.FieldIntentConfidence:
		return m.AddedIntentConfidence()
	case decisionlog.FieldParameterConfidence:
		return m.AddedParameterConfidence()
	case decisionlog.FieldTokensIn:
		return m.AddedTokensIn()
	case decisionlog.FieldTokensOut:
		return m.AddedTokensOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decisionlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case decisionlog.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentConfidence(v)
		return nil
	case decisionlog.FieldParameterConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParameterConfidence(v)
		return nil
	case decisionlog.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case decisionlog.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decisionlog.FieldIntent) {
		fields = append(fields, decisionlog.FieldIntent)
	}
	if m.FieldCleared(decisionlog.FieldCapabilityKey) {
		fields = append(fields, decisionlog.FieldCapabilityKey)
	}
	if m.FieldCleared(decisionlog.FieldParameters) {
		fields = append(fields, decisionlog.FieldParameters)
	}
	if m.FieldCleared(decisionlog.FieldGuardrailAction) {
		fields = append(fields, decisionlog.FieldGuardrailAction)
	}
	if m.FieldCleared(decisionlog.FieldPolicyReason) {
		fields = append(fields, decisionlog.FieldPolicyReason)
	}
	if m.FieldCleared(decisionlog.FieldErrorCode) {
		fields = append(fields, decisionlog.FieldErrorCode)
	}
	if m.FieldCleared(decisionlog.FieldModelID) {
		fields = append(fields, decisionlog.FieldModelID)
	}
	if m.FieldCleared(decisionlog.FieldTimingsMs) {
		fields = append(fields, decisionlog.FieldTimingsMs)
	}
	if m.FieldCleared(decisionlog.FieldConfirmationQuestion) {
		fields = append(fields, decisionlog.FieldConfirmationQuestion)
	}
	if m.FieldCleared(decisionlog.FieldConfirmationResolution) {
		fields = append(fields, decisionlog.FieldConfirmationResolution)
	}
	if m.FieldCleared(decisionlog.FieldWarnings) {
		fields = append(fields, decisionlog.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionLogMutation) ClearField(name string) error {
	switch name {
	case decisionlog.FieldIntent:
		m.ClearIntent()
		return nil
	case decisionlog.FieldCapabilityKey:
		m.ClearCapabilityKey()
		return nil
	case decisionlog.FieldParameters:
		m.ClearParameters()
		return nil
	case decisionlog.FieldGuardrailAction:
		m.ClearGuardrailAction()
		return nil
	case decisionlog.FieldPolicyReason:
		m.ClearPolicyReason()
		return nil
	case decisionlog.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case decisionlog.FieldModelID:
		m.ClearModelID()
		return nil
	case decisionlog.FieldTimingsMs:
		m.ClearTimingsMs()
		return nil
	case decisionlog.FieldConfirmationQuestion:
		m.ClearConfirmationQuestion()
		return nil
	case decisionlog.FieldConfirmationResolution:
		m.ClearConfirmationResolution()
		return nil
	case decisionlog.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown DecisionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionLogMutation) ResetField(name string) error {
	switch name {
	case decisionlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case decisionlog.FieldUserID:
		m.ResetUserID()
		return nil
	case decisionlog.FieldRoomID:
		m.ResetRoomID()
		return nil
	case decisionlog.FieldMessageExcerpt:
		m.ResetMessageExcerpt()
		return nil
	case decisionlog.FieldIntent:
		m.ResetIntent()
		return nil
	case decisionlog.FieldCapabilityKey:
		m.ResetCapabilityKey()
		return nil
	case decisionlog.FieldParameters:
		m.ResetParameters()
		return nil
	case decisionlog.FieldConfidence:
		m.ResetConfidence()
		return nil
	case decisionlog.FieldIntentConfidence:
		m.ResetIntentConfidence()
		return nil
	case decisionlog.FieldParameterConfidence:
		m.ResetParameterConfidence()
		return nil
	case decisionlog.FieldGuardrailAction:
		m.ResetGuardrailAction()
		return nil
	case decisionlog.FieldPolicyReason:
		m.ResetPolicyReason()
		return nil
	case decisionlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case decisionlog.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case decisionlog.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case decisionlog.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case decisionlog.FieldModelID:
		m.ResetModelID()
		return nil
	case decisionlog.FieldTimingsMs:
		m.ResetTimingsMs()
		return nil
	case decisionlog.FieldConfirmationNeeded:
		m.ResetConfirmationNeeded()
		return nil
	case decisionlog.FieldConfirmationQuestion:
		m.ResetConfirmationQuestion()
		return nil
	case decisionlog.FieldConfirmationResolution:
		m.ResetConfirmationResolution()
		return nil
	case decisionlog.FieldWarnings:
		m.ResetWarnings()
		return nil
	case decisionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DecisionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DecisionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DecisionLog edge %s", name)
}

// DepartmentMutation represents an operation that mutates the Department nodes in the graph.
type DepartmentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	name          *string
	parent_id     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Department, error)
	predicates    []predicate.Department
}

var _ ent.Mutation = (*DepartmentMutation)(nil)

// departmentOption allows management of the mutation configuration using functional options.
type departmentOption func(*DepartmentMutation)

// newDepartmentMutation creates new mutation for the Department entity.
func newDepartmentMutation(c config, op Op, opts ...departmentOption) *DepartmentMutation {
	m := &DepartmentMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartmentID sets the ID field of the mutation.
func withDepartmentID(id string) departmentOption {
	return func(m *DepartmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Department
		)
		m.oldValue = func(ctx context.Context) (*Department, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Department.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartment sets the old Department of the mutation.
func withDepartment(node *Department) departmentOption {
	return func(m *DepartmentMutation) {
		m.oldValue = func(context.Context) (*Department, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Department entities.
func (m *DepartmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Department.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DepartmentMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DepartmentMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DepartmentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *DepartmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartmentMutation) ResetName() {
	m.name = nil
}

// SetParentID sets the "parent_id" field.
func (m *DepartmentMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *DepartmentMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *DepartmentMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[department.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *DepartmentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[department.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *DepartmentMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, department.FieldParentID)
}

// Where appends a list predicates to the DepartmentMutation builder.
func (m *DepartmentMutation) Where(ps ...predicate.Department) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Department, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Department).
func (m *DepartmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartmentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.tenant_id != nil {
		fields = append(fields, department.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, department.FieldName)
	}
	if m.parent_id != nil {
		fields = append(fields, department.FieldParentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case department.FieldTenantID:
		return m.TenantID()
	case department.FieldName:
		return m.Name()
	case department.FieldParentID:
		return m.ParentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case department.FieldTenantID:
		return m.OldTenantID(ctx)
	case department.FieldName:
		return m.OldName(ctx)
	case department.FieldParentID:
		return m.OldParentID(ctx)
	}
	return nil, fmt.Errorf("unknown Department field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case department.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case department.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case department.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Department numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(department.FieldParentID) {
		fields = append(fields, department.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartmentMutation) ClearField(name string) error {
	switch name {
	case department.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Department nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartmentMutation) ResetField(name string) error {
	switch name {
	case department.FieldTenantID:
		m.ResetTenantID()
		return nil
	case department.FieldName:
		m.ResetName()
		return nil
	case department.FieldParentID:
		m.ResetParentID()
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Department unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Department edge %s", name)
}

// FeatureFlagMutation represents an operation that mutates the FeatureFlag nodes in the graph.
type FeatureFlagMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	name          *string
	enabled       *bool
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeatureFlag, error)
	predicates    []predicate.FeatureFlag
}

var _ ent.Mutation = (*FeatureFlagMutation)(nil)

// featureflagOption allows management of the mutation configuration using functional options.
type featureflagOption func(*FeatureFlagMutation)

// newFeatureFlagMutation creates new mutation for the FeatureFlag entity.
func newFeatureFlagMutation(c config, op Op, opts ...featureflagOption) *FeatureFlagMutation {
	m := &FeatureFlagMutation{
		config:        c,
		op:            op,
		typ:           TypeFeatureFlag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureFlagID sets the ID field of the mutation.
func withFeatureFlagID(id string) featureflagOption {
	return func(m *FeatureFlagMutation) {
		var (
			err   error
			once  sync.Once
			value *FeatureFlag
		)
		m.oldValue = func(ctx context.Context) (*FeatureFlag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeatureFlag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeatureFlag sets the old FeatureFlag of the mutation.
func withFeatureFlag(node *FeatureFlag) featureflagOption {
	return func(m *FeatureFlagMutation) {
		m.oldValue = func(context.Context) (*FeatureFlag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureFlagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureFlagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeatureFlag entities.
func (m *FeatureFlagMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureFlagMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureFlagMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeatureFlag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *FeatureFlagMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *FeatureFlagMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ClearTenantID clears the value of the "tenant_id" field.
func (m *FeatureFlagMutation) ClearTenantID() {
	m.tenant_id = nil
	m.clearedFields[featureflag.FieldTenantID] = struct{}{}
}

// TenantIDCleared returns if the "tenant_id" field was cleared in this mutation.
func (m *FeatureFlagMutation) TenantIDCleared() bool {
	_, ok := m.clearedFields[featureflag.FieldTenantID]
	return ok
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *FeatureFlagMutation) ResetTenantID() {
	m.tenant_id = nil
	delete(m.clearedFields, featureflag.FieldTenantID)
}

// SetName sets the "name" field.
func (m *FeatureFlagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FeatureFlagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FeatureFlagMutation) ResetName() {
	m.name = nil
}

// SetEnabled sets the "enabled" field.
func (m *FeatureFlagMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *FeatureFlagMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *FeatureFlagMutation) ResetEnabled() {
	m.enabled = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeatureFlagMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeatureFlagMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FeatureFlag entity.
// If the FeatureFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureFlagMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeatureFlagMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FeatureFlagMutation builder.
func (m *FeatureFlagMutation) Where(ps ...predicate.FeatureFlag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureFlagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureFlagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeatureFlag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureFlagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureFlagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeatureFlag).
func (m *FeatureFlagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureFlagMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, featureflag.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, featureflag.FieldName)
	}
	if m.enabled != nil {
		fields = append(fields, featureflag.FieldEnabled)
	}
	if m.updated_at != nil {
		fields = append(fields, featureflag.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureFlagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case featureflag.FieldTenantID:
		return m.TenantID()
	case featureflag.FieldName:
		return m.Name()
	case featureflag.FieldEnabled:
		return m.Enabled()
	case featureflag.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureFlagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case featureflag.FieldTenantID:
		return m.OldTenantID(ctx)
	case featureflag.FieldName:
		return m.OldName(ctx)
	case featureflag.FieldEnabled:
		return m.OldEnabled(ctx)
	case featureflag.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeatureFlag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureFlagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case featureflag.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case featureflag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case featureflag.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case featureflag.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureFlagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureFlagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureFlagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeatureFlag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureFlagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(featureflag.FieldTenantID) {
		fields = append(fields, featureflag.FieldTenantID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureFlagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureFlagMutation) ClearField(name string) error {
	switch name {
	case featureflag.FieldTenantID:
		m.ClearTenantID()
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureFlagMutation) ResetField(name string) error {
	switch name {
	case featureflag.FieldTenantID:
		m.ResetTenantID()
		return nil
	case featureflag.FieldName:
		m.ResetName()
		return nil
	case featureflag.FieldEnabled:
		m.ResetEnabled()
		return nil
	case featureflag.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeatureFlag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureFlagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureFlagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureFlagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureFlagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureFlagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureFlagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureFlagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeatureFlag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureFlagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeatureFlag edge %s", name)
}

// GoalMutation represents an operation that mutates the Goal nodes in the graph.
type GoalMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	user_id       *string
	title         *string
	why           *string
	first_step    *string
	status        *goal.Status
	target_date   *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Goal, error)
	predicates    []predicate.Goal
}

var _ ent.Mutation = (*GoalMutation)(nil)

// goalOption allows management of the mutation configuration using functional options.
type goalOption func(*GoalMutation)

// newGoalMutation creates new mutation for the Goal entity.
func newGoalMutation(c config, op Op, opts ...goalOption) *GoalMutation {
	m := &GoalMutation{
		config:        c,
		op:            op,
		typ:           TypeGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGoalID sets the ID field of the mutation.
func withGoalID(id string) goalOption {
	return func(m *GoalMutation) {
		var (
			err   error
			once  sync.Once
			value *Goal
		)
		m.oldValue = func(ctx context.Context) (*Goal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Goal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGoal sets the old Goal of the mutation.
func withGoal(node *Goal) goalOption {
	return func(m *GoalMutation) {
		m.oldValue = func(context.Context) (*Goal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Goal entities.
func (m *GoalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GoalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GoalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Goal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *GoalMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *GoalMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *GoalMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *GoalMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GoalMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GoalMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *GoalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GoalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GoalMutation) ResetTitle() {
	m.title = nil
}

// SetWhy sets the "why" field.
func (m *GoalMutation) SetWhy(s string) {
	m.why = &s
}

// Why returns the value of the "why" field in the mutation.
func (m *GoalMutation) Why() (r string, exists bool) {
	v := m.why
	if v == nil {
		return
	}
	return *v, true
}

// OldWhy returns the old "why" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldWhy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhy: %w", err)
	}
	return oldValue.Why, nil
}

// ClearWhy clears the value of the "why" field.
func (m *GoalMutation) ClearWhy() {
	m.why = nil
	m.clearedFields[goal.FieldWhy] = struct{}{}
}

// WhyCleared returns if the "why" field was cleared in this mutation.
func (m *GoalMutation) WhyCleared() bool {
	_, ok := m.clearedFields[goal.FieldWhy]
	return ok
}

// ResetWhy resets all changes to the "why" field.
func (m *GoalMutation) ResetWhy() {
	m.why = nil
	delete(m.clearedFields, goal.FieldWhy)
}

// SetFirstStep sets the "first_step" field.
func (m *GoalMutation) SetFirstStep(s string) {
	m.first_step = &s
}

// FirstStep returns the value of the "first_step" field in the mutation.
func (m *GoalMutation) FirstStep() (r string, exists bool) {
	v := m.first_step
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstStep returns the old "first_step" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldFirstStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstStep: %w", err)
	}
	return oldValue.FirstStep, nil
}

// ClearFirstStep clears the value of the "first_step" field.
func (m *GoalMutation) ClearFirstStep() {
	m.first_step = nil
	m.clearedFields[goal.FieldFirstStep] = struct{}{}
}

// FirstStepCleared returns if the "first_step" field was cleared in this mutation.
func (m *GoalMutation) FirstStepCleared() bool {
	_, ok := m.clearedFields[goal.FieldFirstStep]
	return ok
}

// ResetFirstStep resets all changes to the "first_step" field.
func (m *GoalMutation) ResetFirstStep() {
	m.first_step = nil
	delete(m.clearedFields, goal.FieldFirstStep)
}

// SetStatus sets the "status" field.
func (m *GoalMutation) SetStatus(_go goal.Status) {
	m.status = &_go
}

// Status returns the value of the "status" field in the mutation.
func (m *GoalMutation) Status() (r goal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStatus(ctx context.Context) (v goal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GoalMutation) ResetStatus() {
	m.status = nil
}

// SetTargetDate sets the "target_date" field.
func (m *GoalMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *GoalMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTargetDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ClearTargetDate clears the value of the "target_date" field.
func (m *GoalMutation) ClearTargetDate() {
	m.target_date = nil
	m.clearedFields[goal.FieldTargetDate] = struct{}{}
}

// TargetDateCleared returns if the "target_date" field was cleared in this mutation.
func (m *GoalMutation) TargetDateCleared() bool {
	_, ok := m.clearedFields[goal.FieldTargetDate]
	return ok
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *GoalMutation) ResetTargetDate() {
	m.target_date = nil
	delete(m.clearedFields, goal.FieldTargetDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *GoalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GoalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GoalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GoalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GoalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GoalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GoalMutation builder.
func (m *GoalMutation) Where(ps ...predicate.Goal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Goal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Goal).
func (m *GoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GoalMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, goal.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, goal.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, goal.FieldTitle)
	}
	if m.why != nil {
		fields = append(fields, goal.FieldWhy)
	}
	if m.first_step != nil {
		fields = append(fields, goal.FieldFirstStep)
	}
	if m.status != nil {
		fields = append(fields, goal.FieldStatus)
	}
	if m.target_date != nil {
		fields = append(fields, goal.FieldTargetDate)
	}
	if m.created_at != nil {
		fields = append(fields, goal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, goal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldTenantID:
		return m.TenantID()
	case goal.FieldUserID:
		return m.UserID()
	case goal.FieldTitle:
		return m.Title()
	case goal.FieldWhy:
		return m.Why()
	case goal.FieldFirstStep:
		return m.FirstStep()
	case goal.FieldStatus:
		return m.Status()
	case goal.FieldTargetDate:
		return m.TargetDate()
	case goal.FieldCreatedAt:
		return m.CreatedAt()
	case goal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case goal.FieldTenantID:
		return m.OldTenantID(ctx)
	case goal.FieldUserID:
		return m.OldUserID(ctx)
	case goal.FieldTitle:
		return m.OldTitle(ctx)
	case goal.FieldWhy:
		return m.OldWhy(ctx)
	case goal.FieldFirstStep:
		return m.OldFirstStep(ctx)
	case goal.FieldStatus:
		return m.OldStatus(ctx)
	case goal.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case goal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case goal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Goal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case goal.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case goal.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case goal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case goal.FieldWhy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhy(v)
		return nil
	case goal.FieldFirstStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstStep(v)
		return nil
	case goal.FieldStatus:
		v, ok := value.(goal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case goal.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case goal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case goal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GoalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GoalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Goal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GoalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(goal.FieldWhy) {
		fields = append(fields, goal.FieldWhy)
	}
	if m.FieldCleared(goal.FieldFirstStep) {
		fields = append(fields, goal.FieldFirstStep)
	}
	if m.FieldCleared(goal.FieldTargetDate) {
		fields = append(fields, goal.FieldTargetDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GoalMutation) ClearField(name string) error {
	switch name {
	case goal.FieldWhy:
		m.ClearWhy()
		return nil
	case goal.FieldFirstStep:
		m.ClearFirstStep()
		return nil
	case goal.FieldTargetDate:
		m.ClearTargetDate()
		return nil
	}
	return fmt.Errorf("unknown Goal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GoalMutation) ResetField(name string) error {
	switch name {
	case goal.FieldTenantID:
		m.ResetTenantID()
		return nil
	case goal.FieldUserID:
		m.ResetUserID()
		return nil
	case goal.FieldTitle:
		m.ResetTitle()
		return nil
	case goal.FieldWhy:
		m.ResetWhy()
		return nil
	case goal.FieldFirstStep:
		m.ResetFirstStep()
		return nil
	case goal.FieldStatus:
		m.ResetStatus()
		return nil
	case goal.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case goal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case goal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Goal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Goal edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	kind           *string
	summary        *string
	priority       *insight.Priority
	reference_type *string
	reference_id   *string
	resolved       *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Insight, error)
	predicates     []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InsightMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InsightMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InsightMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKind sets the "kind" field.
func (m *InsightMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *InsightMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *InsightMutation) ResetKind() {
	m.kind = nil
}

// SetSummary sets the "summary" field.
func (m *InsightMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *InsightMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *InsightMutation) ResetSummary() {
	m.summary = nil
}

// SetPriority sets the "priority" field.
func (m *InsightMutation) SetPriority(i insight.Priority) {
	m.priority = &i
}

// Priority returns the value of the "priority" field in the mutation.
func (m *InsightMutation) Priority() (r insight.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldPriority(ctx context.Context) (v insight.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *InsightMutation) ResetPriority() {
	m.priority = nil
}

// SetReferenceType sets the "reference_type" field.
func (m *InsightMutation) SetReferenceType(s string) {
	m.reference_type = &s
}

// ReferenceType returns the value of the "reference_type" field in the mutation.
func (m *InsightMutation) ReferenceType() (r string, exists bool) {
	v := m.reference_type
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceType returns the old "reference_type" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldReferenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceType: %w", err)
	}
	return oldValue.ReferenceType, nil
}

// ClearReferenceType clears the value of the "reference_type" field.
func (m *InsightMutation) ClearReferenceType() {
	m.reference_type = nil
	m.clearedFields[insight.FieldReferenceType] = struct{}{}
}

// ReferenceTypeCleared returns if the "reference_type" field was cleared in this mutation.
func (m *InsightMutation) ReferenceTypeCleared() bool {
	_, ok := m.clearedFields[insight.FieldReferenceType]
	return ok
}

// ResetReferenceType resets all changes to the "reference_type" field.
func (m *InsightMutation) ResetReferenceType() {
	m.reference_type = nil
	delete(m.clearedFields, insight.FieldReferenceType)
}

// SetReferenceID sets the "reference_id" field.
func (m *InsightMutation) SetReferenceID(s string) {
	m.reference_id = &s
}

// ReferenceID returns the value of the "reference_id" field in the mutation.
func (m *InsightMutation) ReferenceID() (r string, exists bool) {
	v := m.reference_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceID returns the old "reference_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldReferenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceID: %w", err)
	}
	return oldValue.ReferenceID, nil
}

// ClearReferenceID clears the value of the "reference_id" field.
func (m *InsightMutation) ClearReferenceID() {
	m.reference_id = nil
	m.clearedFields[insight.FieldReferenceID] = struct{}{}
}

// ReferenceIDCleared returns if the "reference_id" field was cleared in this mutation.
func (m *InsightMutation) ReferenceIDCleared() bool {
	_, ok := m.clearedFields[insight.FieldReferenceID]
	return ok
}

// ResetReferenceID resets all changes to the "reference_id" field.
func (m *InsightMutation) ResetReferenceID() {
	m.reference_id = nil
	delete(m.clearedFields, insight.FieldReferenceID)
}

// SetResolved sets the "resolved" field.
func (m *InsightMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *InsightMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *InsightMutation) ResetResolved() {
	m.resolved = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, insight.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, insight.FieldKind)
	}
	if m.summary != nil {
		fields = append(fields, insight.FieldSummary)
	}
	if m.priority != nil {
		fields = append(fields, insight.FieldPriority)
	}
	if m.reference_type != nil {
		fields = append(fields, insight.FieldReferenceType)
	}
	if m.reference_id != nil {
		fields = append(fields, insight.FieldReferenceID)
	}
	if m.resolved != nil {
		fields = append(fields, insight.FieldResolved)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldTenantID:
		return m.TenantID()
	case insight.FieldKind:
		return m.Kind()
	case insight.FieldSummary:
		return m.Summary()
	case insight.FieldPriority:
		return m.Priority()
	case insight.FieldReferenceType:
		return m.ReferenceType()
	case insight.FieldReferenceID:
		return m.ReferenceID()
	case insight.FieldResolved:
		return m.Resolved()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldTenantID:
		return m.OldTenantID(ctx)
	case insight.FieldKind:
		return m.OldKind(ctx)
	case insight.FieldSummary:
		return m.OldSummary(ctx)
	case insight.FieldPriority:
		return m.OldPriority(ctx)
	case insight.FieldReferenceType:
		return m.OldReferenceType(ctx)
	case insight.FieldReferenceID:
		return m.OldReferenceID(ctx)
	case insight.FieldResolved:
		return m.OldResolved(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case insight.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case insight.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case insight.FieldPriority:
		v, ok := value.(insight.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case insight.FieldReferenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceType(v)
		return nil
	case insight.FieldReferenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceID(v)
		return nil
	case insight.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insight.FieldReferenceType) {
		fields = append(fields, insight.FieldReferenceType)
	}
	if m.FieldCleared(insight.FieldReferenceID) {
		fields = append(fields, insight.FieldReferenceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	switch name {
	case insight.FieldReferenceType:
		m.ClearReferenceType()
		return nil
	case insight.FieldReferenceID:
		m.ClearReferenceID()
		return nil
	}
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldTenantID:
		m.ResetTenantID()
		return nil
	case insight.FieldKind:
		m.ResetKind()
		return nil
	case insight.FieldSummary:
		m.ResetSummary()
		return nil
	case insight.FieldPriority:
		m.ResetPriority()
		return nil
	case insight.FieldReferenceType:
		m.ResetReferenceType()
		return nil
	case insight.FieldReferenceID:
		m.ResetReferenceID()
		return nil
	case insight.FieldResolved:
		m.ResetResolved()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Insight edge %s", name)
}

// KnowledgeChunkMutation represents an operation that mutates the KnowledgeChunk nodes in the graph.
type KnowledgeChunkMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	document_id    *string
	title          *string
	content        *string
	classification *knowledgechunk.Classification
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*KnowledgeChunk, error)
	predicates     []predicate.KnowledgeChunk
}

var _ ent.Mutation = (*KnowledgeChunkMutation)(nil)

// knowledgechunkOption allows management of the mutation configuration using functional options.
type knowledgechunkOption func(*KnowledgeChunkMutation)

// newKnowledgeChunkMutation creates new mutation for the KnowledgeChunk entity.
func newKnowledgeChunkMutation(c config, op Op, opts ...knowledgechunkOption) *KnowledgeChunkMutation {
	m := &KnowledgeChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeChunkID sets the ID field of the mutation.
func withKnowledgeChunkID(id string) knowledgechunkOption {
	return func(m *KnowledgeChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeChunk
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeChunk sets the old KnowledgeChunk of the mutation.
func withKnowledgeChunk(node *KnowledgeChunk) knowledgechunkOption {
	return func(m *KnowledgeChunkMutation) {
		m.oldValue = func(context.Context) (*KnowledgeChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeChunk entities.
func (m *KnowledgeChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *KnowledgeChunkMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *KnowledgeChunkMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *KnowledgeChunkMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *KnowledgeChunkMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *KnowledgeChunkMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *KnowledgeChunkMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetTitle sets the "title" field.
func (m *KnowledgeChunkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnowledgeChunkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *KnowledgeChunkMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[knowledgechunk.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *KnowledgeChunkMutation) TitleCleared() bool {
	_, ok := m.clearedFields[knowledgechunk.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *KnowledgeChunkMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, knowledgechunk.FieldTitle)
}

// SetContent sets the "content" field.
func (m *KnowledgeChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeChunkMutation) ResetContent() {
	m.content = nil
}

// SetClassification sets the "classification" field.
func (m *KnowledgeChunkMutation) SetClassification(k knowledgechunk.Classification) {
	m.classification = &k
}

// Classification returns the value of the "classification" field in the mutation.
func (m *KnowledgeChunkMutation) Classification() (r knowledgechunk.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldClassification(ctx context.Context) (v knowledgechunk.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *KnowledgeChunkMutation) ResetClassification() {
	m.classification = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the KnowledgeChunkMutation builder.
func (m *KnowledgeChunkMutation) Where(ps ...predicate.KnowledgeChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeChunk).
func (m *KnowledgeChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeChunkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, knowledgechunk.FieldTenantID)
	}
	if m.document_id != nil {
		fields = append(fields, knowledgechunk.FieldDocumentID)
	}
	if m.title != nil {
		fields = append(fields, knowledgechunk.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, knowledgechunk.FieldContent)
	}
	if m.classification != nil {
		fields = append(fields, knowledgechunk.FieldClassification)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgechunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgechunk.FieldTenantID:
		return m.TenantID()
	case knowledgechunk.FieldDocumentID:
		return m.DocumentID()
	case knowledgechunk.FieldTitle:
		return m.Title()
	case knowledgechunk.FieldContent:
		return m.Content()
	case knowledgechunk.FieldClassification:
		return m.Classification()
	case knowledgechunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgechunk.FieldTenantID:
		return m.OldTenantID(ctx)
	case knowledgechunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case knowledgechunk.FieldTitle:
		return m.OldTitle(ctx)
	case knowledgechunk.FieldContent:
		return m.OldContent(ctx)
	case knowledgechunk.FieldClassification:
		return m.OldClassification(ctx)
	case knowledgechunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgechunk.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case knowledgechunk.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case knowledgechunk.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowledgechunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgechunk.FieldClassification:
		v, ok := value.(knowledgechunk.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case knowledgechunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeChunkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeChunkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgechunk.FieldTitle) {
		fields = append(fields, knowledgechunk.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeChunkMutation) ClearField(name string) error {
	switch name {
	case knowledgechunk.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeChunkMutation) ResetField(name string) error {
	switch name {
	case knowledgechunk.FieldTenantID:
		m.ResetTenantID()
		return nil
	case knowledgechunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case knowledgechunk.FieldTitle:
		m.ResetTitle()
		return nil
	case knowledgechunk.FieldContent:
		m.ResetContent()
		return nil
	case knowledgechunk.FieldClassification:
		m.ResetClassification()
		return nil
	case knowledgechunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeChunkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeChunkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeChunkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeChunkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeChunk edge %s", name)
}

// PersonMutation represents an operation that mutates the Person nodes in the graph.
type PersonMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	name            *string
	kana            *string
	relation        *string
	chat_account_id *string
	notes           *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Person, error)
	predicates      []predicate.Person
}

var _ ent.Mutation = (*PersonMutation)(nil)

// personOption allows management of the mutation configuration using functional options.
type personOption func(*PersonMutation)

// newPersonMutation creates new mutation for the Person entity.
func newPersonMutation(c config, op Op, opts ...personOption) *PersonMutation {
	m := &PersonMutation{
		config:        c,
		op:            op,
		typ:           TypePerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonID sets the ID field of the mutation.
func withPersonID(id string) personOption {
	return func(m *PersonMutation) {
		var (
			err   error
			once  sync.Once
			value *Person
		)
		m.oldValue = func(ctx context.Context) (*Person, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Person.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerson sets the old Person of the mutation.
func withPerson(node *Person) personOption {
	return func(m *PersonMutation) {
		m.oldValue = func(context.Context) (*Person, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Person entities.
func (m *PersonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Person.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PersonMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PersonMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PersonMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *PersonMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PersonMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PersonMutation) ResetName() {
	m.name = nil
}

// SetKana sets the "kana" field.
func (m *PersonMutation) SetKana(s string) {
	m.kana = &s
}

// Kana returns the value of the "kana" field in the mutation.
func (m *PersonMutation) Kana() (r string, exists bool) {
	v := m.kana
	if v == nil {
		return
	}
	return *v, true
}

// OldKana returns the old "kana" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldKana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKana: %w", err)
	}
	return oldValue.Kana, nil
}

// ClearKana clears the value of the "kana" field.
func (m *PersonMutation) ClearKana() {
	m.kana = nil
	m.clearedFields[person.FieldKana] = struct{}{}
}

// KanaCleared returns if the "kana" field was cleared in this mutation.
func (m *PersonMutation) KanaCleared() bool {
	_, ok := m.clearedFields[person.FieldKana]
	return ok
}

// ResetKana resets all changes to the "kana" field.
func (m *PersonMutation) ResetKana() {
	m.kana = nil
	delete(m.clearedFields, person.FieldKana)
}

// SetRelation sets the "relation" field.
func (m *PersonMutation) SetRelation(s string) {
	m.relation = &s
}

// Relation returns the value of the "relation" field in the mutation.
func (m *PersonMutation) Relation() (r string, exists bool) {
	v := m.relation
	if v == nil {
		return
	}
	return *v, true
}

// OldRelation returns the old "relation" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldRelation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelation: %w", err)
	}
	return oldValue.Relation, nil
}

// ClearRelation clears the value of the "relation" field.
func (m *PersonMutation) ClearRelation() {
	m.relation = nil
	m.clearedFields[person.FieldRelation] = struct{}{}
}

// RelationCleared returns if the "relation" field was cleared in this mutation.
func (m *PersonMutation) RelationCleared() bool {
	_, ok := m.clearedFields[person.FieldRelation]
	return ok
}

// ResetRelation resets all changes to the "relation" field.
func (m *PersonMutation) ResetRelation() {
	m.relation = nil
	delete(m.clearedFields, person.FieldRelation)
}

// SetChatAccountID sets the "chat_account_id" field.
func (m *PersonMutation) SetChatAccountID(s string) {
	m.chat_account_id = &s
}

// ChatAccountID returns the value of the "chat_account_id" field in the mutation.
func (m *PersonMutation) ChatAccountID() (r string, exists bool) {
	v := m.chat_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatAccountID returns the old "chat_account_id" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldChatAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatAccountID: %w", err)
	}
	return oldValue.ChatAccountID, nil
}

// ClearChatAccountID clears the value of the "chat_account_id" field.
func (m *PersonMutation) ClearChatAccountID() {
	m.chat_account_id = nil
	m.clearedFields[person.FieldChatAccountID] = struct{}{}
}

// ChatAccountIDCleared returns if the "chat_account_id" field was cleared in this mutation.
func (m *PersonMutation) ChatAccountIDCleared() bool {
	_, ok := m.clearedFields[person.FieldChatAccountID]
	return ok
}

// ResetChatAccountID resets all changes to the "chat_account_id" field.
func (m *PersonMutation) ResetChatAccountID() {
	m.chat_account_id = nil
	delete(m.clearedFields, person.FieldChatAccountID)
}

// SetNotes sets the "notes" field.
func (m *PersonMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PersonMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PersonMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[person.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PersonMutation) NotesCleared() bool {
	_, ok := m.clearedFields[person.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PersonMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, person.FieldNotes)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PersonMutation builder.
func (m *PersonMutation) Where(ps ...predicate.Person) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Person, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Person).
func (m *PersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, person.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, person.FieldName)
	}
	if m.kana != nil {
		fields = append(fields, person.FieldKana)
	}
	if m.relation != nil {
		fields = append(fields, person.FieldRelation)
	}
	if m.chat_account_id != nil {
		fields = append(fields, person.FieldChatAccountID)
	}
	if m.notes != nil {
		fields = append(fields, person.FieldNotes)
	}
	if m.updated_at != nil {
		fields = append(fields, person.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case person.FieldTenantID:
		return m.TenantID()
	case person.FieldName:
		return m.Name()
	case person.FieldKana:
		return m.Kana()
	case person.FieldRelation:
		return m.Relation()
	case person.FieldChatAccountID:
		return m.ChatAccountID()
	case person.FieldNotes:
		return m.Notes()
	case person.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case person.FieldTenantID:
		return m.OldTenantID(ctx)
	case person.FieldName:
		return m.OldName(ctx)
	case person.FieldKana:
		return m.OldKana(ctx)
	case person.FieldRelation:
		return m.OldRelation(ctx)
	case person.FieldChatAccountID:
		return m.OldChatAccountID(ctx)
	case person.FieldNotes:
		return m.OldNotes(ctx)
	case person.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Person field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case person.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case person.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case person.FieldKana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKana(v)
		return nil
	case person.FieldRelation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelation(v)
		return nil
	case person.FieldChatAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatAccountID(v)
		return nil
	case person.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case person.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Person numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(person.FieldKana) {
		fields = append(fields, person.FieldKana)
	}
	if m.FieldCleared(person.FieldRelation) {
		fields = append(fields, person.FieldRelation)
	}
	if m.FieldCleared(person.FieldChatAccountID) {
		fields = append(fields, person.FieldChatAccountID)
	}
	if m.FieldCleared(person.FieldNotes) {
		fields = append(fields, person.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonMutation) ClearField(name string) error {
	switch name {
	case person.FieldKana:
		m.ClearKana()
		return nil
	case person.FieldRelation:
		m.ClearRelation()
		return nil
	case person.FieldChatAccountID:
		m.ClearChatAccountID()
		return nil
	case person.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Person nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonMutation) ResetField(name string) error {
	switch name {
	case person.FieldTenantID:
		m.ResetTenantID()
		return nil
	case person.FieldName:
		m.ResetName()
		return nil
	case person.FieldKana:
		m.ResetKana()
		return nil
	case person.FieldRelation:
		m.ResetRelation()
		return nil
	case person.FieldChatAccountID:
		m.ResetChatAccountID()
		return nil
	case person.FieldNotes:
		m.ResetNotes()
		return nil
	case person.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Person unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Person edge %s", name)
}

// ScheduledJobMutation represents an operation that mutates the ScheduledJob nodes in the graph.
type ScheduledJobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	kind            *string
	payload         *map[string]interface{}
	run_at          *time.Time
	cron_expression *string
	status          *scheduledjob.Status
	claimed_by      *string
	claimed_at      *time.Time
	attempts        *int
	addattempts     *int
	last_error      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ScheduledJob, error)
	predicates      []predicate.ScheduledJob
}

var _ ent.Mutation = (*ScheduledJobMutation)(nil)

// scheduledjobOption allows management of the mutation configuration using functional options.
type scheduledjobOption func(*ScheduledJobMutation)

// newScheduledJobMutation creates new mutation for the ScheduledJob entity.
func newScheduledJobMutation(c config, op Op, opts ...scheduledjobOption) *ScheduledJobMutation {
	m := &ScheduledJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledJobID sets the ID field of the mutation.
func withScheduledJobID(id string) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledJob
		)
		m.oldValue = func(ctx context.Context) (*ScheduledJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledJob sets the old ScheduledJob of the mutation.
func withScheduledJob(node *ScheduledJob) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		m.oldValue = func(context.Context) (*ScheduledJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledJob entities.
func (m *ScheduledJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ScheduledJobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ScheduledJobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ScheduledJobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKind sets the "kind" field.
func (m *ScheduledJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ScheduledJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ScheduledJobMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *ScheduledJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ScheduledJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ScheduledJobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[scheduledjob.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ScheduledJobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ScheduledJobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, scheduledjob.FieldPayload)
}

// SetRunAt sets the "run_at" field.
func (m *ScheduledJobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *ScheduledJobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *ScheduledJobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetCronExpression sets the "cron_expression" field.
func (m *ScheduledJobMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *ScheduledJobMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldCronExpression(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (m *ScheduledJobMutation) ClearCronExpression() {
	m.cron_expression = nil
	m.clearedFields[scheduledjob.FieldCronExpression] = struct{}{}
}

// CronExpressionCleared returns if the "cron_expression" field was cleared in this mutation.
func (m *ScheduledJobMutation) CronExpressionCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldCronExpression]
	return ok
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *ScheduledJobMutation) ResetCronExpression() {
	m.cron_expression = nil
	delete(m.clearedFields, scheduledjob.FieldCronExpression)
}

// SetStatus sets the "status" field.
func (m *ScheduledJobMutation) SetStatus(s scheduledjob.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledJobMutation) Status() (r scheduledjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldStatus(ctx context.Context) (v scheduledjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledJobMutation) ResetStatus() {
	m.status = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *ScheduledJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *ScheduledJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *ScheduledJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[scheduledjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *ScheduledJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *ScheduledJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, scheduledjob.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ScheduledJobMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ScheduledJobMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *ScheduledJobMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[scheduledjob.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *ScheduledJobMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ScheduledJobMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, scheduledjob.FieldClaimedAt)
}

// SetAttempts sets the "attempts" field.
func (m *ScheduledJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ScheduledJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ScheduledJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ScheduledJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ScheduledJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *ScheduledJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ScheduledJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ScheduledJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[scheduledjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ScheduledJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ScheduledJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, scheduledjob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledJobMutation builder.
func (m *ScheduledJobMutation) Where(ps ...predicate.ScheduledJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledJob).
func (m *ScheduledJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, scheduledjob.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, scheduledjob.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, scheduledjob.FieldPayload)
	}
	if m.run_at != nil {
		fields = append(fields, scheduledjob.FieldRunAt)
	}
	if m.cron_expression != nil {
		fields = append(fields, scheduledjob.FieldCronExpression)
	}
	if m.status != nil {
		fields = append(fields, scheduledjob.FieldStatus)
	}
	if m.claimed_by != nil {
		fields = append(fields, scheduledjob.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, scheduledjob.FieldClaimedAt)
	}
	if m.attempts != nil {
		fields = append(fields, scheduledjob.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, scheduledjob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledjob.FieldTenantID:
		return m.TenantID()
	case scheduledjob.FieldKind:
		return m.Kind()
	case scheduledjob.FieldPayload:
		return m.Payload()
	case scheduledjob.FieldRunAt:
		return m.RunAt()
	case scheduledjob.FieldCronExpression:
		return m.CronExpression()
	case scheduledjob.FieldStatus:
		return m.Status()
	case scheduledjob.FieldClaimedBy:
		return m.ClaimedBy()
	case scheduledjob.FieldClaimedAt:
		return m.ClaimedAt()
	case scheduledjob.FieldAttempts:
		return m.Attempts()
	case scheduledjob.FieldLastError:
		return m.LastError()
	case scheduledjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case scheduledjob.FieldKind:
		return m.OldKind(ctx)
	case scheduledjob.FieldPayload:
		return m.OldPayload(ctx)
	case scheduledjob.FieldRunAt:
		return m.OldRunAt(ctx)
	case scheduledjob.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case scheduledjob.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case scheduledjob.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case scheduledjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case scheduledjob.FieldLastError:
		return m.OldLastError(ctx)
	case scheduledjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledjob.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case scheduledjob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case scheduledjob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case scheduledjob.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case scheduledjob.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case scheduledjob.FieldStatus:
		v, ok := value.(scheduledjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case scheduledjob.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case scheduledjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case scheduledjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case scheduledjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, scheduledjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledjob.FieldPayload) {
		fields = append(fields, scheduledjob.FieldPayload)
	}
	if m.FieldCleared(scheduledjob.FieldCronExpression) {
		fields = append(fields, scheduledjob.FieldCronExpression)
	}
	if m.FieldCleared(scheduledjob.FieldClaimedBy) {
		fields = append(fields, scheduledjob.FieldClaimedBy)
	}
	if m.FieldCleared(scheduledjob.FieldClaimedAt) {
		fields = append(fields, scheduledjob.FieldClaimedAt)
	}
	if m.FieldCleared(scheduledjob.FieldLastError) {
		fields = append(fields, scheduledjob.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ClearField(name string) error {
	switch name {
	case scheduledjob.FieldPayload:
		m.ClearPayload()
		return nil
	case scheduledjob.FieldCronExpression:
		m.ClearCronExpression()
		return nil
	case scheduledjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case scheduledjob.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case scheduledjob.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ResetField(name string) error {
	switch name {
	case scheduledjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case scheduledjob.FieldKind:
		m.ResetKind()
		return nil
	case scheduledjob.FieldPayload:
		m.ResetPayload()
		return nil
	case scheduledjob.FieldRunAt:
		m.ResetRunAt()
		return nil
	case scheduledjob.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case scheduledjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case scheduledjob.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case scheduledjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case scheduledjob.FieldLastError:
		m.ResetLastError()
		return nil
	case scheduledjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	chat_task_id     *string
	room_id          *string
	assignee_user_id *string
	body             *string
	status           *task.Status
	deadline         *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Task, error)
	predicates       []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TaskMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TaskMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TaskMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetChatTaskID sets the "chat_task_id" field.
func (m *TaskMutation) SetChatTaskID(s string) {
	m.chat_task_id = &s
}

// ChatTaskID returns the value of the "chat_task_id" field in the mutation.
func (m *TaskMutation) ChatTaskID() (r string, exists bool) {
	v := m.chat_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatTaskID returns the old "chat_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldChatTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatTaskID: %w", err)
	}
	return oldValue.ChatTaskID, nil
}

// ClearChatTaskID clears the value of the "chat_task_id" field.
func (m *TaskMutation) ClearChatTaskID() {
	m.chat_task_id = nil
	m.clearedFields[task.FieldChatTaskID] = struct{}{}
}

// ChatTaskIDCleared returns if the "chat_task_id" field was cleared in this mutation.
func (m *TaskMutation) ChatTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldChatTaskID]
	return ok
}

// ResetChatTaskID resets all changes to the "chat_task_id" field.
func (m *TaskMutation) ResetChatTaskID() {
	m.chat_task_id = nil
	delete(m.clearedFields, task.FieldChatTaskID)
}

// SetRoomID sets the "room_id" field.
func (m *TaskMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *TaskMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *TaskMutation) ResetRoomID() {
	m.room_id = nil
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (m *TaskMutation) SetAssigneeUserID(s string) {
	m.assignee_user_id = &s
}

// AssigneeUserID returns the value of the "assignee_user_id" field in the mutation.
func (m *TaskMutation) AssigneeUserID() (r string, exists bool) {
	v := m.assignee_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeUserID returns the old "assignee_user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssigneeUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeUserID: %w", err)
	}
	return oldValue.AssigneeUserID, nil
}

// ResetAssigneeUserID resets all changes to the "assignee_user_id" field.
func (m *TaskMutation) ResetAssigneeUserID() {
	m.assignee_user_id = nil
}

// SetBody sets the "body" field.
func (m *TaskMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TaskMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TaskMutation) ResetBody() {
	m.body = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetDeadline sets the "deadline" field.
func (m *TaskMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *TaskMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *TaskMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[task.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *TaskMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[task.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *TaskMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, task.FieldDeadline)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, task.FieldTenantID)
	}
	if m.chat_task_id != nil {
		fields = append(fields, task.FieldChatTaskID)
	}
	if m.room_id != nil {
		fields = append(fields, task.FieldRoomID)
	}
	if m.assignee_user_id != nil {
		fields = append(fields, task.FieldAssigneeUserID)
	}
	if m.body != nil {
		fields = append(fields, task.FieldBody)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.deadline != nil {
		fields = append(fields, task.FieldDeadline)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTenantID:
		return m.TenantID()
	case task.FieldChatTaskID:
		return m.ChatTaskID()
	case task.FieldRoomID:
		return m.RoomID()
	case task.FieldAssigneeUserID:
		return m.AssigneeUserID()
	case task.FieldBody:
		return m.Body()
	case task.FieldStatus:
		return m.Status()
	case task.FieldDeadline:
		return m.Deadline()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTenantID:
		return m.OldTenantID(ctx)
	case task.FieldChatTaskID:
		return m.OldChatTaskID(ctx)
	case task.FieldRoomID:
		return m.OldRoomID(ctx)
	case task.FieldAssigneeUserID:
		return m.OldAssigneeUserID(ctx)
	case task.FieldBody:
		return m.OldBody(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldDeadline:
		return m.OldDeadline(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case task.FieldChatTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatTaskID(v)
		return nil
	case task.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case task.FieldAssigneeUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeUserID(v)
		return nil
	case task.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldChatTaskID) {
		fields = append(fields, task.FieldChatTaskID)
	}
	if m.FieldCleared(task.FieldDeadline) {
		fields = append(fields, task.FieldDeadline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldChatTaskID:
		m.ClearChatTaskID()
		return nil
	case task.FieldDeadline:
		m.ClearDeadline()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTenantID:
		m.ResetTenantID()
		return nil
	case task.FieldChatTaskID:
		m.ResetChatTaskID()
		return nil
	case task.FieldRoomID:
		m.ResetRoomID()
		return nil
	case task.FieldAssigneeUserID:
		m.ResetAssigneeUserID()
		return nil
	case task.FieldBody:
		m.ResetBody()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldDeadline:
		m.ResetDeadline()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TenantConfigMutation represents an operation that mutates the TenantConfig nodes in the graph.
type TenantConfigMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	tenant_id                     *string
	operator_account_id           *string
	admin_room_id                 *string
	admin_dm_room_id              *string
	timezone                      *string
	room_match_threshold          *float64
	addroom_match_threshold       *float64
	webhook_secret                *string
	chat_api_token                *string
	monetary_confirm_threshold    *float64
	addmonetary_confirm_threshold *float64
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*TenantConfig, error)
	predicates                    []predicate.TenantConfig
}

var _ ent.Mutation = (*TenantConfigMutation)(nil)

// tenantconfigOption allows management of the mutation configuration using functional options.
type tenantconfigOption func(*TenantConfigMutation)

// newTenantConfigMutation creates new mutation for the TenantConfig entity.
func newTenantConfigMutation(c config, op Op, opts ...tenantconfigOption) *TenantConfigMutation {
	m := &TenantConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantConfigID sets the ID field of the mutation.
func withTenantConfigID(id string) tenantconfigOption {
	return func(m *TenantConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantConfig
		)
		m.oldValue = func(ctx context.Context) (*TenantConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantConfig sets the old TenantConfig of the mutation.
func withTenantConfig(node *TenantConfig) tenantconfigOption {
	return func(m *TenantConfigMutation) {
		m.oldValue = func(context.Context) (*TenantConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantConfig entities.
func (m *TenantConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantConfigMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantConfigMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantConfigMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOperatorAccountID sets the "operator_account_id" field.
func (m *TenantConfigMutation) SetOperatorAccountID(s string) {
	m.operator_account_id = &s
}

// OperatorAccountID returns the value of the "operator_account_id" field in the mutation.
func (m *TenantConfigMutation) OperatorAccountID() (r string, exists bool) {
	v := m.operator_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorAccountID returns the old "operator_account_id" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldOperatorAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorAccountID: %w", err)
	}
	return oldValue.OperatorAccountID, nil
}

// ResetOperatorAccountID resets all changes to the "operator_account_id" field.
func (m *TenantConfigMutation) ResetOperatorAccountID() {
	m.operator_account_id = nil
}

// SetAdminRoomID sets the "admin_room_id" field.
func (m *TenantConfigMutation) SetAdminRoomID(s string) {
	m.admin_room_id = &s
}

// AdminRoomID returns the value of the "admin_room_id" field in the mutation.
func (m *TenantConfigMutation) AdminRoomID() (r string, exists bool) {
	v := m.admin_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminRoomID returns the old "admin_room_id" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldAdminRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminRoomID: %w", err)
	}
	return oldValue.AdminRoomID, nil
}

// ResetAdminRoomID resets all changes to the "admin_room_id" field.
func (m *TenantConfigMutation) ResetAdminRoomID() {
	m.admin_room_id = nil
}

// SetAdminDmRoomID sets the "admin_dm_room_id" field.
func (m *TenantConfigMutation) SetAdminDmRoomID(s string) {
	m.admin_dm_room_id = &s
}

// AdminDmRoomID returns the value of the "admin_dm_room_id" field in the mutation.
func (m *TenantConfigMutation) AdminDmRoomID() (r string, exists bool) {
	v := m.admin_dm_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminDmRoomID returns the old "admin_dm_room_id" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldAdminDmRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminDmRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminDmRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminDmRoomID: %w", err)
	}
	return oldValue.AdminDmRoomID, nil
}

// ClearAdminDmRoomID clears the value of the "admin_dm_room_id" field.
func (m *TenantConfigMutation) ClearAdminDmRoomID() {
	m.admin_dm_room_id = nil
	m.clearedFields[tenantconfig.FieldAdminDmRoomID] = struct{}{}
}

// AdminDmRoomIDCleared returns if the "admin_dm_room_id" field was cleared in this mutation.
func (m *TenantConfigMutation) AdminDmRoomIDCleared() bool {
	_, ok := m.clearedFields[tenantconfig.FieldAdminDmRoomID]
	return ok
}

// ResetAdminDmRoomID resets all changes to the "admin_dm_room_id" field.
func (m *TenantConfigMutation) ResetAdminDmRoomID() {
	m.admin_dm_room_id = nil
	delete(m.clearedFields, tenantconfig.FieldAdminDmRoomID)
}

// SetTimezone sets the "timezone" field.
func (m *TenantConfigMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *TenantConfigMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *TenantConfigMutation) ResetTimezone() {
	m.timezone = nil
}

// SetRoomMatchThreshold sets the "room_match_threshold" field.
func (m *TenantConfigMutation) SetRoomMatchThreshold(f float64) {
	m.room_match_threshold = &f
	m.addroom_match_threshold = nil
}

// RoomMatchThreshold returns the value of the "room_match_threshold" field in the mutation.
func (m *TenantConfigMutation) RoomMatchThreshold() (r float64, exists bool) {
	v := m.room_match_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomMatchThreshold returns the old "room_match_threshold" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldRoomMatchThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomMatchThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomMatchThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomMatchThreshold: %w", err)
	}
	return oldValue.RoomMatchThreshold, nil
}

// AddRoomMatchThreshold adds f to the "room_match_threshold" field.
func (m *TenantConfigMutation) AddRoomMatchThreshold(f float64) {
	if m.addroom_match_threshold != nil {
		*m.addroom_match_threshold += f
	} else {
		m.addroom_match_threshold = &f
	}
}

// AddedRoomMatchThreshold returns the value that was added to the "room_match_threshold" field in this mutation.
func (m *TenantConfigMutation) AddedRoomMatchThreshold() (r float64, exists bool) {
	v := m.addroom_match_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoomMatchThreshold resets all changes to the "room_match_threshold" field.
func (m *TenantConfigMutation) ResetRoomMatchThreshold() {
	m.room_match_threshold = nil
	m.addroom_match_threshold = nil
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *TenantConfigMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *TenantConfigMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldWebhookSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *TenantConfigMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
}

// SetChatAPIToken sets the "chat_api_token" field.
func (m *TenantConfigMutation) SetChatAPIToken(s string) {
	m.chat_api_token = &s
}

// ChatAPIToken returns the value of the "chat_api_token" field in the mutation.
func (m *TenantConfigMutation) ChatAPIToken() (r string, exists bool) {
	v := m.chat_api_token
	if v == nil {
		return
	}
	return *v, true
}

// OldChatAPIToken returns the old "chat_api_token" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldChatAPIToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatAPIToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatAPIToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatAPIToken: %w", err)
	}
	return oldValue.ChatAPIToken, nil
}

// ResetChatAPIToken resets all changes to the "chat_api_token" field.
func (m *TenantConfigMutation) ResetChatAPIToken() {
	m.chat_api_token = nil
}

// SetMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field.
func (m *TenantConfigMutation) SetMonetaryConfirmThreshold(f float64) {
	m.monetary_confirm_threshold = &f
	m.addmonetary_confirm_threshold = nil
}

// MonetaryConfirmThreshold returns the value of the "monetary_confirm_threshold" field in the mutation.
func (m *TenantConfigMutation) MonetaryConfirmThreshold() (r float64, exists bool) {
	v := m.monetary_confirm_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldMonetaryConfirmThreshold returns the old "monetary_confirm_threshold" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldMonetaryConfirmThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonetaryConfirmThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonetaryConfirmThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonetaryConfirmThreshold: %w", err)
	}
	return oldValue.MonetaryConfirmThreshold, nil
}

// AddMonetaryConfirmThreshold adds f to the "monetary_confirm_threshold" field.
func (m *TenantConfigMutation) AddMonetaryConfirmThreshold(f float64) {
	if m.addmonetary_confirm_threshold != nil {
		*m.addmonetary_confirm_threshold += f
	} else {
		m.addmonetary_confirm_threshold = &f
	}
}

// AddedMonetaryConfirmThreshold returns the value that was added to the "monetary_confirm_threshold" field in this mutation.
func (m *TenantConfigMutation) AddedMonetaryConfirmThreshold() (r float64, exists bool) {
	v := m.addmonetary_confirm_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonetaryConfirmThreshold resets all changes to the "monetary_confirm_threshold" field.
func (m *TenantConfigMutation) ResetMonetaryConfirmThreshold() {
	m.monetary_confirm_threshold = nil
	m.addmonetary_confirm_threshold = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantConfig entity.
// If the TenantConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantConfigMutation builder.
func (m *TenantConfigMutation) Where(ps ...predicate.TenantConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantConfig).
func (m *TenantConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantConfigMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, tenantconfig.FieldTenantID)
	}
	if m.operator_account_id != nil {
		fields = append(fields, tenantconfig.FieldOperatorAccountID)
	}
	if m.admin_room_id != nil {
		fields = append(fields, tenantconfig.FieldAdminRoomID)
	}
	if m.admin_dm_room_id != nil {
		fields = append(fields, tenantconfig.FieldAdminDmRoomID)
	}
	if m.timezone != nil {
		fields = append(fields, tenantconfig.FieldTimezone)
	}
	if m.room_match_threshold != nil {
		fields = append(fields, tenantconfig.FieldRoomMatchThreshold)
	}
	if m.webhook_secret != nil {
		fields = append(fields, tenantconfig.FieldWebhookSecret)
	}
	if m.chat_api_token != nil {
		fields = append(fields, tenantconfig.FieldChatAPIToken)
	}
	if m.monetary_confirm_threshold != nil {
		fields = append(fields, tenantconfig.FieldMonetaryConfirmThreshold)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantconfig.FieldTenantID:
		return m.TenantID()
	case tenantconfig.FieldOperatorAccountID:
		return m.OperatorAccountID()
	case tenantconfig.FieldAdminRoomID:
		return m.AdminRoomID()
	case tenantconfig.FieldAdminDmRoomID:
		return m.AdminDmRoomID()
	case tenantconfig.FieldTimezone:
		return m.Timezone()
	case tenantconfig.FieldRoomMatchThreshold:
		return m.RoomMatchThreshold()
	case tenantconfig.FieldWebhookSecret:
		return m.WebhookSecret()
	case tenantconfig.FieldChatAPIToken:
		return m.ChatAPIToken()
	case tenantconfig.FieldMonetaryConfirmThreshold:
		return m.MonetaryConfirmThreshold()
	case tenantconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantconfig.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantconfig.FieldOperatorAccountID:
		return m.OldOperatorAccountID(ctx)
	case tenantconfig.FieldAdminRoomID:
		return m.OldAdminRoomID(ctx)
	case tenantconfig.FieldAdminDmRoomID:
		return m.OldAdminDmRoomID(ctx)
	case tenantconfig.FieldTimezone:
		return m.OldTimezone(ctx)
	case tenantconfig.FieldRoomMatchThreshold:
		return m.OldRoomMatchThreshold(ctx)
	case tenantconfig.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case tenantconfig.FieldChatAPIToken:
		return m.OldChatAPIToken(ctx)
	case tenantconfig.FieldMonetaryConfirmThreshold:
		return m.OldMonetaryConfirmThreshold(ctx)
	case tenantconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantconfig.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantconfig.FieldOperatorAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorAccountID(v)
		return nil
	case tenantconfig.FieldAdminRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminRoomID(v)
		return nil
	case tenantconfig.FieldAdminDmRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminDmRoomID(v)
		return nil
	case tenantconfig.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case tenantconfig.FieldRoomMatchThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomMatchThreshold(v)
		return nil
	case tenantconfig.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case tenantconfig.FieldChatAPIToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatAPIToken(v)
		return nil
	case tenantconfig.FieldMonetaryConfirmThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonetaryConfirmThreshold(v)
		return nil
	case tenantconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantConfigMutation) AddedFields() []string {
	var fields []string
	if m.addroom_match_threshold != nil {
		fields = append(fields, tenantconfig.FieldRoomMatchThreshold)
	}
	if m.addmonetary_confirm_threshold != nil {
		fields = append(fields, tenantconfig.FieldMonetaryConfirmThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenantconfig.FieldRoomMatchThreshold:
		return m.AddedRoomMatchThreshold()
	case tenantconfig.FieldMonetaryConfirmThreshold:
		return m.AddedMonetaryConfirmThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenantconfig.FieldRoomMatchThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoomMatchThreshold(v)
		return nil
	case tenantconfig.FieldMonetaryConfirmThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonetaryConfirmThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown TenantConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantconfig.FieldAdminDmRoomID) {
		fields = append(fields, tenantconfig.FieldAdminDmRoomID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantConfigMutation) ClearField(name string) error {
	switch name {
	case tenantconfig.FieldAdminDmRoomID:
		m.ClearAdminDmRoomID()
		return nil
	}
	return fmt.Errorf("unknown TenantConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantConfigMutation) ResetField(name string) error {
	switch name {
	case tenantconfig.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantconfig.FieldOperatorAccountID:
		m.ResetOperatorAccountID()
		return nil
	case tenantconfig.FieldAdminRoomID:
		m.ResetAdminRoomID()
		return nil
	case tenantconfig.FieldAdminDmRoomID:
		m.ResetAdminDmRoomID()
		return nil
	case tenantconfig.FieldTimezone:
		m.ResetTimezone()
		return nil
	case tenantconfig.FieldRoomMatchThreshold:
		m.ResetRoomMatchThreshold()
		return nil
	case tenantconfig.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case tenantconfig.FieldChatAPIToken:
		m.ResetChatAPIToken()
		return nil
	case tenantconfig.FieldMonetaryConfirmThreshold:
		m.ResetMonetaryConfirmThreshold()
		return nil
	case tenantconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantConfig edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	chat_account_id *string
	display_name    *string
	role_level      *int
	addrole_level   *int
	department_id   *string
	is_active       *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UserMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UserMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UserMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetChatAccountID sets the "chat_account_id" field.
func (m *UserMutation) SetChatAccountID(s string) {
	m.chat_account_id = &s
}

// ChatAccountID returns the value of the "chat_account_id" field in the mutation.
func (m *UserMutation) ChatAccountID() (r string, exists bool) {
	v := m.chat_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatAccountID returns the old "chat_account_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldChatAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatAccountID: %w", err)
	}
	return oldValue.ChatAccountID, nil
}

// ResetChatAccountID resets all changes to the "chat_account_id" field.
func (m *UserMutation) ResetChatAccountID() {
	m.chat_account_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetRoleLevel sets the "role_level" field.
func (m *UserMutation) SetRoleLevel(i int) {
	m.role_level = &i
	m.addrole_level = nil
}

// RoleLevel returns the value of the "role_level" field in the mutation.
func (m *UserMutation) RoleLevel() (r int, exists bool) {
	v := m.role_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleLevel returns the old "role_level" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRoleLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleLevel: %w", err)
	}
	return oldValue.RoleLevel, nil
}

// AddRoleLevel adds i to the "role_level" field.
func (m *UserMutation) AddRoleLevel(i int) {
	if m.addrole_level != nil {
		*m.addrole_level += i
	} else {
		m.addrole_level = &i
	}
}

// AddedRoleLevel returns the value that was added to the "role_level" field in this mutation.
func (m *UserMutation) AddedRoleLevel() (r int, exists bool) {
	v := m.addrole_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoleLevel resets all changes to the "role_level" field.
func (m *UserMutation) ResetRoleLevel() {
	m.role_level = nil
	m.addrole_level = nil
}

// SetDepartmentID sets the "department_id" field.
func (m *UserMutation) SetDepartmentID(s string) {
	m.department_id = &s
}

// DepartmentID returns the value of the "department_id" field in the mutation.
func (m *UserMutation) DepartmentID() (r string, exists bool) {
	v := m.department_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartmentID returns the old "department_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDepartmentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartmentID: %w", err)
	}
	return oldValue.DepartmentID, nil
}

// ClearDepartmentID clears the value of the "department_id" field.
func (m *UserMutation) ClearDepartmentID() {
	m.department_id = nil
	m.clearedFields[user.FieldDepartmentID] = struct{}{}
}

// DepartmentIDCleared returns if the "department_id" field was cleared in this mutation.
func (m *UserMutation) DepartmentIDCleared() bool {
	_, ok := m.clearedFields[user.FieldDepartmentID]
	return ok
}

// ResetDepartmentID resets all changes to the "department_id" field.
func (m *UserMutation) ResetDepartmentID() {
	m.department_id = nil
	delete(m.clearedFields, user.FieldDepartmentID)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, user.FieldTenantID)
	}
	if m.chat_account_id != nil {
		fields = append(fields, user.FieldChatAccountID)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.role_level != nil {
		fields = append(fields, user.FieldRoleLevel)
	}
	if m.department_id != nil {
		fields = append(fields, user.FieldDepartmentID)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldTenantID:
		return m.TenantID()
	case user.FieldChatAccountID:
		return m.ChatAccountID()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldRoleLevel:
		return m.RoleLevel()
	case user.FieldDepartmentID:
		return m.DepartmentID()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldTenantID:
		return m.OldTenantID(ctx)
	case user.FieldChatAccountID:
		return m.OldChatAccountID(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldRoleLevel:
		return m.OldRoleLevel(ctx)
	case user.FieldDepartmentID:
		return m.OldDepartmentID(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case user.FieldChatAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatAccountID(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldRoleLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleLevel(v)
		return nil
	case user.FieldDepartmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartmentID(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addrole_level != nil {
		fields = append(fields, user.FieldRoleLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldRoleLevel:
		return m.AddedRoleLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldRoleLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoleLevel(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDepartmentID) {
		fields = append(fields, user.FieldDepartmentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDepartmentID:
		m.ClearDepartmentID()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldTenantID:
		m.ResetTenantID()
		return nil
	case user.FieldChatAccountID:
		m.ResetChatAccountID()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldRoleLevel:
		m.ResetRoleLevel()
		return nil
	case user.FieldDepartmentID:
		m.ResetDepartmentID()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserPreferenceMutation represents an operation that mutates the UserPreference nodes in the graph.
type UserPreferenceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	user_id       *string
	tone          *string
	locale        *string
	settings      *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserPreference, error)
	predicates    []predicate.UserPreference
}

var _ ent.Mutation = (*UserPreferenceMutation)(nil)

// userpreferenceOption allows management of the mutation configuration using functional options.
type userpreferenceOption func(*UserPreferenceMutation)

// newUserPreferenceMutation creates new mutation for the UserPreference entity.
func newUserPreferenceMutation(c config, op Op, opts ...userpreferenceOption) *UserPreferenceMutation {
	m := &UserPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeUserPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserPreferenceID sets the ID field of the mutation.
func withUserPreferenceID(id string) userpreferenceOption {
	return func(m *UserPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *UserPreference
		)
		m.oldValue = func(ctx context.Context) (*UserPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserPreference sets the old UserPreference of the mutation.
func withUserPreference(node *UserPreference) userpreferenceOption {
	return func(m *UserPreferenceMutation) {
		m.oldValue = func(context.Context) (*UserPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserPreference entities.
func (m *UserPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UserPreferenceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UserPreferenceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UserPreferenceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UserPreferenceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserPreferenceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserPreferenceMutation) ResetUserID() {
	m.user_id = nil
}

// SetTone sets the "tone" field.
func (m *UserPreferenceMutation) SetTone(s string) {
	m.tone = &s
}

// Tone returns the value of the "tone" field in the mutation.
func (m *UserPreferenceMutation) Tone() (r string, exists bool) {
	v := m.tone
	if v == nil {
		return
	}
	return *v, true
}

// OldTone returns the old "tone" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTone: %w", err)
	}
	return oldValue.Tone, nil
}

// ClearTone clears the value of the "tone" field.
func (m *UserPreferenceMutation) ClearTone() {
	m.tone = nil
	m.clearedFields[userpreference.FieldTone] = struct{}{}
}

// ToneCleared returns if the "tone" field was cleared in this mutation.
func (m *UserPreferenceMutation) ToneCleared() bool {
	_, ok := m.clearedFields[userpreference.FieldTone]
	return ok
}

// ResetTone resets all changes to the "tone" field.
func (m *UserPreferenceMutation) ResetTone() {
	m.tone = nil
	delete(m.clearedFields, userpreference.FieldTone)
}

// SetLocale sets the "locale" field.
func (m *UserPreferenceMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *UserPreferenceMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *UserPreferenceMutation) ResetLocale() {
	m.locale = nil
}

// SetSettings sets the "settings" field.
func (m *UserPreferenceMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *UserPreferenceMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *UserPreferenceMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[userpreference.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *UserPreferenceMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[userpreference.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *UserPreferenceMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, userpreference.FieldSettings)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserPreference entity.
// If the UserPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserPreferenceMutation builder.
func (m *UserPreferenceMutation) Where(ps ...predicate.UserPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserPreference).
func (m *UserPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, userpreference.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, userpreference.FieldUserID)
	}
	if m.tone != nil {
		fields = append(fields, userpreference.FieldTone)
	}
	if m.locale != nil {
		fields = append(fields, userpreference.FieldLocale)
	}
	if m.settings != nil {
		fields = append(fields, userpreference.FieldSettings)
	}
	if m.updated_at != nil {
		fields = append(fields, userpreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userpreference.FieldTenantID:
		return m.TenantID()
	case userpreference.FieldUserID:
		return m.UserID()
	case userpreference.FieldTone:
		return m.Tone()
	case userpreference.FieldLocale:
		return m.Locale()
	case userpreference.FieldSettings:
		return m.Settings()
	case userpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userpreference.FieldTenantID:
		return m.OldTenantID(ctx)
	case userpreference.FieldUserID:
		return m.OldUserID(ctx)
	case userpreference.FieldTone:
		return m.OldTone(ctx)
	case userpreference.FieldLocale:
		return m.OldLocale(ctx)
	case userpreference.FieldSettings:
		return m.OldSettings(ctx)
	case userpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userpreference.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case userpreference.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userpreference.FieldTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTone(v)
		return nil
	case userpreference.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case userpreference.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case userpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserPreferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserPreferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userpreference.FieldTone) {
		fields = append(fields, userpreference.FieldTone)
	}
	if m.FieldCleared(userpreference.FieldSettings) {
		fields = append(fields, userpreference.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserPreferenceMutation) ClearField(name string) error {
	switch name {
	case userpreference.FieldTone:
		m.ClearTone()
		return nil
	case userpreference.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown UserPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserPreferenceMutation) ResetField(name string) error {
	switch name {
	case userpreference.FieldTenantID:
		m.ResetTenantID()
		return nil
	case userpreference.FieldUserID:
		m.ResetUserID()
		return nil
	case userpreference.FieldTone:
		m.ResetTone()
		return nil
	case userpreference.FieldLocale:
		m.ResetLocale()
		return nil
	case userpreference.FieldSettings:
		m.ResetSettings()
		return nil
	case userpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserPreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserPreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserPreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserPreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserPreference edge %s", name)
}
