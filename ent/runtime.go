// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/wisehub-ai/wisehub/ent/schema"
	"github.com/wisehub-ai/wisehub/ent/task"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
	"github.com/wisehub-ai/wisehub/ent/user"
	"github.com/wisehub-ai/wisehub/ent/userpreference"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	announcementMixin := schema.Announcement{}.Mixin()
	announcementMixinFields0 := announcementMixin[0].Fields()
	_ = announcementMixinFields0
	announcementFields := schema.Announcement{}.Fields()
	_ = announcementFields
	// announcementDescTenantID is the schema descriptor for tenant_id field.
	announcementDescTenantID := announcementMixinFields0[0].Descriptor()
	// announcement.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	announcement.TenantIDValidator = announcementDescTenantID.Validators[0].(func(string) error)
	// announcementDescMessageBody is the schema descriptor for message_body field.
	announcementDescMessageBody := announcementFields[2].Descriptor()
	// announcement.MessageBodyValidator is a validator for the "message_body" field. It is called by the builders before save.
	announcement.MessageBodyValidator = announcementDescMessageBody.Validators[0].(func(string) error)
	// announcementDescCreateTasks is the schema descriptor for create_tasks field.
	announcementDescCreateTasks := announcementFields[4].Descriptor()
	// announcement.DefaultCreateTasks holds the default value on creation for the create_tasks field.
	announcement.DefaultCreateTasks = announcementDescCreateTasks.Default.(bool)
	// announcementDescTimezone is the schema descriptor for timezone field.
	announcementDescTimezone := announcementFields[10].Descriptor()
	// announcement.DefaultTimezone holds the default value on creation for the timezone field.
	announcement.DefaultTimezone = announcementDescTimezone.Default.(string)
	// announcementDescSkipHoliday is the schema descriptor for skip_holiday field.
	announcementDescSkipHoliday := announcementFields[11].Descriptor()
	// announcement.DefaultSkipHoliday holds the default value on creation for the skip_holiday field.
	announcement.DefaultSkipHoliday = announcementDescSkipHoliday.Default.(bool)
	// announcementDescSkipWeekend is the schema descriptor for skip_weekend field.
	announcementDescSkipWeekend := announcementFields[12].Descriptor()
	// announcement.DefaultSkipWeekend holds the default value on creation for the skip_weekend field.
	announcement.DefaultSkipWeekend = announcementDescSkipWeekend.Default.(bool)
	// announcementDescRequesterAccountID is the schema descriptor for requester_account_id field.
	announcementDescRequesterAccountID := announcementFields[15].Descriptor()
	// announcement.RequesterAccountIDValidator is a validator for the "requester_account_id" field. It is called by the builders before save.
	announcement.RequesterAccountIDValidator = announcementDescRequesterAccountID.Validators[0].(func(string) error)
	// announcementDescSourceRoomID is the schema descriptor for source_room_id field.
	announcementDescSourceRoomID := announcementFields[16].Descriptor()
	// announcement.SourceRoomIDValidator is a validator for the "source_room_id" field. It is called by the builders before save.
	announcement.SourceRoomIDValidator = announcementDescSourceRoomID.Validators[0].(func(string) error)
	// announcementDescExecutionCount is the schema descriptor for execution_count field.
	announcementDescExecutionCount := announcementFields[20].Descriptor()
	// announcement.DefaultExecutionCount holds the default value on creation for the execution_count field.
	announcement.DefaultExecutionCount = announcementDescExecutionCount.Default.(int)
	// announcementDescCreatedAt is the schema descriptor for created_at field.
	announcementDescCreatedAt := announcementFields[22].Descriptor()
	// announcement.DefaultCreatedAt holds the default value on creation for the created_at field.
	announcement.DefaultCreatedAt = announcementDescCreatedAt.Default.(func() time.Time)
	// announcementDescUpdatedAt is the schema descriptor for updated_at field.
	announcementDescUpdatedAt := announcementFields[23].Descriptor()
	// announcement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	announcement.DefaultUpdatedAt = announcementDescUpdatedAt.Default.(func() time.Time)
	// announcement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	announcement.UpdateDefaultUpdatedAt = announcementDescUpdatedAt.UpdateDefault.(func() time.Time)
	announcementexecutionMixin := schema.AnnouncementExecution{}.Mixin()
	announcementexecutionMixinFields0 := announcementexecutionMixin[0].Fields()
	_ = announcementexecutionMixinFields0
	announcementexecutionFields := schema.AnnouncementExecution{}.Fields()
	_ = announcementexecutionFields
	// announcementexecutionDescTenantID is the schema descriptor for tenant_id field.
	announcementexecutionDescTenantID := announcementexecutionMixinFields0[0].Descriptor()
	// announcementexecution.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	announcementexecution.TenantIDValidator = announcementexecutionDescTenantID.Validators[0].(func(string) error)
	// announcementexecutionDescAnnouncementID is the schema descriptor for announcement_id field.
	announcementexecutionDescAnnouncementID := announcementexecutionFields[1].Descriptor()
	// announcementexecution.AnnouncementIDValidator is a validator for the "announcement_id" field. It is called by the builders before save.
	announcementexecution.AnnouncementIDValidator = announcementexecutionDescAnnouncementID.Validators[0].(func(string) error)
	// announcementexecutionDescMessageSent is the schema descriptor for message_sent field.
	announcementexecutionDescMessageSent := announcementexecutionFields[3].Descriptor()
	// announcementexecution.DefaultMessageSent holds the default value on creation for the message_sent field.
	announcementexecution.DefaultMessageSent = announcementexecutionDescMessageSent.Default.(bool)
	// announcementexecutionDescTasksCreated is the schema descriptor for tasks_created field.
	announcementexecutionDescTasksCreated := announcementexecutionFields[5].Descriptor()
	// announcementexecution.DefaultTasksCreated holds the default value on creation for the tasks_created field.
	announcementexecution.DefaultTasksCreated = announcementexecutionDescTasksCreated.Default.(int)
	// announcementexecutionDescTasksFailed is the schema descriptor for tasks_failed field.
	announcementexecutionDescTasksFailed := announcementexecutionFields[6].Descriptor()
	// announcementexecution.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	announcementexecution.DefaultTasksFailed = announcementexecutionDescTasksFailed.Default.(int)
	// announcementexecutionDescStartedAt is the schema descriptor for started_at field.
	announcementexecutionDescStartedAt := announcementexecutionFields[11].Descriptor()
	// announcementexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	announcementexecution.DefaultStartedAt = announcementexecutionDescStartedAt.Default.(func() time.Time)
	announcementpatternMixin := schema.AnnouncementPattern{}.Mixin()
	announcementpatternMixinFields0 := announcementpatternMixin[0].Fields()
	_ = announcementpatternMixinFields0
	announcementpatternFields := schema.AnnouncementPattern{}.Fields()
	_ = announcementpatternFields
	// announcementpatternDescTenantID is the schema descriptor for tenant_id field.
	announcementpatternDescTenantID := announcementpatternMixinFields0[0].Descriptor()
	// announcementpattern.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	announcementpattern.TenantIDValidator = announcementpatternDescTenantID.Validators[0].(func(string) error)
	// announcementpatternDescNormalizedRequest is the schema descriptor for normalized_request field.
	announcementpatternDescNormalizedRequest := announcementpatternFields[1].Descriptor()
	// announcementpattern.NormalizedRequestValidator is a validator for the "normalized_request" field. It is called by the builders before save.
	announcementpattern.NormalizedRequestValidator = announcementpatternDescNormalizedRequest.Validators[0].(func(string) error)
	// announcementpatternDescRequestHash is the schema descriptor for request_hash field.
	announcementpatternDescRequestHash := announcementpatternFields[2].Descriptor()
	// announcementpattern.RequestHashValidator is a validator for the "request_hash" field. It is called by the builders before save.
	announcementpattern.RequestHashValidator = announcementpatternDescRequestHash.Validators[0].(func(string) error)
	// announcementpatternDescOccurrenceCount is the schema descriptor for occurrence_count field.
	announcementpatternDescOccurrenceCount := announcementpatternFields[3].Descriptor()
	// announcementpattern.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	announcementpattern.DefaultOccurrenceCount = announcementpatternDescOccurrenceCount.Default.(int)
	// announcementpatternDescFirstSeenAt is the schema descriptor for first_seen_at field.
	announcementpatternDescFirstSeenAt := announcementpatternFields[6].Descriptor()
	// announcementpattern.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	announcementpattern.DefaultFirstSeenAt = announcementpatternDescFirstSeenAt.Default.(func() time.Time)
	// announcementpatternDescLastSeenAt is the schema descriptor for last_seen_at field.
	announcementpatternDescLastSeenAt := announcementpatternFields[7].Descriptor()
	// announcementpattern.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	announcementpattern.DefaultLastSeenAt = announcementpatternDescLastSeenAt.Default.(func() time.Time)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTenantID is the schema descriptor for tenant_id field.
	auditlogDescTenantID := auditlogMixinFields0[0].Descriptor()
	// auditlog.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	auditlog.TenantIDValidator = auditlogDescTenantID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[1].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[3].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	ceoteachingMixin := schema.CeoTeaching{}.Mixin()
	ceoteachingMixinFields0 := ceoteachingMixin[0].Fields()
	_ = ceoteachingMixinFields0
	ceoteachingFields := schema.CeoTeaching{}.Fields()
	_ = ceoteachingFields
	// ceoteachingDescTenantID is the schema descriptor for tenant_id field.
	ceoteachingDescTenantID := ceoteachingMixinFields0[0].Descriptor()
	// ceoteaching.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	ceoteaching.TenantIDValidator = ceoteachingDescTenantID.Validators[0].(func(string) error)
	// ceoteachingDescCeoUserID is the schema descriptor for ceo_user_id field.
	ceoteachingDescCeoUserID := ceoteachingFields[1].Descriptor()
	// ceoteaching.CeoUserIDValidator is a validator for the "ceo_user_id" field. It is called by the builders before save.
	ceoteaching.CeoUserIDValidator = ceoteachingDescCeoUserID.Validators[0].(func(string) error)
	// ceoteachingDescStatement is the schema descriptor for statement field.
	ceoteachingDescStatement := ceoteachingFields[2].Descriptor()
	// ceoteaching.StatementValidator is a validator for the "statement" field. It is called by the builders before save.
	ceoteaching.StatementValidator = ceoteachingDescStatement.Validators[0].(func(string) error)
	// ceoteachingDescPriority is the schema descriptor for priority field.
	ceoteachingDescPriority := ceoteachingFields[6].Descriptor()
	// ceoteaching.DefaultPriority holds the default value on creation for the priority field.
	ceoteaching.DefaultPriority = ceoteachingDescPriority.Default.(int)
	// ceoteaching.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	ceoteaching.PriorityValidator = func() func(int) error {
		validators := ceoteachingDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ceoteachingDescIsActive is the schema descriptor for is_active field.
	ceoteachingDescIsActive := ceoteachingFields[7].Descriptor()
	// ceoteaching.DefaultIsActive holds the default value on creation for the is_active field.
	ceoteaching.DefaultIsActive = ceoteachingDescIsActive.Default.(bool)
	// ceoteachingDescUsageCount is the schema descriptor for usage_count field.
	ceoteachingDescUsageCount := ceoteachingFields[8].Descriptor()
	// ceoteaching.DefaultUsageCount holds the default value on creation for the usage_count field.
	ceoteaching.DefaultUsageCount = ceoteachingDescUsageCount.Default.(int)
	// ceoteachingDescCreatedAt is the schema descriptor for created_at field.
	ceoteachingDescCreatedAt := ceoteachingFields[11].Descriptor()
	// ceoteaching.DefaultCreatedAt holds the default value on creation for the created_at field.
	ceoteaching.DefaultCreatedAt = ceoteachingDescCreatedAt.Default.(func() time.Time)
	// ceoteachingDescUpdatedAt is the schema descriptor for updated_at field.
	ceoteachingDescUpdatedAt := ceoteachingFields[12].Descriptor()
	// ceoteaching.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ceoteaching.DefaultUpdatedAt = ceoteachingDescUpdatedAt.Default.(func() time.Time)
	// ceoteaching.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ceoteaching.UpdateDefaultUpdatedAt = ceoteachingDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationstateMixin := schema.ConversationState{}.Mixin()
	conversationstateMixinFields0 := conversationstateMixin[0].Fields()
	_ = conversationstateMixinFields0
	conversationstateFields := schema.ConversationState{}.Fields()
	_ = conversationstateFields
	// conversationstateDescTenantID is the schema descriptor for tenant_id field.
	conversationstateDescTenantID := conversationstateMixinFields0[0].Descriptor()
	// conversationstate.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	conversationstate.TenantIDValidator = conversationstateDescTenantID.Validators[0].(func(string) error)
	// conversationstateDescRoomID is the schema descriptor for room_id field.
	conversationstateDescRoomID := conversationstateFields[1].Descriptor()
	// conversationstate.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	conversationstate.RoomIDValidator = conversationstateDescRoomID.Validators[0].(func(string) error)
	// conversationstateDescUserID is the schema descriptor for user_id field.
	conversationstateDescUserID := conversationstateFields[2].Descriptor()
	// conversationstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversationstate.UserIDValidator = conversationstateDescUserID.Validators[0].(func(string) error)
	// conversationstateDescCreatedAt is the schema descriptor for created_at field.
	conversationstateDescCreatedAt := conversationstateFields[9].Descriptor()
	// conversationstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationstate.DefaultCreatedAt = conversationstateDescCreatedAt.Default.(func() time.Time)
	// conversationstateDescUpdatedAt is the schema descriptor for updated_at field.
	conversationstateDescUpdatedAt := conversationstateFields[10].Descriptor()
	// conversationstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationstate.DefaultUpdatedAt = conversationstateDescUpdatedAt.Default.(func() time.Time)
	// conversationstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationstate.UpdateDefaultUpdatedAt = conversationstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationsummaryMixin := schema.ConversationSummary{}.Mixin()
	conversationsummaryMixinFields0 := conversationsummaryMixin[0].Fields()
	_ = conversationsummaryMixinFields0
	conversationsummaryFields := schema.ConversationSummary{}.Fields()
	_ = conversationsummaryFields
	// conversationsummaryDescTenantID is the schema descriptor for tenant_id field.
	conversationsummaryDescTenantID := conversationsummaryMixinFields0[0].Descriptor()
	// conversationsummary.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	conversationsummary.TenantIDValidator = conversationsummaryDescTenantID.Validators[0].(func(string) error)
	// conversationsummaryDescRoomID is the schema descriptor for room_id field.
	conversationsummaryDescRoomID := conversationsummaryFields[1].Descriptor()
	// conversationsummary.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	conversationsummary.RoomIDValidator = conversationsummaryDescRoomID.Validators[0].(func(string) error)
	// conversationsummaryDescUserID is the schema descriptor for user_id field.
	conversationsummaryDescUserID := conversationsummaryFields[2].Descriptor()
	// conversationsummary.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversationsummary.UserIDValidator = conversationsummaryDescUserID.Validators[0].(func(string) error)
	// conversationsummaryDescSummary is the schema descriptor for summary field.
	conversationsummaryDescSummary := conversationsummaryFields[3].Descriptor()
	// conversationsummary.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	conversationsummary.SummaryValidator = conversationsummaryDescSummary.Validators[0].(func(string) error)
	// conversationsummaryDescTurnsCovered is the schema descriptor for turns_covered field.
	conversationsummaryDescTurnsCovered := conversationsummaryFields[4].Descriptor()
	// conversationsummary.DefaultTurnsCovered holds the default value on creation for the turns_covered field.
	conversationsummary.DefaultTurnsCovered = conversationsummaryDescTurnsCovered.Default.(int)
	// conversationsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	conversationsummaryDescUpdatedAt := conversationsummaryFields[5].Descriptor()
	// conversationsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationsummary.DefaultUpdatedAt = conversationsummaryDescUpdatedAt.Default.(func() time.Time)
	// conversationsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationsummary.UpdateDefaultUpdatedAt = conversationsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationturnMixin := schema.ConversationTurn{}.Mixin()
	conversationturnMixinFields0 := conversationturnMixin[0].Fields()
	_ = conversationturnMixinFields0
	conversationturnFields := schema.ConversationTurn{}.Fields()
	_ = conversationturnFields
	// conversationturnDescTenantID is the schema descriptor for tenant_id field.
	conversationturnDescTenantID := conversationturnMixinFields0[0].Descriptor()
	// conversationturn.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	conversationturn.TenantIDValidator = conversationturnDescTenantID.Validators[0].(func(string) error)
	// conversationturnDescRoomID is the schema descriptor for room_id field.
	conversationturnDescRoomID := conversationturnFields[1].Descriptor()
	// conversationturn.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	conversationturn.RoomIDValidator = conversationturnDescRoomID.Validators[0].(func(string) error)
	// conversationturnDescUserID is the schema descriptor for user_id field.
	conversationturnDescUserID := conversationturnFields[2].Descriptor()
	// conversationturn.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversationturn.UserIDValidator = conversationturnDescUserID.Validators[0].(func(string) error)
	// conversationturnDescContent is the schema descriptor for content field.
	conversationturnDescContent := conversationturnFields[4].Descriptor()
	// conversationturn.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	conversationturn.ContentValidator = conversationturnDescContent.Validators[0].(func(string) error)
	// conversationturnDescSummarized is the schema descriptor for summarized field.
	conversationturnDescSummarized := conversationturnFields[5].Descriptor()
	// conversationturn.DefaultSummarized holds the default value on creation for the summarized field.
	conversationturn.DefaultSummarized = conversationturnDescSummarized.Default.(bool)
	// conversationturnDescCreatedAt is the schema descriptor for created_at field.
	conversationturnDescCreatedAt := conversationturnFields[6].Descriptor()
	// conversationturn.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationturn.DefaultCreatedAt = conversationturnDescCreatedAt.Default.(func() time.Time)
	decisionlogMixin := schema.DecisionLog{}.Mixin()
	decisionlogMixinFields0 := decisionlogMixin[0].Fields()
	_ = decisionlogMixinFields0
	decisionlogFields := schema.DecisionLog{}.Fields()
	_ = decisionlogFields
	// decisionlogDescTenantID is the schema descriptor for tenant_id field.
	decisionlogDescTenantID := decisionlogMixinFields0[0].Descriptor()
	// decisionlog.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	decisionlog.TenantIDValidator = decisionlogDescTenantID.Validators[0].(func(string) error)
	// decisionlogDescUserID is the schema descriptor for user_id field.
	decisionlogDescUserID := decisionlogFields[1].Descriptor()
	// decisionlog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	decisionlog.UserIDValidator = decisionlogDescUserID.Validators[0].(func(string) error)
	// decisionlogDescRoomID is the schema descriptor for room_id field.
	decisionlogDescRoomID := decisionlogFields[2].Descriptor()
	// decisionlog.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	decisionlog.RoomIDValidator = decisionlogDescRoomID.Validators[0].(func(string) error)
	// decisionlogDescConfidence is the schema descriptor for confidence field.
	decisionlogDescConfidence := decisionlogFields[7].Descriptor()
	// decisionlog.DefaultConfidence holds the default value on creation for the confidence field.
	decisionlog.DefaultConfidence = decisionlogDescConfidence.Default.(float64)
	// decisionlogDescIntentConfidence is the schema descriptor for intent_confidence field.
	decisionlogDescIntentConfidence := decisionlogFields[8].Descriptor()
	// decisionlog.DefaultIntentConfidence holds the default value on creation for the intent_confidence field.
	decisionlog.DefaultIntentConfidence = decisionlogDescIntentConfidence.Default.(float64)
	// decisionlogDescParameterConfidence is the schema descriptor for parameter_confidence field.
	decisionlogDescParameterConfidence := decisionlogFields[9].Descriptor()
	// decisionlog.DefaultParameterConfidence holds the default value on creation for the parameter_confidence field.
	decisionlog.DefaultParameterConfidence = decisionlogDescParameterConfidence.Default.(float64)
	// decisionlogDescSuccess is the schema descriptor for success field.
	decisionlogDescSuccess := decisionlogFields[12].Descriptor()
	// decisionlog.DefaultSuccess holds the default value on creation for the success field.
	decisionlog.DefaultSuccess = decisionlogDescSuccess.Default.(bool)
	// decisionlogDescTokensIn is the schema descriptor for tokens_in field.
	decisionlogDescTokensIn := decisionlogFields[14].Descriptor()
	// decisionlog.DefaultTokensIn holds the default value on creation for the tokens_in field.
	decisionlog.DefaultTokensIn = decisionlogDescTokensIn.Default.(int)
	// decisionlogDescTokensOut is the schema descriptor for tokens_out field.
	decisionlogDescTokensOut := decisionlogFields[15].Descriptor()
	// decisionlog.DefaultTokensOut holds the default value on creation for the tokens_out field.
	decisionlog.DefaultTokensOut = decisionlogDescTokensOut.Default.(int)
	// decisionlogDescConfirmationNeeded is the schema descriptor for confirmation_needed field.
	decisionlogDescConfirmationNeeded := decisionlogFields[18].Descriptor()
	// decisionlog.DefaultConfirmationNeeded holds the default value on creation for the confirmation_needed field.
	decisionlog.DefaultConfirmationNeeded = decisionlogDescConfirmationNeeded.Default.(bool)
	// decisionlogDescCreatedAt is the schema descriptor for created_at field.
	decisionlogDescCreatedAt := decisionlogFields[22].Descriptor()
	// decisionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	decisionlog.DefaultCreatedAt = decisionlogDescCreatedAt.Default.(func() time.Time)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescTenantID is the schema descriptor for tenant_id field.
	departmentDescTenantID := departmentMixinFields0[0].Descriptor()
	// department.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	department.TenantIDValidator = departmentDescTenantID.Validators[0].(func(string) error)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[1].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = departmentDescName.Validators[0].(func(string) error)
	featureflagFields := schema.FeatureFlag{}.Fields()
	_ = featureflagFields
	// featureflagDescName is the schema descriptor for name field.
	featureflagDescName := featureflagFields[2].Descriptor()
	// featureflag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	featureflag.NameValidator = featureflagDescName.Validators[0].(func(string) error)
	// featureflagDescEnabled is the schema descriptor for enabled field.
	featureflagDescEnabled := featureflagFields[3].Descriptor()
	// featureflag.DefaultEnabled holds the default value on creation for the enabled field.
	featureflag.DefaultEnabled = featureflagDescEnabled.Default.(bool)
	// featureflagDescUpdatedAt is the schema descriptor for updated_at field.
	featureflagDescUpdatedAt := featureflagFields[4].Descriptor()
	// featureflag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	featureflag.DefaultUpdatedAt = featureflagDescUpdatedAt.Default.(func() time.Time)
	// featureflag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	featureflag.UpdateDefaultUpdatedAt = featureflagDescUpdatedAt.UpdateDefault.(func() time.Time)
	goalMixin := schema.Goal{}.Mixin()
	goalMixinFields0 := goalMixin[0].Fields()
	_ = goalMixinFields0
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescTenantID is the schema descriptor for tenant_id field.
	goalDescTenantID := goalMixinFields0[0].Descriptor()
	// goal.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	goal.TenantIDValidator = goalDescTenantID.Validators[0].(func(string) error)
	// goalDescUserID is the schema descriptor for user_id field.
	goalDescUserID := goalFields[1].Descriptor()
	// goal.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	goal.UserIDValidator = goalDescUserID.Validators[0].(func(string) error)
	// goalDescTitle is the schema descriptor for title field.
	goalDescTitle := goalFields[2].Descriptor()
	// goal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	goal.TitleValidator = goalDescTitle.Validators[0].(func(string) error)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[7].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	// goalDescUpdatedAt is the schema descriptor for updated_at field.
	goalDescUpdatedAt := goalFields[8].Descriptor()
	// goal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	goal.DefaultUpdatedAt = goalDescUpdatedAt.Default.(func() time.Time)
	// goal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	goal.UpdateDefaultUpdatedAt = goalDescUpdatedAt.UpdateDefault.(func() time.Time)
	insightMixin := schema.Insight{}.Mixin()
	insightMixinFields0 := insightMixin[0].Fields()
	_ = insightMixinFields0
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescTenantID is the schema descriptor for tenant_id field.
	insightDescTenantID := insightMixinFields0[0].Descriptor()
	// insight.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	insight.TenantIDValidator = insightDescTenantID.Validators[0].(func(string) error)
	// insightDescKind is the schema descriptor for kind field.
	insightDescKind := insightFields[1].Descriptor()
	// insight.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	insight.KindValidator = insightDescKind.Validators[0].(func(string) error)
	// insightDescSummary is the schema descriptor for summary field.
	insightDescSummary := insightFields[2].Descriptor()
	// insight.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	insight.SummaryValidator = insightDescSummary.Validators[0].(func(string) error)
	// insightDescResolved is the schema descriptor for resolved field.
	insightDescResolved := insightFields[6].Descriptor()
	// insight.DefaultResolved holds the default value on creation for the resolved field.
	insight.DefaultResolved = insightDescResolved.Default.(bool)
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[7].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	knowledgechunkMixin := schema.KnowledgeChunk{}.Mixin()
	knowledgechunkMixinFields0 := knowledgechunkMixin[0].Fields()
	_ = knowledgechunkMixinFields0
	knowledgechunkFields := schema.KnowledgeChunk{}.Fields()
	_ = knowledgechunkFields
	// knowledgechunkDescTenantID is the schema descriptor for tenant_id field.
	knowledgechunkDescTenantID := knowledgechunkMixinFields0[0].Descriptor()
	// knowledgechunk.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	knowledgechunk.TenantIDValidator = knowledgechunkDescTenantID.Validators[0].(func(string) error)
	// knowledgechunkDescDocumentID is the schema descriptor for document_id field.
	knowledgechunkDescDocumentID := knowledgechunkFields[1].Descriptor()
	// knowledgechunk.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	knowledgechunk.DocumentIDValidator = knowledgechunkDescDocumentID.Validators[0].(func(string) error)
	// knowledgechunkDescContent is the schema descriptor for content field.
	knowledgechunkDescContent := knowledgechunkFields[3].Descriptor()
	// knowledgechunk.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	knowledgechunk.ContentValidator = knowledgechunkDescContent.Validators[0].(func(string) error)
	// knowledgechunkDescCreatedAt is the schema descriptor for created_at field.
	knowledgechunkDescCreatedAt := knowledgechunkFields[5].Descriptor()
	// knowledgechunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgechunk.DefaultCreatedAt = knowledgechunkDescCreatedAt.Default.(func() time.Time)
	personMixin := schema.Person{}.Mixin()
	personMixinFields0 := personMixin[0].Fields()
	_ = personMixinFields0
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescTenantID is the schema descriptor for tenant_id field.
	personDescTenantID := personMixinFields0[0].Descriptor()
	// person.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	person.TenantIDValidator = personDescTenantID.Validators[0].(func(string) error)
	// personDescName is the schema descriptor for name field.
	personDescName := personFields[1].Descriptor()
	// person.NameValidator is a validator for the "name" field. It is called by the builders before save.
	person.NameValidator = personDescName.Validators[0].(func(string) error)
	// personDescUpdatedAt is the schema descriptor for updated_at field.
	personDescUpdatedAt := personFields[6].Descriptor()
	// person.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	person.DefaultUpdatedAt = personDescUpdatedAt.Default.(func() time.Time)
	// person.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	person.UpdateDefaultUpdatedAt = personDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduledjobMixin := schema.ScheduledJob{}.Mixin()
	scheduledjobMixinFields0 := scheduledjobMixin[0].Fields()
	_ = scheduledjobMixinFields0
	scheduledjobFields := schema.ScheduledJob{}.Fields()
	_ = scheduledjobFields
	// scheduledjobDescTenantID is the schema descriptor for tenant_id field.
	scheduledjobDescTenantID := scheduledjobMixinFields0[0].Descriptor()
	// scheduledjob.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	scheduledjob.TenantIDValidator = scheduledjobDescTenantID.Validators[0].(func(string) error)
	// scheduledjobDescKind is the schema descriptor for kind field.
	scheduledjobDescKind := scheduledjobFields[1].Descriptor()
	// scheduledjob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	scheduledjob.KindValidator = scheduledjobDescKind.Validators[0].(func(string) error)
	// scheduledjobDescAttempts is the schema descriptor for attempts field.
	scheduledjobDescAttempts := scheduledjobFields[8].Descriptor()
	// scheduledjob.DefaultAttempts holds the default value on creation for the attempts field.
	scheduledjob.DefaultAttempts = scheduledjobDescAttempts.Default.(int)
	// scheduledjobDescCreatedAt is the schema descriptor for created_at field.
	scheduledjobDescCreatedAt := scheduledjobFields[10].Descriptor()
	// scheduledjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledjob.DefaultCreatedAt = scheduledjobDescCreatedAt.Default.(func() time.Time)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTenantID is the schema descriptor for tenant_id field.
	taskDescTenantID := taskMixinFields0[0].Descriptor()
	// task.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	task.TenantIDValidator = taskDescTenantID.Validators[0].(func(string) error)
	// taskDescRoomID is the schema descriptor for room_id field.
	taskDescRoomID := taskFields[2].Descriptor()
	// task.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	task.RoomIDValidator = taskDescRoomID.Validators[0].(func(string) error)
	// taskDescAssigneeUserID is the schema descriptor for assignee_user_id field.
	taskDescAssigneeUserID := taskFields[3].Descriptor()
	// task.AssigneeUserIDValidator is a validator for the "assignee_user_id" field. It is called by the builders before save.
	task.AssigneeUserIDValidator = taskDescAssigneeUserID.Validators[0].(func(string) error)
	// taskDescBody is the schema descriptor for body field.
	taskDescBody := taskFields[4].Descriptor()
	// task.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	task.BodyValidator = taskDescBody.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantconfigMixin := schema.TenantConfig{}.Mixin()
	tenantconfigMixinFields0 := tenantconfigMixin[0].Fields()
	_ = tenantconfigMixinFields0
	tenantconfigFields := schema.TenantConfig{}.Fields()
	_ = tenantconfigFields
	// tenantconfigDescTenantID is the schema descriptor for tenant_id field.
	tenantconfigDescTenantID := tenantconfigMixinFields0[0].Descriptor()
	// tenantconfig.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	tenantconfig.TenantIDValidator = tenantconfigDescTenantID.Validators[0].(func(string) error)
	// tenantconfigDescOperatorAccountID is the schema descriptor for operator_account_id field.
	tenantconfigDescOperatorAccountID := tenantconfigFields[1].Descriptor()
	// tenantconfig.OperatorAccountIDValidator is a validator for the "operator_account_id" field. It is called by the builders before save.
	tenantconfig.OperatorAccountIDValidator = tenantconfigDescOperatorAccountID.Validators[0].(func(string) error)
	// tenantconfigDescAdminRoomID is the schema descriptor for admin_room_id field.
	tenantconfigDescAdminRoomID := tenantconfigFields[2].Descriptor()
	// tenantconfig.AdminRoomIDValidator is a validator for the "admin_room_id" field. It is called by the builders before save.
	tenantconfig.AdminRoomIDValidator = tenantconfigDescAdminRoomID.Validators[0].(func(string) error)
	// tenantconfigDescTimezone is the schema descriptor for timezone field.
	tenantconfigDescTimezone := tenantconfigFields[4].Descriptor()
	// tenantconfig.DefaultTimezone holds the default value on creation for the timezone field.
	tenantconfig.DefaultTimezone = tenantconfigDescTimezone.Default.(string)
	// tenantconfigDescRoomMatchThreshold is the schema descriptor for room_match_threshold field.
	tenantconfigDescRoomMatchThreshold := tenantconfigFields[5].Descriptor()
	// tenantconfig.DefaultRoomMatchThreshold holds the default value on creation for the room_match_threshold field.
	tenantconfig.DefaultRoomMatchThreshold = tenantconfigDescRoomMatchThreshold.Default.(float64)
	// tenantconfigDescWebhookSecret is the schema descriptor for webhook_secret field.
	tenantconfigDescWebhookSecret := tenantconfigFields[6].Descriptor()
	// tenantconfig.WebhookSecretValidator is a validator for the "webhook_secret" field. It is called by the builders before save.
	tenantconfig.WebhookSecretValidator = tenantconfigDescWebhookSecret.Validators[0].(func(string) error)
	// tenantconfigDescChatAPIToken is the schema descriptor for chat_api_token field.
	tenantconfigDescChatAPIToken := tenantconfigFields[7].Descriptor()
	// tenantconfig.ChatAPITokenValidator is a validator for the "chat_api_token" field. It is called by the builders before save.
	tenantconfig.ChatAPITokenValidator = tenantconfigDescChatAPIToken.Validators[0].(func(string) error)
	// tenantconfigDescMonetaryConfirmThreshold is the schema descriptor for monetary_confirm_threshold field.
	tenantconfigDescMonetaryConfirmThreshold := tenantconfigFields[8].Descriptor()
	// tenantconfig.DefaultMonetaryConfirmThreshold holds the default value on creation for the monetary_confirm_threshold field.
	tenantconfig.DefaultMonetaryConfirmThreshold = tenantconfigDescMonetaryConfirmThreshold.Default.(float64)
	// tenantconfigDescUpdatedAt is the schema descriptor for updated_at field.
	tenantconfigDescUpdatedAt := tenantconfigFields[9].Descriptor()
	// tenantconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantconfig.DefaultUpdatedAt = tenantconfigDescUpdatedAt.Default.(func() time.Time)
	// tenantconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantconfig.UpdateDefaultUpdatedAt = tenantconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescTenantID is the schema descriptor for tenant_id field.
	userDescTenantID := userMixinFields0[0].Descriptor()
	// user.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	user.TenantIDValidator = userDescTenantID.Validators[0].(func(string) error)
	// userDescChatAccountID is the schema descriptor for chat_account_id field.
	userDescChatAccountID := userFields[1].Descriptor()
	// user.ChatAccountIDValidator is a validator for the "chat_account_id" field. It is called by the builders before save.
	user.ChatAccountIDValidator = userDescChatAccountID.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescRoleLevel is the schema descriptor for role_level field.
	userDescRoleLevel := userFields[3].Descriptor()
	// user.DefaultRoleLevel holds the default value on creation for the role_level field.
	user.DefaultRoleLevel = userDescRoleLevel.Default.(int)
	// user.RoleLevelValidator is a validator for the "role_level" field. It is called by the builders before save.
	user.RoleLevelValidator = func() func(int) error {
		validators := userDescRoleLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(role_level int) error {
			for _, fn := range fns {
				if err := fn(role_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	userpreferenceMixin := schema.UserPreference{}.Mixin()
	userpreferenceMixinFields0 := userpreferenceMixin[0].Fields()
	_ = userpreferenceMixinFields0
	userpreferenceFields := schema.UserPreference{}.Fields()
	_ = userpreferenceFields
	// userpreferenceDescTenantID is the schema descriptor for tenant_id field.
	userpreferenceDescTenantID := userpreferenceMixinFields0[0].Descriptor()
	// userpreference.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	userpreference.TenantIDValidator = userpreferenceDescTenantID.Validators[0].(func(string) error)
	// userpreferenceDescUserID is the schema descriptor for user_id field.
	userpreferenceDescUserID := userpreferenceFields[1].Descriptor()
	// userpreference.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userpreference.UserIDValidator = userpreferenceDescUserID.Validators[0].(func(string) error)
	// userpreferenceDescLocale is the schema descriptor for locale field.
	userpreferenceDescLocale := userpreferenceFields[3].Descriptor()
	// userpreference.DefaultLocale holds the default value on creation for the locale field.
	userpreference.DefaultLocale = userpreferenceDescLocale.Default.(string)
	// userpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	userpreferenceDescUpdatedAt := userpreferenceFields[5].Descriptor()
	// userpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userpreference.DefaultUpdatedAt = userpreferenceDescUpdatedAt.Default.(func() time.Time)
	// userpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userpreference.UpdateDefaultUpdatedAt = userpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
