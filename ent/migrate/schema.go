// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnnouncementsColumns holds the columns for the "announcements" table.
	AnnouncementsColumns = []*schema.Column{
		{Name: "announcement_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "message_body", Type: field.TypeString, Size: 2147483647},
		{Name: "target_room_id", Type: field.TypeString, Nullable: true},
		{Name: "create_tasks", Type: field.TypeBool, Default: false},
		{Name: "task_include_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "task_exclude_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "schedule_type", Type: field.TypeEnum, Enums: []string{"immediate", "one_time", "recurring"}, Default: "immediate"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cron_expression", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Tokyo"},
		{Name: "skip_holiday", Type: field.TypeBool, Default: false},
		{Name: "skip_weekend", Type: field.TypeBool, Default: false},
		{Name: "task_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "pending_room", "confirmed", "scheduled", "executing", "completed", "failed", "cancelled", "paused"}, Default: "pending"},
		{Name: "requester_account_id", Type: field.TypeString},
		{Name: "source_room_id", Type: field.TypeString},
		{Name: "confirmation_message_id", Type: field.TypeString, Nullable: true},
		{Name: "next_execution_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_execution_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_count", Type: field.TypeInt, Default: 0},
		{Name: "max_executions", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AnnouncementsTable holds the schema information for the "announcements" table.
	AnnouncementsTable = &schema.Table{
		Name:       "announcements",
		Columns:    AnnouncementsColumns,
		PrimaryKey: []*schema.Column{AnnouncementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "announcement_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{AnnouncementsColumns[1], AnnouncementsColumns[15]},
			},
			{
				Name:    "announcement_tenant_id_requester_account_id_status",
				Unique:  false,
				Columns: []*schema.Column{AnnouncementsColumns[1], AnnouncementsColumns[16], AnnouncementsColumns[15]},
			},
			{
				Name:    "announcement_tenant_id_next_execution_at",
				Unique:  false,
				Columns: []*schema.Column{AnnouncementsColumns[1], AnnouncementsColumns[19]},
			},
		},
	}
	// AnnouncementExecutionsColumns holds the columns for the "announcement_executions" table.
	AnnouncementExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "execution_number", Type: field.TypeInt},
		{Name: "message_sent", Type: field.TypeBool, Default: false},
		{Name: "sent_message_id", Type: field.TypeString, Nullable: true},
		{Name: "tasks_created", Type: field.TypeInt, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt, Default: 0},
		{Name: "members_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "partial_failure", "failed", "skipped"}, Default: "pending"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "announcement_id", Type: field.TypeString},
	}
	// AnnouncementExecutionsTable holds the schema information for the "announcement_executions" table.
	AnnouncementExecutionsTable = &schema.Table{
		Name:       "announcement_executions",
		Columns:    AnnouncementExecutionsColumns,
		PrimaryKey: []*schema.Column{AnnouncementExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "announcement_executions_announcements_executions",
				Columns:    []*schema.Column{AnnouncementExecutionsColumns[13]},
				RefColumns: []*schema.Column{AnnouncementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "announcementexecution_announcement_id_execution_number",
				Unique:  true,
				Columns: []*schema.Column{AnnouncementExecutionsColumns[13], AnnouncementExecutionsColumns[2]},
			},
			{
				Name:    "announcementexecution_tenant_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AnnouncementExecutionsColumns[1], AnnouncementExecutionsColumns[11]},
			},
		},
	}
	// AnnouncementPatternsColumns holds the columns for the "announcement_patterns" table.
	AnnouncementPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "normalized_request", Type: field.TypeString, Size: 2147483647},
		{Name: "request_hash", Type: field.TypeString},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
		{Name: "requester_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "addressed", "dismissed"}, Default: "active"},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// AnnouncementPatternsTable holds the schema information for the "announcement_patterns" table.
	AnnouncementPatternsTable = &schema.Table{
		Name:       "announcement_patterns",
		Columns:    AnnouncementPatternsColumns,
		PrimaryKey: []*schema.Column{AnnouncementPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "announcementpattern_tenant_id_request_hash",
				Unique:  true,
				Columns: []*schema.Column{AnnouncementPatternsColumns[1], AnnouncementPatternsColumns[3]},
			},
			{
				Name:    "announcementpattern_tenant_id_status_occurrence_count",
				Unique:  false,
				Columns: []*schema.Column{AnnouncementPatternsColumns[1], AnnouncementPatternsColumns[6], AnnouncementPatternsColumns[4]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"public", "internal", "confidential", "restricted"}, Default: "internal"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_tenant_id_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[4], AuditLogsColumns[5]},
			},
		},
	}
	// CeoTeachingsColumns holds the columns for the "ceo_teachings" table.
	CeoTeachingsColumns = []*schema.Column{
		{Name: "teaching_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "ceo_user_id", Type: field.TypeString},
		{Name: "statement", Type: field.TypeString, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"mission", "vision", "values", "choice_theory", "sdt", "servant", "psych_safety", "sales", "hr", "accounting", "general", "culture", "communication", "staff_guidance", "other"}, Default: "general"},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"pending", "verified", "alert_pending", "overridden"}, Default: "pending"},
		{Name: "supersedes_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CeoTeachingsTable holds the schema information for the "ceo_teachings" table.
	CeoTeachingsTable = &schema.Table{
		Name:       "ceo_teachings",
		Columns:    CeoTeachingsColumns,
		PrimaryKey: []*schema.Column{CeoTeachingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ceoteaching_tenant_id_is_active_validation_status",
				Unique:  false,
				Columns: []*schema.Column{CeoTeachingsColumns[1], CeoTeachingsColumns[8], CeoTeachingsColumns[10]},
			},
			{
				Name:    "ceoteaching_tenant_id_category",
				Unique:  false,
				Columns: []*schema.Column{CeoTeachingsColumns[1], CeoTeachingsColumns[6]},
			},
		},
	}
	// ConversationStatesColumns holds the columns for the "conversation_states" table.
	ConversationStatesColumns = []*schema.Column{
		{Name: "state_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "state_type", Type: field.TypeEnum, Enums: []string{"normal", "goal_setting", "announcement", "confirmation", "task_pending", "multi_action"}, Default: "normal"},
		{Name: "step", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "reference_type", Type: field.TypeString, Nullable: true},
		{Name: "reference_id", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationStatesTable holds the schema information for the "conversation_states" table.
	ConversationStatesTable = &schema.Table{
		Name:       "conversation_states",
		Columns:    ConversationStatesColumns,
		PrimaryKey: []*schema.Column{ConversationStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationstate_tenant_id_room_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationStatesColumns[1], ConversationStatesColumns[2], ConversationStatesColumns[3]},
			},
			{
				Name:    "conversationstate_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationStatesColumns[9]},
			},
		},
	}
	// ConversationSummariesColumns holds the columns for the "conversation_summaries" table.
	ConversationSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "turns_covered", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationSummariesTable holds the schema information for the "conversation_summaries" table.
	ConversationSummariesTable = &schema.Table{
		Name:       "conversation_summaries",
		Columns:    ConversationSummariesColumns,
		PrimaryKey: []*schema.Column{ConversationSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationsummary_tenant_id_room_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationSummariesColumns[1], ConversationSummariesColumns[2], ConversationSummariesColumns[3]},
			},
		},
	}
	// ConversationTurnsColumns holds the columns for the "conversation_turns" table.
	ConversationTurnsColumns = []*schema.Column{
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summarized", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConversationTurnsTable holds the schema information for the "conversation_turns" table.
	ConversationTurnsTable = &schema.Table{
		Name:       "conversation_turns",
		Columns:    ConversationTurnsColumns,
		PrimaryKey: []*schema.Column{ConversationTurnsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationturn_tenant_id_room_id_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[1], ConversationTurnsColumns[2], ConversationTurnsColumns[3], ConversationTurnsColumns[7]},
			},
			{
				Name:    "conversationturn_tenant_id_summarized",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[1], ConversationTurnsColumns[6]},
			},
		},
	}
	// DecisionLogsColumns holds the columns for the "decision_logs" table.
	DecisionLogsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "message_excerpt", Type: field.TypeString},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "capability_key", Type: field.TypeString, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "intent_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "parameter_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "guardrail_action", Type: field.TypeString, Nullable: true},
		{Name: "policy_reason", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "timings_ms", Type: field.TypeJSON, Nullable: true},
		{Name: "confirmation_needed", Type: field.TypeBool, Default: false},
		{Name: "confirmation_question", Type: field.TypeString, Nullable: true},
		{Name: "confirmation_resolution", Type: field.TypeString, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecisionLogsTable holds the schema information for the "decision_logs" table.
	DecisionLogsTable = &schema.Table{
		Name:       "decision_logs",
		Columns:    DecisionLogsColumns,
		PrimaryKey: []*schema.Column{DecisionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionLogsColumns[1], DecisionLogsColumns[23]},
			},
			{
				Name:    "decisionlog_tenant_id_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionLogsColumns[1], DecisionLogsColumns[2], DecisionLogsColumns[23]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "department_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "department_tenant_id_name",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[1], DepartmentsColumns[2]},
			},
		},
	}
	// FeatureFlagsColumns holds the columns for the "feature_flags" table.
	FeatureFlagsColumns = []*schema.Column{
		{Name: "flag_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FeatureFlagsTable holds the schema information for the "feature_flags" table.
	FeatureFlagsTable = &schema.Table{
		Name:       "feature_flags",
		Columns:    FeatureFlagsColumns,
		PrimaryKey: []*schema.Column{FeatureFlagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "featureflag_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{FeatureFlagsColumns[1], FeatureFlagsColumns[2]},
			},
		},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "why", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "first_step", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "achieved", "abandoned"}, Default: "active"},
		{Name: "target_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_tenant_id_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1], GoalsColumns[2], GoalsColumns[6]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "reference_type", Type: field.TypeString, Nullable: true},
		{Name: "reference_id", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insight_tenant_id_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[1], InsightsColumns[4], InsightsColumns[8]},
			},
			{
				Name:    "insight_tenant_id_resolved",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[1], InsightsColumns[7]},
			},
		},
	}
	// KnowledgeChunksColumns holds the columns for the "knowledge_chunks" table.
	KnowledgeChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"public", "internal", "confidential", "restricted"}, Default: "internal"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// KnowledgeChunksTable holds the schema information for the "knowledge_chunks" table.
	KnowledgeChunksTable = &schema.Table{
		Name:       "knowledge_chunks",
		Columns:    KnowledgeChunksColumns,
		PrimaryKey: []*schema.Column{KnowledgeChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgechunk_tenant_id_document_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeChunksColumns[1], KnowledgeChunksColumns[2]},
			},
		},
	}
	// PersonsColumns holds the columns for the "persons" table.
	PersonsColumns = []*schema.Column{
		{Name: "person_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "kana", Type: field.TypeString, Nullable: true},
		{Name: "relation", Type: field.TypeString, Nullable: true},
		{Name: "chat_account_id", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PersonsTable holds the schema information for the "persons" table.
	PersonsTable = &schema.Table{
		Name:       "persons",
		Columns:    PersonsColumns,
		PrimaryKey: []*schema.Column{PersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "person_tenant_id_name",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[1], PersonsColumns[2]},
			},
		},
	}
	// ScheduledJobsColumns holds the columns for the "scheduled_jobs" table.
	ScheduledJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "cron_expression", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "claimed", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledJobsTable holds the schema information for the "scheduled_jobs" table.
	ScheduledJobsTable = &schema.Table{
		Name:       "scheduled_jobs",
		Columns:    ScheduledJobsColumns,
		PrimaryKey: []*schema.Column{ScheduledJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledjob_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[6], ScheduledJobsColumns[4]},
			},
			{
				Name:    "scheduledjob_tenant_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[1], ScheduledJobsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "chat_task_id", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString},
		{Name: "assignee_user_id", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "done", "cancelled"}, Default: "open"},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_tenant_id_assignee_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4], TasksColumns[6]},
			},
			{
				Name:    "task_tenant_id_room_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[3], TasksColumns[6]},
			},
		},
	}
	// TenantConfigsColumns holds the columns for the "tenant_configs" table.
	TenantConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "operator_account_id", Type: field.TypeString},
		{Name: "admin_room_id", Type: field.TypeString},
		{Name: "admin_dm_room_id", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Tokyo"},
		{Name: "room_match_threshold", Type: field.TypeFloat64, Default: 0.8},
		{Name: "webhook_secret", Type: field.TypeString},
		{Name: "chat_api_token", Type: field.TypeString},
		{Name: "monetary_confirm_threshold", Type: field.TypeFloat64, Default: 100000},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantConfigsTable holds the schema information for the "tenant_configs" table.
	TenantConfigsTable = &schema.Table{
		Name:       "tenant_configs",
		Columns:    TenantConfigsColumns,
		PrimaryKey: []*schema.Column{TenantConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantconfig_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{TenantConfigsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "chat_account_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "role_level", Type: field.TypeInt, Default: 1},
		{Name: "department_id", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tenant_id_chat_account_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1], UsersColumns[2]},
			},
		},
	}
	// UserPreferencesColumns holds the columns for the "user_preferences" table.
	UserPreferencesColumns = []*schema.Column{
		{Name: "preference_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tone", Type: field.TypeString, Nullable: true},
		{Name: "locale", Type: field.TypeString, Default: "ja"},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserPreferencesTable holds the schema information for the "user_preferences" table.
	UserPreferencesTable = &schema.Table{
		Name:       "user_preferences",
		Columns:    UserPreferencesColumns,
		PrimaryKey: []*schema.Column{UserPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userpreference_tenant_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserPreferencesColumns[1], UserPreferencesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnnouncementsTable,
		AnnouncementExecutionsTable,
		AnnouncementPatternsTable,
		AuditLogsTable,
		CeoTeachingsTable,
		ConversationStatesTable,
		ConversationSummariesTable,
		ConversationTurnsTable,
		DecisionLogsTable,
		DepartmentsTable,
		FeatureFlagsTable,
		GoalsTable,
		InsightsTable,
		KnowledgeChunksTable,
		PersonsTable,
		ScheduledJobsTable,
		TasksTable,
		TenantConfigsTable,
		UsersTable,
		UserPreferencesTable,
	}
)

func init() {
	AnnouncementExecutionsTable.ForeignKeys[0].RefTable = AnnouncementsTable
}
