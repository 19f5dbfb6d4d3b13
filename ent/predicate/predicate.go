// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Announcement is the predicate function for announcement builders.
type Announcement func(*sql.Selector)

// AnnouncementExecution is the predicate function for announcementexecution builders.
type AnnouncementExecution func(*sql.Selector)

// AnnouncementPattern is the predicate function for announcementpattern builders.
type AnnouncementPattern func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CeoTeaching is the predicate function for ceoteaching builders.
type CeoTeaching func(*sql.Selector)

// ConversationState is the predicate function for conversationstate builders.
type ConversationState func(*sql.Selector)

// ConversationSummary is the predicate function for conversationsummary builders.
type ConversationSummary func(*sql.Selector)

// ConversationTurn is the predicate function for conversationturn builders.
type ConversationTurn func(*sql.Selector)

// DecisionLog is the predicate function for decisionlog builders.
type DecisionLog func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// FeatureFlag is the predicate function for featureflag builders.
type FeatureFlag func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// KnowledgeChunk is the predicate function for knowledgechunk builders.
type KnowledgeChunk func(*sql.Selector)

// Person is the predicate function for person builders.
type Person func(*sql.Selector)

// ScheduledJob is the predicate function for scheduledjob builders.
type ScheduledJob func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TenantConfig is the predicate function for tenantconfig builders.
type TenantConfig func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserPreference is the predicate function for userpreference builders.
type UserPreference func(*sql.Selector)
