// Code generated by ent, DO NOT EDIT.

package announcementpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldTenantID, v))
}

// NormalizedRequest applies equality check predicate on the "normalized_request" field. It's identical to NormalizedRequestEQ.
func NormalizedRequest(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldNormalizedRequest, v))
}

// RequestHash applies equality check predicate on the "request_hash" field. It's identical to RequestHashEQ.
func RequestHash(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldRequestHash, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContainsFold(FieldTenantID, v))
}

// NormalizedRequestEQ applies the EQ predicate on the "normalized_request" field.
func NormalizedRequestEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldNormalizedRequest, v))
}

// NormalizedRequestNEQ applies the NEQ predicate on the "normalized_request" field.
func NormalizedRequestNEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldNormalizedRequest, v))
}

// NormalizedRequestIn applies the In predicate on the "normalized_request" field.
func NormalizedRequestIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldNormalizedRequest, vs...))
}

// NormalizedRequestNotIn applies the NotIn predicate on the "normalized_request" field.
func NormalizedRequestNotIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldNormalizedRequest, vs...))
}

// NormalizedRequestGT applies the GT predicate on the "normalized_request" field.
func NormalizedRequestGT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldNormalizedRequest, v))
}

// NormalizedRequestGTE applies the GTE predicate on the "normalized_request" field.
func NormalizedRequestGTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldNormalizedRequest, v))
}

// NormalizedRequestLT applies the LT predicate on the "normalized_request" field.
func NormalizedRequestLT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldNormalizedRequest, v))
}

// NormalizedRequestLTE applies the LTE predicate on the "normalized_request" field.
func NormalizedRequestLTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldNormalizedRequest, v))
}

// NormalizedRequestContains applies the Contains predicate on the "normalized_request" field.
func NormalizedRequestContains(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContains(FieldNormalizedRequest, v))
}

// NormalizedRequestHasPrefix applies the HasPrefix predicate on the "normalized_request" field.
func NormalizedRequestHasPrefix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasPrefix(FieldNormalizedRequest, v))
}

// NormalizedRequestHasSuffix applies the HasSuffix predicate on the "normalized_request" field.
func NormalizedRequestHasSuffix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasSuffix(FieldNormalizedRequest, v))
}

// NormalizedRequestEqualFold applies the EqualFold predicate on the "normalized_request" field.
func NormalizedRequestEqualFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEqualFold(FieldNormalizedRequest, v))
}

// NormalizedRequestContainsFold applies the ContainsFold predicate on the "normalized_request" field.
func NormalizedRequestContainsFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContainsFold(FieldNormalizedRequest, v))
}

// RequestHashEQ applies the EQ predicate on the "request_hash" field.
func RequestHashEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldRequestHash, v))
}

// RequestHashNEQ applies the NEQ predicate on the "request_hash" field.
func RequestHashNEQ(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldRequestHash, v))
}

// RequestHashIn applies the In predicate on the "request_hash" field.
func RequestHashIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldRequestHash, vs...))
}

// RequestHashNotIn applies the NotIn predicate on the "request_hash" field.
func RequestHashNotIn(vs ...string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldRequestHash, vs...))
}

// RequestHashGT applies the GT predicate on the "request_hash" field.
func RequestHashGT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldRequestHash, v))
}

// RequestHashGTE applies the GTE predicate on the "request_hash" field.
func RequestHashGTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldRequestHash, v))
}

// RequestHashLT applies the LT predicate on the "request_hash" field.
func RequestHashLT(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldRequestHash, v))
}

// RequestHashLTE applies the LTE predicate on the "request_hash" field.
func RequestHashLTE(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldRequestHash, v))
}

// RequestHashContains applies the Contains predicate on the "request_hash" field.
func RequestHashContains(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContains(FieldRequestHash, v))
}

// RequestHashHasPrefix applies the HasPrefix predicate on the "request_hash" field.
func RequestHashHasPrefix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasPrefix(FieldRequestHash, v))
}

// RequestHashHasSuffix applies the HasSuffix predicate on the "request_hash" field.
func RequestHashHasSuffix(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldHasSuffix(FieldRequestHash, v))
}

// RequestHashEqualFold applies the EqualFold predicate on the "request_hash" field.
func RequestHashEqualFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEqualFold(FieldRequestHash, v))
}

// RequestHashContainsFold applies the ContainsFold predicate on the "request_hash" field.
func RequestHashContainsFold(v string) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldContainsFold(FieldRequestHash, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldOccurrenceCount, v))
}

// RequesterIdsIsNil applies the IsNil predicate on the "requester_ids" field.
func RequesterIdsIsNil() predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIsNull(FieldRequesterIds))
}

// RequesterIdsNotNil applies the NotNil predicate on the "requester_ids" field.
func RequesterIdsNotNil() predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotNull(FieldRequesterIds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldStatus, vs...))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.FieldLTE(FieldLastSeenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnnouncementPattern) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnnouncementPattern) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnnouncementPattern) predicate.AnnouncementPattern {
	return predicate.AnnouncementPattern(sql.NotPredicates(p))
}
