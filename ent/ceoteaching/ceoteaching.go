// Code generated by ent, DO NOT EDIT.

package ceoteaching

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ceoteaching type in the database.
	Label = "ceo_teaching"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "teaching_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCeoUserID holds the string denoting the ceo_user_id field in the database.
	FieldCeoUserID = "ceo_user_id"
	// FieldStatement holds the string denoting the statement field in the database.
	FieldStatement = "statement"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldSupersedesID holds the string denoting the supersedes_id field in the database.
	FieldSupersedesID = "supersedes_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ceoteaching in the database.
	Table = "ceo_teachings"
)

// Columns holds all SQL columns for ceoteaching fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCeoUserID,
	FieldStatement,
	FieldReasoning,
	FieldContext,
	FieldCategory,
	FieldPriority,
	FieldIsActive,
	FieldUsageCount,
	FieldValidationStatus,
	FieldSupersedesID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// CeoUserIDValidator is a validator for the "ceo_user_id" field. It is called by the builders before save.
	CeoUserIDValidator func(string) error
	// StatementValidator is a validator for the "statement" field. It is called by the builders before save.
	StatementValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryGeneral is the default value of the Category enum.
const DefaultCategory = CategoryGeneral

// Category values.
const (
	CategoryMission       Category = "mission"
	CategoryVision        Category = "vision"
	CategoryValues        Category = "values"
	CategoryChoiceTheory  Category = "choice_theory"
	CategorySdt           Category = "sdt"
	CategoryServant       Category = "servant"
	CategoryPsychSafety   Category = "psych_safety"
	CategorySales         Category = "sales"
	CategoryHr            Category = "hr"
	CategoryAccounting    Category = "accounting"
	CategoryGeneral       Category = "general"
	CategoryCulture       Category = "culture"
	CategoryCommunication Category = "communication"
	CategoryStaffGuidance Category = "staff_guidance"
	CategoryOther         Category = "other"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryMission, CategoryVision, CategoryValues, CategoryChoiceTheory, CategorySdt, CategoryServant, CategoryPsychSafety, CategorySales, CategoryHr, CategoryAccounting, CategoryGeneral, CategoryCulture, CategoryCommunication, CategoryStaffGuidance, CategoryOther:
		return nil
	default:
		return fmt.Errorf("ceoteaching: invalid enum value for category field: %q", c)
	}
}

// ValidationStatus defines the type for the "validation_status" enum field.
type ValidationStatus string

// ValidationStatusPending is the default value of the ValidationStatus enum.
const DefaultValidationStatus = ValidationStatusPending

// ValidationStatus values.
const (
	ValidationStatusPending      ValidationStatus = "pending"
	ValidationStatusVerified     ValidationStatus = "verified"
	ValidationStatusAlertPending ValidationStatus = "alert_pending"
	ValidationStatusOverridden   ValidationStatus = "overridden"
)

func (vs ValidationStatus) String() string {
	return string(vs)
}

// ValidationStatusValidator is a validator for the "validation_status" field enum values. It is called by the builders before save.
func ValidationStatusValidator(vs ValidationStatus) error {
	switch vs {
	case ValidationStatusPending, ValidationStatusVerified, ValidationStatusAlertPending, ValidationStatusOverridden:
		return nil
	default:
		return fmt.Errorf("ceoteaching: invalid enum value for validation_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the CeoTeaching queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCeoUserID orders the results by the ceo_user_id field.
func ByCeoUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCeoUserID, opts...).ToFunc()
}

// ByStatement orders the results by the statement field.
func ByStatement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatement, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// BySupersedesID orders the results by the supersedes_id field.
func BySupersedesID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersedesID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
