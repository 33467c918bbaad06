package lifecycle

import "slices"

// Field names understood by ValidateFields.
const (
	FieldReason   = "reason"
	FieldLocation = "location"
)

// Edge is an ordered (from, to) pair of the status graph.
type Edge struct {
	From Status
	To   Status
}

// Policy is the extra evidence an edge demands before it may be committed.
// The zero Policy demands nothing.
type Policy struct {
	RequiresAdminRole bool
	RequiresComment   bool
	RequiredFields    []string
}

// Fields returns the effective required field names: RequiredFields in
// declared order, then "reason" when a comment is required and not already listed.
func (p Policy) Fields() []string {
	fields := slices.Clone(p.RequiredFields)
	if p.RequiresComment && !slices.Contains(fields, FieldReason) {
		fields = append(fields, FieldReason)
	}
	return fields
}

func defaultPolicies() map[Edge]Policy {
	commentOnly := Policy{RequiresComment: true}
	adminWithComment := Policy{RequiresAdminRole: true, RequiresComment: true}

	return map[Edge]Policy{
		{InAnalysis, Approved}:      {RequiresAdminRole: true},
		{InAnalysis, Rejected}:      commentOnly,
		{Rejected, Eliminated}:      adminWithComment,
		{InReturn, Eliminated}:      adminWithComment,
		{Cancelled, InStorage}:      adminWithComment,
		{InPreparation, InShipping}: {RequiredFields: []string{FieldLocation}},
		{InShipping, InReturn}:      commentOnly,

		{Received, Cancelled}:      commentOnly,
		{InAnalysis, Cancelled}:    commentOnly,
		{Approved, Cancelled}:      commentOnly,
		{InStorage, Cancelled}:     commentOnly,
		{InPreparation, Cancelled}: commentOnly,
	}
}
