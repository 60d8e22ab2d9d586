package constants

// InsightType identifies which extractor produced an insight payload.
type InsightType string

// Stable values (store these exact strings in DB).
const (
	InsightTypeNutrient        InsightType = "nutrient"         // value extraction envelopes
	InsightTypeNutrientMention InsightType = "nutrient_mention" // mention-only envelopes
)

// InsightTypes holds the allowed values for the type field in product_insight.
var InsightTypes = []string{
	string(InsightTypeNutrient),
	string(InsightTypeNutrientMention),
}

// ReviewStatus is the workflow state of a stored insight.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "PENDING"  // awaiting human review
	StatusAccepted ReviewStatus = "ACCEPTED" // confirmed by a reviewer
	StatusRejected ReviewStatus = "REJECTED" // dismissed by a reviewer
)

// ReviewStatuses holds the allowed values for the status field in product_insight.
var ReviewStatuses = []string{
	string(StatusPending),
	string(StatusAccepted),
	string(StatusRejected),
}
