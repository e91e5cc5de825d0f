package models

// Category is one of the six structural roles a node kind plays in an
// open-graph workflow.
type Category string

const (
	CategorySource     Category = "source"
	CategoryProcessing Category = "processing"
	CategoryDecision   Category = "decision"
	CategoryAction     Category = "action"
	CategoryDelay      Category = "delay"
	CategoryEnd        Category = "end"
)

// categoryMembers is the single source of truth for the taxonomy. Both rule
// engines consume it through CategoryOf; nothing redefines it locally.
var categoryMembers = map[Category][]NodeKind{
	CategorySource: {
		NodeKindWhatsApp,
		NodeKindLandingPage,
		NodeKindFacebook,
		NodeKindInstagram,
		NodeKindTikTok,
		NodeKindEmailCampaign,
		NodeKindManualEntry,
	},
	CategoryProcessing: {
		NodeKindLeadClassifier,
		NodeKindLeadEnricher,
		NodeKindSpamDetector,
		NodeKindLeadScoreCalculator,
	},
	CategoryDecision: {
		NodeKindIf,
		NodeKindSwitch,
		NodeKindRuleEngine,
	},
	CategoryAction: {
		NodeKindSendMessage,
		NodeKindSendEmail,
		NodeKindCreateTask,
		NodeKindAssignToUser,
		NodeKindPushToCRM,
	},
	CategoryDelay: {
		NodeKindWaitMs,
		NodeKindWaitUntil,
		NodeKindWaitForEvent,
	},
	CategoryEnd: {
		NodeKindSuccessEnd,
		NodeKindErrorEnd,
	},
}

var categoryByKind = func() map[NodeKind]Category {
	index := make(map[NodeKind]Category)

	for category, kinds := range categoryMembers {
		for _, kind := range kinds {
			index[kind] = category
		}
	}

	return index
}()

// CategoryOf returns the structural category of a node kind. Unrecognized
// kinds return ok=false; callers treat that as a soft default, never a
// failure.
func CategoryOf(kind NodeKind) (Category, bool) {
	category, ok := categoryByKind[kind]

	return category, ok
}

// KindsByCategory returns a copy of the member kinds of a category.
func KindsByCategory(category Category) []NodeKind {
	members := categoryMembers[category]
	kinds := make([]NodeKind, len(members))
	copy(kinds, members)

	return kinds
}

// AllKinds returns every kind in the open-graph taxonomy, grouped by
// category in a stable order.
func AllKinds() []NodeKind {
	ordered := []Category{
		CategorySource,
		CategoryProcessing,
		CategoryDecision,
		CategoryAction,
		CategoryDelay,
		CategoryEnd,
	}

	var kinds []NodeKind
	for _, category := range ordered {
		kinds = append(kinds, categoryMembers[category]...)
	}

	return kinds
}
