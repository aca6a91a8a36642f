package domain

// DateLayout is the storage and wire format for calendar dates.
const DateLayout = "2006-01-02"

type PoolItemType string

const (
	PoolTask       PoolItemType = "task"
	PoolEvent      PoolItemType = "event"
	PoolAspiration PoolItemType = "aspiration"
)

// ValidPoolItemTypes is the canonical set of accepted pool item type strings.
var ValidPoolItemTypes = map[string]bool{
	"task": true, "event": true, "aspiration": true,
}

type PoolItemStatus string

const (
	PoolActive    PoolItemStatus = "active"
	PoolPaused    PoolItemStatus = "paused"
	PoolCompleted PoolItemStatus = "completed"
)

// ValidPoolItemStatuses is the canonical set of accepted pool item statuses.
var ValidPoolItemStatuses = map[string]bool{
	"active": true, "paused": true, "completed": true,
}

type Capacity string

const (
	CapacityLow    Capacity = "low"
	CapacityMedium Capacity = "medium"
	CapacityHigh   Capacity = "high"
)

// FactorLevel is the three-level ordinal used for the narrative capacity factors.
type FactorLevel string

const (
	FactorLow      FactorLevel = "low"
	FactorModerate FactorLevel = "moderate"
	FactorHigh     FactorLevel = "high"
)

type FeedbackRating string

const (
	FeedbackAboutRight FeedbackRating = "about_right"
	FeedbackTooMuch    FeedbackRating = "too_much"
	FeedbackOneArea    FeedbackRating = "one_area"
)

// ValidFeedbackRatings is the canonical set of accepted feedback ratings.
var ValidFeedbackRatings = map[string]bool{
	"about_right": true, "too_much": true, "one_area": true,
}

type EntryStatus string

const (
	EntryPending    EntryStatus = "pending"
	EntryInProgress EntryStatus = "in_progress"
	EntryCompleted  EntryStatus = "completed"
	EntrySkipped    EntryStatus = "skipped"
)

// ValidEntryStatuses is the canonical set of accepted schedule entry statuses.
var ValidEntryStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true, "skipped": true,
}

// Suggested order bounds. Order expresses sequence within the day, never importance.
const (
	OrderFirst   = 1
	OrderDefault = 3
	OrderLast    = 5
)
