package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	Pothole        IssueCategory = "Pothole"
	Waste          IssueCategory = "Waste Management"
	Streetlight    IssueCategory = "Streetlight Outage"
	BrokenPavement IssueCategory = "Broken Pavement"
	WaterLogging   IssueCategory = "Water Logging"
	IllegalParking IssueCategory = "Illegal Parking"
	DamagedSignage IssueCategory = "Damaged Signage"
)

// IssueCategories lists every valid category, in display order.
var IssueCategories = []IssueCategory{
	Pothole, Waste, Streetlight, BrokenPavement,
	WaterLogging, IllegalParking, DamagedSignage,
}

// ValidCategory reports whether s is a known category.
func ValidCategory(s string) bool {
	for _, c := range IssueCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted    IssueStatus = "Submitted"
	Acknowledged IssueStatus = "Acknowledged"
	InProgress   IssueStatus = "In Progress"
	Resolved     IssueStatus = "Resolved"
)

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Submitted, Acknowledged, InProgress, Resolved:
		return true
	}
	return false
}

// Verification is the admin's review state for an issue. Unlike a
// plain bool it distinguishes "never reviewed" from "reviewed and
// rejected", which makes the one-token-per-issue rule a total check.
type Verification string

const (
	Unreviewed Verification = "Unreviewed"
	Verified   Verification = "Verified"
	Invalid    Verification = "Invalid"
)

// Engagement holds the aggregate reaction counts for an issue. The
// counts come from external engagement events and are stored as given.
type Engagement struct {
	Likes    int `bson:"likes" json:"likes"`
	Comments int `bson:"comments" json:"comments"`
	Shares   int `bson:"shares" json:"shares"`
}

// Priority score bounds. Scores outside this range are engine schema
// violations and are never stored.
const (
	MinPriority = 0
	MaxPriority = 100
)

// DefaultSeedPriority is stored when an issue is created while the
// priority engine is unavailable.
const DefaultSeedPriority = 50

// Issue represents a civic issue reported by a user
type Issue struct {
	ID           string        `bson:"_id" json:"id"`
	UserID       string        `bson:"userId" json:"userId"`
	Category     IssueCategory `bson:"category" json:"category"`
	Location     string        `bson:"location" json:"location"`
	Text         string        `bson:"text" json:"text"`
	Engagement   Engagement    `bson:"engagement" json:"engagement"`
	Status       IssueStatus   `bson:"status" json:"status"`
	Priority     int           `bson:"priority" json:"priority"`
	Department   Department    `bson:"department,omitempty" json:"department,omitempty"`
	Verification Verification  `bson:"verification" json:"verification"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
