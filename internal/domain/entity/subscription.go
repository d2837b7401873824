// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DefaultBriefingTime is the briefing time assigned when a user never configured one.
const DefaultBriefingTime = "08:00"

// SubscriptionRecord is the per-user bundle of push endpoint, children, schedules and briefing preferences.
type SubscriptionRecord struct {
	UserID           string           `json:"userId"`           // Opaque stable identifier, unique key of the record.
	Subscription     PushSubscription `json:"subscription"`     // Transport handle owned exclusively by this record.
	Children         []Child          `json:"children"`         // Ordered children list; IDs are unique within the record.
	Schedules        []ScheduleEntry  `json:"schedules"`        // Ordered weekly schedule entries.
	BriefingSettings BriefingSettings `json:"briefingSettings"` // Daily briefing preferences.
	UpdatedAt        time.Time        `json:"updatedAt"`        // Last-write timestamp, informational only.
}

// PushSubscription is the browser push subscription handed over by the client.
// For the FCM transport only Endpoint is used and carries the registration token.
type PushSubscription struct {
	Endpoint       string               `json:"endpoint" validate:"required"`
	ExpirationTime *int64               `json:"expirationTime,omitempty"`
	Keys           PushSubscriptionKeys `json:"keys"`
}

// PushSubscriptionKeys holds the client encryption material of a web push subscription.
type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// Child is a child tracked by the parent.
type Child struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScheduleEntry is one recurring weekly activity of a child.
type ScheduleEntry struct {
	ID                        string `json:"id"`                                  // Unique within the owning record.
	ChildID                   string `json:"childId"`                             // May reference a missing child.
	DayOfWeek                 int    `json:"dayOfWeek"`                           // 0 = Sunday ... 6 = Saturday.
	Title                     string `json:"title"`                               // Display text.
	StartTime                 string `json:"startTime"`                           // "HH:MM", 24-hour, zero-padded.
	EndTime                   string `json:"endTime"`                             // "HH:MM", 24-hour, zero-padded.
	NotifyMinutesBefore       int    `json:"notifyMinutesBefore,omitempty"`       // Zero means at start time.
	PickupNotifyMinutesBefore *int   `json:"pickupNotifyMinutesBefore,omitempty"` // Nil disables the pickup reminder.
	Supplies                  string `json:"supplies,omitempty"`                  // Appended to the start reminder when set.
}

// HasPickupReminder reports whether the pickup reminder is enabled for this entry.
// Presence of the field gates the reminder, zero included.
func (s *ScheduleEntry) HasPickupReminder() bool {
	return s.PickupNotifyMinutesBefore != nil
}

// BriefingSettings controls the daily digest notification.
type BriefingSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // "HH:MM", compared verbatim with the current minute.
	Days    []int  `json:"days"` // Weekdays 0-6 on which the briefing is sent.
}

// IncludesDay reports whether the briefing is configured for the given weekday.
func (b *BriefingSettings) IncludesDay(day int) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}

	return false
}

// DefaultBriefingSettings returns the settings applied to users that never configured a briefing.
func DefaultBriefingSettings() BriefingSettings {
	return BriefingSettings{
		Enabled: false,
		Time:    DefaultBriefingTime,
		Days:    []int{1, 2, 3, 4, 5},
	}
}

// ChildName resolves a child's display name, falling back to the given placeholder.
func (r *SubscriptionRecord) ChildName(childID, fallback string) string {
	for _, child := range r.Children {
		if child.ID == childID && child.Name != "" {
			return child.Name
		}
	}

	return fallback
}

// SchedulesOn returns the entries recurring on the given weekday, preserving order.
func (r *SubscriptionRecord) SchedulesOn(day int) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(r.Schedules))
	for _, entry := range r.Schedules {
		if entry.DayOfWeek == day {
			entries = append(entries, entry)
		}
	}

	return entries
}
