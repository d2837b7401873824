// Package entity contains the core business objects of the project.
package entity

// NotificationKind tags the rule that produced a notification.
type NotificationKind string

const (
	// NotificationKindBriefing is the daily digest of today's schedule.
	NotificationKindBriefing NotificationKind = "briefing"
	// NotificationKindStart reminds the parent an activity is about to begin.
	NotificationKindStart NotificationKind = "start"
	// NotificationKindPickup reminds the parent an activity is about to end.
	NotificationKindPickup NotificationKind = "pickup"
)

// PushMessage is the payload forwarded opaquely to the push transport.
type PushMessage struct {
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Icon  string           `json:"icon,omitempty"`
	Badge string           `json:"badge,omitempty"`
	Data  NotificationData `json:"data"`
}

// NotificationData is the structured data the service worker reads on display and click.
type NotificationData struct {
	Type       string `json:"type,omitempty"`       // Notification kind tag, also used as display tag.
	ScheduleID string `json:"scheduleId,omitempty"` // Set for start and pickup reminders.
	URL        string `json:"url"`                  // Client-side navigation target.
}

// ToMap flattens the data for transports that only carry string maps.
func (d NotificationData) ToMap() map[string]string {
	m := map[string]string{"url": d.URL}
	if d.Type != "" {
		m["type"] = d.Type
	}
	if d.ScheduleID != "" {
		m["scheduleId"] = d.ScheduleID
	}

	return m
}

// OutboundNotification is a due notification addressed to a single subscription.
type OutboundNotification struct {
	UserID       string           `json:"userId"`
	Subscription PushSubscription `json:"subscription"`
	Kind         NotificationKind `json:"kind"`
	ScheduleID   string           `json:"scheduleId,omitempty"`
	Message      PushMessage      `json:"message"`
}
