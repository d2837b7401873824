package schedule

import (
	"danyowa/internal/domain/entity"
)

// EvaluatorOptions set the presentation fields shared by every produced notification.
type EvaluatorOptions struct {
	IconURL  string
	BadgeURL string
	ClickURL string
}

// Evaluator decides which notifications are due for a record at a given civil minute.
// It performs no I/O and holds no state between calls.
type Evaluator struct {
	iconURL  string
	badgeURL string
	clickURL string
}

// NewEvaluator creates an Evaluator, filling unset options with defaults.
func NewEvaluator(opts EvaluatorOptions) *Evaluator {
	if opts.IconURL == "" {
		opts.IconURL = DefaultIconURL
	}
	if opts.ClickURL == "" {
		opts.ClickURL = DefaultClickURL
	}

	return &Evaluator{
		iconURL:  opts.IconURL,
		badgeURL: opts.BadgeURL,
		clickURL: opts.ClickURL,
	}
}

// Evaluate returns every notification due for record at now. The briefing, start and pickup
// checks are independent and may all fire in the same minute. Matching is exact to the minute.
func (e *Evaluator) Evaluate(now entity.CivilTime, record *entity.SubscriptionRecord) []entity.OutboundNotification {
	if record == nil {
		return nil
	}

	var due []entity.OutboundNotification

	if briefing, ok := e.briefing(now, record); ok {
		due = append(due, briefing)
	}

	for idx := range record.Schedules {
		entry := &record.Schedules[idx]
		if entry.DayOfWeek != now.DayOfWeek {
			continue
		}

		if start, ok := e.startReminder(now, record, entry); ok {
			due = append(due, start)
		}
		if pickup, ok := e.pickupReminder(now, record, entry); ok {
			due = append(due, pickup)
		}
	}

	return due
}

func (e *Evaluator) briefing(now entity.CivilTime, record *entity.SubscriptionRecord) (entity.OutboundNotification, bool) {
	settings := record.BriefingSettings
	if !settings.Enabled || !settings.IncludesDay(now.DayOfWeek) || settings.Time != now.HHMM {
		return entity.OutboundNotification{}, false
	}

	body := briefingBody(record, record.SchedulesOn(now.DayOfWeek))

	return e.build(record, entity.NotificationKindBriefing, "", briefingTitle, body), true
}

func (e *Evaluator) startReminder(now entity.CivilTime, record *entity.SubscriptionRecord, entry *entity.ScheduleEntry) (entity.OutboundNotification, bool) {
	start, ok := ParseClock(entry.StartTime)
	if !ok || now.TotalMinutes != start-entry.NotifyMinutesBefore {
		return entity.OutboundNotification{}, false
	}

	childName := record.ChildName(entry.ChildID, DefaultChildName)

	return e.build(record, entity.NotificationKindStart, entry.ID, startTitle(childName), startBody(entry)), true
}

func (e *Evaluator) pickupReminder(now entity.CivilTime, record *entity.SubscriptionRecord, entry *entity.ScheduleEntry) (entity.OutboundNotification, bool) {
	if !entry.HasPickupReminder() {
		return entity.OutboundNotification{}, false
	}

	minutesBefore := *entry.PickupNotifyMinutesBefore
	end, ok := ParseClock(entry.EndTime)
	if !ok || now.TotalMinutes != end-minutesBefore {
		return entity.OutboundNotification{}, false
	}

	childName := record.ChildName(entry.ChildID, DefaultChildName)

	return e.build(record, entity.NotificationKindPickup, entry.ID, pickupTitle(childName), pickupBody(entry, minutesBefore)), true
}

func (e *Evaluator) build(record *entity.SubscriptionRecord, kind entity.NotificationKind, scheduleID, title, body string) entity.OutboundNotification {
	return entity.OutboundNotification{
		UserID:       record.UserID,
		Subscription: record.Subscription,
		Kind:         kind,
		ScheduleID:   scheduleID,
		Message: entity.PushMessage{
			Title: title,
			Body:  body,
			Icon:  e.iconURL,
			Badge: e.badgeURL,
			Data: entity.NotificationData{
				Type:       string(kind),
				ScheduleID: scheduleID,
				URL:        e.clickURL,
			},
		},
	}
}
