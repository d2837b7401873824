package schedule

import (
	"fmt"
	"strings"

	"danyowa/internal/domain/entity"
)

const (
	// DefaultChildName labels entries whose child is not in the record.
	DefaultChildName = "자녀"

	// DefaultIconURL is the notification icon used when none is configured.
	DefaultIconURL = "https://cdn-icons-png.flaticon.com/512/2693/2693507.png"

	// DefaultClickURL is where the client navigates when a notification is tapped.
	DefaultClickURL = "/"

	briefingTitle     = "🌅 오늘의 브리핑"
	briefingEmptyBody = "오늘 예정된 일정이 없습니다. 즐거운 하루 되세요!"
	timeNow           = "지금"
)

func briefingBody(record *entity.SubscriptionRecord, today []entity.ScheduleEntry) string {
	if len(today) == 0 {
		return briefingEmptyBody
	}

	lines := make([]string, 0, len(today))
	for _, entry := range today {
		lines = append(lines, fmt.Sprintf("%s: %s %s",
			record.ChildName(entry.ChildID, DefaultChildName),
			FormatClock(entry.StartTime),
			entry.Title,
		))
	}

	return fmt.Sprintf("오늘 %d개 일정이 있습니다.\n%s", len(today), strings.Join(lines, "\n"))
}

func startTitle(childName string) string {
	return fmt.Sprintf("🏃 %s 등원 알림", childName)
}

func startBody(entry *entity.ScheduleEntry) string {
	body := fmt.Sprintf("%s %s에 갈 시간입니다!", leadTime(entry.NotifyMinutesBefore), entry.Title)
	if entry.Supplies != "" {
		body += "\n준비물: " + entry.Supplies
	}

	return body
}

func pickupTitle(childName string) string {
	return fmt.Sprintf("🚗 %s 하원 알림", childName)
}

func pickupBody(entry *entity.ScheduleEntry, minutesBefore int) string {
	return fmt.Sprintf("%s %s이(가) 끝납니다. 데리러 가세요!", leadTime(minutesBefore), entry.Title)
}

// leadTime renders "N분 후" for a positive lead and "지금" otherwise.
func leadTime(minutes int) string {
	if minutes > 0 {
		return fmt.Sprintf("%d분 후", minutes)
	}

	return timeNow
}
