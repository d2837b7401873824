package entity

// CivilTime is the wall-clock minute in the target timezone that notification rules match against.
type CivilTime struct {
	DayOfWeek    int    `json:"day"`    // 0 = Sunday.
	Hour         int    `json:"hour"`   // 0-23.
	Minute       int    `json:"minute"` // 0-59.
	HHMM         string `json:"time"`   // Zero-padded "HH:MM".
	TotalMinutes int    `json:"-"`      // Hour*60 + Minute.
}
