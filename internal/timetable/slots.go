package timetable

// Slot is one unit on the grid's vertical time axis, shared by every
// staff column of a render.
type Slot struct {
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Label     string `json:"label"`
	AfterWork bool   `json:"after_work"`
}

// Slots generates the time axis from StartHour:00 through EndHour:00
// inclusive at StepMinutes. Slots at or past WorkEndHour are flagged
// after-work so the overtime region renders differently. Deterministic
// and side-effect free, safe to memoize per configuration.
func Slots(cfg GridConfig) []Slot {
	cfg = cfg.withDefaults()

	var out []Slot
	for m := cfg.StartHour * 60; m <= cfg.EndHour*60; m += cfg.StepMinutes {
		out = append(out, Slot{
			Hour:      m / 60,
			Minute:    m % 60,
			Label:     ToTimeString(m),
			AfterWork: m/60 >= cfg.WorkEndHour,
		})
	}
	return out
}
