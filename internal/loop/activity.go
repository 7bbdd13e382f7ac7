package loop

// ActivitySink receives activity message transitions, e.g. a UI banner.
type ActivitySink interface {
	ShowActivity(msg string)
	HideActivity()
}

// Activity is the transient message shown after an interaction.
type Activity struct {
	Message string
	Visible bool

	hideAt   float64
	duration float64
	sink     ActivitySink
}

// NewActivity creates a hidden activity notifier. sink may be nil.
func NewActivity(duration float64, sink ActivitySink) *Activity {
	return &Activity{duration: duration, sink: sink}
}

// Show displays msg until now+duration. Showing a new message re-arms the
// hide deadline, so a pending hide never cuts a newer message short.
func (a *Activity) Show(msg string, now float64) {
	a.Message = msg
	a.Visible = true
	a.hideAt = now + a.duration
	if a.sink != nil {
		a.sink.ShowActivity(msg)
	}
}

// Expire hides the message once its deadline has passed.
func (a *Activity) Expire(now float64) {
	if !a.Visible || now < a.hideAt {
		return
	}
	a.Visible = false
	if a.sink != nil {
		a.sink.HideActivity()
	}
}

// HideAt returns the pending hide deadline.
func (a *Activity) HideAt() float64 {
	return a.hideAt
}
