package pending_deadline

import "time"

// Перевозка без назначенного водителя живет трое суток, дальше протухает.
const pendingTTL = 72 * time.Hour

type PendingDeadlineFactory struct{}

func New() *PendingDeadlineFactory {
	return &PendingDeadlineFactory{}
}

func (f *PendingDeadlineFactory) CalculateDeadline(baseTime time.Time) time.Time {
	return baseTime.Add(pendingTTL)
}
