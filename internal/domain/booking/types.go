package booking

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BlocksSlot reports whether a reservation in this status occupies its
// time range for conflict purposes. Cancelled and completed reservations
// are inert.
func (s Status) BlocksSlot() bool {
	return s == StatusRequested || s == StatusConfirmed
}

// Kind distinguishes self-service online bookings from staff-entered ones.
type Kind string

const (
	KindOnline Kind = "online"
	KindManual Kind = "manual"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindOnline, KindManual:
		return true
	default:
		return false
	}
}
