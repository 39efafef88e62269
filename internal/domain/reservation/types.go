package reservation

type Status string

const (
	StatusRequested   Status = "requested"
	StatusQuoteIssued Status = "quote_issued"
	StatusPaid        Status = "paid"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

var allStatuses = []Status{
	StatusRequested,
	StatusQuoteIssued,
	StatusPaid,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// blockingStatuses hold the listing for their date range
var blockingStatuses = []Status{
	StatusRequested,
	StatusQuoteIssued,
	StatusPaid,
	StatusConfirmed,
}

var transitions = map[Status][]Status{
	StatusRequested:   {StatusConfirmed, StatusQuoteIssued, StatusCancelled},
	StatusQuoteIssued: {StatusPaid, StatusCancelled},
	StatusConfirmed:   {StatusPaid, StatusCancelled},
	StatusPaid:        {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) IsBlocking() bool {
	for _, v := range blockingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func AllStatuses() []Status {
	return append([]Status(nil), allStatuses...)
}

func BlockingStatuses() []Status {
	return append([]Status(nil), blockingStatuses...)
}

// BlockingStatusStrings is the blocking set in the form SQL queries take
func BlockingStatusStrings() []string {
	out := make([]string, len(blockingStatuses))
	for i, s := range blockingStatuses {
		out[i] = string(s)
	}
	return out
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
