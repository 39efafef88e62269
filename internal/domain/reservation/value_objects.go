package reservation

import (
	"strings"
	"time"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/dateutil"
)

const day = 24 * time.Hour

// DateRange is the half-open calendar interval [start, end)
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = dateutil.Truncate(start), dateutil.Truncate(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps treats ranges that only touch at a boundary as disjoint
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

// Days is the number of billable days, never less than one
func (r DateRange) Days() int {
	d := r.end.Sub(r.start)
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	if n < 1 {
		return 1
	}
	return n
}

func (r DateRange) String() string {
	return "[" + dateutil.Format(r.start) + "," + dateutil.Format(r.end) + ")"
}

type Contact struct {
	name  user.FullName
	phone user.Phone
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	p, err := user.NewPhone(phone)
	if err != nil {
		return Contact{}, err
	}
	return Contact{
		name:  user.NewFullName(name),
		phone: p,
		email: strings.TrimSpace(email),
	}, nil
}

func (c Contact) Name() user.FullName { return c.name }
func (c Contact) Phone() string       { return c.phone.Value() }
func (c Contact) Email() string       { return c.email }

type Delivery struct {
	requested bool
	address   string
}

// NewDelivery drops the address when delivery was not asked for
func NewDelivery(requested bool, address string) Delivery {
	if !requested {
		return Delivery{}
	}
	return Delivery{requested: true, address: strings.TrimSpace(address)}
}

func (d Delivery) Requested() bool { return d.requested }
func (d Delivery) Address() string { return d.address }
