package listing

type Category string

const (
	CategoryCar   Category = "car"
	CategoryHeavy Category = "heavy"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryCar, CategoryHeavy:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

func (t Transmission) IsValid() bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}
