package ledger

// Weekdays lists the canonical lowercase day tokens, Monday first. It is the
// default day set for roster generation; the ledger itself may carry any keys.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// Dish is one dish line in a user's order: the dish name as the kitchen wrote
// it and how many servings were ordered. Count is always at least 1; a dish
// that was not ordered is simply absent.
type Dish struct {
	Name  string
	Count int
}

// UserOrders holds one user's orders for a day. Key is the raw user token
// from the source ("userN" or a bare integer, see the directory package).
type UserOrders struct {
	Key    string
	Dishes []Dish
}

// Day holds all orders placed on one day.
type Day struct {
	Name  string
	Users []UserOrders
}

// Ledger is the day -> user -> dish -> servings structure driving all
// reports. It preserves the key order of the source document at every level,
// which is why it is built from slices rather than maps: report tables
// iterate in source order.
type Ledger struct {
	Days []Day
}

// Day returns the orders for the named day. The second return is false when
// the day is absent from the ledger.
func (l *Ledger) Day(name string) (Day, bool) {
	for _, d := range l.Days {
		if d.Name == name {
			return d, true
		}
	}
	return Day{}, false
}

// DayNames returns the day keys in source order.
func (l *Ledger) DayNames() []string {
	names := make([]string, 0, len(l.Days))
	for _, d := range l.Days {
		names = append(names, d.Name)
	}
	return names
}
