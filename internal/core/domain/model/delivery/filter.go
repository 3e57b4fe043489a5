package delivery

// View selects one of the operator's top tabs.
type View int

const (
	// ViewAll shows every delivery.
	ViewAll View = iota

	// ViewInProgress shows deliveries that are not settled yet.
	ViewInProgress

	// ViewSettled shows settled deliveries only.
	ViewSettled
)

// ParseView accepts "", "all", "in-progress" and "settled".
func ParseView(s string) (View, bool) {
	switch s {
	case "", "all":
		return ViewAll, true
	case "in-progress":
		return ViewInProgress, true
	case "settled":
		return ViewSettled, true
	default:
		return ViewAll, false
	}
}

// Includes reports whether a delivery in status s belongs to the view.
func (v View) Includes(s Status) bool {
	switch v {
	case ViewInProgress:
		return s != StatusSettled
	case ViewSettled:
		return s == StatusSettled
	default:
		return true
	}
}

// FilterByStatus returns the deliveries in status s, in their original order.
func FilterByStatus(deliveries []*Delivery, s Status) []*Delivery {
	out := make([]*Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Status() == s {
			out = append(out, d)
		}
	}
	return out
}

// FilterByView returns the deliveries belonging to v, in their original order.
func FilterByView(deliveries []*Delivery, v View) []*Delivery {
	out := make([]*Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if v.Includes(d.Status()) {
			out = append(out, d)
		}
	}
	return out
}
