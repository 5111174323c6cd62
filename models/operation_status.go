package models

// OperationStatus is the business state at a reference instant: open,
// closing within the hour, or closed. ClosingWithinHour is a refinement of
// open — narration and other logic still treat it as open.
type OperationStatus int

const (
	Open OperationStatus = iota
	ClosingWithinHour
	Closed
)

var operationStatusLabels = map[OperationStatus]string{
	Open:              "Open",
	ClosingWithinHour: "Closing within the hour",
	Closed:            "Closed",
}

// Display colors associated with each status, for the presentation layer.
var operationStatusColors = map[OperationStatus]string{
	Open:              "#34C759",
	ClosingWithinHour: "#FFCC00",
	Closed:            "#FF3B30",
}

// IsOpen reports whether the underlying open/closed fact is "open";
// ClosingWithinHour counts as open.
func (s OperationStatus) IsOpen() bool {
	return s == Open || s == ClosingWithinHour
}

// Color returns the hex display color for the status.
func (s OperationStatus) Color() string {
	return operationStatusColors[s]
}

func (s OperationStatus) String() string {
	return operationStatusLabels[s]
}
