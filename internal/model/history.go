package model

// DefaultHistoryLimit is the number of scans requested by the history view.
const DefaultHistoryLimit = 20

// HistoryItem is one past scan, as returned by the history endpoint.
type HistoryItem struct {
	Timestamp      Timestamp `json:"timestamp"`
	ImagePath      string    `json:"image_path"`
	PredictedClass string    `json:"predicted_class"`
	ID             int64     `json:"id,omitempty"`
	Confidence     float64   `json:"confidence"`
}

// Category returns the predicted class as a Category.
func (h HistoryItem) Category() Category {
	return ParseCategory(h.PredictedClass)
}
