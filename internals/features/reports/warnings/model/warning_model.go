package model

// Priority warning, urut dari paling mendesak.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
)

// Status penanganan warning.
const (
	StatusResolved   = "resolved"
	StatusInProgress = "in-progress"
	StatusUnresolved = "unresolved"
)

// Warning diturunkan ulang dari laporan setiap kali diambil, tidak disimpan.
type Warning struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReportID    string `json:"reportId"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
	DaysOverdue int    `json:"daysOverdue"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Details     string `json:"details"`
}

// Summary jumlah warning per prioritas.
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
}

// Rank dipakai untuk sorting (lebih besar = lebih mendesak).
func Rank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}
