package model

// Status backend (Laravel).
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusSelesai    = "Selesai"
)

// Tag status di sisi UI.
const (
	UIStatusNew        = "new"
	UIStatusInProgress = "inProgress"
	UIStatusArchived   = "archived"
)

var backendToUI = map[string]string{
	StatusPending:    UIStatusNew,
	StatusInProgress: UIStatusInProgress,
	StatusSelesai:    UIStatusArchived,
}

var uiToBackend = map[string]string{
	UIStatusNew:        StatusPending,
	UIStatusInProgress: StatusInProgress,
	UIStatusArchived:   StatusSelesai,
}

// ToUI memetakan status backend ke tag UI. Nilai tak dikenal → "new".
func ToUI(status string) string {
	if s, ok := backendToUI[status]; ok {
		return s
	}
	return UIStatusNew
}

// ToBackend memetakan tag UI ke status backend. Nilai tak dikenal → "Pending".
func ToBackend(ui string) string {
	if s, ok := uiToBackend[ui]; ok {
		return s
	}
	return StatusPending
}

// IsKnownStatus true untuk tiga status backend yang dikenal.
func IsKnownStatus(status string) bool {
	_, ok := backendToUI[status]
	return ok
}
