package dto

// 🔹 Update posisi playback; pointer supaya timestamp 0 tetap dianggap terisi
type HistoryUpdateRequest struct {
	LastTimestamp *int `json:"last_timestamp" validate:"required"`
}

// 🔹 Response entri history
type HistoryResponse struct {
	ContentID     int `json:"content_id"`
	LastTimestamp int `json:"last_timestamp"`
}
