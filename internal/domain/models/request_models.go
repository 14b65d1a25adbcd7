package models

// PowerRequest определяет тело запроса на включение/выключение станка.
// Отсутствующее поле On переключает питание в противоположное состояние.
type PowerRequest struct {
	On *bool `json:"on"`
}

// AlarmRequest определяет тело запроса на принудительную аварию.
type AlarmRequest struct {
	Alarm string `json:"alarm"`
}
