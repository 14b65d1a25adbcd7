package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"not_found"`
	} `json:"error"`
}

// GetMachinesResponse представляет ответ со списком станков парка.
type GetMachinesResponse struct {
	Status   string            `json:"status" example:"ok"`
	Count    int               `json:"count" example:"6"`
	Machines []MachineSnapshot `json:"machines"`
}

// GetMachineResponse представляет ответ с состоянием одного станка.
type GetMachineResponse struct {
	Status  string          `json:"status" example:"ok"`
	Machine MachineSnapshot `json:"machine"`
}

// GetAlarmsResponse представляет ответ со списком активных аварий.
type GetAlarmsResponse struct {
	Status string        `json:"status" example:"ok"`
	Alarms []ActiveAlarm `json:"alarms"`
}

// HealthResponse представляет ответ проверки состояния сервиса.
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	Machines      int    `json:"machines" example:"6"`
	TickerRunning bool   `json:"ticker_running" example:"true"`
	Subscribers   int    `json:"subscribers" example:"1"`
}
