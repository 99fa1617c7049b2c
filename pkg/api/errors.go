package api

// ErrorResponse представляет ошибку, возвращаемую сервером.
// Retryable сообщает клиенту, имеет ли смысл повторять запрос
// (true для временных сбоев, false для бизнес-отказов).
type ErrorResponse struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}
