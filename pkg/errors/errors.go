package errors

import (
	"errors"
	"fmt"
)

const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
	Conflict            = "conflict"

	BadRequestErrorCode     = 400
	NotFoundErrorCode       = 404
	ConflictErrorCode       = 409
	InternalServerErrorCode = 500
)

// AppError представляет собой стандартизированную структуру ошибки для API.
type AppError struct {
	Code         int    `json:"code"`    // HTTP статус код
	Message      string `json:"message"` // Сообщение для клиента
	Err          error  `json:"-"`       // Внутренняя ошибка, не для клиента
	IsUserFacing bool   `json:"-"`       // Флаг, указывающий, можно ли показывать `Err`
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(httpCode int, message string, err error, isUserFacing bool) *AppError {
	return &AppError{
		Code:         httpCode,
		Message:      message,
		Err:          err,
		IsUserFacing: isUserFacing,
	}
}

// Classify приводит ошибку домена к AppError для ответа API.
// Готовый AppError в цепочке возвращается как есть.
func Classify(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrMachineNotFound), errors.Is(err, ErrToolNotFound):
		return NewAppError(NotFoundErrorCode, NotFound, err, true)
	case errors.Is(err, ErrToolInUse):
		return NewAppError(ConflictErrorCode, Conflict, err, true)
	default:
		return NewAppError(InternalServerErrorCode, InternalServerError, err, false)
	}
}

var (
	// Ошибки парка станков
	ErrMachineNotFound = errors.New("machine not found")
	ErrDuplicateID     = errors.New("duplicate machine id")
	ErrUnknownKind     = errors.New("unknown machine kind")
	ErrInvalidLimits   = errors.New("invalid axis limits")
	ErrInvalidMachine  = errors.New("invalid machine definition")
	ErrEmptyFleet      = errors.New("fleet has no enabled machines")

	// Ошибки модели станка
	ErrToolNotFound = errors.New("tool not found")
	ErrToolInUse    = errors.New("tool is in use")
	ErrInvalidTick  = errors.New("invalid tick duration")
	ErrInvariant    = errors.New("state invariant violated")

	ErrTickerRunning = errors.New("ticker already running")
)
