package apperror

import "fmt"

// AppError adalah error domain yang sudah membawa kode dan status HTTP,
// sehingga layer handler tinggal merender tanpa menebak-nebak.
type AppError struct {
	Code       string // kode stabil untuk klien (mis. INVALID_INPUT)
	Message    string // pesan yang aman ditampilkan ke user
	HTTPStatus int
	Err        error // error asal, opsional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap membuat errors.Is/As tetap bisa menembus ke error asal.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New membuat AppError tanpa membungkus error lain.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap membungkus error yang sudah ada menjadi AppError.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
