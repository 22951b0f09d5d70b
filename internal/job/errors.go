package job

import "errors"

// ErrNotFound 未知 id（任务/司机/车辆），区别于传输层或存储层故障。
var ErrNotFound = errors.New("not found")

// ValidationError 入参缺失或非法，透出 400。
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation 判断是否为入参校验错误。
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
