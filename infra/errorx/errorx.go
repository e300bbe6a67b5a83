package errorx

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"stanstats/infra/errorx/errCode"
)

// Error 带错误码的错误, cause 保留调用栈
type Error struct {
	Code  errCode.Code
	Msg   string
	cause error
}

func New(code errCode.Code, msg string) error {
	return &Error{Code: code, Msg: msg, cause: pkgerrors.New(msg)}
}

func Newf(code errCode.Code, format string, args ...any) error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 给底层错误加上错误码; err 为 nil 时返回 nil
func Wrap(err error, code errCode.Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Msg: msg, cause: pkgerrors.WithStack(err)}
}

func (e *Error) Error() string {
	if e.cause == nil || e.cause.Error() == e.Msg {
		return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// Is 同码即相等, 用于 errors.Is(err, errorx.New(code, ""))
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Format 支持 %+v 打印调用栈
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "[%s] %s\n%+v", e.Code, e.Msg, e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

// CodeOf 取错误链上第一个错误码, 非 errorx 错误返回 UNKNOWN
func CodeOf(err error) errCode.Code {
	if err == nil {
		return errCode.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}
