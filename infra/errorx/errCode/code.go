package errCode

// 错误码
type Code int

const (
	OK Code = iota
	EMPTY_VALUE
	INVALID_VALUE
	PARAM_MISMATCH // 同一参数的chain名字不一致
	PARSE_FAILED
	IO_FAILED
	UNKNOWN
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case PARAM_MISMATCH:
		return "PARAM_MISMATCH"
	case PARSE_FAILED:
		return "PARSE_FAILED"
	case IO_FAILED:
		return "IO_FAILED"
	default:
		return "UNKNOWN"
	}
}
