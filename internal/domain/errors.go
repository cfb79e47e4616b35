package domain

// 业务错误分类：transport 层据此映射 HTTP 状态码
type ErrKind string

const (
	KindValidation   ErrKind = "validation"
	KindUnauthorized ErrKind = "unauthorized"
	KindForbidden    ErrKind = "forbidden"
	KindNotFound     ErrKind = "not_found"
	KindDuplicate    ErrKind = "duplicate"
	KindInternal     ErrKind = "internal"
)

type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // 底层原因（可空）
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) error        { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) error      { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) error         { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error          { return &Error{Kind: KindNotFound, Msg: msg} }
func Duplicate(msg string) error         { return &Error{Kind: KindDuplicate, Msg: msg} }
func Internal(msg string, e error) error { return &Error{Kind: KindInternal, Msg: msg, Err: e} }

// Is 判断错误是否属于某个分类；非 *Error 一律归为 internal
func Is(err error, kind ErrKind) bool { return KindOf(err) == kind }

func KindOf(err error) ErrKind {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
