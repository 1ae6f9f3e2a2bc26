package errs

var (
	SystemError   = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput  = ErrorCode{Code: 501002, Msg: "参数错误"}
	LoginFailed   = ErrorCode{Code: 501003, Msg: "邮箱或者密码错误"}
	UserInactive  = ErrorCode{Code: 501004, Msg: "账号已停用"}
	DuplicateUser = ErrorCode{Code: 501005, Msg: "邮箱已经被使用"}
	UserNotFound  = ErrorCode{Code: 501006, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
