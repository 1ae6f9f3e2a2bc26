package errs

var (
	SystemError      = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 504002, Msg: "参数错误"}
	TestCaseNotFound = ErrorCode{Code: 504003, Msg: "测试用例不存在"}
	PermissionDenied = ErrorCode{Code: 504004, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
