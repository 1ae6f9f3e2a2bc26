package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 503002, Msg: "参数错误"}
	NotFound         = ErrorCode{Code: 503003, Msg: "测试用例不存在"}
	ProjectNotFound  = ErrorCode{Code: 503004, Msg: "项目不存在"}
	PermissionDenied = ErrorCode{Code: 503005, Msg: "没有权限"}
	NotAssigned      = ErrorCode{Code: 503006, Msg: "没有被分配这个测试用例"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
