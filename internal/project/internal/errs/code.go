package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 502002, Msg: "参数错误"}
	NotFound         = ErrorCode{Code: 502003, Msg: "项目不存在"}
	PermissionDenied = ErrorCode{Code: 502004, Msg: "没有访问该项目的权限"}
	ProjectInUse     = ErrorCode{Code: 502005, Msg: "项目下还有测试用例"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
