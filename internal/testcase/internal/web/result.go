package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/testcase/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func invalidInput(ctx *ginx.Context) (ginx.Result, error) {
	return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
}
