package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/stats/internal/errs"
)

func systemError(err error) ginx.Result {
	return ginxx.SystemError(errs.SystemError.Code, errs.SystemError.Msg, err)
}

func invalidInput(ctx *ginx.Context) (ginx.Result, error) {
	return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
}
