// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/middleware"
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/stats"
	"github.com/ecodeclub/testhub/internal/testcase"
	"github.com/ecodeclub/testhub/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userModule *user.Module,
	prjModule *project.Module,
	tcModule *testcase.Module,
	statsModule *stats.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	allowed := econf.GetStringSlice("cors.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", "Content-Disposition"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range allowed {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "testhub").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userModule.Hdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	userModule.Hdl.PrivateRoutes(res.Engine)
	prjModule.Hdl.PrivateRoutes(res.Engine)
	tcModule.Hdl.PrivateRoutes(res.Engine)
	statsModule.Hdl.PrivateRoutes(res.Engine)

	// 下面的都只有管理员能访问
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(auth.RoleAdmin).Build())
	userModule.AdminHdl.PrivateRoutes(res.Engine)
	prjModule.AdminHandler.PrivateRoutes(res.Engine)
	tcModule.AdminHandler.PrivateRoutes(res.Engine)
	statsModule.Hdl.AdminRoutes(res.Engine)
	return res
}
