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
	"context"
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitUserModule 启动的时候确保配置里面的管理员账号存在
func InitUserModule(db *egorm.Component) *user.Module {
	type AdminConfig struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	}
	var cfg AdminConfig
	err := econf.UnmarshalKey("admin", &cfg)
	if err != nil {
		panic(err)
	}
	m := user.InitModule(db)
	if cfg.Email == "" || cfg.Password == "" {
		elog.DefaultLogger.Warn("没有配置初始管理员")
		return m
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = m.Svc.EnsureAdmin(ctx, user.User{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: cfg.Password,
		Role:     auth.RoleAdmin,
	})
	if err != nil {
		panic(err)
	}
	return m
}
