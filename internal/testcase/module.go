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
package testcase

import (
	"github.com/ecodeclub/testhub/internal/testcase/internal/domain"
	"github.com/ecodeclub/testhub/internal/testcase/internal/service"
	"github.com/ecodeclub/testhub/internal/testcase/internal/web"
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	AdminHandler *AdminHandler
}

type Service = service.Service
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type TestCase = domain.TestCase
type Execution = domain.Execution
type Priority = domain.Priority
type Platform = domain.Platform
