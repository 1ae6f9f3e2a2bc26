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

//go:build e2e

package integration

import (
	"testing"

	testioc "github.com/ecodeclub/testhub/internal/test/ioc"
	"github.com/stretchr/testify/suite"
)

// 同样的用例跑在 MySQL 上，确认 SQL 在两种方言下结果一致
func TestStatsHandlerMySQL(t *testing.T) {
	suite.Run(t, &HandlerTestSuite{initDB: testioc.InitDB})
}
