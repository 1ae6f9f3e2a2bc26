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
package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Run("空项目只有表头", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, nil, time.UTC))
		assert.Equal(t, "\ufeffID,Hạng mục,Tính năng,Độ ưu tiên,Nền tảng,Số lần phải test,"+
			"Số lần đã test,Passed,Failed,Trạng thái,Ngày tạo\n", buf.String())
	})

	t.Run("用例", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeReport(&buf, []domain.CaseInfo{
			{
				Id:            3,
				HangMuc:       "Thanh toán",
				TinhNang:      "Quét mã, QR",
				Priority:      "cao",
				Platform:      "app",
				SoLanPhaiTest: 3,
				Total:         2,
				Issues:        1,
				Ctime:         time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
			},
		}, time.FixedZone("ICT", 7*3600))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "3,Thanh toán,\"Quét mã, QR\",cao,app,3,2,1,1,Đang test,2024-03-16", lines[1])
	})
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "project-12-report-2024-03-15.csv",
		reportFilename(12, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)))
}
