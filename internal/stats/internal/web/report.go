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
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
)

// utf8BOM Excel 靠它识别 UTF-8
const utf8BOM = "\ufeff"

var reportHeader = []string{
	"ID", "Hạng mục", "Tính năng", "Độ ưu tiên", "Nền tảng",
	"Số lần phải test", "Số lần đã test", "Passed", "Failed", "Trạng thái", "Ngày tạo",
}

// writeReport 没有用例的时候只输出表头
func writeReport(w io.Writer, cases []domain.CaseInfo, loc *time.Location) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, c := range cases {
		err := cw.Write([]string{
			strconv.FormatInt(c.Id, 10),
			c.HangMuc,
			c.TinhNang,
			c.Priority,
			c.Platform,
			strconv.FormatInt(c.SoLanPhaiTest, 10),
			strconv.FormatInt(c.Total, 10),
			strconv.FormatInt(c.Passed(), 10),
			strconv.FormatInt(c.Issues, 10),
			c.Coarse().Label(),
			c.Ctime.In(loc).Format(time.DateOnly),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func reportFilename(pid int64, now time.Time) string {
	return "project-" + strconv.FormatInt(pid, 10) + "-report-" + now.Format(time.DateOnly) + ".csv"
}
