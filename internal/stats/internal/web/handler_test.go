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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
	"github.com/ecodeclub/testhub/internal/stats/internal/service"
	svcmocks "github.com/ecodeclub/testhub/internal/stats/internal/service/mocks"
	"github.com/ecodeclub/testhub/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tester = auth.Principal{ID: 2, Role: auth.RoleTester, Email: "lan@testhub.com"}

func newServer(svc service.Service, loc *time.Location) *gin.Engine {
	server := gin.New()
	server.Use(test.WithPrincipal(func() auth.Principal {
		return tester
	}))
	hdl := NewHandler(svc, loc)
	hdl.PrivateRoutes(server)
	hdl.AdminRoutes(server)
	return server
}

func serve(t *testing.T, server *gin.Engine, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_ProjectIdQuery(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		mock     func(svc *svcmocks.MockService)
		wantCode int
	}{
		{
			name: "没有传项目",
			path: "/dashboard/stats",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Dashboard(gomock.Any(), tester, int64(0)).Return(domain.Dashboard{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "指定项目",
			path: "/stats/detailed?project_id=3",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Detailed(gomock.Any(), tester, int64(3)).Return(domain.Detailed{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "项目 ID 不是数字",
			path:     "/dashboard/stats?project_id=abc",
			mock:     func(svc *svcmocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "项目 ID 是负数",
			path:     "/stats/detailed?project_id=-1",
			mock:     func(svc *svcmocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)
			recorder := serve(t, newServer(svc, time.UTC), tc.path)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestHandler_Testers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Testers(gomock.Any()).Return(domain.Testers{}, errors.New("db down"))
	recorder := serve(t, newServer(svc, time.UTC), "/stats/testers")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)
	// UTC 的 15 号晚上在 +7 时区已经是 16 号
	svc.EXPECT().ExportProjectReport(gomock.Any(), tester, int64(5)).Return(domain.ProjectReport{
		ProjectId:   5,
		GeneratedAt: time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC),
	}, nil)
	loc := time.FixedZone("ICT", 7*3600)
	recorder := serve(t, newServer(svc, loc), "/export/project-report/5")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="project-5-report-2024-03-16.csv"`,
		recorder.Header().Get("Content-Disposition"))
}
