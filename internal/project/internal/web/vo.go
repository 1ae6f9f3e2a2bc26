package web

import (
	"github.com/ecodeclub/testhub/internal/project/internal/domain"
)

type Project struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Ctime       int64  `json:"ctime"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		Ctime:       p.Ctime.UnixMilli(),
	}
}

type ProjectList struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
}

type SaveReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AccessReq struct {
	UserIds []int64 `json:"user_ids"`
}

type Member struct {
	Uid   int64 `json:"uid"`
	Ctime int64 `json:"ctime"`
}
