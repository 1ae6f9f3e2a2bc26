package web

import (
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/user/internal/domain"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Ctime  int64  `json:"ctime"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:     u.Id,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role.String(),
		Status: u.Status.String(),
		Ctime:  u.Ctime.UnixMilli(),
	}
}

type SaveReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func (r SaveReq) toDomain() domain.User {
	return domain.User{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     auth.Role(r.Role),
		Status:   domain.Status(r.Status),
	}
}

type UserList struct {
	Users []Profile `json:"users"`
	Total int64     `json:"total"`
}
