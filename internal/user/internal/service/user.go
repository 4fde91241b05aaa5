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

package service

import (
	"context"

	"github.com/ecodeclub/mealhub/internal/user/internal/domain"
	"github.com/ecodeclub/mealhub/internal/user/internal/repository"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrUserDuplicate = repository.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Create 注册和登录不在这里，这个方法给种子数据和管理后台用
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Create(ctx context.Context, u domain.User) (int64, error) {
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	return svc.repo.Create(ctx, u)
}

func (svc *userService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return svc.repo.FindByEmail(ctx, email)
}

func (svc *userService) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		res[u.ID] = u
	}
	return res, nil
}
