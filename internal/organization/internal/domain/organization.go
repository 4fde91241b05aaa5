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

package domain

type Organization struct {
	ID          int64
	Name        string
	OwnerID     int64
	Logo        string
	Description string
	Address     Address
	Contact     Contact
	// 管理员审核通过之后才能上架餐品
	IsVerified bool
	Ctime      int64
	Utime      int64
}

type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

type Contact struct {
	Phone   string
	Email   string
	Website string
}
