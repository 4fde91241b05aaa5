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
	"github.com/ecodeclub/mealhub/internal/organization/internal/domain"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
)

type Organization struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	OwnerID     int64   `json:"ownerId,omitempty"`
	Logo        string  `json:"logo,omitempty"`
	Description string  `json:"description,omitempty"`
	Address     Address `json:"address"`
	ContactInfo Contact `json:"contactInfo"`
	IsVerified  bool    `json:"isVerified"`
	Ctime       int64   `json:"ctime,omitempty"`
	Utime       int64   `json:"utime,omitempty"`
}

type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type CreateReq struct {
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	Description string  `json:"description"`
	Address     Address `json:"address"`
	ContactInfo Contact `json:"contactInfo"`
}

func (r CreateReq) toDomain() domain.Organization {
	return domain.Organization{
		Name:        r.Name,
		Logo:        r.Logo,
		Description: r.Description,
		Address: domain.Address{
			Street: r.Address.Street,
			City:   r.Address.City,
			State:  r.Address.State,
			Zip:    r.Address.Zip,
		},
		Contact: domain.Contact{
			Phone:   r.ContactInfo.Phone,
			Email:   r.ContactInfo.Email,
			Website: r.ContactInfo.Website,
		},
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListResp struct {
	Data []Organization    `json:"data"`
	Meta querybuilder.Meta `json:"meta"`
}

func newOrganization(org domain.Organization) Organization {
	return Organization{
		ID:          org.ID,
		Name:        org.Name,
		OwnerID:     org.OwnerID,
		Logo:        org.Logo,
		Description: org.Description,
		Address: Address{
			Street: org.Address.Street,
			City:   org.Address.City,
			State:  org.Address.State,
			Zip:    org.Address.Zip,
		},
		ContactInfo: Contact{
			Phone:   org.Contact.Phone,
			Email:   org.Contact.Email,
			Website: org.Contact.Website,
		},
		IsVerified: org.IsVerified,
		Ctime:      org.Ctime,
		Utime:      org.Utime,
	}
}
