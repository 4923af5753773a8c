// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package taiga

// Project is the subset of Taiga's project resource that matters for
// resolving and labelling a timeline. The API returns much more, the
// rest is ignored during decoding.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CreatedDate string `json:"created_date"`
	IsPrivate   bool   `json:"is_private"`
	IAmAdmin    bool   `json:"i_am_admin"`
	IAmMember   bool   `json:"i_am_member"`
	IAmOwner    bool   `json:"i_am_owner"`
}
