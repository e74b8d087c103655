// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"time"

	"github.com/olegiv/aqardesk/internal/form"
	"github.com/olegiv/aqardesk/internal/listing"
	"github.com/olegiv/aqardesk/internal/model"
)

// Filter names double as query-string keys, so they stay stable for
// bookmarked list URLs. Arabic description fields filter literally;
// Latin fields fold case. The "q" filter is the global search box,
// OR'd across the entity's visible text columns.

func (h *Handler) categoryScreen() bilingualScreen[model.Category] {
	descAR := func(c model.Category) string { return c.DescAR }
	descEN := func(c model.Category) string { return c.DescEN }

	return bilingualScreen[model.Category]{
		screen: screen[model.Category]{
			entity:   "category",
			title:    "Categories",
			active:   "categories",
			path:     "/categories",
			template: "admin/categories",
			cache:    h.caches.Categories,
			filters: map[string]listing.Filter[model.Category]{
				"descAR": listing.Literal(descAR),
				"descEN": listing.Text(descEN),
				"q":      listing.Any(listing.Literal(descAR), listing.Text(descEN)),
			},
			id:         func(c model.Category) int64 { return c.ID },
			label:      descEN,
			dependents: model.Category.UnitCount,
			delete:     h.api.DeleteCategory,
		},
		formTemplate: "admin/category_form",
		seed: func(c model.Category) form.Bilingual {
			return form.Bilingual{DescAR: c.DescAR, DescEN: c.DescEN}
		},
		create: h.api.CreateCategory,
		update: h.api.UpdateCategory,
	}
}

func (h *Handler) locationScreen() bilingualScreen[model.Location] {
	descAR := func(l model.Location) string { return l.DescAR }
	descEN := func(l model.Location) string { return l.DescEN }

	return bilingualScreen[model.Location]{
		screen: screen[model.Location]{
			entity:   "location",
			title:    "Locations",
			active:   "locations",
			path:     "/locations",
			template: "admin/locations",
			cache:    h.caches.Locations,
			filters: map[string]listing.Filter[model.Location]{
				"descAR": listing.Literal(descAR),
				"descEN": listing.Text(descEN),
				"q":      listing.Any(listing.Literal(descAR), listing.Text(descEN)),
			},
			id:     func(l model.Location) int64 { return l.ID },
			label:  descEN,
			delete: h.api.DeleteLocation,
		},
		formTemplate: "admin/location_form",
		seed: func(l model.Location) form.Bilingual {
			return form.Bilingual{DescAR: l.DescAR, DescEN: l.DescEN}
		},
		create: h.api.CreateLocation,
		update: h.api.UpdateLocation,
	}
}

func (h *Handler) developerScreen() bilingualScreen[model.Developer] {
	descAR := func(d model.Developer) string { return d.DescAR }
	descEN := func(d model.Developer) string { return d.DescEN }

	return bilingualScreen[model.Developer]{
		screen: screen[model.Developer]{
			entity:   "developer",
			title:    "Developers",
			active:   "developers",
			path:     "/developers",
			template: "admin/developers",
			cache:    h.caches.Developers,
			filters: map[string]listing.Filter[model.Developer]{
				"descAR": listing.Literal(descAR),
				"descEN": listing.Text(descEN),
				"q":      listing.Any(listing.Literal(descAR), listing.Text(descEN)),
			},
			id:         func(d model.Developer) int64 { return d.ID },
			label:      descEN,
			dependents: model.Developer.ProjectCount,
			delete:     h.api.DeleteDeveloper,
		},
		formTemplate: "admin/developer_form",
		seed: func(d model.Developer) form.Bilingual {
			return form.Bilingual{DescAR: d.DescAR, DescEN: d.DescEN}
		},
		create: h.api.CreateDeveloper,
		update: h.api.UpdateDeveloper,
	}
}

func (h *Handler) finishingScreen() bilingualScreen[model.Finishing] {
	descAR := func(f model.Finishing) string { return f.DescAR }
	descEN := func(f model.Finishing) string { return f.DescEN }

	return bilingualScreen[model.Finishing]{
		screen: screen[model.Finishing]{
			entity:   "finishing status",
			title:    "Finishing Statuses",
			active:   "finishings",
			path:     "/finishings",
			template: "admin/finishings",
			cache:    h.caches.Finishings,
			filters: map[string]listing.Filter[model.Finishing]{
				"descAR": listing.Literal(descAR),
				"descEN": listing.Text(descEN),
				"q":      listing.Any(listing.Literal(descAR), listing.Text(descEN)),
			},
			id:     func(f model.Finishing) int64 { return f.ID },
			label:  descEN,
			delete: h.api.DeleteFinishing,
		},
		formTemplate: "admin/finishing_form",
		seed: func(f model.Finishing) form.Bilingual {
			return form.Bilingual{DescAR: f.DescAR, DescEN: f.DescEN}
		},
		create: h.api.CreateFinishing,
		update: h.api.UpdateFinishing,
	}
}

func (h *Handler) adminScreen() screen[model.Admin] {
	name := func(a model.Admin) string { return a.Name }
	desc := func(a model.Admin) string { return a.Description }

	return screen[model.Admin]{
		entity:   "admin user",
		title:    "Admin Users",
		active:   "admins",
		path:     "/admins",
		template: "admin/admins",
		cache:    h.caches.Admins,
		filters: map[string]listing.Filter[model.Admin]{
			"name":        listing.Text(name),
			"description": listing.Text(desc),
			"role":        listing.Equals(func(a model.Admin) string { return a.Role }),
			"q":           listing.Any(listing.Text(name), listing.Text(desc)),
		},
		id:     func(a model.Admin) int64 { return a.ID },
		label:  name,
		delete: h.api.DeleteAdmin,
	}
}

func (h *Handler) projectScreen() screen[model.Project] {
	descAR := func(p model.Project) string { return p.DescAR }
	descEN := func(p model.Project) string { return p.DescEN }

	return screen[model.Project]{
		entity:   "project",
		title:    "Projects",
		active:   "projects",
		path:     "/projects",
		template: "admin/projects",
		cache:    h.caches.Projects,
		filters: map[string]listing.Filter[model.Project]{
			"descAR":    listing.Literal(descAR),
			"descEN":    listing.Text(descEN),
			"location":  listing.EqualsID(func(p model.Project) int64 { return p.LocationID }),
			"developer": listing.EqualsID(func(p model.Project) int64 { return p.DeveloperID }),
			"deal": listing.Equals(func(p model.Project) string {
				if p.HotDeal {
					return "hot"
				}
				return "normal"
			}),
			"q": listing.Any(listing.Literal(descAR), listing.Text(descEN)),
		},
		id:     func(p model.Project) int64 { return p.ID },
		label:  descEN,
		delete: h.api.DeleteProject,
	}
}

func (h *Handler) unitScreen() screen[model.Unit] {
	descAR := func(u model.Unit) string { return u.DescAR }
	descEN := func(u model.Unit) string { return u.DescEN }

	return screen[model.Unit]{
		entity:   "unit",
		title:    "Units",
		active:   "units",
		path:     "/units",
		template: "admin/units",
		cache:    h.caches.Units,
		filters: map[string]listing.Filter[model.Unit]{
			"descAR":    listing.Literal(descAR),
			"descEN":    listing.Text(descEN),
			"project":   listing.EqualsID(func(u model.Unit) int64 { return u.ProjectID }),
			"category":  listing.EqualsID(func(u model.Unit) int64 { return u.CategoryID }),
			"location":  listing.EqualsID(func(u model.Unit) int64 { return u.LocationID }),
			"finishing": listing.EqualsID(func(u model.Unit) int64 { return u.FinishingID }),
			"bedrooms":  listing.EqualsID(func(u model.Unit) int64 { return int64(u.Bedrooms) }),
			"minPrice":  listing.Min(func(u model.Unit) float64 { return u.StartingPrice }),
			"maxPrice":  listing.Max(func(u model.Unit) float64 { return u.StartingPrice }),
			"q":         listing.Any(listing.Literal(descAR), listing.Text(descEN)),
		},
		id:     func(u model.Unit) int64 { return u.ID },
		label:  descEN,
		delete: h.api.DeleteUnit,
	}
}

func (h *Handler) blogScreen() screen[model.Blog] {
	title := func(b model.Blog) string { return b.Title }

	return screen[model.Blog]{
		entity:   "blog",
		title:    "Blogs",
		active:   "blogs",
		path:     "/blogs",
		template: "admin/blogs",
		cache:    h.caches.Blogs,
		filters: map[string]listing.Filter[model.Blog]{
			"title":  listing.Text(title),
			"author": listing.Text(func(b model.Blog) string { return b.CreatedBy }),
			"from":   listing.DateFrom(func(b model.Blog) time.Time { return b.CreatedDate }),
			"to":     listing.DateTo(func(b model.Blog) time.Time { return b.CreatedDate }),
			"q":      listing.Any(listing.Text(title), listing.Text(func(b model.Blog) string { return b.CreatedBy })),
		},
		id:     func(b model.Blog) int64 { return b.ID },
		label:  title,
		delete: h.api.DeleteBlog,
	}
}
