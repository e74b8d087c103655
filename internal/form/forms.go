// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package form

// Login is the credential draft for the sign-in screen.
type Login struct {
	Username string `form:"userName" validate:"required"`
	Password string `form:"userPassword" validate:"required,min=9"`
}

// Validate checks the login draft.
func (f Login) Validate() Errors {
	return Validate(f)
}

// AdminCreate is the draft for adding an admin user.
type AdminCreate struct {
	Name        string `form:"userName" validate:"required"`
	Description string `form:"userDescription" validate:"required"`
	Role        string `form:"userRole" validate:"required,oneof=Admin SuperAdmin"`
	Password    string `form:"userPassword" validate:"required,min=9"`
	Confirm     string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// Validate checks the admin-create draft.
func (f AdminCreate) Validate() Errors {
	return Validate(f)
}

// AdminUpdate is the draft for editing an admin user. Passwords are
// changed through the reset-password flow, not here.
type AdminUpdate struct {
	Name        string `form:"userName" validate:"required"`
	Description string `form:"userDescription" validate:"required"`
	Role        string `form:"userRole" validate:"required,oneof=Admin SuperAdmin"`
}

// Validate checks the admin-update draft.
func (f AdminUpdate) Validate() Errors {
	return Validate(f)
}

// ResetPassword is the draft for the per-admin password reset.
type ResetPassword struct {
	NewPassword string `form:"newPassword" validate:"required,min=9"`
	Confirm     string `form:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// Validate checks the reset-password draft.
func (f ResetPassword) Validate() Errors {
	return Validate(f)
}

// Bilingual is the shared draft for categories, locations, developers
// and finishings: an Arabic/English description pair, both mandatory.
type Bilingual struct {
	DescAR string `form:"descAR" validate:"required"`
	DescEN string `form:"descEN" validate:"required"`
}

// Validate checks the bilingual draft.
func (f Bilingual) Validate() Errors {
	return Validate(f)
}

// Project is the draft for adding or editing a project.
// Editing relaxes the image requirement: omitting the file keeps the
// stored image.
type Project struct {
	DescAR            string  `form:"ProjectDescAr" validate:"required"`
	DescEN            string  `form:"ProjectDescEn" validate:"required"`
	InstallmentPeriod float64 `form:"InstallmentPeriod" validate:"gt=0"`
	DownPayment       float64 `form:"DownPayment" validate:"gte=0"`
	MapLink           string  `form:"ActualLocation" validate:"required"`
	LocationID        int     `form:"LocationId" validate:"gt=0"`
	DeveloperID       int     `form:"DeveloperId" validate:"gt=0"`
	HotDeal           bool    `form:"Flag"`

	HasImage bool `form:"-" validate:"-"`
	Editing  bool `form:"-" validate:"-"`
}

// Validate checks the project draft, including the image rule.
func (f Project) Validate() Errors {
	errs := Validate(f)
	if !f.Editing && !f.HasImage {
		errs.Add("ProjectImage", "Image is required")
	}
	return errs
}

// Unit is the draft for adding or editing a unit.
type Unit struct {
	DescAR        string  `form:"UnitDescriptionAR" validate:"required"`
	DescEN        string  `form:"UnitDescriptionEN" validate:"required"`
	Bedrooms      int     `form:"NumberOfBedrooms" validate:"gte=0"`
	StartingPrice float64 `form:"StartingPrice" validate:"gt=0"`
	DeliveryYears int     `form:"DeliveryDate" validate:"gte=0"`
	ProjectID     int     `form:"ProjectId" validate:"gt=0"`
	CategoryID    int     `form:"CategoryId" validate:"gt=0"`
	LocationID    int     `form:"LocationId" validate:"gt=0"`
	FinishingID   int     `form:"FinishingStatusId" validate:"gt=0"`

	HasImage bool `form:"-" validate:"-"`
	Editing  bool `form:"-" validate:"-"`
}

// Validate checks the unit draft, including the image rule.
func (f Unit) Validate() Errors {
	errs := Validate(f)
	if !f.Editing && !f.HasImage {
		errs.Add("UnitImage", "Image is required")
	}
	return errs
}

// Blog is the draft for adding or editing a blog post. The image is
// optional even on create.
type Blog struct {
	Title   string `form:"BlogTitle" validate:"required"`
	Content string `form:"BlogContent" validate:"required"`
}

// Validate checks the blog draft.
func (f Blog) Validate() Errors {
	return Validate(f)
}
