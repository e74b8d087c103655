// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olegiv/aqardesk/internal/model"
)

// Endpoint paths, verbatim from the backend's route table. UpdatBlog is
// the backend's spelling; the dashboard is bound to this backend, so the
// path is preserved as-is.
const (
	pathLogin          = "/api/v1/User/login"
	pathCurrentUser    = "/api/v1/User/GetCurrentUser"
	pathAllAdmins      = "/api/v1/User/GetAllUsers"
	pathCreateAdmin    = "/api/v1/User/CreateUser"
	pathUpdateAdmin    = "/api/v1/User/UpdateUsers/%d"
	pathDeleteAdmin    = "/api/v1/User/delete/%d"
	pathResetPassword  = "/api/v1/User/reset-password/%d"
	pathAllCategories  = "/api/v1/Category/GetAllCategories"
	pathCreateCategory = "/api/v1/Category/CreateCategory"
	pathUpdateCategory = "/api/v1/Category/UpdateCategory/%d"
	pathDeleteCategory = "/api/v1/Category/DeleteCategory/%d"
	pathAllLocations   = "/api/v1/Location/GetAllLocations"
	pathCreateLocation = "/api/v1/Location/CreateLocation"
	pathUpdateLocation = "/api/v1/Location/UpdateLocation/%d"
	pathDeleteLocation = "/api/v1/Location/DeleteLocation/%d"
	pathAllDevelopers  = "/api/v1/Developer/GetAllDevelopers"
	pathCreateDev      = "/api/v1/Developer/CreateDeveloper"
	pathUpdateDev      = "/api/v1/Developer/UpdateDeveloper/%d"
	pathDeleteDev      = "/api/v1/Developer/DeleteDeveloper/%d"
	pathAllFinishings  = "/api/v1/Finishing/GetAllFinishings"
	pathCreateFinish   = "/api/v1/Finishing/CreateFinishing"
	pathUpdateFinish   = "/api/v1/Finishing/UpdateFinishing/%d"
	pathDeleteFinish   = "/api/v1/Finishing/DeleteFinishing/%d"
	pathAllProjects    = "/api/v1/Project/GetAllProjects"
	pathCreateProject  = "/api/v1/Project/CreateProject"
	pathUpdateProject  = "/api/v1/Project/UpdateProject/%d"
	pathDeleteProject  = "/api/v1/Project/DeleteProject/%d"
	pathAllUnits       = "/api/v1/Unit/GetAllUnits"
	pathCreateUnit     = "/api/v1/Unit/CreateUnit"
	pathUpdateUnit     = "/api/v1/Unit/UpdateUnit/%d"
	pathDeleteUnit     = "/api/v1/Unit/DeleteUnit/%d"
	pathAllBlogs       = "/api/v1/Blog/GetAllBlogs"
	pathBlogByID       = "/api/v1/Blog/GetBlogByID/%d"
	pathCreateBlog     = "/api/v1/Blog/CreateBlog"
	pathUpdateBlog     = "/api/v1/Blog/UpdatBlog/%d"
	pathDeleteBlog     = "/api/v1/Blog/DeleteBlog/%d"
)

// LoginRequest is the credential payload for User/login.
type LoginRequest struct {
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the backend and returns the bearer token.
// It is the only unauthenticated call.
func (c *Client) Login(ctx context.Context, userName, password string) (string, error) {
	var resp LoginResponse
	err := c.sendJSON(ctx, http.MethodPost, pathLogin, LoginRequest{
		UserName:     userName,
		UserPassword: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CurrentAdmin returns the account behind the current session token.
func (c *Client) CurrentAdmin(ctx context.Context) (model.Admin, error) {
	var admin model.Admin
	err := c.get(ctx, pathCurrentUser, &admin)
	return admin, err
}

// AdminRequest is the JSON payload for creating or updating an admin.
// Password is only sent on create.
type AdminRequest struct {
	UserName        string `json:"userName"`
	UserDescription string `json:"userDescription"`
	UserPassword    string `json:"userPassword,omitempty"`
	UserRole        string `json:"userRole"`
}

// ResetPasswordRequest is the payload for the reset-password call.
type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ListAdmins fetches all admin accounts.
func (c *Client) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := c.get(ctx, pathAllAdmins, &admins)
	return admins, err
}

// CreateAdmin creates an admin account.
func (c *Client) CreateAdmin(ctx context.Context, req AdminRequest) error {
	return c.sendJSON(ctx, http.MethodPost, pathCreateAdmin, req, nil)
}

// UpdateAdmin updates an admin account. The password field is ignored.
func (c *Client) UpdateAdmin(ctx context.Context, id int64, req AdminRequest) error {
	req.UserPassword = ""
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathUpdateAdmin, id), req, nil)
}

// DeleteAdmin deletes an admin account by id.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteAdmin, id))
}

// ResetAdminPassword sets a new password for an admin account.
func (c *Client) ResetAdminPassword(ctx context.Context, id int64, req ResetPasswordRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathResetPassword, id), req, nil)
}

// BilingualRequest is the shared JSON payload of the four text-only
// entities; the backend prefixes the keys with the entity name.
type BilingualRequest struct {
	DescAR string
	DescEN string
}

// ListCategories fetches all categories with their joined units.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.get(ctx, pathAllCategories, &categories)
	return categories, err
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPost, pathCreateCategory, map[string]string{
		"categoryDescAR": req.DescAR,
		"categoryDescEN": req.DescEN,
	}, nil)
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathUpdateCategory, id), map[string]string{
		"categoryDescAR": req.DescAR,
		"categoryDescEN": req.DescEN,
	}, nil)
}

// DeleteCategory deletes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteCategory, id))
}

// ListLocations fetches all locations.
func (c *Client) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := c.get(ctx, pathAllLocations, &locations)
	return locations, err
}

// CreateLocation creates a location.
func (c *Client) CreateLocation(ctx context.Context, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPost, pathCreateLocation, map[string]string{
		"locationDescAR": req.DescAR,
		"locationDescEN": req.DescEN,
	}, nil)
}

// UpdateLocation updates a location.
func (c *Client) UpdateLocation(ctx context.Context, id int64, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathUpdateLocation, id), map[string]string{
		"locationDescAR": req.DescAR,
		"locationDescEN": req.DescEN,
	}, nil)
}

// DeleteLocation deletes a location by id.
func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteLocation, id))
}

// ListDevelopers fetches all developers with their joined projects.
func (c *Client) ListDevelopers(ctx context.Context) ([]model.Developer, error) {
	var developers []model.Developer
	err := c.get(ctx, pathAllDevelopers, &developers)
	return developers, err
}

// CreateDeveloper creates a developer.
func (c *Client) CreateDeveloper(ctx context.Context, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPost, pathCreateDev, map[string]string{
		"developerDescAR": req.DescAR,
		"developerDescEN": req.DescEN,
	}, nil)
}

// UpdateDeveloper updates a developer.
func (c *Client) UpdateDeveloper(ctx context.Context, id int64, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathUpdateDev, id), map[string]string{
		"developerDescAR": req.DescAR,
		"developerDescEN": req.DescEN,
	}, nil)
}

// DeleteDeveloper deletes a developer by id.
func (c *Client) DeleteDeveloper(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteDev, id))
}

// ListFinishings fetches all finishing statuses.
func (c *Client) ListFinishings(ctx context.Context) ([]model.Finishing, error) {
	var finishings []model.Finishing
	err := c.get(ctx, pathAllFinishings, &finishings)
	return finishings, err
}

// CreateFinishing creates a finishing status.
func (c *Client) CreateFinishing(ctx context.Context, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPost, pathCreateFinish, map[string]string{
		"finishingDescAR": req.DescAR,
		"finishingDescEN": req.DescEN,
	}, nil)
}

// UpdateFinishing updates a finishing status.
func (c *Client) UpdateFinishing(ctx context.Context, id int64, req BilingualRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathUpdateFinish, id), map[string]string{
		"finishingDescAR": req.DescAR,
		"finishingDescEN": req.DescEN,
	}, nil)
}

// DeleteFinishing deletes a finishing status by id.
func (c *Client) DeleteFinishing(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteFinish, id))
}

// ProjectRequest is the multipart payload of project create/update.
// Image is required on create; on update the caller always supplies one,
// re-sending the stored image when the user kept it.
type ProjectRequest struct {
	DescAR            string
	DescEN            string
	HotDeal           bool
	InstallmentPeriod int
	DownPayment       float64
	MapLink           string
	LocationID        int64
	DeveloperID       int64
	Image             *File
}

func (r ProjectRequest) form() *Form {
	form := new(Form)
	form.Set("ProjectDescAr", r.DescAR)
	form.Set("ProjectDescEn", r.DescEN)
	form.SetBool("Flag", r.HotDeal)
	form.SetInt("InstallmentPeriod", int64(r.InstallmentPeriod))
	form.SetFloat("DownPayment", r.DownPayment)
	form.Set("ActualLocation", r.MapLink)
	form.SetInt("LocationId", r.LocationID)
	form.SetInt("DeveloperId", r.DeveloperID)
	if r.Image != nil {
		form.SetFile("ProjectImage", *r.Image)
	}
	return form
}

// ListProjects fetches all projects.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := c.get(ctx, pathAllProjects, &projects)
	return projects, err
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) error {
	return c.sendForm(ctx, http.MethodPost, pathCreateProject, req.form(), nil)
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, req ProjectRequest) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf(pathUpdateProject, id), req.form(), nil)
}

// DeleteProject deletes a project by id.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteProject, id))
}

// UnitRequest is the multipart payload of unit create/update.
type UnitRequest struct {
	DescAR        string
	DescEN        string
	Bedrooms      int
	StartingPrice float64
	DeliveryYears int
	ProjectID     int64
	CategoryID    int64
	LocationID    int64
	FinishingID   int64
	Image         *File
}

func (r UnitRequest) form() *Form {
	form := new(Form)
	form.SetInt("ProjectId", r.ProjectID)
	form.SetInt("CategoryId", r.CategoryID)
	form.SetInt("LocationId", r.LocationID)
	form.SetInt("FinishingStatusId", r.FinishingID)
	form.Set("UnitDescriptionAR", r.DescAR)
	form.Set("UnitDescriptionEN", r.DescEN)
	form.SetInt("NumberOfBedrooms", int64(r.Bedrooms))
	form.SetFloat("StartingPrice", r.StartingPrice)
	form.SetInt("DeliveryDate", int64(r.DeliveryYears))
	if r.Image != nil {
		form.SetFile("UnitImage", *r.Image)
	}
	return form
}

// ListUnits fetches all units.
func (c *Client) ListUnits(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	err := c.get(ctx, pathAllUnits, &units)
	return units, err
}

// CreateUnit creates a unit.
func (c *Client) CreateUnit(ctx context.Context, req UnitRequest) error {
	return c.sendForm(ctx, http.MethodPost, pathCreateUnit, req.form(), nil)
}

// UpdateUnit updates a unit.
func (c *Client) UpdateUnit(ctx context.Context, id int64, req UnitRequest) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf(pathUpdateUnit, id), req.form(), nil)
}

// DeleteUnit deletes a unit by id.
func (c *Client) DeleteUnit(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteUnit, id))
}

// BlogRequest is the multipart payload of blog create/update. The image
// is optional on create; the backend keeps no image when none is sent at
// creation time.
type BlogRequest struct {
	Title   string
	Content string
	Image   *File
}

func (r BlogRequest) form() *Form {
	form := new(Form)
	form.Set("BlogTitle", r.Title)
	form.Set("BlogContent", r.Content)
	if r.Image != nil {
		form.SetFile("Image", *r.Image)
	}
	return form
}

// ListBlogs fetches all blogs. The list payload omits the content body.
func (c *Client) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	err := c.get(ctx, pathAllBlogs, &blogs)
	return blogs, err
}

// GetBlog fetches one blog including its content, for edit and preview.
func (c *Client) GetBlog(ctx context.Context, id int64) (model.Blog, error) {
	var blog model.Blog
	err := c.get(ctx, fmt.Sprintf(pathBlogByID, id), &blog)
	return blog, err
}

// CreateBlog creates a blog.
func (c *Client) CreateBlog(ctx context.Context, req BlogRequest) error {
	return c.sendForm(ctx, http.MethodPost, pathCreateBlog, req.form(), nil)
}

// UpdateBlog updates a blog.
func (c *Client) UpdateBlog(ctx context.Context, id int64, req BlogRequest) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf(pathUpdateBlog, id), req.form(), nil)
}

// DeleteBlog deletes a blog by id.
func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf(pathDeleteBlog, id))
}
