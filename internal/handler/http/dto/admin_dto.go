package dto

// UpdateRoleRequest is the payload of PATCH /admin/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserListResponse is one page of the admin user table.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
