package response

import "gearshare/internal/usecase/queries"

type AuthResponse struct {
	Token string                      `json:"token"`
	User  *queries.AuthorizedUserView `json:"user"`
}
