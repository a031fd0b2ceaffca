package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          string `json:"id"`
	Role        string `json:"role"`
}
