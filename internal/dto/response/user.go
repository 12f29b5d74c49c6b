package response

type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
