package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// maxImageSize caps profile image uploads at 5MB.
const maxImageSize = 5 << 20

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

func identityFromContext(r *http.Request) (*identity.Identity, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	email, _ := utils.GetUserEmailFromContext(r.Context())
	name, _ := utils.GetUserNameFromContext(r.Context())
	return &identity.Identity{ID: userID, Email: email, Name: name}, true
}

// GetProfile handles GET /api/users/profile (authenticated)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	utils.ResponseSuccess(w, "success", h.service.GetProfile(r.Context(), ident))
}

// UpdateProfile handles PATCH /api/users/profile (authenticated)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), ident, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "프로필이 수정되었습니다", profile)
}

// UploadProfileImage handles POST /api/users/profile/image (authenticated)
func (h *UserHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.ResponseBadRequest(w, "이미지 크기는 5MB 이하여야 합니다", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Image file is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		utils.ResponseBadRequest(w, "이미지 크기는 5MB 이하여야 합니다", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read uploaded image", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	result, err := h.service.UploadProfileImage(r.Context(), userID, data)
	if err != nil {
		writeServiceError(w, h.log, err, "upload profile image")
		return
	}

	utils.ResponseSuccess(w, "프로필 이미지가 업로드되었습니다", result)
}
