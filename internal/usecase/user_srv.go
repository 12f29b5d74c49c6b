package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/identity"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnsupportedImage is returned for profile image uploads that are not
// JPEG. Handlers translate it into an HTTP 400 response.
var ErrUnsupportedImage = errors.New("unsupported image type")

type UserService interface {
	GetProfile(ctx context.Context, ident *identity.Identity) *response.ProfileResponse
	UpdateProfile(ctx context.Context, ident *identity.Identity, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	UploadProfileImage(ctx context.Context, userID uuid.UUID, data []byte) (*response.UploadImageResponse, error)
}

type userService struct {
	idClient *identity.Client
	log      *zap.Logger
}

func NewUserService(idClient *identity.Client, log *zap.Logger) UserService {
	return &userService{
		idClient: idClient,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, ident *identity.Identity) *response.ProfileResponse {
	return &response.ProfileResponse{
		ID:       ident.ID.String(),
		Email:    ident.Email,
		Name:     ident.Name,
		ImageURL: s.idClient.PublicImageURL(ident.ID),
	}
}

func (s *userService) UpdateProfile(ctx context.Context, ident *identity.Identity, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if err := s.idClient.UpdateUserName(ctx, ident.ID, req.Name); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated",
		zap.String("user_id", ident.ID.String()),
	)

	return &response.ProfileResponse{
		ID:       ident.ID.String(),
		Email:    ident.Email,
		Name:     req.Name,
		ImageURL: s.idClient.PublicImageURL(ident.ID),
	}, nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userID uuid.UUID, data []byte) (*response.UploadImageResponse, error) {
	if !mimetype.Detect(data).Is("image/jpeg") {
		return nil, fmt.Errorf("profile image must be JPEG: %w", ErrUnsupportedImage)
	}

	if err := s.idClient.UploadProfileImage(ctx, userID, data); err != nil {
		return nil, fmt.Errorf("upload profile image: %w", err)
	}

	return &response.UploadImageResponse{
		ImageURL: s.idClient.PublicImageURL(userID),
	}, nil
}
