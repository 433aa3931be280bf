package service

import (
	"context"
	"os"
	"time"

	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{uowFactory: uowFactory}
}

// Login authenticates a business employee for the merchant console. The
// token scopes every console request to the employee's business.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if employee == nil {
		return nil, apperror.Validation(apperror.CodeInvalidCredentials, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Validation(apperror.CodeInvalidCredentials, "invalid credentials")
	}

	claims := jwt.MapClaims{
		"employee_id": employee.Id.String(),
		"business_id": employee.BusinessId.String(),
		"exp":         time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      signedToken,
		EmployeeId: employee.Id,
		BusinessId: employee.BusinessId,
		Name:       employee.Name,
	}, nil
}
