package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/core/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	auth         portssvc.AuthSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.auth = services.NewAuthService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToEmployee() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: " Jane ", Email: " Jane@ACME.com "}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@acme.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "jane@acme.com" && user.Name == "Jane" && user.Role == domain.RoleEmployee && user.UserID != ""
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.Equal(0, user.PackageLimit)
	suite.False(user.CreatedAt.IsZero())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jane", Email: "jane@acme.com", Role: domain.RoleHR}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@acme.com").Return(&domain.User{Email: "jane@acme.com"}, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "User already exists")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_RaceLostOnSave() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jane", Email: "jane@acme.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@acme.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateUser_RejectsUnknownRole() {
	_, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{Name: "Jane", Email: "jane@acme.com", Role: "admin"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@acme.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Name: "Jane", Email: "jane@acme.com"})

	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
	suite.Contains(err.Error(), "failed to create user")
}

// --- GetUserRole Tests ---

func (suite *UserServiceTestSuite) TestGetUserRole() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "hr@acme.com").Return(&domain.User{Role: domain.RoleHR}, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@acme.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "broken@acme.com").Return(nil, assert.AnError).Once()

	role, err := suite.service.GetUserRole(ctx, "hr@acme.com")
	suite.Require().NoError(err)
	suite.Equal("hr", role)

	role, err = suite.service.GetUserRole(ctx, "ghost@acme.com")
	suite.Require().NoError(err)
	suite.Empty(role)

	_, err = suite.service.GetUserRole(ctx, "broken@acme.com")
	suite.ErrorIs(err, assert.AnError)
}

// --- AuthorizeRole Tests ---

func (suite *UserServiceTestSuite) TestAuthorizeRole() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "hr@acme.com").Return(&domain.User{Role: domain.RoleHR}, nil)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "emp@acme.com").Return(&domain.User{Role: domain.RoleEmployee}, nil)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@acme.com").Return(nil, apperrors.ErrNotFound)

	suite.NoError(suite.auth.AuthorizeRole(ctx, "hr@acme.com", domain.RoleHR))
	suite.ErrorIs(suite.auth.AuthorizeRole(ctx, "emp@acme.com", domain.RoleHR), apperrors.ErrForbidden)
	suite.ErrorIs(suite.auth.AuthorizeRole(ctx, "ghost@acme.com", domain.RoleHR), apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
