package services

import (
	"testing"

	"banner-service/config"
	"banner-service/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *fakeUserRepo
	service  AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userRepo = newFakeUserRepo()
	suite.service = NewAuthService(suite.userRepo)
}

func (suite *AuthServiceTestSuite) TestRegister() {
	response, err := suite.service.Register(models.RegisterRequest{
		Username: "alice",
		Password: "password123",
	}, false)
	suite.NoError(err)
	suite.Equal("alice", response.Username)
	suite.NotZero(response.ID)

	stored := suite.userRepo.users["alice"]
	suite.False(stored.IsAdmin)
	suite.NotEqual("password123", stored.Password)
}

func (suite *AuthServiceTestSuite) TestRegisterAdmin() {
	_, err := suite.service.Register(models.RegisterRequest{
		Username: "root1",
		Password: "password123",
	}, true)
	suite.NoError(err)
	suite.True(suite.userRepo.users["root1"].IsAdmin)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsShortCredentials() {
	_, err := suite.service.Register(models.RegisterRequest{Username: "ab", Password: "password123"}, false)
	suite.ErrorIs(err, models.ErrInvalidInput)

	_, err = suite.service.Register(models.RegisterRequest{Username: "alice", Password: "short"}, false)
	suite.ErrorIs(err, models.ErrInvalidInput)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateUsername() {
	_, err := suite.service.Register(models.RegisterRequest{Username: "alice", Password: "password123"}, false)
	suite.NoError(err)

	_, err = suite.service.Register(models.RegisterRequest{Username: "alice", Password: "otherpassword"}, false)
	suite.ErrorIs(err, models.ErrInvalidInput)
}

func (suite *AuthServiceTestSuite) TestLoginIssuesToken() {
	_, err := suite.service.Register(models.RegisterRequest{Username: "alice", Password: "password123"}, true)
	suite.Require().NoError(err)

	response, err := suite.service.Login(models.TokenRequest{Username: "alice", Password: "password123"})
	suite.NoError(err)
	suite.Equal("bearer", response.TokenType)

	token, err := jwt.Parse(response.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	suite.NoError(err)
	claims := token.Claims.(jwt.MapClaims)
	suite.Equal("alice", claims["username"])
	suite.Equal(true, claims["is_admin"])
}

func (suite *AuthServiceTestSuite) TestLoginRejectsBadCredentials() {
	_, err := suite.service.Register(models.RegisterRequest{Username: "alice", Password: "password123"}, false)
	suite.Require().NoError(err)

	_, err = suite.service.Login(models.TokenRequest{Username: "alice", Password: "wrongpassword"})
	suite.ErrorIs(err, models.ErrInvalidInput)

	_, err = suite.service.Login(models.TokenRequest{Username: "nobody", Password: "password123"})
	suite.ErrorIs(err, models.ErrInvalidInput)
}

func (suite *AuthServiceTestSuite) TestGetUserByID() {
	response, err := suite.service.Register(models.RegisterRequest{Username: "alice", Password: "password123"}, false)
	suite.Require().NoError(err)

	user, err := suite.service.GetUserByID(response.ID)
	suite.NoError(err)
	suite.Equal("alice", user.Username)

	_, err = suite.service.GetUserByID(999)
	suite.ErrorIs(err, models.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
