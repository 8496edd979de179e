package user_test

import (
	"testing"

	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/user"
	"community-funding-system/test"

	"github.com/stretchr/testify/require"
)

func init() {
	(&user.ModuleUser{}).Init()
}

func registerReq(email string) user.RegisterReq {
	return user.RegisterReq{
		Email:     email,
		Password:  "passw0rd!",
		FirstName: "明",
		LastName:  "李",
		Role:      "applicant",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, user.Register, nil, registerReq("a@example.com"))
	test.NoError(t, resp)

	var data struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	test.DecodeData(t, resp.Data, &data)
	require.NotEmpty(t, data.Token)
	require.NotEmpty(t, data.User.ID)
	require.Equal(t, model.RoleApplicant, data.User.Role)

	resp = test.DoRequest(t, user.Login, nil, user.LoginReq{
		Email:    "a@example.com",
		Password: "passw0rd!",
	})
	test.NoError(t, resp)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, user.Register, nil, registerReq("dup@example.com")))

	resp := test.DoRequest(t, user.Register, nil, registerReq("dup@example.com"))
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestRegisterWeakPassword(t *testing.T) {
	test.SetupDB(t)

	req := registerReq("weak@example.com")
	req.Password = "short"
	resp := test.DoRequest(t, user.Register, nil, req)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	req.Password = "allletters"
	resp = test.DoRequest(t, user.Register, nil, req)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestRegisterInvalidRole(t *testing.T) {
	test.SetupDB(t)

	req := registerReq("role@example.com")
	req.Role = "admin"
	resp := test.DoRequest(t, user.Register, nil, req)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestLoginWrongPassword(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, user.Register, nil, registerReq("b@example.com")))

	resp := test.DoRequest(t, user.Login, nil, user.LoginReq{
		Email:    "b@example.com",
		Password: "wrongpass1",
	})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)
}

func TestLoginUnknownUser(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, user.Login, nil, user.LoginReq{
		Email:    "ghost@example.com",
		Password: "passw0rd!",
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}
