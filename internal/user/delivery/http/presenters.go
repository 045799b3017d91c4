package http

import (
	"bbip/internal/user"
	"bbip/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=50"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Emoji    string `json:"emoji"    binding:"max=16"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Emoji:    r.Emoji,
	}
}

// ---

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ---

type updateProfileReq struct {
	Name  *string `json:"name"  binding:"omitempty,max=50"`
	Emoji *string `json:"emoji" binding:"omitempty,max=16"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		Name:  r.Name,
		Emoji: r.Emoji,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Emoji     string            `json:"emoji"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Emoji:     u.Emoji,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		Token: out.Token,
		User:  newUserResp(out.User),
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(u user.User) meResp {
	return meResp{User: newUserResp(u)}
}
