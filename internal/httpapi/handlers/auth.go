package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/devray27/studypal-backend/internal/auth"
	"github.com/devray27/studypal-backend/internal/common"
	"github.com/gin-gonic/gin"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	user, err := h.AuthSvc.Register(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var ve *auth.ValidationError
		switch {
		case errors.As(err, &ve):
			common.Fail(c, http.StatusBadRequest, ve.Error(), "validation failed")
		case errors.Is(err, auth.ErrDuplicateUsername), errors.Is(err, auth.ErrDuplicateEmail):
			common.Fail(c, http.StatusBadRequest, err.Error(), "duplicate")
		default:
			log.Printf("[Register] username=%s err=%v", req.Username, err)
			common.Fail(c, http.StatusInternalServerError, "failed to register", err.Error())
		}
		return
	}

	common.OK(c, http.StatusCreated, "user registered", user)
}

type signInReq struct {
	// the client sends the username under "name"
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignIn is a stateless credential check. It intentionally issues no
// session token or cookie; the response carries the matching user only.
func (h *Handler) SignIn(c *gin.Context) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}
	if req.Name == "" || req.Password == "" {
		common.Fail(c, http.StatusBadRequest, "name and password are required", "validation failed")
		return
	}

	user, err := h.AuthSvc.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  http.StatusBadRequest,
				"message": "user not found",
				"noUser":  true,
			})
		case errors.Is(err, auth.ErrInvalidCredential):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":        http.StatusBadRequest,
				"message":       "wrong password",
				"wrongPassword": true,
			})
		default:
			log.Printf("[SignIn] username=%s err=%v", req.Name, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":        http.StatusInternalServerError,
				"message":       "database error",
				"dataBaseError": true,
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          http.StatusOK,
		"loginSuccessful": true,
		"userDataObj":     user,
	})
}
