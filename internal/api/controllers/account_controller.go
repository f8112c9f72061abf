package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/config"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/middleware"
	"tourly/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	session        config.SessionConfig
}

func NewAccountController(accountService services.AccountServiceInterface, session config.SessionConfig) *AccountController {
	return &AccountController{
		accountService: accountService,
		session:        session,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} response_models.AccountResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, account)
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user, set the session cookie and return the token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AccountLoginResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	token, claims, account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	maxAge := int(claims.ExpiresAt.Sub(claims.IssuedAt.Time).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.session.CookieName, token, maxAge, "/", "", a.session.CookieSecure, true)

	utils.RespondSuccess(c, http.StatusOK, response_models.AccountLoginResponse{
		Token:      token,
		Account:    *account,
		RedirectTo: middleware.PopReturnTo(c),
	})
}

// Logout revokes the current token and clears the cookie. It succeeds for
// guests too.
func (a *AccountController) Logout(c *gin.Context, identity auth.Identity) {
	a.accountService.Logout(c.Request.Context(), identity)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.session.CookieName, "", -1, "/", "", a.session.CookieSecure, true)
	utils.RespondSuccess(c, http.StatusNoContent, nil)
}

func (a *AccountController) Me(c *gin.Context, identity auth.Identity) {
	me, err := a.accountService.Me(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, me)
}
