package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/util"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// googleAccountDirectory is the lookup the callback needs. Satisfied by
// repository.UserRepository; tests substitute an in-memory fake.
type googleAccountDirectory interface {
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error)
}

type OAuthController struct {
	*baseController
	googleOAuthConfig *oauth2.Config
	users             googleAccountDirectory
}

const OAUTH_STATE_COOKIE = "oauth_state"

type GoogleUser struct {
	Email         string `json:"email"`
	GivenName     string `json:"given_name"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (oc OAuthController) ContinueWithGoogle(ctx *gin.Context) {
	oc.app.Logger.Debug("OAuth: Google logic")

	state, err := util.GenerateNChar(16)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	// The callback checks the state echoed by Google against this cookie
	ctx.SetCookie(OAUTH_STATE_COOKIE, state, 300, "/", "", false, true)

	url := oc.googleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)

	oc.app.Logger.Debugf("OAuth: Google, Redirect to: %s", url)
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

func (oc OAuthController) getGoogleUserInfo(code string) (*GoogleUser, error) {
	oc.app.Logger.Debug("OAuth: Google, Get user info logic")

	// Exchange the authorization code for an access token
	token, err := oc.googleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		oc.app.Logger.Debug("OAuth: Google, Error: Failed to exchange token")
		return nil, err
	}

	// Use the access token to fetch user info
	client := oc.googleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		oc.app.Logger.Debug("OAuth: Google, Error: Failed to fetch user info")
		return nil, err
	}
	defer resp.Body.Close()

	var userInfo GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		oc.app.Logger.Debug("OAuth: Google, Error: Failed to decode user info")
		return nil, err
	}

	return &userInfo, nil
}

func (oc OAuthController) ContinueWithGoogleCallback(ctx *gin.Context) {
	oc.app.Logger.Debug("OAuth: Google callback logic")

	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(OAUTH_STATE_COOKIE)
	if err != nil || state == "" || state != cookieState {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("oauth state mismatch"), "state"), nil)
		return
	}

	code := ctx.Query("code")
	userInfo, err := oc.getGoogleUserInfo(code)
	if err != nil {
		oc.app.Logger.Debug("OAuth: Google, Error: Failed to get user info")

		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	oc.signInProvisionedUser(ctx, userInfo)
}

// signInProvisionedUser issues a session only for accounts that already
// exist. There is one shared certificate collection, so a Google identity
// alone grants nothing; admins are provisioned out of band (cmd/migrate).
func (oc OAuthController) signInProvisionedUser(ctx *gin.Context, userInfo *GoogleUser) {
	user, err := oc.users.GetByEmail(ctx, nil, userInfo.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			oc.app.Logger.Debugf("OAuth: Google, rejected unprovisioned account: %s", userInfo.Email)

			util.ResponseFailed(ctx, http.StatusUnauthorized, "Account not provisioned", util.GenerateErrorMessages(errors.New("account not provisioned"), "account"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	refreshToken, accessToken, err := oc.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		oc.app.Logger.Debug("OAuth: Google, Error: Failed to generate refresh and access token")

		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}
