// Package handler はloginsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"identity_backend/internal/api"
	"identity_backend/internal/feature/logins/domain"
	"identity_backend/internal/feature/logins/domain/entity"
	"identity_backend/internal/feature/logins/usecase"
)

// LoginsUsecase は外部ログイン検索のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type LoginsUsecase interface {
	ListLogins(ctx context.Context, userID uint) ([]entity.UserLogin, error)
	ResolveUser(ctx context.Context, loginProvider, providerKey string) (*entity.User, error)
	GetLogin(ctx context.Context, loginProvider, providerKey string) (*entity.UserLogin, error)
	GetUserLogin(ctx context.Context, userID uint, loginProvider, providerKey string) (*entity.UserLogin, error)
}

// LoginsHandler は外部ログインに関するHTTPリクエストを処理します。
// ルーティングとパラメータ変換は openapi.yaml から生成した api パッケージが行います。
type LoginsHandler struct {
	uc LoginsUsecase
}

var _ api.ServerInterface = (*LoginsHandler)(nil)

// NewLoginsHandler は新しい LoginsHandler を作成します。
func NewLoginsHandler(uc LoginsUsecase) *LoginsHandler {
	return &LoginsHandler{uc: uc}
}

// Register は生成されたラッパー経由で4つの検索ルートを r に登録します。
func (h *LoginsHandler) Register(r gin.IRouter) {
	api.RegisterHandlersWithOptions(r, h, api.GinServerOptions{ErrorHandler: InvalidParam})
}

// InvalidParam は生成ラッパーがパスやクエリを変換できなかったときのレスポンスです。
func InvalidParam(c *gin.Context, err error, status int) {
	slog.Warn("invalid request parameter", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.JSON(status, api.ErrorResponse{Error: err.Error()})
}

// ListUserLogins は GET /users/{userId}/logins を処理します。
// ログインが無いユーザーには空配列を返します。
func (h *LoginsHandler) ListUserLogins(c *gin.Context, userID uint) {
	logins, err := h.uc.ListLogins(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]api.UserLoginResponse, 0, len(logins))
	for _, l := range logins {
		out = append(out, toUserLoginResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

// GetUserLogin は GET /users/{userId}/login?provider=&key= を処理します。
func (h *LoginsHandler) GetUserLogin(c *gin.Context, userID uint, params api.GetUserLoginParams) {
	provider, key, ok := lookupArgs(c, params.Provider, params.Key)
	if !ok {
		return
	}
	login, err := h.uc.GetUserLogin(c.Request.Context(), userID, provider, key)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserLoginResponse(*login))
}

// GetLogin は GET /logins?provider=&key= を処理します。
func (h *LoginsHandler) GetLogin(c *gin.Context, params api.GetLoginParams) {
	provider, key, ok := lookupArgs(c, params.Provider, params.Key)
	if !ok {
		return
	}
	login, err := h.uc.GetLogin(c.Request.Context(), provider, key)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserLoginResponse(*login))
}

// ResolveUser は GET /logins/user?provider=&key= を処理します。
func (h *LoginsHandler) ResolveUser(c *gin.Context, params api.ResolveUserParams) {
	provider, key, ok := lookupArgs(c, params.Provider, params.Key)
	if !ok {
		return
	}
	user, err := h.uc.ResolveUser(c.Request.Context(), provider, key)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{Id: user.ID, UserName: user.UserName, Email: user.Email})
}

// lookupArgs はクエリに provider と key が存在することだけを確認します。
// 空文字はそのまま検索に使う（該当なしなら404）。
func lookupArgs(c *gin.Context, provider, key *string) (string, string, bool) {
	if provider == nil || key == nil {
		slog.Warn("lookup without provider or key", "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "provider and key are required"})
		return "", "", false
	}
	return *provider, *key, true
}

func toUserLoginResponse(l entity.UserLogin) api.UserLoginResponse {
	res := api.UserLoginResponse{
		LoginProvider: l.LoginProvider,
		ProviderKey:   l.ProviderKey,
		UserId:        l.UserID,
	}
	if l.ProviderDisplayName != "" {
		res.ProviderDisplayName = &l.ProviderDisplayName
	}
	return res
}

// respondError はユースケースのエラーをHTTPステータスに変換します。
// 内部エラーの詳細はクライアントに公開しません。
func (h *LoginsHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLoginNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "login not found"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrIntegrityViolation):
		slog.Error("external login integrity violation", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "data integrity violation"})
	default:
		slog.Error("external login lookup failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
