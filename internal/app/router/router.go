package router

import (
	"github.com/gin-gonic/gin"

	loginshandler "identity_backend/internal/feature/logins/transport/handler"
	platformhandler "identity_backend/internal/platform/http/handler"
	jwtmw "identity_backend/internal/platform/jwt"
	"identity_backend/internal/shared/ratelimiter"
)

// Deps collects what the router needs from the wiring layer.
type Deps struct {
	Logins    *loginshandler.LoginsHandler
	Limiter   ratelimiter.Limiter
	Ready     gin.HandlerFunc
	JWTSecret string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	// 依存先（DB / Redis）の疎通確認
	r.GET("/readyz", d.Ready)

	// 認証必須のルート
	// JWT で認証したサブジェクトごとにレート制限をかける
	v1 := r.Group("/api/v1")
	v1.Use(jwtmw.AuthRequired(d.JWTSecret))
	v1.Use(ratelimiter.Middleware(d.Limiter, ratelimiter.ContextKey(jwtmw.ContextSubject)))
	// ルートは internal/api/openapi.yaml から生成
	d.Logins.Register(v1)

	return r
}
