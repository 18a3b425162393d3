package router

import (
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/config"
	"github.com/brunosousa09/sigh-hospital/internal/handler"
	"github.com/brunosousa09/sigh-hospital/internal/middleware"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"
	"github.com/brunosousa09/sigh-hospital/internal/service"
	"github.com/brunosousa09/sigh-hospital/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	transacaoRepo := repository.NewTransacaoRepository(db)
	notificacaoRepo := repository.NewNotificacaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	sessaoSvc := service.NewSessaoService(rdb, cfg.SessionIdleMinutes)
	empresaSvc := service.NewEmpresaService(empresaRepo, transacaoRepo)
	transacaoSvc := service.NewTransacaoService(transacaoRepo, empresaRepo)
	baixaSvc := service.NewBaixaService(transacaoRepo, empresaRepo)
	relatorioSvc := service.NewRelatorioService(transacaoRepo)
	notificacaoSvc := service.NewNotificacaoService(notificacaoRepo, service.NewRedisLeituraStore(rdb), dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sessaoSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	perfilH := handler.NewPerfilHandler(sessaoSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc)
	transacoesH := handler.NewTransacoesHandler(transacaoSvc)
	baixasH := handler.NewBaixasHandler(baixaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)
	notificacoesH := handler.NewNotificacoesHandler(notificacaoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Reads are open to all three roles; writes to
	// dev/gestor only.
	jwtMW := middleware.JWTAuth(authSvc, sessaoSvc)
	leitura := middleware.RequireRole(model.RolDev, model.RolGestor, model.RolView)
	escrita := middleware.RequireRole(model.RolDev, model.RolGestor)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)

		v1.GET("/perfil", leitura, perfilH.Eu)
		v1.GET("/perfil/preferencias", leitura, perfilH.Preferencias)
		v1.PUT("/perfil/preferencias", leitura, perfilH.SalvarPreferencias)

		v1.GET("/empresas", leitura, empresasH.Listar)
		v1.GET("/empresas/:id", leitura, empresasH.Buscar)
		v1.GET("/empresas/:id/pendencias", leitura, empresasH.Pendencias)
		v1.GET("/empresas/:id/extrato", leitura, empresasH.Extrato)
		empresas := v1.Group("/empresas", escrita)
		{
			empresas.POST("", empresasH.Criar)
			empresas.PUT("/:id", empresasH.Atualizar)
			empresas.DELETE("/:id", empresasH.Excluir)
		}

		v1.GET("/transacoes", leitura, transacoesH.Listar)
		v1.GET("/transacoes/pendencias", leitura, transacoesH.Pendencias)
		v1.GET("/transacoes/pagamentos", leitura, transacoesH.Pagamentos)
		v1.POST("/transacoes", escrita, transacoesH.Registrar)
		v1.PUT("/transacoes/:id", escrita, transacoesH.Atualizar)

		v1.POST("/baixas", escrita, baixasH.Registrar)

		v1.GET("/relatorios/kpis", leitura, relatoriosH.KPIs)
		v1.GET("/relatorios/comparativo", leitura, relatoriosH.Comparativo)

		v1.GET("/notificacoes", leitura, notificacoesH.Listar)
		v1.GET("/notificacoes/pendente", leitura, notificacoesH.Pendente)
		v1.POST("/notificacoes/:id/lida", leitura, notificacoesH.MarcarLida)
		notificacoes := v1.Group("/notificacoes", escrita)
		{
			notificacoes.POST("", notificacoesH.Criar)
			notificacoes.PUT("/:id/desativar", notificacoesH.Desativar)
			notificacoes.DELETE("/:id", notificacoesH.Excluir)
		}

		// User admin: creation hierarchy is enforced in the service, so
		// gestores can reach the endpoint to create .view users.
		usuarios := v1.Group("/usuarios", escrita)
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", middleware.RequireRole(model.RolDev), usuariosH.Atualizar)
			usuarios.DELETE("/:id", middleware.RequireRole(model.RolDev), usuariosH.Desativar)
			usuarios.PATCH("/:id/reativar", middleware.RequireRole(model.RolDev), usuariosH.Reativar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
