package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/config"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrCredenciaisInvalidas = errors.New("usuário ou senha incorretos")
	ErrTokenInvalido        = errors.New("token inválido ou expirado")
	ErrSufixoInvalido       = errors.New("o username deve terminar em .dev, .gestor ou .view")
	ErrSemPermissaoCriar    = errors.New("seu perfil não pode criar usuários com este papel")
	ErrUsernameEmUso        = errors.New("username já cadastrado")
)

// Claims travels inside the JWT. Rol is issued by the server from the user
// record, never re-derived from the username suffix.
type Claims struct {
	Username string `json:"username"`
	Rol      string `json:"rol"`
	Tipo     string `json:"tipo"` // access | refresh
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	ValidarToken(tokenStr string) (*Claims, error)

	CriarUsuario(ctx context.Context, criadorRol string, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	DesativarUsuario(ctx context.Context, id uuid.UUID) error
	ReativarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repo.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return s.emitirTokens(u)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.ValidarToken(refreshToken)
	if err != nil || claims.Tipo != "refresh" {
		return nil, ErrTokenInvalido
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil || !u.Ativo {
		return nil, ErrTokenInvalido
	}
	return s.emitirTokens(u)
}

func (s *authService) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}

func (s *authService) emitirTokens(u *model.Usuario) (*dto.LoginResponse, error) {
	accessTTL := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	access, err := s.assinar(u, "access", accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.assinar(u, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTTL.Seconds()),
		User:         UsuarioParaResponse(u),
	}, nil
}

func (s *authService) assinar(u *model.Usuario, tipo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: u.Username,
		Rol:      u.Rol,
		Tipo:     tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// CriarUsuario applies the creation hierarchy: dev creates any role, gestor
// only creates view users, view creates nobody.
func (s *authService) CriarUsuario(ctx context.Context, criadorRol string, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	rol := model.RolDoUsername(username)
	if rol == "" {
		return nil, ErrSufixoInvalido
	}

	switch criadorRol {
	case model.RolDev:
	case model.RolGestor:
		if rol != model.RolView {
			return nil, ErrSemPermissaoCriar
		}
	default:
		return nil, ErrSemPermissaoCriar
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameEmUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{
		Username:     username,
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := UsuarioParaResponse(u)
	return &resp, nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("usuário não encontrado")
	}
	if req.Nome != "" {
		u.Nome = req.Nome
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := UsuarioParaResponse(u)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(us))
	for i := range us {
		out = append(out, UsuarioParaResponse(&us[i]))
	}
	return out, nil
}

func (s *authService) DesativarUsuario(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) ReativarUsuario(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reativar(ctx, id)
}

func UsuarioParaResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Nome:     u.Nome,
		Email:    u.Email,
		Rol:      u.Rol,
		Ativo:    u.Ativo,
	}
}
