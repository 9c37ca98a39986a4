package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"FitLog-Backend/domain"
	"FitLog-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, role string, approved bool) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (SessionClaims, error)
	}

	// SessionClaims carries the identity snapshot stamped at sign-in time.
	// Role and approval may be stale for long-lived tokens; callers must
	// rehydrate them from the user store before trusting them.
	SessionClaims struct {
		UserID   string `json:"user_id"`
		Role     string `json:"role"`
		Approved bool   `json:"approved"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "FITLOG",
	}
}

// NewJWTServiceWithSecret bypasses the yaml config, used by tests and by
// deployments injecting the secret directly.
func NewJWTServiceWithSecret(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "FITLOG",
	}
}

func (j *jwtService) GenerateTokenUser(userID string, role string, approved bool) string {
	claims := SessionClaims{
		userID,
		role,
		approved,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 30)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &SessionClaims{}, j.parseToken)
}

func (j *jwtService) GetClaimsByToken(token string) (SessionClaims, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, domain.ErrTokenExpired
		}
		return SessionClaims{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return SessionClaims{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*SessionClaims)
	if !ok {
		return SessionClaims{}, domain.ErrTokenInvalid
	}
	return *claims, nil
}
