package jwt

import (
	"time"

	"community-funding-system/config"
	"community-funding-system/internal/model"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Payload 令牌携带的用户身份信息
type Payload struct {
	UserID string     `json:"user_id"`
	Role   model.Role `json:"role"`
}

type Claims struct {
	Payload
	jwtlib.RegisteredClaims
}

// CreateToken 签发访问令牌
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	expire := cfg.AccessExpire
	if expire <= 0 {
		expire = 7 * 24 * 3600
	}
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Duration(expire) * time.Second)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 校验并解析访问令牌
func ParseToken(tokenStr string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
