package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"reparo_pro/internal/domain/entities"
)

// JWTClaims is the payload of a staff session token.
type JWTClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

const tokenTTL = 24 * time.Hour

// JwtSecret signs staff session tokens. Overridable via JWT_SECRET; the
// default exists so local runs work without a .env.
func JwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("reparo-pro-dev-secret")
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT issues a signed session token for the user.
func GenerateJWT(user entities.User) (string, error) {
	claims := &JWTClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret())
}

// ParseJWT validates the token and returns the actor it encodes.
func ParseJWT(tokenString string) (entities.Actor, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil {
		return entities.Actor{}, err
	}
	if !token.Valid {
		return entities.Actor{}, jwt.ErrTokenUnverifiable
	}
	return entities.Actor{
		ID:   claims.Subject,
		Name: claims.Name,
		Role: entities.UserRole(claims.Role),
	}, nil
}
