package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/project/catalog/internal/entity"
)

// Claims is the payload embedded in an issued token.
type Claims struct {
	UserID   string
	Username string
}

// TokenService signs and verifies bearer tokens carrying {userId, username}.
// No expiry claim is set on issued tokens; Verify still rejects expired
// tokens if a caller presents one that carries exp.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Sign(userID, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       userID,
		"username": username,
	})

	signed, err := token.SignedString(s.secret)

	if err != nil {
		return "", errors.Wrap(err, "can not sign token")
	}

	return signed, nil
}

func (s *TokenService) Verify(tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.Errorf("unexpected signing method in token: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return Claims{}, errors.Wrap(entity.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.Wrap(entity.ErrInvalidToken, "claims in token is not map claims")
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return Claims{}, errors.Wrap(entity.ErrInvalidToken, "id in claims is not a string")
	}

	username, _ := claims["username"].(string)

	return Claims{
		UserID:   userID,
		Username: username,
	}, nil
}
