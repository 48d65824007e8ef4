package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/griotme/griot/internal/common"
)

// ResetTokens mints and checks password-reset tokens. Each token is signed
// with the server secret plus the user's current password hash, so it stops
// verifying as soon as the password changes.
type ResetTokens struct {
	secret   []byte
	validity time.Duration
}

func NewResetTokens(secret string, validity time.Duration) *ResetTokens {
	return &ResetTokens{secret: []byte(secret), validity: validity}
}

func (r *ResetTokens) key(passwordHash string) []byte {
	k := make([]byte, 0, len(r.secret)+len(passwordHash))
	k = append(k, r.secret...)
	return append(k, passwordHash...)
}

func (r *ResetTokens) Generate(userID, passwordHash string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(r.validity)),
	})
	return token.SignedString(r.key(passwordHash))
}

// Verify checks that token was issued for userID while passwordHash was
// current and has not expired. Any failure is common.ErrInvalidResetToken.
func (r *ResetTokens) Verify(token, userID, passwordHash string) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return r.key(passwordHash), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(userID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return common.ErrInvalidResetToken
	}
	return nil
}
