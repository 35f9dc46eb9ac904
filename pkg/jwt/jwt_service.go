package jwt

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const TokenTTL = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateTokenHousehold(householdID string) (string, error)
		ValidateTokenHousehold(token string) (*jwt.Token, error)
		GetHouseholdIDByToken(token string) (string, error)
	}

	jwtHouseholdClaim struct {
		HouseholdID string `json:"household_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func getSecretKey() string {
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		log.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
	}
	return secretKey
}

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(getSecretKey(), time.Now)
}

func NewJWTServiceWithSecret(secretKey string, now func() time.Time) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "ZERO-DESPERDICIO",
		now:       now,
	}
}

func (j *jwtService) GenerateTokenHousehold(householdID string) (string, error) {
	issuedAt := j.now()
	claims := jwtHouseholdClaim{
		householdID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// ValidateTokenHousehold checks the signature, then expiry against the
// service clock.
func (j *jwtService) ValidateTokenHousehold(token string) (*jwt.Token, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := &jwtHouseholdClaim{}
	t_Token, err := parser.ParseWithClaims(token, claims, j.parseToken)
	if err != nil {
		return t_Token, err
	}
	if !claims.VerifyExpiresAt(j.now(), true) {
		return t_Token, jwt.ErrTokenExpired
	}
	return t_Token, nil
}

func (j *jwtService) GetHouseholdIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenHousehold(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtHouseholdClaim)
	if claims.HouseholdID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.HouseholdID, nil
}
