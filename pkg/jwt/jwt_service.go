package jwt

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"Recipedia-Backend/internal/utils"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string) string
		GenerateTokenAdmin(admin *entities.Admin) string
		ValidateToken(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (domain.TokenClaims, error)
	}

	// appClaims is the single claim shape shared by both issuance
	// paths. User tokens populate userId only; admin tokens populate
	// adminId plus userId as a compatibility alias, so every verified
	// token resolves to a non-empty subject.
	appClaims struct {
		UserID    string `json:"userId,omitempty"`
		AdminID   string `json:"adminId,omitempty"`
		Email     string `json:"email,omitempty"`
		Username  string `json:"username,omitempty"`
		FirstName string `json:"firstName,omitempty"`
		LastName  string `json:"lastName,omitempty"`
		Role      string `json:"role,omitempty"`
		IsAdmin   bool   `json:"isAdmin,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		audience  string
	}
)

const (
	userTokenDuration  = time.Hour
	adminTokenDuration = 24 * time.Hour
)

func getSecretKey() string {
	utils.LoadConfig()
	if secretKey := utils.GetConfig("JWT_SECRET"); secretKey != "" {
		return secretKey
	}
	return os.Getenv("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "RECIPEDIA",
		audience:  "recipedia-app",
	}
}

func (j *jwtService) registeredClaims(duration time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    j.issuer,
		Audience:  jwt.ClaimStrings{j.audience},
	}
}

func (j *jwtService) GenerateTokenUser(userID string) string {
	claims := appClaims{
		UserID:           userID,
		RegisteredClaims: j.registeredClaims(userTokenDuration),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) GenerateTokenAdmin(admin *entities.Admin) string {
	claims := appClaims{
		AdminID:          admin.ID.String(),
		UserID:           admin.ID.String(),
		Email:            admin.Email,
		Username:         admin.Username,
		FirstName:        admin.FirstName,
		LastName:         admin.LastName,
		Role:             admin.Role,
		IsAdmin:          true,
		RegisteredClaims: j.registeredClaims(adminTokenDuration),
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

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &appClaims{}, j.parseToken)
}

// GetClaimsByToken verifies the token and normalizes its claims. Each
// failure mode maps to its own error so the middleware can answer with
// the right status and detail.
func (j *jwtService) GetClaimsByToken(token string) (domain.TokenClaims, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		// The claim set is decoded before validation runs, so expiry
		// and not-before are readable even for rejected tokens.
		var claims *appClaims
		if t_Token != nil {
			claims, _ = t_Token.Claims.(*appClaims)
		}

		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			expiredAt := time.Time{}
			if claims != nil && claims.ExpiresAt != nil {
				expiredAt = claims.ExpiresAt.Time
			}
			return domain.TokenClaims{}, &domain.TokenExpiredError{ExpiredAt: expiredAt}
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			notBefore := time.Time{}
			if claims != nil && claims.NotBefore != nil {
				notBefore = claims.NotBefore.Time
			}
			return domain.TokenClaims{}, &domain.TokenNotActiveError{NotBefore: notBefore}
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.TokenClaims{}, domain.ErrTokenInvalid
		default:
			return domain.TokenClaims{}, domain.ErrTokenVerification
		}
	}
	if !t_Token.Valid {
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*appClaims)
	resolved := domain.TokenClaims{
		UserID:    claims.UserID,
		AdminID:   claims.AdminID,
		Email:     claims.Email,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		IsAdmin:   claims.IsAdmin,
	}
	if resolved.SubjectID() == "" {
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}
	return resolved, nil
}
