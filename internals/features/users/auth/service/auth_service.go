package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyku_backend/internals/configs"
	authDTO "studyku_backend/internals/features/users/auth/dto"
	authModel "studyku_backend/internals/features/users/auth/model"
	userModel "studyku_backend/internals/features/users/users/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// ========================== REGISTER ==========================
func Register(db *gorm.DB, req authDTO.RegisterRequest) (*authDTO.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	hashedStr := string(hashed)

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: &hashedStr,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return issueTokens(db, &user)
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, req authDTO.LoginRequest) (*authDTO.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	var user userModel.UserModel
	if err := db.Where("user_email = ? OR user_name = ?", strings.ToLower(identifier), identifier).
		First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email/username atau password salah")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if user.UserPassword == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun ini login lewat Google")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.UserPassword), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	return issueTokens(db, &user)
}

// ========================== LOGIN GOOGLE ==========================
func LoginGoogle(db *gorm.DB, req authDTO.GoogleLoginRequest) (*authDTO.AuthResponse, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak bisa dibaca")
	}

	googleID := claimSet.Sub
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))

	var user userModel.UserModel
	err = db.Where("user_google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// link by email kalau sudah pernah register manual
		err = db.Where("user_email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = userModel.UserModel{
				UserName:     claimSet.Name,
				UserEmail:    email,
				UserGoogleID: &googleID,
			}
			if createErr := db.Create(&user).Error; createErr != nil {
				return nil, createErr
			}
			log.Printf("[AUTH] user baru via Google: %s", email)
		} else if err != nil {
			return nil, err
		} else {
			if updErr := db.Model(&user).Update("user_google_id", googleID).Error; updErr != nil {
				return nil, updErr
			}
		}
	} else if err != nil {
		return nil, err
	}

	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return issueTokens(db, &user)
}

// ========================== REFRESH ==========================
func RefreshToken(db *gorm.DB, rawRefresh string) (*authDTO.AuthResponse, error) {
	tok, err := jwt.Parse(rawRefresh, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}

	if blacklisted, err := IsTokenBlacklisted(db, rawRefresh); err == nil && blacklisted {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token sudah dicabut")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return issueTokens(db, &user)
}

// ========================== LOGOUT ==========================
// Access token masuk blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, rawToken string) error {
	expiredAt := time.Now().Add(accessTTL)
	if tok, _, err := new(jwt.Parser).ParseUnverified(rawToken, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	entry := authModel.TokenBlacklist{
		TokenBlacklistToken:     rawToken,
		TokenBlacklistExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}

// IsTokenBlacklisted dipakai middleware auth sebagai BlacklistChecker.
func IsTokenBlacklisted(db *gorm.DB, rawToken string) (bool, error) {
	var count int64
	err := db.Model(&authModel.TokenBlacklist{}).
		Where("token_blacklist_token = ?", rawToken).
		Count(&count).Error
	return count > 0, err
}

// ========================== TOKEN BUILDER ==========================
func issueTokens(db *gorm.DB, user *userModel.UserModel) (*authDTO.AuthResponse, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal buat access token")
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal buat refresh token")
	}

	return &authDTO.AuthResponse{
		UserID:   user.UserID.String(),
		UserName: user.UserName,
		Email:    user.UserEmail,
		Tokens: authDTO.AuthTokens{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}
