package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-ads/database"
	du "partner-ads/internal/domain/users"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenIssuer signs the session token handed out on login.
type TokenIssuer interface {
	Issue(userID uint, email, role string) (string, error)
}

type Service struct {
	db     *gorm.DB
	tokens TokenIssuer
	log    *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{db: db, tokens: tokens, log: log, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]du.User, error) {
	return database.List[du.User](ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id uint) (*du.User, error) {
	return database.Get[du.User](ctx, s.db, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*du.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("create user: unknown role %q", in.Role)
	}

	u := in.user()
	if in.Password != "" {
		if err := u.SetPassword(in.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *Service) Update(ctx context.Context, id uint, p Patch) (*du.User, error) {
	if p.Role != nil && !p.Role.Valid() {
		return nil, fmt.Errorf("update user: unknown role %q", *p.Role)
	}

	var u du.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return database.NotFound(err)
		}

		p.Apply(&u)
		if p.Password != nil && *p.Password != "" {
			if err := u.SetPassword(*p.Password); err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
		}
		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return database.Delete[du.User](ctx, s.db, id)
}

// Login checks the credentials and, on success, refreshes the last login
// time and issues a session token. It only returns an error for storage or
// signing failures.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var u du.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResult{Message: MsgUnknownUser}, nil
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("load user: %w", err)
	}

	if !u.CheckPassword(password) {
		s.log.Info("login rejected", zap.Uint("user_id", u.ID))
		return LoginResult{Message: MsgWrongPassword}, nil
	}

	u.LastLogin = s.now()
	if err := s.db.WithContext(ctx).Model(&u).UpdateColumn("last_connexion", u.LastLogin).Error; err != nil {
		return LoginResult{}, fmt.Errorf("touch last login: %w", err)
	}

	token, err := s.tokens.Issue(u.ID, u.Email, string(u.Role))
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{OK: true, Message: MsgLoginOK, User: &u, Token: token}, nil
}
