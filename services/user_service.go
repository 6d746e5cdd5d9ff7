package services

import (
	"errors"
	"strings"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPassword = errors.New("old password does not match")
var ErrNoDeliveryInfo = errors.New("no delivery info on file")

// UserService covers self-service profile management: name/email edits,
// password changes and the delivery details used at checkout.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Profile(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}

// UpdateProfile applies a partial update: empty fields keep their
// current value. Changing the email re-checks uniqueness.
func (s *UserService) UpdateProfile(userID uint, name, email, phone, address string) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" && email != user.Email {
		count, err := s.Repo.CountByEmail(email)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		user.Phone = phone
	}
	if address = strings.TrimSpace(address); address != "" {
		user.Address = address
	}

	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.Repo.Save(user)
}

func (s *UserService) DeliveryInfo(userID uint) (phone, address string, err error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return "", "", err
	}
	if user.Phone == "" && user.Address == "" {
		return "", "", ErrNoDeliveryInfo
	}
	return user.Phone, user.Address, nil
}

// SetDeliveryInfo replaces both fields, unlike the partial UpdateProfile.
func (s *UserService) SetDeliveryInfo(userID uint, phone, address string) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Phone = strings.TrimSpace(phone)
	user.Address = strings.TrimSpace(address)
	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
