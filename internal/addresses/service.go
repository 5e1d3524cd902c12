package addresses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/checkout"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

const defaultCountry = "India"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CreateAddressInput is the payload for saving a new address.
type CreateAddressInput struct {
	FullName     string  `json:"full_name" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	AddressLine1 string  `json:"address_line1" validate:"required"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	PostalCode   string  `json:"postal_code" validate:"required"`
	Country      string  `json:"country,omitempty"`
	IsDefault    bool    `json:"is_default,omitempty"`
}

// Service exposes the address book operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateAddressInput) (*models.Address, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error)
	SetDefault(ctx context.Context, userID uuid.UUID, id int64) error
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type service struct {
	repo *Repository
	tx   txRunner
}

// ServiceParams bundles the dependencies for the addresses service.
type ServiceParams struct {
	Repo *Repository
	Tx   txRunner
}

// NewService constructs an addresses service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("addresses repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: params.Repo, tx: params.Tx}, nil
}

// Create validates and saves a new address. The first saved address becomes
// the default automatically.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateAddressInput) (*models.Address, error) {
	if err := checkout.ValidateShippingAddress(types.ShippingAddress{
		FullName:     input.FullName,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
	}); err != nil {
		return nil, err
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = defaultCountry
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list addresses")
	}
	makeDefault := input.IsDefault || len(existing) == 0

	address := &models.Address{
		UserID:       userID,
		FullName:     strings.TrimSpace(input.FullName),
		Phone:        input.Phone,
		AddressLine1: strings.TrimSpace(input.AddressLine1),
		AddressLine2: input.AddressLine2,
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   input.PostalCode,
		Country:      country,
		IsDefault:    makeDefault,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if makeDefault {
			if err := repo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}
		_, err := repo.Create(ctx, address)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save address")
	}
	return address, nil
}

// List returns the user's addresses, default first.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list addresses")
	}
	return rows, nil
}

// Get loads a single address owned by the user.
func (s *service) Get(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error) {
	address, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup address")
	}
	return address, nil
}

// SetDefault makes the given address the user's default shipping target.
func (s *service) SetDefault(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearDefault(ctx, userID); err != nil {
			return err
		}
		return repo.SetDefault(ctx, id, userID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set default address")
	}
	return nil
}

// Delete removes an address owned by the user.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete address")
	}
	return nil
}
