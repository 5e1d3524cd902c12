package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLoader interface {
	ProductByID(id int64) (catalog.Product, bool)
}

// View is the cart as returned to clients: resolved lines plus totals.
type View struct {
	Items     []Item `json:"items"`
	ItemCount int    `json:"item_count"`
	Totals    Totals `json:"totals"`
}

// Service exposes cart operations for signed-in users.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*View, error)
	AddItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*View, error)
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*View, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) (*View, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo     *Repository
	tx       txRunner
	products productLoader
	logg     *logger.Logger
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repo     *Repository
	Tx       txRunner
	Products productLoader
	Logger   *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		repo:     params.Repo,
		tx:       params.Tx,
		products: params.Products,
		logg:     params.Logger,
	}, nil
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	record, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return s.buildView(record.Items)
}

// AddItem merges the quantity into the user's cart line for the product.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if quantity <= 0 {
		quantity = 1
	}
	if _, ok := s.products.ProductByID(productID); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	var cartID int64
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		record, err := repo.FindOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		cartID = record.ID

		existing, err := repo.GetItem(ctx, record.ID, productID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return repo.CreateItem(ctx, &models.CartItem{
				CartID:    record.ID,
				ProductID: productID,
				Quantity:  quantity,
			})
		}
		return repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding cart item")
	}
	return s.viewForCart(ctx, cartID)
}

// UpdateItemQuantity sets the line's quantity; zero or less removes the line.
func (s *service) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*View, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	record, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	existing, err := s.repo.GetItem(ctx, record.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart item")
	}
	if err := s.repo.UpdateItemQuantity(ctx, existing.ID, quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating cart item")
	}
	return s.viewForCart(ctx, record.ID)
}

// RemoveItem drops the line; removing an absent product is a no-op.
func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) (*View, error) {
	record, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if err := s.repo.DeleteItem(ctx, record.ID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing cart item")
	}
	return s.viewForCart(ctx, record.ID)
}

// Clear empties the user's cart.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	record, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if err := s.repo.DeleteItems(ctx, record.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) viewForCart(ctx context.Context, cartID int64) (*View, error) {
	rows, err := s.repo.ListItems(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing cart items")
	}
	return s.buildView(rows)
}

func (s *service) buildView(rows []models.CartItem) (*View, error) {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		product, ok := s.products.ProductByID(row.ProductID)
		if !ok {
			// product left the catalog; skip the stale line
			continue
		}
		items = append(items, Item{Product: product, Quantity: row.Quantity})
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return &View{
		Items:     items,
		ItemCount: count,
		Totals:    ComputeTotals(items),
	}, nil
}
