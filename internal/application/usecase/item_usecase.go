package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Quantity y WeightedAvgCost se
// mutan únicamente vía los casos de uso de stock (compras/ventas); aquí solo
// se fija el inventario de apertura en la creación.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. WeightedAvgCost inicia en 0; se calcula con la
// primera compra.
func (uc *ItemUseCase) Create(userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.BaseUnit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Quantity < 0 || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitsPerPackage < 1 {
		in.UnitsPerPackage = 1
	}
	now := time.Now()
	item := &entity.Item{
		ID:                uuid.New().String(),
		UserID:            userID,
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		Barcode:           in.Barcode,
		Price:             in.Price,
		Quantity:          in.Quantity,
		WeightedAvgCost:   decimal.Zero,
		BaseUnit:          in.BaseUnit,
		PackagingUnit:     in.PackagingUnit,
		UnitsPerPackage:   in.UnitsPerPackage,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo del usuario.
func (uc *ItemUseCase) GetByID(userID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// Update actualiza los campos editables de un artículo. No permite modificar
// Quantity ni WeightedAvgCost (se manejan vía compras/ventas).
func (uc *ItemUseCase) Update(userID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.BaseUnit != nil {
		item.BaseUnit = *in.BaseUnit
	}
	if in.PackagingUnit != nil {
		item.PackagingUnit = *in.PackagingUnit
	}
	if in.UnitsPerPackage != nil {
		if *in.UnitsPerPackage < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.UnitsPerPackage = *in.UnitsPerPackage
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.LowStockThreshold = *in.LowStockThreshold
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos del usuario con paginación.
func (uc *ItemUseCase) List(userID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo del usuario.
func (uc *ItemUseCase) Delete(userID, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                i.ID,
		Name:              i.Name,
		Description:       i.Description,
		Category:          i.Category,
		Barcode:           i.Barcode,
		Price:             i.Price,
		Quantity:          i.Quantity,
		WeightedAvgCost:   i.WeightedAvgCost,
		BaseUnit:          i.BaseUnit,
		PackagingUnit:     i.PackagingUnit,
		UnitsPerPackage:   i.UnitsPerPackage,
		LowStockThreshold: i.LowStockThreshold,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
