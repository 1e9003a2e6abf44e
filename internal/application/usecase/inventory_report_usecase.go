package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/inventory"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// InventorySheet datos de la hoja de inventario de un producto.
type InventorySheet struct {
	Product     *entity.Product
	Category    string
	Brand       string
	Items       []*entity.EquipmentItem
	Providers   map[string]string // proveedor_id -> nombre
	StateTotals map[string]int
	Valuation   inventory.Valuation
	GeneratedAt time.Time
}

// InventorySheetGenerator puerto de salida que renderiza la hoja (PDF).
type InventorySheetGenerator interface {
	GenerateInventorySheet(ctx context.Context, sheet *InventorySheet) ([]byte, error)
}

// InventoryReportUseCase genera la hoja de inventario de un producto del usuario.
type InventoryReportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	providers  repository.ProviderRepository
	items      *EquipmentItemUseCase
	generator  InventorySheetGenerator
	now        func() time.Time
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	providers repository.ProviderRepository,
	items *EquipmentItemUseCase,
	generator InventorySheetGenerator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		products:   products,
		categories: categories,
		brands:     brands,
		providers:  providers,
		items:      items,
		generator:  generator,
		now:        time.Now,
	}
}

// BuildSheet reúne los datos de la hoja. ErrNotFound si el producto no es del usuario.
func (uc *InventoryReportUseCase) BuildSheet(ctx context.Context, ownerID, productID string) (*InventorySheet, error) {
	items, err := uc.items.List(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, ownerID, productID)
	if err != nil {
		return nil, fmt.Errorf("report: obtener producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	sheet := &InventorySheet{
		Product:     p,
		Items:       items,
		Providers:   map[string]string{},
		StateTotals: make(map[string]int, len(entity.ItemStates)),
		GeneratedAt: uc.now(),
	}
	for _, s := range entity.ItemStates {
		sheet.StateTotals[s] = 0
	}
	if c, err := uc.categories.GetByID(ctx, ownerID, p.CategoriaID); err != nil {
		return nil, fmt.Errorf("report: obtener categoría: %w", err)
	} else if c != nil {
		sheet.Category = c.Nombre
	}
	if p.MarcaID != nil {
		b, err := uc.brands.GetByID(ctx, ownerID, *p.MarcaID)
		if err != nil {
			return nil, fmt.Errorf("report: obtener marca: %w", err)
		}
		if b != nil {
			sheet.Brand = b.Nombre
		}
	}
	prices := make([]*decimal.Decimal, 0, len(items))
	for _, it := range items {
		sheet.StateTotals[it.Estado]++
		prices = append(prices, it.PrecioCompra)
		if it.ProveedorID == nil {
			continue
		}
		if _, ok := sheet.Providers[*it.ProveedorID]; ok {
			continue
		}
		prov, err := uc.providers.GetByID(ctx, ownerID, *it.ProveedorID)
		if err != nil {
			return nil, fmt.Errorf("report: obtener proveedor: %w", err)
		}
		if prov != nil {
			sheet.Providers[prov.ID] = prov.Nombre
		}
	}
	sheet.Valuation = inventory.Value(prices)
	return sheet, nil
}

// Download devuelve el PDF y un nombre de fichero sugerido.
func (uc *InventoryReportUseCase) Download(ctx context.Context, ownerID, productID string) ([]byte, string, error) {
	sheet, err := uc.BuildSheet(ctx, ownerID, productID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.generator.GenerateInventorySheet(ctx, sheet)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("inventario-%s.pdf", productID), nil
}
