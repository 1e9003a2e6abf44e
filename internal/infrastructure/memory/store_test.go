package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestApplyChanges_OverwritesOnlyGivenColumns(t *testing.T) {
	cur := &entity.Product{
		ID:          "p1",
		UserID:      "u1",
		Nombre:      "Altavoz",
		Descripcion: strPtr("activo"),
		PrecioBase:  decimal.RequireFromString("10.50"),
		CategoriaID: "c1",
		MarcaID:     strPtr("b1"),
	}
	next, err := applyChanges(cur, repository.Changes{
		"nombre":   "Altavoz 2",
		"marca_id": (*string)(nil),
	})
	require.NoError(t, err)

	assert.Equal(t, "Altavoz 2", next.Nombre)
	assert.Nil(t, next.MarcaID)
	require.NotNil(t, next.Descripcion)
	assert.Equal(t, "activo", *next.Descripcion)
	assert.True(t, next.PrecioBase.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "Altavoz", cur.Nombre, "la fila original no se modifica")
}

func TestApplyChanges_UnknownColumn(t *testing.T) {
	_, err := applyChanges(&entity.Brand{ID: "b1"}, repository.Changes{"no_existe": 1})
	assert.Error(t, err)
}

func TestOwnedTable_UniqueNamePerOwner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	brands := s.Brands()

	require.NoError(t, brands.Create(ctx, &entity.Brand{ID: "b1", UserID: "u1", Nombre: "Acme"}))
	assert.ErrorIs(t, brands.Create(ctx, &entity.Brand{ID: "b2", UserID: "u1", Nombre: "Acme"}), domain.ErrDuplicate)
	assert.NoError(t, brands.Create(ctx, &entity.Brand{ID: "b3", UserID: "u2", Nombre: "Acme"}))

	got, err := brands.GetByID(ctx, "u2", "b1")
	require.NoError(t, err)
	assert.Nil(t, got, "la fila de otro usuario es invisible")

	n, err := brands.Delete(ctx, "u2", "b1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_ProductCascadesAndStock(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "c1", UserID: "u1", Nombre: "Audio"}))
	require.NoError(t, s.Brands().Create(ctx, &entity.Brand{ID: "b1", UserID: "u1", Nombre: "Acme"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p1", UserID: "u1", Nombre: "Altavoz", CategoriaID: "c1", MarcaID: strPtr("b1")}))
	for i, serial := range []string{"A", "B"} {
		require.NoError(t, s.EquipmentItems().Create(ctx, &entity.EquipmentItem{
			ID: serial, UserID: "u1", ProductoID: "p1", NumeroSerie: strPtr(serial),
			Estado: entity.ItemStateDisponible, CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	p, err := s.Products().GetByID(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)

	_, err = s.Categories().Delete(ctx, "u1", "c1")
	assert.ErrorIs(t, err, domain.ErrInUse)

	_, err = s.Brands().Delete(ctx, "u1", "b1")
	require.NoError(t, err)
	p, _ = s.Products().GetByID(ctx, "u1", "p1")
	assert.Nil(t, p.MarcaID)

	n, err := s.Products().Delete(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	items, err := s.EquipmentItems().ListByProduct(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepo_SerialUniquePerProduct(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p1", UserID: "u1", Nombre: "A", CategoriaID: "c1"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p2", UserID: "u1", Nombre: "B", CategoriaID: "c1"}))
	items := s.EquipmentItems()

	require.NoError(t, items.Create(ctx, &entity.EquipmentItem{ID: "i1", UserID: "u1", ProductoID: "p1", NumeroSerie: strPtr("SN1")}))
	assert.ErrorIs(t, items.Create(ctx, &entity.EquipmentItem{ID: "i2", UserID: "u1", ProductoID: "p1", NumeroSerie: strPtr("SN1")}), domain.ErrDuplicate)
	assert.NoError(t, items.Create(ctx, &entity.EquipmentItem{ID: "i3", UserID: "u1", ProductoID: "p2", NumeroSerie: strPtr("SN1")}))
	assert.NoError(t, items.Create(ctx, &entity.EquipmentItem{ID: "i4", UserID: "u1", ProductoID: "p1"}))
	assert.NoError(t, items.Create(ctx, &entity.EquipmentItem{ID: "i5", UserID: "u1", ProductoID: "p1"}))
}

func TestAssignmentRepo_ReplaceAndCascade(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Personnel().Create(ctx, &entity.Personnel{ID: "per1", UserID: "u1", Nombre: "Ana"}))
	require.NoError(t, s.JobPositions().Create(ctx, &entity.JobPosition{ID: "j1", UserID: "u1", Nombre: "Técnico"}))
	require.NoError(t, s.JobPositions().Create(ctx, &entity.JobPosition{ID: "j2", UserID: "u1", Nombre: "Chófer"}))
	repo := s.Assignments()

	require.NoError(t, repo.Add(ctx, &entity.Assignment{ID: "a1", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j1"}))
	assert.ErrorIs(t, repo.Add(ctx, &entity.Assignment{ID: "a2", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j1"}), domain.ErrDuplicate)

	err := repo.Replace(ctx, "u1", "per1", []*entity.Assignment{
		{ID: "a3", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j2"},
		{ID: "a4", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j2"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	list, _ := repo.ListByPersonnel(ctx, "u1", "per1")
	require.Len(t, list, 1, "un reemplazo fallido conserva el conjunto anterior")

	require.NoError(t, repo.Replace(ctx, "u1", "per1", []*entity.Assignment{
		{ID: "a5", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j1"},
		{ID: "a6", UserID: "u1", PersonalID: "per1", PuestoTrabajoID: "j2"},
	}))
	list, _ = repo.ListByPersonnel(ctx, "u1", "per1")
	require.Len(t, list, 2)
	assert.Equal(t, "Chófer", list[0].Puesto.Nombre)

	_, err = s.JobPositions().Delete(ctx, "u1", "j2")
	require.NoError(t, err)
	list, _ = repo.ListByPersonnel(ctx, "u1", "per1")
	assert.Len(t, list, 1)

	_, err = s.Personnel().Delete(ctx, "u1", "per1")
	require.NoError(t, err)
	list, _ = repo.ListByPersonnel(ctx, "u1", "per1")
	assert.Empty(t, list)
}
