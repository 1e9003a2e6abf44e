package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo adaptador de la tabla personal_puestos_trabajo.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

var assignmentUpdatable = columnSet("fecha_asignacion", "tarifa_dia")

// ListByPersonnel asignaciones con el puesto embebido, ordenadas por nombre de puesto.
func (r *AssignmentRepo) ListByPersonnel(ctx context.Context, ownerID, personalID string) ([]*entity.Assignment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT a.id, a.user_id, a.personal_id, a.puesto_trabajo_id, a.fecha_asignacion, a.tarifa_dia, a.created_at,
		       p.id, p.user_id, p.nombre, p.descripcion, p.tarifa_dia, p.created_at, p.updated_at
		FROM personal_puestos_trabajo a
		JOIN puestos_trabajo p ON p.id = a.puesto_trabajo_id
		WHERE a.user_id = $1 AND a.personal_id = $2
		ORDER BY p.nombre`, ownerID, personalID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Assignment, 0)
	for rows.Next() {
		var a entity.Assignment
		var p entity.JobPosition
		if err := rows.Scan(&a.ID, &a.UserID, &a.PersonalID, &a.PuestoTrabajoID, &a.FechaAsignacion,
			&a.TarifaDia, &a.CreatedAt,
			&p.ID, &p.UserID, &p.Nombre, &p.Descripcion, &p.TarifaDia, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.Puesto = &p
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Add inserta una asignación. Par repetido -> ErrDuplicate.
func (r *AssignmentRepo) Add(ctx context.Context, a *entity.Assignment) error {
	return insertAssignment(ctx, r.q, a)
}

func insertAssignment(ctx context.Context, q Querier, a *entity.Assignment) error {
	_, err := q.Exec(ctx, `
		INSERT INTO personal_puestos_trabajo (id, user_id, personal_id, puesto_trabajo_id, fecha_asignacion, tarifa_dia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.PersonalID, a.PuestoTrabajoID, a.FechaAsignacion, a.TarifaDia, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return classifyWrite("personal_puestos_trabajo", "insert", err)
	}
	return nil
}

func (r *AssignmentRepo) Update(ctx context.Context, ownerID, personalID, puestoID string, ch repository.Changes) (int64, error) {
	set, args, err := setClause(ch, assignmentUpdatable, 4)
	if err != nil {
		return 0, fmt.Errorf("update assignment: %w", err)
	}
	query := "UPDATE personal_puestos_trabajo SET " + set +
		" WHERE user_id = $1 AND personal_id = $2 AND puesto_trabajo_id = $3"
	tag, err := r.q.Exec(ctx, query, append([]any{ownerID, personalID, puestoID}, args...)...)
	if err != nil {
		return 0, fmt.Errorf("update assignment: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AssignmentRepo) Remove(ctx context.Context, ownerID, personalID, puestoID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM personal_puestos_trabajo
		WHERE user_id = $1 AND personal_id = $2 AND puesto_trabajo_id = $3`, ownerID, personalID, puestoID)
	if err != nil {
		return 0, fmt.Errorf("remove assignment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Replace borra el conjunto actual e inserta el nuevo en una sola transacción:
// si falla una inserción, la persona conserva sus puestos anteriores.
func (r *AssignmentRepo) Replace(ctx context.Context, ownerID, personalID string, set []*entity.Assignment) error {
	return NewTxRunner(r.q).Run(ctx, func(tx Querier) error {
		if _, err := tx.Exec(ctx, `DELETE FROM personal_puestos_trabajo WHERE user_id = $1 AND personal_id = $2`,
			ownerID, personalID); err != nil {
			return fmt.Errorf("replace assignments: %w", err)
		}
		for _, a := range set {
			if err := insertAssignment(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	})
}
