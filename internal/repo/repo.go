package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Nur-allhi/metalmetrica/internal/item"
	"github.com/Nur-allhi/metalmetrica/internal/org"
	"github.com/Nur-allhi/metalmetrica/internal/project"
)

// PostgresRepository satisfies the store interfaces declared by their
// consumers: auth.UserStore, org.Store, project.Store and report.Store.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetOrganization(ctx context.Context, userID int) (*org.Organization, error) {
	var o org.Organization
	var terms []byte
	query := "SELECT name, logo_url, email, address, contact_number, currency, terms FROM organizations WHERE user_id=$1"
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&o.Name, &o.LogoURL, &o.Email, &o.Address, &o.ContactNumber, &o.Currency, &terms)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if len(terms) > 0 {
		if err := json.Unmarshal(terms, &o.Terms); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

func (r *PostgresRepository) SaveOrganization(ctx context.Context, userID int, o org.Organization) error {
	terms, err := json.Marshal(o.Terms)
	if err != nil {
		return err
	}
	query := `INSERT INTO organizations (user_id, name, logo_url, email, address, contact_number, currency, terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
		name=$2, logo_url=$3, email=$4, address=$5, contact_number=$6, currency=$7, terms=$8`
	_, err = r.db.ExecContext(ctx, query, userID, o.Name, o.LogoURL, o.Email, o.Address, o.ContactNumber, o.Currency, terms)
	return err
}

func (r *PostgresRepository) CreateProject(ctx context.Context, userID int, p *project.Project) error {
	items, costs, err := marshalCollections(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (id, user_id, name, customer, code, items, additional_costs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecContext(ctx, query, p.ID, userID, p.Name, p.Customer, p.Code, items, costs, p.CreatedAt)
	return err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]project.Project, error) {
	query := `SELECT id, name, customer, code, items, additional_costs, created_at
		FROM projects WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID int, id string) (*project.Project, error) {
	query := `SELECT id, name, customer, code, items, additional_costs, created_at
		FROM projects WHERE user_id=$1 AND id=$2`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, userID, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateProject replaces the stored record wholesale; items and additional
// costs are always written back as full collections.
func (r *PostgresRepository) UpdateProject(ctx context.Context, userID int, p *project.Project) error {
	items, costs, err := marshalCollections(p)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET name=$3, customer=$4, code=$5, items=$6, additional_costs=$7
		WHERE user_id=$1 AND id=$2`
	_, err = r.db.ExecContext(ctx, query, userID, p.ID, p.Name, p.Customer, p.Code, items, costs)
	return err
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, userID int, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE user_id=$1 AND id=$2", userID, id)
	return err
}

func marshalCollections(p *project.Project) ([]byte, []byte, error) {
	if p.Items == nil {
		p.Items = []item.SteelItem{}
	}
	items, err := json.Marshal(p.Items)
	if err != nil {
		return nil, nil, err
	}
	if p.AdditionalCosts == nil {
		p.AdditionalCosts = []project.AdditionalCost{}
	}
	costs, err := json.Marshal(p.AdditionalCosts)
	if err != nil {
		return nil, nil, err
	}
	return items, costs, nil
}

func scanProject(scan func(...any) error) (project.Project, error) {
	var p project.Project
	var items, costs []byte
	var created time.Time
	if err := scan(&p.ID, &p.Name, &p.Customer, &p.Code, &items, &costs, &created); err != nil {
		return p, err
	}
	p.CreatedAt = created
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return p, err
	}
	if len(costs) > 0 {
		if err := json.Unmarshal(costs, &p.AdditionalCosts); err != nil {
			return p, err
		}
	}
	return p, nil
}
